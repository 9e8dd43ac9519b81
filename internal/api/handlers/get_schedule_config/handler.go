package get_schedule_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/DSM-CoreService/internal/api/handlers"
	"github.com/m04kA/DSM-CoreService/internal/service/schedule"
	"github.com/m04kA/DSM-CoreService/internal/service/schedule/models"
)

const (
	msgInvalidInstructorID = "некорректный ID инструктора"
	msgNotFound            = "конфигурация расписания не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule-config?instructorId=42
// Без instructorId возвращает общешкольную конфигурацию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetConfigRequest{}

	if raw := r.URL.Query().Get("instructorId"); raw != "" {
		instructorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /schedule-config - Invalid instructor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInstructorID)
			return
		}
		req.InstructorID = &instructorID
	}

	result, err := h.service.Get(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrConfigNotFound):
			h.logger.Warn("GET /schedule-config - Config not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /schedule-config - Failed to get config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule-config - Config retrieved successfully: config_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
