package get_instructor_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DSM-CoreService/internal/api/handlers"
	"github.com/m04kA/DSM-CoreService/internal/api/middleware"
	"github.com/m04kA/DSM-CoreService/internal/service/bookings"
)

const (
	msgInvalidInstructorID = "некорректный ID инструктора"
	msgInvalidQuery        = "некорректные параметры фильтрации"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidStatus       = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}/bookings
// Query: startDate, endDate, status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	instructorID, err := strconv.ParseInt(vars["instructorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /instructors/{id}/bookings - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /instructors/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := parseQuery(instructorID, userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /instructors/{id}/bookings - Invalid query: instructor_id=%d, error=%v", instructorID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetInstructorBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /instructors/{id}/bookings - Invalid status: instructor_id=%d", instructorID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /instructors/{id}/bookings - Failed: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instructors/{id}/bookings - %d bookings returned: instructor_id=%d",
		len(result.Bookings), instructorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
