package get_payroll_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/DSM-CoreService/internal/api/handlers"
	computePayroll "github.com/m04kA/DSM-CoreService/internal/usecase/compute_payroll"
)

const (
	msgInvalidPeriod = "некорректный период, ожидаются параметры from и to в формате YYYY-MM-DD"
)

type Handler struct {
	useCase ComputePayrollUseCase
	logger  Logger
}

func NewHandler(useCase ComputePayrollUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/payroll?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, to, err := parsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/payroll - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &computePayroll.Request{
		From: from,
		To:   to,
	})
	if err != nil {
		switch {
		case errors.Is(err, computePayroll.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/payroll - Invalid period")
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/payroll - Failed to compute payroll: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/payroll - Report built: %d rows", len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
