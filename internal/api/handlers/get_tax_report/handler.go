package get_tax_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/DSM-CoreService/internal/api/handlers"
	computeTaxReport "github.com/m04kA/DSM-CoreService/internal/usecase/compute_tax_report"
)

const (
	msgInvalidPeriod = "некорректный период, ожидаются параметры from и to в формате YYYY-MM-DD"
)

type Handler struct {
	useCase ComputeTaxReportUseCase
	logger  Logger
}

func NewHandler(useCase ComputeTaxReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/tax?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, to, err := parsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/tax - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &computeTaxReport.Request{
		From: from,
		To:   to,
	})
	if err != nil {
		switch {
		case errors.Is(err, computeTaxReport.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/tax - Invalid period")
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/tax - Failed to compute tax report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/tax - Report built: grossSales=%.2f, filing=%s",
		result.GrossSales, result.Filing.State)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
