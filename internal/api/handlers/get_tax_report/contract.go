package get_tax_report

import (
	"context"

	computeTaxReport "github.com/m04kA/DSM-CoreService/internal/usecase/compute_tax_report"
)

type ComputeTaxReportUseCase interface {
	Execute(ctx context.Context, req *computeTaxReport.Request) (*computeTaxReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
