package get_payroll_report

import (
	"context"

	computePayroll "github.com/m04kA/DSM-CoreService/internal/usecase/compute_payroll"
)

type ComputePayrollUseCase interface {
	Execute(ctx context.Context, req *computePayroll.Request) (*computePayroll.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
