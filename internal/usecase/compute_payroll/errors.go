package compute_payroll

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном отчётном периоде
	ErrInvalidPeriod = errors.New("compute_payroll: invalid reporting period")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_payroll: internal error")
)
