package compute_tax_report

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном отчётном периоде
	ErrInvalidPeriod = errors.New("compute_tax_report: invalid reporting period")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_tax_report: internal error")
)
