package get_payroll_report

import (
	"errors"
	"net/url"
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	computePayroll "github.com/m04kA/DSM-CoreService/internal/usecase/compute_payroll"
)

// ErrInvalidPeriod возвращается при некорректных параметрах периода
var ErrInvalidPeriod = errors.New("invalid period parameters")

// parsePeriod разбирает обязательные параметры from и to (YYYY-MM-DD)
// Обе даты включительны: to раскрывается до конца дня
func parsePeriod(query url.Values) (time.Time, time.Time, error) {
	fromRaw := query.Get("from")
	toRaw := query.Get("to")
	if fromRaw == "" || toRaw == "" {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	from, err := time.Parse(domain.DateFormat, fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	to, err := time.Parse(domain.DateFormat, toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	return from, to.Add(24*time.Hour - time.Second), nil
}

// PayrollRowResponse строка отчёта по одному инструктору
type PayrollRowResponse struct {
	InstructorID     int64   `json:"instructorId"`
	InstructorName   string  `json:"instructorName"`
	Rating           float64 `json:"rating"`
	Lessons          int     `json:"lessons"`
	Revenue          float64 `json:"revenue"`
	HoursWorked      float64 `json:"hoursWorked"`
	ActualHours      float64 `json:"actualHours"`
	CommissionRate   float64 `json:"commissionRate"`
	BaseCommission   float64 `json:"baseCommission"`
	PerformanceBonus float64 `json:"performanceBonus"`
	QualityBonus     float64 `json:"qualityBonus"`
	GrossPay         float64 `json:"grossPay"`
	Deductions       float64 `json:"deductions"`
	TaxWithheld      float64 `json:"taxWithheld"`
	NIContributions  float64 `json:"niContributions"`
	NetPay           float64 `json:"netPay"`
	CompletionRate   float64 `json:"completionRate"`
}

// PayrollTotalsResponse итоги отчёта
type PayrollTotalsResponse struct {
	Lessons         int     `json:"lessons"`
	Revenue         float64 `json:"revenue"`
	GrossPay        float64 `json:"grossPay"`
	TaxWithheld     float64 `json:"taxWithheld"`
	NIContributions float64 `json:"niContributions"`
	NetPay          float64 `json:"netPay"`
}

// PayrollReportResponse HTTP response model
type PayrollReportResponse struct {
	From   string                `json:"from"`
	To     string                `json:"to"`
	Rows   []PayrollRowResponse  `json:"rows"`
	Totals PayrollTotalsResponse `json:"totals"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computePayroll.Response) *PayrollReportResponse {
	rows := make([]PayrollRowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		rows = append(rows, PayrollRowResponse{
			InstructorID:     row.InstructorID,
			InstructorName:   row.InstructorName,
			Rating:           row.Rating,
			Lessons:          row.Lessons,
			Revenue:          row.Revenue,
			HoursWorked:      row.HoursWorked,
			ActualHours:      row.ActualHours,
			CommissionRate:   row.CommissionRate,
			BaseCommission:   row.BaseCommission,
			PerformanceBonus: row.PerformanceBonus,
			QualityBonus:     row.QualityBonus,
			GrossPay:         row.GrossPay,
			Deductions:       row.Deductions,
			TaxWithheld:      row.TaxWithheld,
			NIContributions:  row.NIContributions,
			NetPay:           row.NetPay,
			CompletionRate:   row.CompletionRate,
		})
	}

	return &PayrollReportResponse{
		From: resp.From.Format(domain.DateFormat),
		To:   resp.To.Format(domain.DateFormat),
		Rows: rows,
		Totals: PayrollTotalsResponse{
			Lessons:         resp.Totals.Lessons,
			Revenue:         resp.Totals.Revenue,
			GrossPay:        resp.Totals.GrossPay,
			TaxWithheld:     resp.Totals.TaxWithheld,
			NIContributions: resp.Totals.NIContributions,
			NetPay:          resp.Totals.NetPay,
		},
	}
}
