package get_tax_report

import (
	"errors"
	"net/url"
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	computeTaxReport "github.com/m04kA/DSM-CoreService/internal/usecase/compute_tax_report"
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

// BucketResponse агрегат по одной группе платежей
type BucketResponse struct {
	Count int     `json:"count"`
	Gross float64 `json:"gross"`
	Net   float64 `json:"net"`
	Tax   float64 `json:"tax"`
}

// FilingResponse состояние подачи декларации
type FilingResponse struct {
	State        string `json:"state"`
	DueDate      string `json:"dueDate"` // "2026-08-27"
	DaysUntilDue int    `json:"daysUntilDue"`
}

// TaxReportResponse HTTP response model
type TaxReportResponse struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	StandardRate float64 `json:"standardRate"`

	GrossSales    float64 `json:"grossSales"`
	NetSales      float64 `json:"netSales"`
	TaxCollected  float64 `json:"taxCollected"`
	TaxDeductible float64 `json:"taxDeductible"`
	NetTaxDue     float64 `json:"netTaxDue"`

	OutstandingReceivables float64 `json:"outstandingReceivables"`

	PreviousGrossSales float64 `json:"previousGrossSales"`
	GrossChangePercent float64 `json:"grossChangePercent"`

	ByType   map[string]BucketResponse `json:"byType"`
	ByMethod map[string]BucketResponse `json:"byMethod"`
	ByDay    map[string]BucketResponse `json:"byDay"`

	Filing FilingResponse `json:"filing"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeTaxReport.Response) *TaxReportResponse {
	return &TaxReportResponse{
		From:         resp.From.Format(domain.DateFormat),
		To:           resp.To.Format(domain.DateFormat),
		StandardRate: resp.StandardRate,

		GrossSales:    resp.GrossSales,
		NetSales:      resp.NetSales,
		TaxCollected:  resp.TaxCollected,
		TaxDeductible: resp.TaxDeductible,
		NetTaxDue:     resp.NetTaxDue,

		OutstandingReceivables: resp.OutstandingReceivables,

		PreviousGrossSales: resp.PreviousGrossSales,
		GrossChangePercent: resp.GrossChangePercent,

		ByType:   convertBuckets(resp.ByType),
		ByMethod: convertBuckets(resp.ByMethod),
		ByDay:    convertBuckets(resp.ByDay),

		Filing: FilingResponse{
			State:        string(resp.Filing.State),
			DueDate:      resp.Filing.DueDate.Format(domain.DateFormat),
			DaysUntilDue: resp.Filing.DaysUntilDue,
		},
	}
}

func convertBuckets(buckets map[string]computeTaxReport.Bucket) map[string]BucketResponse {
	result := make(map[string]BucketResponse, len(buckets))
	for key, b := range buckets {
		result[key] = BucketResponse{
			Count: b.Count,
			Gross: b.Gross,
			Net:   b.Net,
			Tax:   b.Tax,
		}
	}
	return result
}
