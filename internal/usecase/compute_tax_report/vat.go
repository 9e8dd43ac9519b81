package compute_tax_report

import (
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/numeric"
	"github.com/m04kA/DSM-CoreService/pkg/timeutil"
)

// netOf выделяет нетто из суммы с включённым НДС
// НДС здесь всегда внутри цены: gross / (1 + rate/100), а не начисление сверху
func netOf(gross, ratePercent float64) float64 {
	return gross / (1 + ratePercent/100)
}

// deductibleOf возвращает долю НДС в сумме расхода с включённым налогом
func deductibleOf(gross, ratePercent float64) float64 {
	return gross * ratePercent / (100 + ratePercent)
}

// vatAggregate результат агрегации платежей периода
type vatAggregate struct {
	gross    float64
	byType   map[string]Bucket
	byMethod map[string]Bucket
	byDay    map[string]Bucket
}

// aggregatePayments суммирует брутто-выручку и раскладывает её по типу платежа,
// способу оплаты и локальной дате. Суммы проходят через Coerce - кривой платёж
// вносит ноль, а не роняет отчёт. Накопление идёт без округления, Round2
// применяется один раз к готовым группам
func aggregatePayments(payments []*domain.Payment, ratePercent float64) vatAggregate {
	agg := vatAggregate{
		byType:   make(map[string]Bucket),
		byMethod: make(map[string]Bucket),
		byDay:    make(map[string]Bucket),
	}

	for _, p := range payments {
		amount := numeric.Coerce(p.Amount, 0)
		agg.gross += amount

		addToBucket(agg.byType, p.Type, amount)
		addToBucket(agg.byMethod, p.Method, amount)
		addToBucket(agg.byDay, p.PaidAt.Format(domain.DateFormat), amount)
	}

	roundBuckets(agg.byType, ratePercent)
	roundBuckets(agg.byMethod, ratePercent)
	roundBuckets(agg.byDay, ratePercent)

	return agg
}

func addToBucket(buckets map[string]Bucket, key string, gross float64) {
	b := buckets[key]
	b.Count++
	b.Gross += gross
	buckets[key] = b
}

func roundBuckets(buckets map[string]Bucket, ratePercent float64) {
	for key, b := range buckets {
		b.Gross = numeric.Round2(b.Gross)
		b.Net = numeric.Round2(netOf(b.Gross, ratePercent))
		b.Tax = numeric.Round2(b.Gross - b.Net)
		buckets[key] = b
	}
}

// sumDeductible суммирует вычетаемый НДС по расходам периода
func sumDeductible(expenses []*domain.Expense, ratePercent float64) float64 {
	total := 0.0
	for _, e := range expenses {
		total += deductibleOf(numeric.Coerce(e.Amount, 0), ratePercent)
	}
	return total
}

// sumOutstanding суммирует неоплаченные остатки по открытым счетам
func sumOutstanding(invoices []*domain.Invoice) float64 {
	total := 0.0
	for _, inv := range invoices {
		total += inv.Outstanding()
	}
	return total
}

// buildFiling определяет состояние подачи декларации
// Срок подачи - конец периода плюс льготные дни. Просроченная декларация
// всегда OVERDUE, близкий срок - URGENT независимо от суммы; PENDING
// требует положительного налога к уплате, иначе CURRENT
func buildFiling(today, periodEnd time.Time, netTaxDue float64, cfg *domain.TaxConfig) Filing {
	due := timeutil.DateOnly(periodEnd).AddDate(0, 0, cfg.FilingGraceDays)
	daysUntilDue := timeutil.DaysBetween(today, due)

	var state FilingState
	switch {
	case daysUntilDue < 0:
		state = FilingOverdue
	case daysUntilDue <= cfg.UrgentWindowDays:
		state = FilingUrgent
	case netTaxDue > 0:
		state = FilingPending
	default:
		state = FilingCurrent
	}

	return Filing{
		State:        state,
		DueDate:      due,
		DaysUntilDue: daysUntilDue,
	}
}
