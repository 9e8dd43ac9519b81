package compute_payroll

import (
	"sort"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/numeric"
	"github.com/m04kA/DSM-CoreService/pkg/timeutil"
)

// instructorAggregate промежуточная агрегация по одному инструктору
type instructorAggregate struct {
	lessons     int
	revenue     float64
	actualHours float64
}

// buildPayrollRows строит строки отчёта по зарплатам
// Чистая функция своих входов: бронирования уже отфильтрованы по
// status=completed и началу в периоде
func buildPayrollRows(
	instructors []*domain.Instructor,
	bookings []*domain.Booking,
	rules []*domain.CommissionRule,
	counts map[int64]domain.BookingCounts,
	policy domain.PayrollPolicy,
) []PayrollRow {
	aggregates := aggregateBookings(bookings)

	rows := make([]PayrollRow, 0, len(instructors))
	for _, ins := range instructors {
		agg := aggregates[ins.ID]

		rate := commissionRateFor(ins.ID, rules, policy.DefaultCommissionRate)

		baseCommission := agg.revenue * rate / 100
		performanceBonus := policy.PerformanceBonus(agg.revenue)

		qualityBonus := 0.0
		if ins.Rating >= policy.QualityRatingThreshold {
			qualityBonus = policy.QualityBonusAmount
		}

		grossPay := baseCommission + performanceBonus + qualityBonus
		taxWithheld := grossPay * policy.TaxRate
		niContributions := grossPay * policy.NIRate
		netPay := grossPay - taxWithheld - niContributions

		rows = append(rows, PayrollRow{
			InstructorID:     ins.ID,
			InstructorName:   ins.FullName,
			Rating:           ins.Rating,
			Lessons:          agg.lessons,
			Revenue:          numeric.Round2(agg.revenue),
			HoursWorked:      float64(agg.lessons) * policy.HoursPerLesson,
			ActualHours:      numeric.Round2(agg.actualHours),
			CommissionRate:   rate,
			BaseCommission:   numeric.Round2(baseCommission),
			PerformanceBonus: performanceBonus,
			QualityBonus:     qualityBonus,
			GrossPay:         numeric.Round2(grossPay),
			Deductions:       0,
			TaxWithheld:      numeric.Round2(taxWithheld),
			NIContributions:  numeric.Round2(niContributions),
			NetPay:           numeric.Round2(netPay),
			CompletionRate:   completionRate(counts[ins.ID]),
		})
	}

	// Сортируем по убыванию GrossPay, при равенстве - по ID для стабильности выдачи
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].GrossPay != rows[j].GrossPay {
			return rows[i].GrossPay > rows[j].GrossPay
		}
		return rows[i].InstructorID < rows[j].InstructorID
	})

	return rows
}

// aggregateBookings суммирует выручку, количество и фактические часы занятий
// по инструкторам. Цена проходит через Coerce: кривое значение не роняет
// отчёт, а заменяется нулём. Длительность окна имеет нижнюю границу
// (сломанное окно никогда не вносит ноль или отрицательные часы)
func aggregateBookings(bookings []*domain.Booking) map[int64]instructorAggregate {
	aggregates := make(map[int64]instructorAggregate)
	for _, b := range bookings {
		agg := aggregates[b.InstructorID]
		agg.lessons++
		agg.revenue += numeric.Coerce(b.Price, 0)
		agg.actualHours += timeutil.DurationHours(b.StartAt, b.EndAt)
		aggregates[b.InstructorID] = agg
	}
	return aggregates
}

// commissionRateFor находит процент комиссии инструктора
// Берётся первое активное правило в порядке списка; при нескольких активных
// правилах одного инструктора это осознанное воспроизведение поведения
// источника - уникальность правила должна обеспечиваться моделью данных,
// а не молчаливым выбором здесь
func commissionRateFor(instructorID int64, rules []*domain.CommissionRule, defaultRate float64) float64 {
	for _, rule := range rules {
		if rule.InstructorID == instructorID && rule.IsActive {
			return rule.CommissionRate
		}
	}
	return defaultRate
}

// completionRate процент завершённых занятий за всё время
// Инструктор без единого бронирования получает 0, а не деление на ноль
func completionRate(counts domain.BookingCounts) float64 {
	if counts.Total == 0 {
		return 0
	}
	return numeric.Round2(float64(counts.Completed) / float64(counts.Total) * 100)
}

// buildTotals складывает итоги из построенных строк
// Итоги не пересчитываются из сырых данных: футер отчёта обязан сходиться
// с детализацией
func buildTotals(rows []PayrollRow) PayrollTotals {
	var totals PayrollTotals
	for _, row := range rows {
		totals.Lessons += row.Lessons
		totals.Revenue += row.Revenue
		totals.GrossPay += row.GrossPay
		totals.TaxWithheld += row.TaxWithheld
		totals.NIContributions += row.NIContributions
		totals.NetPay += row.NetPay
	}
	totals.Revenue = numeric.Round2(totals.Revenue)
	totals.GrossPay = numeric.Round2(totals.GrossPay)
	totals.TaxWithheld = numeric.Round2(totals.TaxWithheld)
	totals.NIContributions = numeric.Round2(totals.NIContributions)
	totals.NetPay = numeric.Round2(totals.NetPay)
	return totals
}
