package compute_payroll

import "time"

// Request модель запроса расчёта зарплат за период [From, To]
type Request struct {
	From time.Time
	To   time.Time
}

// Response отчёт по зарплатам инструкторов
// Rows отсортированы по убыванию GrossPay; Totals - простые суммы по строкам,
// чтобы итог отчёта всегда сходился с детализацией
type Response struct {
	From   time.Time
	To     time.Time
	Rows   []PayrollRow
	Totals PayrollTotals
}

// PayrollRow расчёт по одному инструктору
type PayrollRow struct {
	InstructorID     int64
	InstructorName   string
	Rating           float64
	Lessons          int     // Завершённые занятия в периоде
	Revenue          float64 // Выручка по завершённым занятиям
	HoursWorked      float64 // Оплачиваемые часы: занятия x HoursPerLesson
	ActualHours      float64 // Фактические часы по окнам занятий
	CommissionRate   float64 // Процент комиссии (0-100)
	BaseCommission   float64
	PerformanceBonus float64
	QualityBonus     float64
	GrossPay         float64
	Deductions       float64 // Зарезервировано, пока всегда 0
	TaxWithheld      float64
	NIContributions  float64
	NetPay           float64
	CompletionRate   float64 // Процент завершённых занятий за всё время
}

// PayrollTotals итоги отчёта
type PayrollTotals struct {
	Lessons         int
	Revenue         float64
	GrossPay        float64
	TaxWithheld     float64
	NIContributions float64
	NetPay          float64
}
