package domain

import "time"

// ScheduleConfig describes the bookable working window of the school or of a
// single instructor. A row with InstructorID = NULL is the school-wide
// default; an instructor-specific row overrides it
type ScheduleConfig struct {
	ID                      int64
	InstructorID            *int64 // NULL = school-wide default
	DayStartHour            int    // inclusive, 0-23
	DayEndHour              int    // exclusive, 1-24
	SlotDurationMinutes     int
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsSchoolWide returns true if this is the school-wide default config
func (c *ScheduleConfig) IsSchoolWide() bool {
	return c.InstructorID == nil
}

// WorkingMinutes returns the length of the bookable window in minutes
func (c *ScheduleConfig) WorkingMinutes() int {
	return (c.DayEndHour - c.DayStartHour) * 60
}

// PayrollPolicy ставки расчёта зарплаты, передаются в каждое вычисление явно
// (никаких захардкоженных констант на уровне модуля - у тенантов свои значения)
type PayrollPolicy struct {
	DefaultCommissionRate  float64 // percent, applied when no active CommissionRule exists
	HoursPerLesson         float64 // paid hours per completed lesson
	QualityBonusAmount     float64
	QualityRatingThreshold float64
	TaxRate                float64 // flat rate, fraction (0.20)
	NIRate                 float64 // flat rate, fraction (0.12)
	PerformanceTiers       []PerformanceTier
}

// PerformanceTier ступень бонуса за выручку; применяется только одна,
// самая высокая достигнутая
type PerformanceTier struct {
	RevenueAbove float64
	Bonus        float64
}

// PerformanceBonus returns the bonus of the single highest tier reached
// Tiers are not cumulative
func (p *PayrollPolicy) PerformanceBonus(revenue float64) float64 {
	best := 0.0
	bestThreshold := -1.0
	for _, tier := range p.PerformanceTiers {
		if revenue > tier.RevenueAbove && tier.RevenueAbove > bestThreshold {
			best = tier.Bonus
			bestThreshold = tier.RevenueAbove
		}
	}
	return best
}

// TaxConfig per-tenant VAT parameters, read at report-generation time and
// treated as constant for the duration of one computation
type TaxConfig struct {
	ID               int64
	StandardRate     float64 // percent (20 = 20%)
	FilingGraceDays  int     // filing due = period end + grace days
	UrgentWindowDays int     // days before due treated as urgent
	UpdatedAt        time.Time
}
