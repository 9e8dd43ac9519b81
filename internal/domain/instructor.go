package domain

import "time"

// Instructor represents a driving instructor
type Instructor struct {
	ID              int64
	FullName        string
	Rating          float64 // 0-5
	YearsExperience int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CommissionRule defines the revenue share of a single instructor
// At most one active rule per instructor is meaningful; when several exist
// the first one in list order wins (see compute_payroll)
type CommissionRule struct {
	ID             int64
	InstructorID   int64
	CommissionRate float64 // percent, 0-100
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
