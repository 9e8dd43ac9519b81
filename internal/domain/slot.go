package domain

import "time"

// AvailableSlot represents a bookable time window for one instructor
type AvailableSlot struct {
	StartAt         time.Time
	DurationMinutes int
}

// EndAt returns the exclusive end of the slot window
func (s *AvailableSlot) EndAt() time.Time {
	return s.StartAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}
