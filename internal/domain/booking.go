package domain

import (
	"time"
)

// BookingStatus represents the status of a lesson booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// Booking represents a driving lesson booking
type Booking struct {
	ID           int64
	InstructorID int64
	VehicleID    int64
	StudentID    int64
	StartAt      time.Time // invariant: EndAt > StartAt
	EndAt        time.Time
	Status       BookingStatus
	Price        float64 // money in the tenant's base currency unit, 2 decimals

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time window
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BlocksSlot returns true if the booking hides its window from the slot grid
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusConfirmed || b.Status == StatusInProgress
}

// ConflictsAtCommit returns true if the booking participates in commit-time
// conflict validation. Any non-cancelled booking conflicts
func (b *Booking) ConflictsAtCommit() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// statusRank порядок статусов в жизненном цикле
// Статус двигается только вперёд, исключение - отмена из pending/confirmed
var statusRank = map[BookingStatus]int{
	StatusPending:    1,
	StatusConfirmed:  2,
	StatusInProgress: 3,
	StatusCompleted:  4,
	StatusNoShow:     4,
}

// CanTransitionTo returns true if the status change follows the lifecycle:
// monotonically forward, cancellation only from pending/confirmed,
// completed, cancelled and no_show are terminal
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status == next {
		return false
	}
	if next == StatusCancelled {
		return b.CanBeCancelled()
	}
	if b.Status == StatusCancelled || b.Status == StatusCompleted || b.Status == StatusNoShow {
		return false
	}
	from, okFrom := statusRank[b.Status]
	to, okTo := statusRank[next]
	return okFrom && okTo && to > from
}

// InstructorBookingsFilter фильтр для выборки бронирований инструктора
type InstructorBookingsFilter struct {
	InstructorID    int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	OnlyBlocking    bool           // Только бронирования, занимающие слоты (confirmed, in_progress)
	IncludeInactive bool           // Включать отменённые и no-show
}

// BookingCounts агрегированные счётчики бронирований инструктора за всё время
type BookingCounts struct {
	Total     int
	Completed int
}
