package domain

// Default schedule values, used when neither an instructor-specific nor a
// school-wide config row exists
const (
	DefaultDayStartHour            = 8
	DefaultDayEndHour              = 20
	DefaultSlotDurationMinutes     = 60
	DefaultMinBookingNoticeMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 15
	MaxSlotDurationMinutes      = 240
	MinWorkingHour              = 0
	MaxWorkingHour              = 24
	MaxBookingNoticeMinutes     = 10080 // 1 week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SlotBlockingStatuses статусы, скрывающие слот в расписании
// Отменённые и no-show бронирования слот не занимают и немедленно
// освобождают его для повторного показа
var SlotBlockingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusInProgress,
}

// InactiveStatuses статусы неактивных бронирований
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
