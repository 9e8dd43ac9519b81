package create_booking

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("create_booking: instructor not found")

	// ErrInstructorInactive возвращается, когда инструктор не принимает записи
	ErrInstructorInactive = errors.New("create_booking: instructor is not active")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeWindow возвращается при некорректном окне (end <= start)
	ErrInvalidTimeWindow = errors.New("create_booking: invalid time window")

	// ErrSlotConflict возвращается, когда окно пересекается с существующим
	// бронированием. Восстановимая ошибка: вызывающая сторона предлагает
	// пользователю выбрать другое время
	ErrSlotConflict = errors.New("create_booking: slot is no longer available")

	// ErrTooLateToBook возвращается, когда запись нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
