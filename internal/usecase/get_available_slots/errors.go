package get_available_slots

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("get_available_slots: instructor not found")

	// ErrInstructorInactive возвращается, когда инструктор не принимает записи
	ErrInstructorInactive = errors.New("get_available_slots: instructor is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
