package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/timeutil"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}

	// Инвариант бронирования: конец строго позже начала
	if !req.EndAt.After(req.StartAt) {
		return fmt.Errorf("%w: endAt must be after startAt", ErrInvalidTimeWindow)
	}

	// Окно должно целиком лежать в пределах одного календарного дня:
	// commit-проверка конфликтов читает бронирования по дате начала.
	// Конец ровно в полночь следующего дня допустим - полуоткрытое окно
	// [23:00, 24:00) ещё не выходит за границу дня
	nextMidnight := timeutil.DateOnly(req.StartAt).AddDate(0, 0, 1)
	if !timeutil.SameDay(req.StartAt, req.EndAt) && !req.EndAt.Equal(nextMidnight) {
		return fmt.Errorf("%w: booking window must not cross a day boundary", ErrInvalidTimeWindow)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateBookingTime проверяет, что окно не в прошлом и не нарушает
// минимальное время до записи
func validateBookingTime(startAt, now time.Time, minNoticeMinutes int) error {
	if timeutil.IsDateInPast(startAt, now) {
		return ErrInvalidDate
	}

	if !timeutil.SameDay(startAt, now) {
		return nil
	}

	minAllowed := now.Add(time.Duration(minNoticeMinutes) * time.Minute)
	if startAt.Before(minAllowed) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// countConflicts подсчитывает существующие бронирования, пересекающиеся с
// предложенным окном [start, end)
//
// Авторитетная commit-time проверка: учитывается ЛЮБОЕ неотменённое
// бронирование инструктора. Строгие неравенства - граничащие окна
// конфликтом не считаются
func countConflicts(start, end time.Time, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if !b.ConflictsAtCommit() {
			continue
		}
		if timeutil.Overlaps(start, end, b.StartAt, b.EndAt) {
			count++
		}
	}
	return count
}
