package get_available_slots

import (
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/timeutil"
)

// generateCandidateSlots генерирует все кандидаты слотов на день
// Сетка начинается в DayStartHour и идёт с фиксированным шагом SlotDurationMinutes;
// кандидат, чей конец выходит за DayEndHour, не генерируется
// Для прошедших дат возвращает пустой список; для сегодняшней даты отбрасывает
// кандидатов, нарушающих минимальное время до записи
//
// Чистая функция своих аргументов: повторный вызов с теми же входами даёт
// тот же результат в том же порядке
func generateCandidateSlots(
	date time.Time,
	cfg *domain.ScheduleConfig,
	now time.Time,
) []time.Time {
	if timeutil.IsDateInPast(date, now) {
		return []time.Time{}
	}

	dayStart := timeutil.DateOnly(date).Add(time.Duration(cfg.DayStartHour) * time.Hour)
	dayEnd := timeutil.DateOnly(date).Add(time.Duration(cfg.DayEndHour) * time.Hour)
	step := time.Duration(cfg.SlotDurationMinutes) * time.Minute

	if step <= 0 || !dayStart.Before(dayEnd) {
		return []time.Time{}
	}

	candidates := make([]time.Time, 0, cfg.WorkingMinutes()/cfg.SlotDurationMinutes)
	for cursor := dayStart; !cursor.Add(step).After(dayEnd); cursor = cursor.Add(step) {
		candidates = append(candidates, cursor)
	}

	// Для будущих дат возвращаем всю сетку
	if !timeutil.SameDay(date, now) {
		return candidates
	}

	// Сегодня: оставляем только слоты, начинающиеся не раньше now + notice
	minAllowed := now.Add(time.Duration(cfg.MinBookingNoticeMinutes) * time.Minute)
	filtered := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		if !c.Before(minAllowed) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// filterConflictingSlots отбрасывает кандидатов, пересекающихся с занимающими
// слот бронированиями инструктора
//
// Частичное пересечение исключает кандидата целиком - частичные слоты не
// предлагаются. Отменённые и no-show бронирования слот не занимают, поэтому
// отмена немедленно возвращает окно в выдачу
func filterConflictingSlots(
	candidates []time.Time,
	slotDuration int,
	bookings []*domain.Booking,
) []domain.AvailableSlot {
	step := time.Duration(slotDuration) * time.Minute

	slots := make([]domain.AvailableSlot, 0, len(candidates))
	for _, start := range candidates {
		end := start.Add(step)
		if hasBlockingOverlap(start, end, bookings) {
			continue
		}
		slots = append(slots, domain.AvailableSlot{
			StartAt:         start,
			DurationMinutes: slotDuration,
		})
	}
	return slots
}

// hasBlockingOverlap проверяет пересечение окна [start, end) хотя бы с одним
// занимающим слот бронированием. Интервалы полуоткрытые: граничащие окна
// (конец одного равен началу другого) пересечением не считаются
func hasBlockingOverlap(start, end time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.BlocksSlot() {
			continue
		}
		if timeutil.Overlaps(start, end, b.StartAt, b.EndAt) {
			return true
		}
	}
	return false
}
