package timeutil

import (
	"math"
	"time"
)

// MinDurationHours нижняя граница длительности занятия в часах
// Некорректное окно (end <= start, сломанные timestamp'ы) никогда не должно
// вносить нулевую или отрицательную длительность в агрегаты
const MinDurationHours = 1.0

// DurationHours возвращает длительность интервала [start, end) в часах
// Для некорректного окна возвращает MinDurationHours
func DurationHours(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return MinDurationHours
	}
	return hours
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Строгие неравенства: граничащие интервалы (конец одного равен началу другого)
// пересечением не считаются
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только календарную дату (в локации исходного значения)
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast проверяет, что дата строго раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// DaysBetween возвращает количество полных календарных дней от from до to
// Отрицательное значение означает, что to раньше from
func DaysBetween(from, to time.Time) int {
	f := DateOnly(from)
	t := DateOnly(to)
	return int(math.Round(t.Sub(f).Hours() / 24))
}
