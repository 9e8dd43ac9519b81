package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce приводит значение произвольного типа к конечному float64
// Используется везде, где деньги и длительности приходят из потенциально
// кривых данных (NULL, строки, NaN). Для неприводимых значений возвращает fallback
func Coerce(value interface{}, fallback float64) float64 {
	switch v := value.(type) {
	case nil:
		return fallback
	case float64:
		return finiteOr(v, fallback)
	case float32:
		return finiteOr(float64(v), fallback)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case *float64:
		if v == nil {
			return fallback
		}
		return finiteOr(*v, fallback)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fallback
		}
		return finiteOr(parsed, fallback)
	case []byte:
		return Coerce(string(v), fallback)
	case fmt.Stringer:
		return Coerce(v.String(), fallback)
	default:
		return fallback
	}
}

// Round2 округляет до двух знаков после запятой (денежное представление)
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// SafeDiv деление с защитой от нуля в знаменателе: возвращает 0 вместо NaN/Inf
func SafeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// PercentChange изменение current относительно previous в процентах
// Переход 0 -> положительное значение считается ростом на 100%,
// 0 -> 0 считается отсутствием изменений (а не неопределённостью)
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / math.Abs(previous) * 100
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
