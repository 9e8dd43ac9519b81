package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{
			name:   "identical windows",
			aStart: "2026-08-27T10:00:00Z", aEnd: "2026-08-27T11:00:00Z",
			bStart: "2026-08-27T10:00:00Z", bEnd: "2026-08-27T11:00:00Z",
			expected: true,
		},
		{
			name:   "partial overlap",
			aStart: "2026-08-27T10:00:00Z", aEnd: "2026-08-27T11:00:00Z",
			bStart: "2026-08-27T10:30:00Z", bEnd: "2026-08-27T11:30:00Z",
			expected: true,
		},
		{
			name:   "a contains b",
			aStart: "2026-08-27T09:00:00Z", aEnd: "2026-08-27T12:00:00Z",
			bStart: "2026-08-27T10:00:00Z", bEnd: "2026-08-27T11:00:00Z",
			expected: true,
		},
		{
			name:   "touching windows do not overlap",
			aStart: "2026-08-27T10:00:00Z", aEnd: "2026-08-27T11:00:00Z",
			bStart: "2026-08-27T11:00:00Z", bEnd: "2026-08-27T12:00:00Z",
			expected: false,
		},
		{
			name:   "touching windows reversed",
			aStart: "2026-08-27T11:00:00Z", aEnd: "2026-08-27T12:00:00Z",
			bStart: "2026-08-27T10:00:00Z", bEnd: "2026-08-27T11:00:00Z",
			expected: false,
		},
		{
			name:   "disjoint windows",
			aStart: "2026-08-27T08:00:00Z", aEnd: "2026-08-27T09:00:00Z",
			bStart: "2026-08-27T15:00:00Z", bEnd: "2026-08-27T16:00:00Z",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Overlaps(
				mustTime(t, tt.aStart), mustTime(t, tt.aEnd),
				mustTime(t, tt.bStart), mustTime(t, tt.bEnd),
			)
			assert.Equal(t, tt.expected, result)

			// Пересечение симметрично
			reversed := Overlaps(
				mustTime(t, tt.bStart), mustTime(t, tt.bEnd),
				mustTime(t, tt.aStart), mustTime(t, tt.aEnd),
			)
			assert.Equal(t, tt.expected, reversed)
		})
	}
}

func TestDurationHours(t *testing.T) {
	start := mustTime(t, "2026-08-27T10:00:00Z")

	t.Run("normal window", func(t *testing.T) {
		assert.InDelta(t, 1.5, DurationHours(start, start.Add(90*time.Minute)), 1e-9)
	})

	t.Run("zero window falls back to minimum", func(t *testing.T) {
		assert.Equal(t, MinDurationHours, DurationHours(start, start))
	})

	t.Run("inverted window falls back to minimum", func(t *testing.T) {
		assert.Equal(t, MinDurationHours, DurationHours(start, start.Add(-time.Hour)))
	})
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected int
	}{
		{"same day", "2026-08-27T09:00:00Z", "2026-08-27T23:00:00Z", 0},
		{"next day", "2026-08-27T23:00:00Z", "2026-08-28T01:00:00Z", 1},
		{"a month ahead", "2026-08-01T00:00:00Z", "2026-08-31T00:00:00Z", 30},
		{"past date is negative", "2026-08-27T00:00:00Z", "2026-08-20T00:00:00Z", -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(mustTime(t, tt.from), mustTime(t, tt.to)))
		})
	}
}

func TestIsDateInPast(t *testing.T) {
	now := mustTime(t, "2026-08-27T12:00:00Z")

	assert.True(t, IsDateInPast(mustTime(t, "2026-08-26T23:59:00Z"), now))
	// Более раннее время того же дня прошлым не считается
	assert.False(t, IsDateInPast(mustTime(t, "2026-08-27T00:00:00Z"), now))
	assert.False(t, IsDateInPast(mustTime(t, "2026-08-28T00:00:00Z"), now))
}
