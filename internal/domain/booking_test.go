package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingBlocksSlot(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		expected bool
	}{
		{StatusPending, false},
		{StatusConfirmed, true},
		{StatusInProgress, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.expected, b.BlocksSlot())
		})
	}
}

func TestBookingConflictsAtCommit(t *testing.T) {
	// При подтверждении записи конфликтом считается любое неотменённое
	// бронирование, включая завершённые и no-show
	for _, status := range ValidStatuses {
		b := &Booking{Status: status}
		assert.Equal(t, status != StatusCancelled, b.ConflictsAtCommit(), "status=%s", status)
	}
}

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusInProgress}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     BookingStatus
		to       BookingStatus
		expected bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to in_progress", StatusConfirmed, StatusInProgress, true},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"confirmed to completed skips in_progress", StatusConfirmed, StatusCompleted, true},
		{"confirmed to no_show", StatusConfirmed, StatusNoShow, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"no backward move", StatusInProgress, StatusConfirmed, false},
		{"in_progress cannot be cancelled", StatusInProgress, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusInProgress, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"no_show is terminal", StatusNoShow, StatusCompleted, false},
		{"same status is not a transition", StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.expected, b.CanTransitionTo(tt.to))
		})
	}
}
