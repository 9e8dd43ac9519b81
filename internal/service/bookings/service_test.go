package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	bookingRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/booking"
	"github.com/m04kA/DSM-CoreService/internal/service/bookings/models"
)

// Фейковые зависимости

type fakeBookingRepo struct {
	booking       *domain.Booking
	cancelled     bool
	cancelReason  string
	updatedStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByStudentID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) GetByInstructorWithFilter(_ context.Context, _ domain.InstructorBookingsFilter) ([]*domain.Booking, error) {
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelled = true
	f.cancelReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:           10,
		StudentID:    1,
		InstructorID: 2,
		VehicleID:    3,
		Status:       domain.StatusConfirmed,
	}
}

func TestGetByID_AccessForParticipantsOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	// Ученик и инструктор видят бронирование
	for _, userID := range []int64{1, 2} {
		resp, err := svc.GetByID(context.Background(), 10, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
	}

	// Посторонний пользователь - нет
	_, err := svc.GetByID(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetStudentBookings_SelfOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetStudentBookings(context.Background(), &models.GetStudentBookingsRequest{
		StudentID: 1,
		UserID:    1,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetStudentBookings(context.Background(), &models.GetStudentBookingsRequest{
		StudentID: 1,
		UserID:    2,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ByStudent(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             1,
		CancellationReason: "заболел",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "заболел", repo.cancelReason)
}

func TestCancel_RejectsCompletedBooking(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCompleted
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.False(t, repo.cancelled)
}

func TestCancel_RejectsStranger(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.cancelled)
}

func TestUpdateStatus_InstructorOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	// Ученик не может двигать статус
	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 1,
		Status: string(domain.StatusInProgress),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Инструктор - может
	err = svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 2,
		Status: string(domain.StatusInProgress),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusInProgress, *repo.updatedStatus)
}

func TestUpdateStatus_RejectsBackwardTransition(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCompleted
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 2,
		Status: string(domain.StatusConfirmed),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, repo.updatedStatus)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 2,
		Status: "teleported",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
