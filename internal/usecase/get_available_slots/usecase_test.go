package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	configRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/schedulecfg"
)

// Фейковые зависимости

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.InstructorBookingsFilter
}

func (f *fakeBookingRepo) GetByInstructorWithFilter(_ context.Context, filter domain.InstructorBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type fakeInstructorRepo struct {
	instructor *domain.Instructor
	err        error
}

func (f *fakeInstructorRepo) GetByID(_ context.Context, _ int64) (*domain.Instructor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.instructor, nil
}

type fakeConfigRepo struct {
	config *domain.ScheduleConfig
}

func (f *fakeConfigRepo) GetWithHierarchy(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if f.config == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.config, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDefaults() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		DayStartHour:            domain.DefaultDayStartHour,
		DayEndHour:              domain.DefaultDayEndHour,
		SlotDurationMinutes:     domain.DefaultSlotDurationMinutes,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, instructors *fakeInstructorRepo, configs *fakeConfigRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, instructors, configs, testDefaults(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func activeInstructor() *domain.Instructor {
	return &domain.Instructor{ID: 1, FullName: "Анна Смирнова", IsActive: true}
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return parsed
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestExecute_FullGridWhenNoBookings(t *testing.T) {
	now := at(t, "2026-08-20T12:00:00Z")
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeInstructorRepo{instructor: activeInstructor()}, &fakeConfigRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{InstructorID: 1, Date: day(t, "2026-08-27")})
	require.NoError(t, err)

	// 08:00..19:00 - 12 часовых слотов
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, 8, resp.Slots[0].StartAt.Hour())
	assert.Equal(t, 19, resp.Slots[len(resp.Slots)-1].StartAt.Hour())
	for _, slot := range resp.Slots {
		assert.Equal(t, 60, slot.DurationMinutes)
	}
}

func TestExecute_BlockingBookingHidesOverlappedSlots(t *testing.T) {
	now := at(t, "2026-08-20T12:00:00Z")
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			InstructorID: 1,
			StartAt:      at(t, "2026-08-27T10:30:00Z"),
			EndAt:        at(t, "2026-08-27T11:30:00Z"),
			Status:       domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(bookings, &fakeInstructorRepo{instructor: activeInstructor()}, &fakeConfigRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{InstructorID: 1, Date: day(t, "2026-08-27")})
	require.NoError(t, err)

	// Частичное пересечение исключает кандидата целиком: пропадают 10:00 и 11:00
	require.Len(t, resp.Slots, 10)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, 10, slot.StartAt.Hour())
		assert.NotEqual(t, 11, slot.StartAt.Hour())
	}

	// В репозиторий уходит фильтр только по занимающим слот бронированиям
	assert.True(t, bookings.lastFilter.OnlyBlocking)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	now := at(t, "2026-08-20T12:00:00Z")
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			InstructorID: 1,
			StartAt:      at(t, "2026-08-27T10:00:00Z"),
			EndAt:        at(t, "2026-08-27T11:00:00Z"),
			Status:       domain.StatusCancelled,
		},
	}}
	uc := newTestUseCase(bookings, &fakeInstructorRepo{instructor: activeInstructor()}, &fakeConfigRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{InstructorID: 1, Date: day(t, "2026-08-27")})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 12)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	now := at(t, "2026-08-27T12:00:00Z")
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeInstructorRepo{instructor: activeInstructor()}, &fakeConfigRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{InstructorID: 1, Date: day(t, "2026-08-26")})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SameDayNoticeFiltersEarlySlots(t *testing.T) {
	// Сейчас 10:30, notice 60 минут: слоты до 11:30 недоступны
	now := at(t, "2026-08-27T10:30:00Z")
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeInstructorRepo{instructor: activeInstructor()}, &fakeConfigRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{InstructorID: 1, Date: day(t, "2026-08-27")})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, 12, resp.Slots[0].StartAt.Hour())
}

func TestExecute_InstructorScheduleOverridesDefaults(t *testing.T) {
	now := at(t, "2026-08-20T12:00:00Z")
	configs := &fakeConfigRepo{config: &domain.ScheduleConfig{
		ID:                  7,
		DayStartHour:        9,
		DayEndHour:          13,
		SlotDurationMinutes: 120,
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeInstructorRepo{instructor: activeInstructor()}, configs, now)

	resp, err := uc.Execute(context.Background(), &Request{InstructorID: 1, Date: day(t, "2026-08-27")})
	require.NoError(t, err)

	// 09:00-13:00 с шагом 120 минут: 09:00 и 11:00
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, 9, resp.Slots[0].StartAt.Hour())
	assert.Equal(t, 11, resp.Slots[1].StartAt.Hour())
}

func TestExecute_Idempotent(t *testing.T) {
	now := at(t, "2026-08-20T12:00:00Z")
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			InstructorID: 1,
			StartAt:      at(t, "2026-08-27T14:00:00Z"),
			EndAt:        at(t, "2026-08-27T15:00:00Z"),
			Status:       domain.StatusInProgress,
		},
	}}
	uc := newTestUseCase(bookings, &fakeInstructorRepo{instructor: activeInstructor()}, &fakeConfigRepo{}, now)

	req := &Request{InstructorID: 1, Date: day(t, "2026-08-27")}
	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_InactiveInstructor(t *testing.T) {
	now := at(t, "2026-08-20T12:00:00Z")
	instructors := &fakeInstructorRepo{instructor: &domain.Instructor{ID: 1, IsActive: false}}
	uc := newTestUseCase(&fakeBookingRepo{}, instructors, &fakeConfigRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{InstructorID: 1, Date: day(t, "2026-08-27")})
	assert.ErrorIs(t, err, ErrInstructorInactive)
}
