package create_booking

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
	existing []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 101
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByInstructorWithFilter(_ context.Context, _ domain.InstructorBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
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

// fakeTxManager исполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func newTestUseCase(bookings *fakeBookingRepo, now time.Time) (*UseCase, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	uc := NewUseCase(
		bookings,
		&fakeInstructorRepo{instructor: &domain.Instructor{ID: 2, IsActive: true}},
		&fakeConfigRepo{},
		testDefaults(),
		txMgr,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, txMgr
}

func validRequest(t *testing.T) *Request {
	return &Request{
		StudentID:    1,
		InstructorID: 2,
		VehicleID:    3,
		StartAt:      at(t, "2026-08-28T10:00:00Z"),
		EndAt:        at(t, "2026-08-28T11:00:00Z"),
		Price:        45.50,
	}
}

func TestExecute_CreatesBookingOnFreeWindow(t *testing.T) {
	now := at(t, "2026-08-27T09:00:00Z")
	bookings := &fakeBookingRepo{}
	uc, txMgr := newTestUseCase(bookings, now)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 45.50, resp.Price)
	assert.Equal(t, 1, txMgr.calls)
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusConfirmed, bookings.created.Status)
}

func TestExecute_RejectsIdenticalWindow(t *testing.T) {
	now := at(t, "2026-08-27T09:00:00Z")
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{
			InstructorID: 2,
			StartAt:      at(t, "2026-08-28T10:00:00Z"),
			EndAt:        at(t, "2026-08-28T11:00:00Z"),
			Status:       domain.StatusConfirmed,
		},
	}}
	uc, _ := newTestUseCase(bookings, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, bookings.created)
}

func TestExecute_RejectsPartialOverlap(t *testing.T) {
	now := at(t, "2026-08-27T09:00:00Z")
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{
			InstructorID: 2,
			StartAt:      at(t, "2026-08-28T10:30:00Z"),
			EndAt:        at(t, "2026-08-28T11:30:00Z"),
			Status:       domain.StatusPending, // pending тоже конфликтует при подтверждении
		},
	}}
	uc, _ := newTestUseCase(bookings, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AllowsTouchingWindow(t *testing.T) {
	now := at(t, "2026-08-27T09:00:00Z")
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{
			InstructorID: 2,
			StartAt:      at(t, "2026-08-28T09:00:00Z"),
			EndAt:        at(t, "2026-08-28T10:00:00Z"), // граничит с запрошенным окном
			Status:       domain.StatusConfirmed,
		},
	}}
	uc, _ := newTestUseCase(bookings, now)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_AllowsWindowOverCancelledBooking(t *testing.T) {
	now := at(t, "2026-08-27T09:00:00Z")
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{
			InstructorID: 2,
			StartAt:      at(t, "2026-08-28T10:00:00Z"),
			EndAt:        at(t, "2026-08-28T11:00:00Z"),
			Status:       domain.StatusCancelled,
		},
	}}
	uc, _ := newTestUseCase(bookings, now)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_RejectsInvertedWindow(t *testing.T) {
	now := at(t, "2026-08-27T09:00:00Z")
	uc, _ := newTestUseCase(&fakeBookingRepo{}, now)

	req := validRequest(t)
	req.StartAt, req.EndAt = req.EndAt, req.StartAt

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
}

func TestExecute_RejectsWindowCrossingDayBoundary(t *testing.T) {
	// Ночное окно 23:00-01:00 захватывает два календарных дня:
	// дневная выборка конфликтов его бы не увидела
	now := at(t, "2026-08-27T09:00:00Z")
	txMgr := &fakeTxManager{}
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeInstructorRepo{instructor: &domain.Instructor{ID: 2, IsActive: true}},
		&fakeConfigRepo{},
		testDefaults(),
		txMgr,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	req := validRequest(t)
	req.StartAt = at(t, "2026-08-28T23:00:00Z")
	req.EndAt = at(t, "2026-08-29T01:00:00Z")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
	// До транзакции дело не доходит
	assert.Equal(t, 0, txMgr.calls)
}

func TestExecute_AllowsWindowEndingAtMidnight(t *testing.T) {
	now := at(t, "2026-08-27T09:00:00Z")
	bookings := &fakeBookingRepo{}
	uc, _ := newTestUseCase(bookings, now)

	req := validRequest(t)
	req.StartAt = at(t, "2026-08-28T23:00:00Z")
	req.EndAt = at(t, "2026-08-29T00:00:00Z")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_RejectsPastDate(t *testing.T) {
	now := at(t, "2026-08-29T09:00:00Z")
	uc, _ := newTestUseCase(&fakeBookingRepo{}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsSameDayInsideNotice(t *testing.T) {
	// Сейчас 09:30, запись на 10:00 при notice 60 минут
	now := at(t, "2026-08-28T09:30:00Z")
	uc, _ := newTestUseCase(&fakeBookingRepo{}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_RejectsInactiveInstructor(t *testing.T) {
	now := at(t, "2026-08-27T09:00:00Z")
	txMgr := &fakeTxManager{}
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeInstructorRepo{instructor: &domain.Instructor{ID: 2, IsActive: false}},
		&fakeConfigRepo{},
		testDefaults(),
		txMgr,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInstructorInactive)
	// До транзакции дело не доходит
	assert.Equal(t, 0, txMgr.calls)
}
