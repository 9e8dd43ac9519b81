package compute_payroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DSM-CoreService/internal/domain"
)

// Фейковые зависимости

type fakeBookingRepo struct {
	completed []*domain.Booking
	counts    map[int64]domain.BookingCounts
}

func (f *fakeBookingRepo) ListCompletedInPeriod(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return f.completed, nil
}

func (f *fakeBookingRepo) StatusCountsByInstructor(_ context.Context) (map[int64]domain.BookingCounts, error) {
	if f.counts == nil {
		return map[int64]domain.BookingCounts{}, nil
	}
	return f.counts, nil
}

type fakeInstructorRepo struct {
	instructors []*domain.Instructor
}

func (f *fakeInstructorRepo) ListActive(_ context.Context) ([]*domain.Instructor, error) {
	return f.instructors, nil
}

type fakeCommissionRepo struct {
	rules []*domain.CommissionRule
}

func (f *fakeCommissionRepo) ListActive(_ context.Context) ([]*domain.CommissionRule, error) {
	return f.rules, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPolicy() domain.PayrollPolicy {
	return domain.PayrollPolicy{
		DefaultCommissionRate:  30,
		HoursPerLesson:         1.5,
		QualityBonusAmount:     50,
		QualityRatingThreshold: 4.8,
		TaxRate:                0.20,
		NIRate:                 0.12,
		PerformanceTiers: []domain.PerformanceTier{
			{RevenueAbove: 10000, Bonus: 200},
			{RevenueAbove: 8000, Bonus: 150},
			{RevenueAbove: 5000, Bonus: 100},
		},
	}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func completedLesson(t *testing.T, instructorID int64, start string, hours float64, price float64) *domain.Booking {
	startAt := at(t, start)
	return &domain.Booking{
		InstructorID: instructorID,
		StartAt:      startAt,
		EndAt:        startAt.Add(time.Duration(hours * float64(time.Hour))),
		Status:       domain.StatusCompleted,
		Price:        price,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, instructors *fakeInstructorRepo, rules *fakeCommissionRepo) *UseCase {
	return NewUseCase(bookings, instructors, rules, testPolicy(), fakeTxManager{}, nopLogger{})
}

func period(t *testing.T) *Request {
	return &Request{
		From: at(t, "2026-08-01T00:00:00Z"),
		To:   at(t, "2026-08-31T23:59:59Z"),
	}
}

func TestExecute_SingleInstructorEndToEnd(t *testing.T) {
	bookings := &fakeBookingRepo{
		completed: []*domain.Booking{
			completedLesson(t, 1, "2026-08-03T10:00:00Z", 1, 100),
			completedLesson(t, 1, "2026-08-10T10:00:00Z", 1, 100),
			completedLesson(t, 1, "2026-08-17T10:00:00Z", 1, 100),
		},
		counts: map[int64]domain.BookingCounts{
			1: {Total: 4, Completed: 3},
		},
	}
	instructors := &fakeInstructorRepo{instructors: []*domain.Instructor{
		{ID: 1, FullName: "Анна Смирнова", Rating: 4.9, IsActive: true},
	}}

	uc := newTestUseCase(bookings, instructors, &fakeCommissionRepo{})

	resp, err := uc.Execute(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)

	row := resp.Rows[0]
	assert.Equal(t, 3, row.Lessons)
	assert.InDelta(t, 300, row.Revenue, 0.001)
	assert.InDelta(t, 4.5, row.HoursWorked, 0.001) // 3 занятия x 1.5 оплачиваемых часа
	assert.InDelta(t, 3.0, row.ActualHours, 0.001)
	assert.InDelta(t, 30, row.CommissionRate, 0.001)
	assert.InDelta(t, 90, row.BaseCommission, 0.001)
	assert.InDelta(t, 0, row.PerformanceBonus, 0.001)
	assert.InDelta(t, 50, row.QualityBonus, 0.001) // рейтинг 4.9 >= 4.8
	assert.InDelta(t, 140, row.GrossPay, 0.001)
	assert.InDelta(t, 28, row.TaxWithheld, 0.001)
	assert.InDelta(t, 16.8, row.NIContributions, 0.001)
	assert.InDelta(t, 95.2, row.NetPay, 0.001)
	assert.InDelta(t, 75, row.CompletionRate, 0.001)

	assert.Equal(t, 3, resp.Totals.Lessons)
	assert.InDelta(t, 140, resp.Totals.GrossPay, 0.001)
	assert.InDelta(t, 95.2, resp.Totals.NetPay, 0.001)
}

func TestExecute_CommissionRuleOverridesDefault(t *testing.T) {
	bookings := &fakeBookingRepo{completed: []*domain.Booking{
		completedLesson(t, 1, "2026-08-03T10:00:00Z", 1, 200),
	}}
	instructors := &fakeInstructorRepo{instructors: []*domain.Instructor{
		{ID: 1, FullName: "Анна Смирнова", Rating: 4.0, IsActive: true},
	}}
	rules := &fakeCommissionRepo{rules: []*domain.CommissionRule{
		{ID: 1, InstructorID: 1, CommissionRate: 40, IsActive: true},
	}}

	uc := newTestUseCase(bookings, instructors, rules)

	resp, err := uc.Execute(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)

	assert.InDelta(t, 40, resp.Rows[0].CommissionRate, 0.001)
	assert.InDelta(t, 80, resp.Rows[0].BaseCommission, 0.001)
}

func TestExecute_FirstActiveRuleWins(t *testing.T) {
	bookings := &fakeBookingRepo{completed: []*domain.Booking{
		completedLesson(t, 1, "2026-08-03T10:00:00Z", 1, 100),
	}}
	instructors := &fakeInstructorRepo{instructors: []*domain.Instructor{
		{ID: 1, FullName: "Анна Смирнова", Rating: 4.0, IsActive: true},
	}}
	// Два активных правила: берётся первое в порядке списка
	rules := &fakeCommissionRepo{rules: []*domain.CommissionRule{
		{ID: 1, InstructorID: 1, CommissionRate: 35, IsActive: true},
		{ID: 2, InstructorID: 1, CommissionRate: 45, IsActive: true},
	}}

	uc := newTestUseCase(bookings, instructors, rules)

	resp, err := uc.Execute(context.Background(), period(t))
	require.NoError(t, err)
	assert.InDelta(t, 35, resp.Rows[0].CommissionRate, 0.001)
}

func TestExecute_PerformanceTierNotCumulative(t *testing.T) {
	bookings := &fakeBookingRepo{completed: []*domain.Booking{
		completedLesson(t, 1, "2026-08-03T10:00:00Z", 1, 10500),
	}}
	instructors := &fakeInstructorRepo{instructors: []*domain.Instructor{
		{ID: 1, FullName: "Анна Смирнова", Rating: 4.0, IsActive: true},
	}}

	uc := newTestUseCase(bookings, instructors, &fakeCommissionRepo{})

	resp, err := uc.Execute(context.Background(), period(t))
	require.NoError(t, err)

	// Только высшая достигнутая ступень, без суммирования 100+150+200
	assert.InDelta(t, 200, resp.Rows[0].PerformanceBonus, 0.001)
}

func TestExecute_InstructorWithoutBookings(t *testing.T) {
	instructors := &fakeInstructorRepo{instructors: []*domain.Instructor{
		{ID: 1, FullName: "Анна Смирнова", Rating: 3.5, IsActive: true},
	}}

	uc := newTestUseCase(&fakeBookingRepo{}, instructors, &fakeCommissionRepo{})

	resp, err := uc.Execute(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)

	row := resp.Rows[0]
	assert.Equal(t, 0, row.Lessons)
	assert.InDelta(t, 0, row.Revenue, 0.001)
	assert.InDelta(t, 0, row.GrossPay, 0.001)
	// Деление на ноль не происходит
	assert.InDelta(t, 0, row.CompletionRate, 0.001)
}

func TestExecute_RowsSortedByGrossPayDesc(t *testing.T) {
	bookings := &fakeBookingRepo{completed: []*domain.Booking{
		completedLesson(t, 1, "2026-08-03T10:00:00Z", 1, 100),
		completedLesson(t, 2, "2026-08-03T12:00:00Z", 1, 500),
		completedLesson(t, 3, "2026-08-03T14:00:00Z", 1, 300),
	}}
	instructors := &fakeInstructorRepo{instructors: []*domain.Instructor{
		{ID: 1, FullName: "Анна Смирнова", Rating: 4.0, IsActive: true},
		{ID: 2, FullName: "Борис Котов", Rating: 4.0, IsActive: true},
		{ID: 3, FullName: "Вера Ильина", Rating: 4.0, IsActive: true},
	}}

	uc := newTestUseCase(bookings, instructors, &fakeCommissionRepo{})

	resp, err := uc.Execute(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, resp.Rows, 3)

	assert.Equal(t, int64(2), resp.Rows[0].InstructorID)
	assert.Equal(t, int64(3), resp.Rows[1].InstructorID)
	assert.Equal(t, int64(1), resp.Rows[2].InstructorID)
}

func TestExecute_BrokenWindowContributesMinimumHours(t *testing.T) {
	startAt := at(t, "2026-08-03T10:00:00Z")
	bookings := &fakeBookingRepo{completed: []*domain.Booking{
		{
			InstructorID: 1,
			StartAt:      startAt,
			EndAt:        startAt, // сломанное окно нулевой длины
			Status:       domain.StatusCompleted,
			Price:        100,
		},
	}}
	instructors := &fakeInstructorRepo{instructors: []*domain.Instructor{
		{ID: 1, FullName: "Анна Смирнова", Rating: 4.0, IsActive: true},
	}}

	uc := newTestUseCase(bookings, instructors, &fakeCommissionRepo{})

	resp, err := uc.Execute(context.Background(), period(t))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, resp.Rows[0].ActualHours, 0.001)
}

func TestExecute_InvalidPeriod(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeInstructorRepo{}, &fakeCommissionRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		From: at(t, "2026-08-31T00:00:00Z"),
		To:   at(t, "2026-08-01T00:00:00Z"),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
