package compute_payroll

import (
	"context"
	"fmt"

	"github.com/m04kA/DSM-CoreService/internal/domain"
)

// UseCase use case расчёта зарплат инструкторов за период
type UseCase struct {
	bookingRepo    BookingRepository
	instructorRepo InstructorRepository
	commissionRepo CommissionRepository
	policy         domain.PayrollPolicy
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// policy передаётся явно: ставки и ступени бонусов у тенантов различаются
func NewUseCase(
	bookingRepo BookingRepository,
	instructorRepo InstructorRepository,
	commissionRepo CommissionRepository,
	policy domain.PayrollPolicy,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		instructorRepo: instructorRepo,
		commissionRepo: commissionRepo,
		policy:         policy,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет расчёт зарплат
// Все чтения выполняются в read-only транзакции: отчёт строится по единому
// консистентному снимку данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputePayroll: period=[%s, %s]",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
		uc.logger.Warn("ComputePayroll: invalid period")
		return nil, ErrInvalidPeriod
	}

	var (
		instructors []*domain.Instructor
		bookings    []*domain.Booking
		rules       []*domain.CommissionRule
		counts      map[int64]domain.BookingCounts
	)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		if instructors, err = uc.instructorRepo.ListActive(txCtx); err != nil {
			return fmt.Errorf("%w: failed to list instructors: %v", ErrInternal, err)
		}

		if bookings, err = uc.bookingRepo.ListCompletedInPeriod(txCtx, req.From, req.To); err != nil {
			return fmt.Errorf("%w: failed to list completed bookings: %v", ErrInternal, err)
		}

		if rules, err = uc.commissionRepo.ListActive(txCtx); err != nil {
			return fmt.Errorf("%w: failed to list commission rules: %v", ErrInternal, err)
		}

		if counts, err = uc.bookingRepo.StatusCountsByInstructor(txCtx); err != nil {
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("ComputePayroll: %v", err)
		return nil, err
	}

	rows := buildPayrollRows(instructors, bookings, rules, counts, uc.policy)

	uc.logger.Info("ComputePayroll: built %d rows from %d completed bookings",
		len(rows), len(bookings))

	return &Response{
		From:   req.From,
		To:     req.To,
		Rows:   rows,
		Totals: buildTotals(rows),
	}, nil
}
