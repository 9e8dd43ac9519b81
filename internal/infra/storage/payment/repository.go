package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/dbmetrics"
	"github.com/m04kA/DSM-CoreService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с платежами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCompletedInPeriod получает завершённые платежи за период [from, to]
// Только завершённые платежи участвуют в выручке и расчёте НДС
func (r *Repository) ListCompletedInPeriod(ctx context.Context, from, to time.Time) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"student_id",
		"amount",
		"paid_at",
		"status",
		"payment_type",
		"payment_method",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"status": domain.PaymentCompleted}).
		Where(squirrel.GtOrEq{"paid_at": from}).
		Where(squirrel.LtOrEq{"paid_at": to}).
		OrderBy("paid_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCompletedInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCompletedInPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		var createdAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.BookingID,
			&p.StudentID,
			&p.Amount,
			&p.PaidAt,
			&p.Status,
			&p.Type,
			&p.Method,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCompletedInPeriod - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCompletedInPeriod - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
