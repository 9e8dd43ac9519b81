package expense

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

// Repository репозиторий для работы с расходами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расходов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListDeductibleInPeriod получает расходы с вычитаемым НДС за период [from, to]
func (r *Repository) ListDeductibleInPeriod(ctx context.Context, from, to time.Time) ([]*domain.Expense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"amount",
		"incurred_at",
		"category",
		"vat_deductible",
		"created_at",
	).
		From("expenses").
		Where(squirrel.Eq{"vat_deductible": true}).
		Where(squirrel.GtOrEq{"incurred_at": from}).
		Where(squirrel.LtOrEq{"incurred_at": to}).
		OrderBy("incurred_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDeductibleInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeductibleInPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		var e domain.Expense
		var createdAt sql.NullTime

		err := rows.Scan(
			&e.ID,
			&e.Amount,
			&e.IncurredAt,
			&e.Category,
			&e.VATDeductible,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDeductibleInPeriod - scan row: %v", ErrScanRow, err)
		}

		e.CreatedAt = createdAt.Time
		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDeductibleInPeriod - rows error: %v", ErrScanRow, err)
	}

	return expenses, nil
}
