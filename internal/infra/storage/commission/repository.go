package commission

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/dbmetrics"
	"github.com/m04kA/DSM-CoreService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с правилами комиссии инструкторов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил комиссии
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает все активные правила комиссии в порядке добавления
// Порядок важен: при нескольких активных правилах одного инструктора
// расчёт зарплаты берёт первое по списку
func (r *Repository) ListActive(ctx context.Context) ([]*domain.CommissionRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"instructor_id",
		"commission_rate",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("commission_rules").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.CommissionRule, 0)
	for rows.Next() {
		var rule domain.CommissionRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.InstructorID,
			&rule.CommissionRate,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
