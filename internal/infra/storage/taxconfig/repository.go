package taxconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/dbmetrics"
	"github.com/m04kA/DSM-CoreService/pkg/psqlbuilder"
)

// Repository репозиторий налоговой конфигурации тенанта
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория налоговой конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCurrent получает действующую налоговую конфигурацию
// Конфигурация читается в момент построения отчёта и считается константой
// на время одного вычисления
func (r *Repository) GetCurrent(ctx context.Context) (*domain.TaxConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"standard_rate",
		"filing_grace_days",
		"urgent_window_days",
		"updated_at",
	).
		From("tax_config").
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrent - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.TaxConfig
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.StandardRate,
		&cfg.FilingGraceDays,
		&cfg.UrgentWindowDays,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrent - scan config: %v", ErrScanRow, err)
	}

	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
