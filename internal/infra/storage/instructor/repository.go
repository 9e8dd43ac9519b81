package instructor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/dbmetrics"
	"github.com/m04kA/DSM-CoreService/pkg/psqlbuilder"
)

var instructorColumns = []string{
	"id",
	"full_name",
	"rating",
	"years_experience",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с инструкторами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория инструкторов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает инструктора по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var ins domain.Instructor
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ins.ID,
		&ins.FullName,
		&ins.Rating,
		&ins.YearsExperience,
		&ins.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan instructor: %v", ErrScanRow, err)
	}

	ins.CreatedAt = createdAt.Time
	ins.UpdatedAt = updatedAt.Time

	return &ins, nil
}

// ListActive получает всех активных инструкторов в порядке добавления
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From("instructors").
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

	instructors := make([]*domain.Instructor, 0)
	for rows.Next() {
		var ins domain.Instructor
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&ins.ID,
			&ins.FullName,
			&ins.Rating,
			&ins.YearsExperience,
			&ins.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		ins.CreatedAt = createdAt.Time
		ins.UpdatedAt = updatedAt.Time
		instructors = append(instructors, &ins)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return instructors, nil
}
