package schedulecfg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/pkg/dbmetrics"
	"github.com/m04kA/DSM-CoreService/pkg/psqlbuilder"
)

var configColumns = []string{
	"id",
	"instructor_id",
	"day_start_hour",
	"day_end_hour",
	"slot_duration_minutes",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации расписания
// Иерархия: строка с instructor_id перекрывает общешкольную строку (instructor_id IS NULL)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWithHierarchy получает конфигурацию с учётом иерархии приоритетов:
// сначала конфигурация конкретного инструктора, затем общешкольная
func (r *Repository) GetWithHierarchy(ctx context.Context, instructorID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// NULLS LAST: строка инструктора приоритетнее общешкольной
	query, args, err := psqlbuilder.Select(configColumns...).
		From("schedule_configs").
		Where(squirrel.Or{
			squirrel.Eq{"instructor_id": instructorID},
			squirrel.Eq{"instructor_id": nil},
		}).
		OrderBy("instructor_id NULLS LAST").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWithHierarchy - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetWithHierarchy")
}

// GetSchoolDefault получает общешкольную конфигурацию расписания
func (r *Repository) GetSchoolDefault(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("schedule_configs").
		Where(squirrel.Eq{"instructor_id": nil}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchoolDefault - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetSchoolDefault")
}

// Upsert создает или обновляет конфигурацию расписания
// Уникальность по instructor_id (NULL = общешкольная строка)
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_configs").
		Columns(
			"instructor_id",
			"day_start_hour",
			"day_end_hour",
			"slot_duration_minutes",
			"min_booking_notice_minutes",
		).
		Values(
			config.InstructorID,
			config.DayStartHour,
			config.DayEndHour,
			config.SlotDurationMinutes,
			config.MinBookingNoticeMinutes,
		).
		Suffix(`ON CONFLICT (COALESCE(instructor_id, 0)) DO UPDATE SET
			day_start_hour = EXCLUDED.day_start_hour,
			day_end_hour = EXCLUDED.day_end_hour,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

func (r *Repository) scanOne(row *sql.Row, op string) (*domain.ScheduleConfig, error) {
	var config domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.InstructorID,
		&config.DayStartHour,
		&config.DayEndHour,
		&config.SlotDurationMinutes,
		&config.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan config: %v", ErrScanRow, op, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
