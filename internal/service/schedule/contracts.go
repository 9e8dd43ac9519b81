package schedule

import (
	"context"

	"github.com/m04kA/DSM-CoreService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetWithHierarchy(ctx context.Context, instructorID int64) (*domain.ScheduleConfig, error)
	GetSchoolDefault(ctx context.Context) (*domain.ScheduleConfig, error)
	Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
