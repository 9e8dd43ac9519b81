package compute_payroll

import (
	"context"
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListCompletedInPeriod получает завершённые бронирования, начавшиеся в периоде
	ListCompletedInPeriod(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	// StatusCountsByInstructor получает счётчики бронирований за всё время
	StatusCountsByInstructor(ctx context.Context) (map[int64]domain.BookingCounts, error)
}

// InstructorRepository интерфейс репозитория инструкторов
type InstructorRepository interface {
	ListActive(ctx context.Context) ([]*domain.Instructor, error)
}

// CommissionRepository интерфейс репозитория правил комиссии
type CommissionRepository interface {
	// ListActive возвращает активные правила в порядке добавления
	ListActive(ctx context.Context) ([]*domain.CommissionRule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
