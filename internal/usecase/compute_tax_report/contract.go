package compute_tax_report

import (
	"context"
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	// ListCompletedInPeriod получает завершённые платежи за период
	ListCompletedInPeriod(ctx context.Context, from, to time.Time) ([]*domain.Payment, error)
}

// ExpenseRepository интерфейс репозитория расходов
type ExpenseRepository interface {
	// ListDeductibleInPeriod получает расходы с вычетаемым НДС за период
	ListDeductibleInPeriod(ctx context.Context, from, to time.Time) ([]*domain.Expense, error)
}

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	// ListOpen получает неоплаченные и не аннулированные счета
	ListOpen(ctx context.Context) ([]*domain.Invoice, error)
}

// TaxConfigRepository интерфейс репозитория налоговой конфигурации
type TaxConfigRepository interface {
	GetCurrent(ctx context.Context) (*domain.TaxConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация провайдера времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
