package compute_tax_report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	taxcfgRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/taxconfig"
	"github.com/m04kA/DSM-CoreService/pkg/numeric"
)

// UseCase use case построения налогового отчёта за период
type UseCase struct {
	paymentRepo   PaymentRepository
	expenseRepo   ExpenseRepository
	invoiceRepo   InvoiceRepository
	taxConfigRepo TaxConfigRepository
	defaults      domain.TaxConfig
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// defaults используется, когда в БД ещё нет налоговой конфигурации тенанта
func NewUseCase(
	paymentRepo PaymentRepository,
	expenseRepo ExpenseRepository,
	invoiceRepo InvoiceRepository,
	taxConfigRepo TaxConfigRepository,
	defaults domain.TaxConfig,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo:   paymentRepo,
		expenseRepo:   expenseRepo,
		invoiceRepo:   invoiceRepo,
		taxConfigRepo: taxConfigRepo,
		defaults:      defaults,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute строит налоговый отчёт
// Все чтения выполняются в read-only транзакции: отчёт строится по единому
// консистентному снимку данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeTaxReport: period=[%s, %s]",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
		uc.logger.Warn("ComputeTaxReport: invalid period")
		return nil, ErrInvalidPeriod
	}

	// Предыдущий период той же длины, примыкающий слева
	span := req.To.Sub(req.From)
	prevTo := req.From.Add(-time.Second)
	prevFrom := prevTo.Add(-span)

	var (
		cfg          *domain.TaxConfig
		payments     []*domain.Payment
		prevPayments []*domain.Payment
		expenses     []*domain.Expense
		invoices     []*domain.Invoice
	)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		cfg, err = uc.taxConfigRepo.GetCurrent(txCtx)
		if err != nil {
			if !errors.Is(err, taxcfgRepo.ErrConfigNotFound) {
				return fmt.Errorf("%w: failed to get tax config: %v", ErrInternal, err)
			}
			defaults := uc.defaults
			cfg = &defaults
			uc.logger.Info("ComputeTaxReport: no tax config stored, using defaults (rate=%.1f%%)", cfg.StandardRate)
		}

		if payments, err = uc.paymentRepo.ListCompletedInPeriod(txCtx, req.From, req.To); err != nil {
			return fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
		}

		if prevPayments, err = uc.paymentRepo.ListCompletedInPeriod(txCtx, prevFrom, prevTo); err != nil {
			return fmt.Errorf("%w: failed to list previous period payments: %v", ErrInternal, err)
		}

		if expenses, err = uc.expenseRepo.ListDeductibleInPeriod(txCtx, req.From, req.To); err != nil {
			return fmt.Errorf("%w: failed to list expenses: %v", ErrInternal, err)
		}

		if invoices, err = uc.invoiceRepo.ListOpen(txCtx); err != nil {
			return fmt.Errorf("%w: failed to list open invoices: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("ComputeTaxReport: %v", err)
		return nil, err
	}

	agg := aggregatePayments(payments, cfg.StandardRate)
	prevAgg := aggregatePayments(prevPayments, cfg.StandardRate)

	netSales := netOf(agg.gross, cfg.StandardRate)
	taxCollected := agg.gross - netSales
	taxDeductible := sumDeductible(expenses, cfg.StandardRate)
	// Не обрезаем до нуля: отрицательное значение означает налог к возмещению
	netTaxDue := taxCollected - taxDeductible

	filing := buildFiling(uc.timeProvider.Now(), req.To, netTaxDue, cfg)

	uc.logger.Info("ComputeTaxReport: %d payments, gross=%.2f, netTaxDue=%.2f, filing=%s",
		len(payments), agg.gross, netTaxDue, filing.State)

	return &Response{
		From:         req.From,
		To:           req.To,
		StandardRate: cfg.StandardRate,

		GrossSales:    numeric.Round2(agg.gross),
		NetSales:      numeric.Round2(netSales),
		TaxCollected:  numeric.Round2(taxCollected),
		TaxDeductible: numeric.Round2(taxDeductible),
		NetTaxDue:     numeric.Round2(netTaxDue),

		OutstandingReceivables: numeric.Round2(sumOutstanding(invoices)),

		PreviousGrossSales: numeric.Round2(prevAgg.gross),
		GrossChangePercent: numeric.Round2(numeric.PercentChange(agg.gross, prevAgg.gross)),

		ByType:   agg.byType,
		ByMethod: agg.byMethod,
		ByDay:    agg.byDay,

		Filing: filing,
	}, nil
}
