package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultTiers() []PerformanceTier {
	return []PerformanceTier{
		{RevenueAbove: 10000, Bonus: 200},
		{RevenueAbove: 8000, Bonus: 150},
		{RevenueAbove: 5000, Bonus: 100},
	}
}

func TestPerformanceBonus(t *testing.T) {
	policy := &PayrollPolicy{PerformanceTiers: defaultTiers()}

	tests := []struct {
		name     string
		revenue  float64
		expected float64
	}{
		{"below all tiers", 4000, 0},
		{"exactly at threshold is not above", 5000, 0},
		{"first tier", 5000.01, 100},
		{"middle tier", 9000, 150},
		{"highest tier only, not cumulative", 10500, 200},
		{"zero revenue", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.PerformanceBonus(tt.revenue))
		})
	}
}

func TestPerformanceBonusTierOrderIndependent(t *testing.T) {
	// Порядок ступеней в конфигурации не влияет на результат
	policy := &PayrollPolicy{PerformanceTiers: []PerformanceTier{
		{RevenueAbove: 5000, Bonus: 100},
		{RevenueAbove: 10000, Bonus: 200},
		{RevenueAbove: 8000, Bonus: 150},
	}}

	assert.Equal(t, 200.0, policy.PerformanceBonus(12000))
	assert.Equal(t, 150.0, policy.PerformanceBonus(9000))
}

func TestInvoiceOutstanding(t *testing.T) {
	tests := []struct {
		name     string
		invoice  Invoice
		expected float64
	}{
		{"unpaid remainder", Invoice{Status: InvoiceSent, TotalAmount: 500, AmountPaid: 200}, 300},
		{"paid carries nothing", Invoice{Status: InvoicePaid, TotalAmount: 500, AmountPaid: 500}, 0},
		{"void carries nothing", Invoice{Status: InvoiceVoid, TotalAmount: 500}, 0},
		{"overpayment never negative", Invoice{Status: InvoiceSent, TotalAmount: 500, AmountPaid: 600}, 0},
		{"overdue keeps remainder", Invoice{Status: InvoiceOverdue, TotalAmount: 100, AmountPaid: 0}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.invoice.Outstanding())
		})
	}
}
