package domain

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment represents a received payment
// Amounts are VAT-inclusive gross values; only completed payments
// participate in revenue and VAT aggregation
type Payment struct {
	ID        int64
	BookingID *int64
	StudentID *int64
	Amount    float64
	PaidAt    time.Time
	Status    PaymentStatus
	Type      string // lesson, package, test_fee, ...
	Method    string // card, cash, transfer, ...
	CreatedAt time.Time
}

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceVoid    InvoiceStatus = "void"
	InvoiceSent    InvoiceStatus = "sent"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceDraft   InvoiceStatus = "draft"
)

// Invoice represents a student invoice
type Invoice struct {
	ID          int64
	StudentID   int64
	TotalAmount float64
	AmountPaid  float64
	DueDate     time.Time
	Status      InvoiceStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Outstanding returns the unpaid remainder of the invoice
// Paid and void invoices carry no outstanding balance; overpayment never
// produces a negative remainder
func (i *Invoice) Outstanding() float64 {
	if i.Status == InvoicePaid || i.Status == InvoiceVoid {
		return 0
	}
	remainder := i.TotalAmount - i.AmountPaid
	if remainder < 0 {
		return 0
	}
	return remainder
}

// Expense represents a business expense
type Expense struct {
	ID            int64
	Amount        float64 // VAT-inclusive gross amount
	IncurredAt    time.Time
	Category      string
	VATDeductible bool
	CreatedAt     time.Time
}
