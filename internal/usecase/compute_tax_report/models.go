package compute_tax_report

import "time"

// FilingState статус подачи налоговой декларации
type FilingState string

const (
	FilingOverdue FilingState = "OVERDUE"
	FilingUrgent  FilingState = "URGENT"
	FilingPending FilingState = "PENDING"
	FilingCurrent FilingState = "CURRENT"
)

// Request модель запроса налогового отчёта за период [From, To]
type Request struct {
	From time.Time
	To   time.Time
}

// Response налоговый отчёт (НДС) за период
// Все суммы платежей брутто (с НДС); Net* значения - результат выделения
// налога из брутто, а не начисления сверху
type Response struct {
	From         time.Time
	To           time.Time
	StandardRate float64 // percent

	GrossSales    float64
	NetSales      float64
	TaxCollected  float64
	TaxDeductible float64
	NetTaxDue     float64 // может быть отрицательным (вычеты превышают сбор)

	OutstandingReceivables float64

	PreviousGrossSales float64
	GrossChangePercent float64

	ByType   map[string]Bucket
	ByMethod map[string]Bucket
	ByDay    map[string]Bucket // ключ - локальная дата платежа YYYY-MM-DD

	Filing Filing
}

// Bucket агрегат по одной группе платежей
type Bucket struct {
	Count int
	Gross float64
	Net   float64
	Tax   float64
}

// Filing состояние подачи декларации за период
type Filing struct {
	State        FilingState
	DueDate      time.Time // конец периода + льготные дни
	DaysUntilDue int       // отрицательное - срок прошёл
}
