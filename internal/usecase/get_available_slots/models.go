package get_available_slots

import (
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	InstructorID int64     // ID инструктора
	Date         time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         time.Time             // Дата, на которую запрашивались слоты
	InstructorID int64                 // ID инструктора
	Slots        []domain.AvailableSlot // Доступные слоты в хронологическом порядке
}
