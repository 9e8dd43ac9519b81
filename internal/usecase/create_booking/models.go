package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	StudentID    int64     // ID студента
	InstructorID int64     // ID инструктора
	VehicleID    int64     // ID учебного автомобиля
	StartAt      time.Time // Начало занятия
	EndAt        time.Time // Конец занятия (строго позже начала)
	Price        float64   // Цена занятия
	Notes        *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64     // ID созданного бронирования
	StudentID    int64     // ID студента
	InstructorID int64     // ID инструктора
	VehicleID    int64     // ID автомобиля
	StartAt      time.Time // Начало занятия
	EndAt        time.Time // Конец занятия
	Status       string    // Статус бронирования
	Price        float64   // Цена занятия
	Notes        *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
