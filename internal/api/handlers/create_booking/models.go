package create_booking

import (
	"errors"
	"time"

	createBooking "github.com/m04kA/DSM-CoreService/internal/usecase/create_booking"
)

// ErrInvalidTimestamp возвращается при некорректном формате времени
var ErrInvalidTimestamp = errors.New("invalid timestamp format")

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	InstructorID int64   `json:"instructorId"`
	VehicleID    int64   `json:"vehicleId"`
	StartAt      string  `json:"startAt"` // ISO 8601: "2026-08-27T10:00:00Z"
	EndAt        string  `json:"endAt"`
	Price        float64 `json:"price"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	StudentID    int64   `json:"studentId"`
	InstructorID int64   `json:"instructorId"`
	VehicleID    int64   `json:"vehicleId"`
	StartAt      string  `json:"startAt"`
	EndAt        string  `json:"endAt"`
	Status       string  `json:"status"`
	Price        float64 `json:"price"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// StudentID берётся из аутентификации, а не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(studentID int64) (*createBooking.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}

	endAt, err := time.Parse(time.RFC3339, r.EndAt)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}

	return &createBooking.Request{
		StudentID:    studentID,
		InstructorID: r.InstructorID,
		VehicleID:    r.VehicleID,
		StartAt:      startAt,
		EndAt:        endAt,
		Price:        r.Price,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		StudentID:    resp.StudentID,
		InstructorID: resp.InstructorID,
		VehicleID:    resp.VehicleID,
		StartAt:      resp.StartAt.Format(time.RFC3339),
		EndAt:        resp.EndAt.Format(time.RFC3339),
		Status:       resp.Status,
		Price:        resp.Price,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
