package get_available_slots

import (
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	getAvailableSlots "github.com/m04kA/DSM-CoreService/internal/usecase/get_available_slots"
)

// SlotResponse один доступный слот
type SlotResponse struct {
	StartAt         string `json:"startAt"` // ISO 8601
	EndAt           string `json:"endAt"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	InstructorID int64          `json:"instructorId"`
	Date         string         `json:"date"` // "2026-08-27"
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartAt:         s.StartAt.Format(time.RFC3339),
			EndAt:           s.EndAt().Format(time.RFC3339),
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &AvailableSlotsResponse{
		InstructorID: resp.InstructorID,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
	}
}
