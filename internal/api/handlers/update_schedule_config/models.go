package update_schedule_config

import (
	"github.com/m04kA/DSM-CoreService/internal/service/schedule/models"
)

// UpdateScheduleConfigRequest HTTP request model
type UpdateScheduleConfigRequest struct {
	InstructorID            *int64 `json:"instructorId,omitempty"` // NULL = общешкольная конфигурация
	DayStartHour            int    `json:"dayStartHour"`
	DayEndHour              int    `json:"dayEndHour"`
	SlotDurationMinutes     int    `json:"slotDurationMinutes"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleConfigRequest) ToServiceRequest() *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		InstructorID:            r.InstructorID,
		DayStartHour:            r.DayStartHour,
		DayEndHour:              r.DayEndHour,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}
