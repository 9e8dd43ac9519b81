package models

import (
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
)

// Request модели

// GetConfigRequest запрос на получение конфигурации расписания
// InstructorID = nil означает общешкольную конфигурацию
type GetConfigRequest struct {
	InstructorID *int64 `json:"instructorId,omitempty"`
}

// UpsertConfigRequest запрос на создание или обновление конфигурации расписания
type UpsertConfigRequest struct {
	InstructorID            *int64 `json:"instructorId,omitempty"` // NULL = общешкольная конфигурация
	DayStartHour            int    `json:"dayStartHour"`
	DayEndHour              int    `json:"dayEndHour"`
	SlotDurationMinutes     int    `json:"slotDurationMinutes"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpsertConfigRequest) ToDomainConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		InstructorID:            r.InstructorID,
		DayStartHour:            r.DayStartHour,
		DayEndHour:              r.DayEndHour,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}

// Response модели

// ConfigResponse ответ с данными конфигурации расписания
type ConfigResponse struct {
	ID                      int64     `json:"id"`
	InstructorID            *int64    `json:"instructorId,omitempty"`
	DayStartHour            int       `json:"dayStartHour"`
	DayEndHour              int       `json:"dayEndHour"`
	SlotDurationMinutes     int       `json:"slotDurationMinutes"`
	MinBookingNoticeMinutes int       `json:"minBookingNoticeMinutes"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                      c.ID,
		InstructorID:            c.InstructorID,
		DayStartHour:            c.DayStartHour,
		DayEndHour:              c.DayEndHour,
		SlotDurationMinutes:     c.SlotDurationMinutes,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}
