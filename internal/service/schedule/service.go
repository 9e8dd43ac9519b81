package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	configRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/schedulecfg"
	"github.com/m04kA/DSM-CoreService/internal/service/schedule/models"
)

// Service сервис для работы с конфигурацией расписания
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации расписания
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get получает конфигурацию расписания
// Для инструктора действует иерархия: его собственная строка перекрывает
// общешкольную. Без instructorId возвращается общешкольная конфигурация
func (s *Service) Get(ctx context.Context, req *models.GetConfigRequest) (*models.ConfigResponse, error) {
	var (
		config *domain.ScheduleConfig
		err    error
	)

	if req.InstructorID != nil {
		s.logger.Info("Get: fetching schedule config for instructor=%d", *req.InstructorID)
		config, err = s.configRepo.GetWithHierarchy(ctx, *req.InstructorID)
	} else {
		s.logger.Info("Get: fetching school-wide schedule config")
		config, err = s.configRepo.GetSchoolDefault(ctx)
	}

	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Get: schedule config not found")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule config id=%d", config.ID)
	return models.FromDomainConfig(config), nil
}

// Upsert создает или обновляет конфигурацию расписания
// Уникальность по инструктору: повторный запрос перезаписывает его строку
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	if req.InstructorID != nil {
		s.logger.Info("Upsert: upserting schedule config for instructor=%d", *req.InstructorID)
	} else {
		s.logger.Info("Upsert: upserting school-wide schedule config")
	}

	if err := s.validateConfigData(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	config, err := s.configRepo.Upsert(ctx, req.ToDomainConfig())
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully upserted schedule config id=%d", config.ID)
	return models.FromDomainConfig(config), nil
}

// validateConfigData валидирует параметры конфигурации расписания
func (s *Service) validateConfigData(req *models.UpsertConfigRequest) error {
	if req.DayStartHour < domain.MinWorkingHour || req.DayStartHour > domain.MaxWorkingHour {
		return fmt.Errorf("%w: dayStartHour must be between %d and %d",
			ErrInvalidInput, domain.MinWorkingHour, domain.MaxWorkingHour)
	}

	if req.DayEndHour < domain.MinWorkingHour || req.DayEndHour > domain.MaxWorkingHour {
		return fmt.Errorf("%w: dayEndHour must be between %d and %d",
			ErrInvalidInput, domain.MinWorkingHour, domain.MaxWorkingHour)
	}

	if req.DayEndHour <= req.DayStartHour {
		return fmt.Errorf("%w: dayEndHour must be greater than dayStartHour", ErrInvalidInput)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.MinBookingNoticeMinutes < 0 || req.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between 0 and %d",
			ErrInvalidInput, domain.MaxBookingNoticeMinutes)
	}

	return nil
}
