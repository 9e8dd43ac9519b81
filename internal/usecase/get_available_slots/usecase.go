package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	instructorRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/instructor"
	configRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/schedulecfg"
)

// UseCase use case для получения доступных слотов инструктора
type UseCase struct {
	bookingRepo    BookingRepository
	instructorRepo InstructorRepository
	configRepo     ScheduleConfigRepository
	defaults       domain.ScheduleConfig
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// defaults используется, когда в БД нет ни конфигурации инструктора, ни общешкольной
func NewUseCase(
	bookingRepo BookingRepository,
	instructorRepo InstructorRepository,
	configRepo ScheduleConfigRepository,
	defaults domain.ScheduleConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		instructorRepo: instructorRepo,
		configRepo:     configRepo,
		defaults:       defaults,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: instructor=%d, date=%s",
		req.InstructorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем инструктора
	ins, err := uc.instructorRepo.GetByID(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			uc.logger.Warn("GetAvailableSlots: instructor id=%d not found", req.InstructorID)
			return nil, ErrInstructorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get instructor id=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
	}

	if !ins.IsActive {
		uc.logger.Warn("GetAvailableSlots: instructor id=%d is not active", req.InstructorID)
		return nil, ErrInstructorInactive
	}

	// 4. Получаем конфигурацию расписания с учетом иерархии
	cfg, err := uc.configRepo.GetWithHierarchy(ctx, req.InstructorID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if cfg == nil {
		defaults := uc.defaults
		cfg = &defaults
		uc.logger.Info("GetAvailableSlots: using default schedule config for instructor=%d", req.InstructorID)
	} else {
		uc.logger.Info("GetAvailableSlots: using schedule config id=%d", cfg.ID)
	}

	// 5. Генерируем сетку кандидатов на день
	candidates := generateCandidateSlots(req.Date, cfg, now)

	// 6. Получаем занимающие слот бронирования инструктора на эту дату
	filter := domain.InstructorBookingsFilter{
		InstructorID: req.InstructorID,
		StartDate:    &req.Date,
		EndDate:      &req.Date,
		OnlyBlocking: true, // Только confirmed и in_progress занимают слоты
	}

	bookings, err := uc.bookingRepo.GetByInstructorWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Отбрасываем пересекающиеся кандидаты
	slots := filterConflictingSlots(candidates, cfg.SlotDurationMinutes, bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d candidate slots available for instructor=%d, date=%s",
		len(slots), len(candidates), req.InstructorID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		InstructorID: req.InstructorID,
		Slots:        slots,
	}, nil
}
