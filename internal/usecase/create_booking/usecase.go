package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	instructorRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/instructor"
	configRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/schedulecfg"
	"github.com/m04kA/DSM-CoreService/pkg/numeric"
)

// UseCase use case для создания бронирования урока
//
// Между показом слотов и подтверждением пользователя данные успевают устареть:
// параллельная сессия могла занять то же окно. Поэтому авторитетная проверка
// конфликтов выполняется здесь, по свежайшему набору бронирований, внутри
// сериализуемой транзакции с блокировкой строк - проверка и создание
// становятся одной атомарной операцией, двойное бронирование инструктора
// невозможно
type UseCase struct {
	bookingRepo    BookingRepository
	instructorRepo InstructorRepository
	configRepo     ScheduleConfigRepository
	defaults       domain.ScheduleConfig
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	instructorRepo InstructorRepository,
	configRepo ScheduleConfigRepository,
	defaults domain.ScheduleConfig,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		instructorRepo: instructorRepo,
		configRepo:     configRepo,
		defaults:       defaults,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: student=%d, instructor=%d, window=[%s, %s)",
		req.StudentID, req.InstructorID,
		req.StartAt.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndAt.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем инструктора
	ins, err := uc.instructorRepo.GetByID(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			uc.logger.Warn("CreateBooking: instructor id=%d not found", req.InstructorID)
			return nil, ErrInstructorNotFound
		}
		uc.logger.Error("CreateBooking: failed to get instructor id=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
	}

	if !ins.IsActive {
		uc.logger.Warn("CreateBooking: instructor id=%d is not active", req.InstructorID)
		return nil, ErrInstructorInactive
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем проверку конфликта и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем конфигурацию расписания с учетом иерархии
		cfg, err := uc.configRepo.GetWithHierarchy(txCtx, req.InstructorID)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get schedule config: %v", err)
			return fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}
		if cfg == nil {
			defaults := uc.defaults
			cfg = &defaults
			uc.logger.Info("CreateBooking: using default schedule config for instructor=%d", req.InstructorID)
		}

		// 4.2. Валидация времени бронирования
		if err := validateBookingTime(req.StartAt, now, cfg.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 4.3. Получаем свежайший набор бронирований инструктора на эту дату
		// с блокировкой строк (FOR UPDATE)
		filter := domain.InstructorBookingsFilter{
			InstructorID:    req.InstructorID,
			StartDate:       &req.StartAt,
			EndDate:         &req.StartAt,
			IncludeInactive: true, // Отменённые отбрасываются уже в countConflicts
		}

		bookings, err := uc.bookingRepo.GetByInstructorWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.4. Авторитетная проверка конфликта
		if conflicts := countConflicts(req.StartAt, req.EndAt, bookings); conflicts > 0 {
			uc.logger.Warn("CreateBooking: window conflicts with %d existing booking(s), instructor=%d",
				conflicts, req.InstructorID)
			return ErrSlotConflict
		}

		// 4.5. Создаем бронирование
		booking := &domain.Booking{
			StudentID:    req.StudentID,
			InstructorID: req.InstructorID,
			VehicleID:    req.VehicleID,
			StartAt:      req.StartAt,
			EndAt:        req.EndAt,
			Status:       domain.StatusConfirmed,
			Price:        numeric.Round2(numeric.Coerce(req.Price, 0)),
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		StudentID:    result.StudentID,
		InstructorID: result.InstructorID,
		VehicleID:    result.VehicleID,
		StartAt:      result.StartAt,
		EndAt:        result.EndAt,
		Status:       string(result.Status),
		Price:        result.Price,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
