package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/get_booking"
	getInstructorBookingsHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/get_instructor_bookings"
	getPayrollReportHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/get_payroll_report"
	getScheduleConfigHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/get_schedule_config"
	getStudentBookingsHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/get_student_bookings"
	getTaxReportHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/get_tax_report"
	updateBookingStatusHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/update_booking_status"
	updateScheduleConfigHandler "github.com/m04kA/DSM-CoreService/internal/api/handlers/update_schedule_config"
	"github.com/m04kA/DSM-CoreService/internal/api/middleware"
	"github.com/m04kA/DSM-CoreService/internal/config"
	"github.com/m04kA/DSM-CoreService/internal/domain"
	bookingRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/booking"
	commissionRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/commission"
	expenseRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/expense"
	instructorRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/instructor"
	invoiceRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/invoice"
	paymentRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/payment"
	scheduleCfgRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/schedulecfg"
	taxConfigRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/taxconfig"
	bookingsService "github.com/m04kA/DSM-CoreService/internal/service/bookings"
	scheduleService "github.com/m04kA/DSM-CoreService/internal/service/schedule"
	computePayrollUC "github.com/m04kA/DSM-CoreService/internal/usecase/compute_payroll"
	computeTaxReportUC "github.com/m04kA/DSM-CoreService/internal/usecase/compute_tax_report"
	createBookingUC "github.com/m04kA/DSM-CoreService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/DSM-CoreService/internal/usecase/get_available_slots"
	"github.com/m04kA/DSM-CoreService/pkg/dbmetrics"
	"github.com/m04kA/DSM-CoreService/pkg/logger"
	"github.com/m04kA/DSM-CoreService/pkg/metrics"
	"github.com/m04kA/DSM-CoreService/pkg/simpletxmanager"
	"github.com/m04kA/DSM-CoreService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DSM-CoreService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Политики из конфигурации
	scheduleDefaults := domain.ScheduleConfig{
		DayStartHour:            cfg.Schedule.DayStartHour,
		DayEndHour:              cfg.Schedule.DayEndHour,
		SlotDurationMinutes:     cfg.Schedule.SlotDurationMinutes,
		MinBookingNoticeMinutes: cfg.Schedule.MinBookingNoticeMinutes,
	}

	payrollPolicy := domain.PayrollPolicy{
		DefaultCommissionRate:  cfg.Payroll.DefaultCommissionRate,
		HoursPerLesson:         cfg.Payroll.HoursPerLesson,
		QualityBonusAmount:     cfg.Payroll.QualityBonusAmount,
		QualityRatingThreshold: cfg.Payroll.QualityRatingThreshold,
		TaxRate:                cfg.Payroll.TaxRate,
		NIRate:                 cfg.Payroll.NIRate,
	}
	for _, tier := range cfg.Payroll.PerformanceTiers {
		payrollPolicy.PerformanceTiers = append(payrollPolicy.PerformanceTiers, domain.PerformanceTier{
			RevenueAbove: tier.RevenueAbove,
			Bonus:        tier.Bonus,
		})
	}

	taxDefaults := domain.TaxConfig{
		StandardRate:     cfg.Taxes.StandardRate,
		FilingGraceDays:  cfg.Taxes.FilingGraceDays,
		UrgentWindowDays: cfg.Taxes.UrgentWindowDays,
	}

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		instructorRepository  *instructorRepo.Repository
		commissionRepository  *commissionRepo.Repository
		paymentRepository     *paymentRepo.Repository
		invoiceRepository     *invoiceRepo.Repository
		expenseRepository     *expenseRepo.Repository
		scheduleCfgRepository *scheduleCfgRepo.Repository
		taxConfigRepository   *taxConfigRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		instructorRepository = instructorRepo.NewRepository(wrappedDB)
		commissionRepository = commissionRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		invoiceRepository = invoiceRepo.NewRepository(wrappedDB)
		expenseRepository = expenseRepo.NewRepository(wrappedDB)
		scheduleCfgRepository = scheduleCfgRepo.NewRepository(wrappedDB)
		taxConfigRepository = taxConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		instructorRepository = instructorRepo.NewRepository(db)
		commissionRepository = commissionRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		invoiceRepository = invoiceRepo.NewRepository(db)
		expenseRepository = expenseRepo.NewRepository(db)
		scheduleCfgRepository = scheduleCfgRepo.NewRepository(db)
		taxConfigRepository = taxConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleCfgRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		instructorRepository,
		scheduleCfgRepository,
		scheduleDefaults,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		instructorRepository,
		scheduleCfgRepository,
		scheduleDefaults,
		txMgr,
		log,
	)

	computePayrollUseCase := computePayrollUC.NewUseCase(
		bookingRepository,
		instructorRepository,
		commissionRepository,
		payrollPolicy,
		txMgr,
		log,
	)

	computeTaxReportUseCase := computeTaxReportUC.NewUseCase(
		paymentRepository,
		expenseRepository,
		invoiceRepository,
		taxConfigRepository,
		taxDefaults,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getStudentBookings := getStudentBookingsHandler.NewHandler(bookingSvc, log)
	getInstructorBookings := getInstructorBookingsHandler.NewHandler(bookingSvc, log)
	getPayrollReport := getPayrollReportHandler.NewHandler(computePayrollUseCase, log)
	getTaxReport := getTaxReportHandler.NewHandler(computeTaxReportUseCase, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты инструктора на дату
	api.HandleFunc("/instructors/{instructorId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Конфигурация расписания
	api.HandleFunc("/schedule-config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Обновление статуса бронирования (только инструктор)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований ученика
	protected.HandleFunc("/students/{studentId}/bookings", getStudentBookings.Handle).Methods(http.MethodGet)

	// Расписание инструктора
	protected.HandleFunc("/instructors/{instructorId}/bookings", getInstructorBookings.Handle).Methods(http.MethodGet)

	// --- Отчёты ---
	// Расчёт зарплат за период
	protected.HandleFunc("/reports/payroll", getPayrollReport.Handle).Methods(http.MethodGet)

	// Налоговый отчёт за период
	protected.HandleFunc("/reports/tax", getTaxReport.Handle).Methods(http.MethodGet)

	// --- Управление расписанием ---
	// Обновление конфигурации расписания
	protected.HandleFunc("/schedule-config", updateScheduleConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
