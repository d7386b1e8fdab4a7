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

	cancelBookingHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/create_booking"
	createServiceHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/delete_service"
	getAvailabilityHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/get_booking"
	getCalendarWeekHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/get_calendar_week"
	getOpenDatesHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/get_open_dates"
	getScheduleHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/get_schedule"
	getServiceHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/get_service"
	getStatsHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/list_bookings"
	listOverridesHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/list_overrides"
	listServicesHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/list_services"
	rescheduleBookingHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/reschedule_booking"
	resetDayHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/reset_day"
	resetWeekHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/reset_week"
	saveOverrideHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/save_override"
	updateBookingStatusHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/update_schedule"
	updateServiceHandler "github.com/mlevasseur/salon-booking-service/internal/api/handlers/update_service"
	"github.com/mlevasseur/salon-booking-service/internal/api/middleware"
	"github.com/mlevasseur/salon-booking-service/internal/config"
	bookingRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/schedule"
	serviceRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/service"
	"github.com/mlevasseur/salon-booking-service/internal/notify"
	bookingsService "github.com/mlevasseur/salon-booking-service/internal/service/bookings"
	catalogService "github.com/mlevasseur/salon-booking-service/internal/service/catalog"
	scheduleService "github.com/mlevasseur/salon-booking-service/internal/service/schedule"
	createBookingUC "github.com/mlevasseur/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mlevasseur/salon-booking-service/internal/usecase/get_available_slots"
	getCalendarWeekUC "github.com/mlevasseur/salon-booking-service/internal/usecase/get_calendar_week"
	getOpenDatesUC "github.com/mlevasseur/salon-booking-service/internal/usecase/get_open_dates"
	"github.com/mlevasseur/salon-booking-service/pkg/clock"
	"github.com/mlevasseur/salon-booking-service/pkg/dbmetrics"
	"github.com/mlevasseur/salon-booking-service/pkg/logger"
	"github.com/mlevasseur/salon-booking-service/pkg/metrics"
	"github.com/mlevasseur/salon-booking-service/pkg/simpletxmanager"
	"github.com/mlevasseur/salon-booking-service/pkg/txmanager"
)

// TxManager общий интерфейс обоих менеджеров транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting salon-booking-service...")
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

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		serviceRepository  *serviceRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	systemClock := clock.System{}
	notifier := notify.NewLogNotifier(log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		scheduleRepository,
		txMgr,
		notifier,
		systemClock,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		serviceRepository,
		log,
	)
	getOpenDatesUseCase := getOpenDatesUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		serviceRepository,
		systemClock,
		log,
	)
	getCalendarWeekUseCase := getCalendarWeekUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		serviceRepository,
		txMgr,
		notifier,
		systemClock,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(serviceRepository, log)
	getService := getServiceHandler.NewHandler(serviceRepository, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, log)
	getOpenDates := getOpenDatesHandler.NewHandler(getOpenDatesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	getCalendarWeek := getCalendarWeekHandler.NewHandler(getCalendarWeekUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	listOverrides := listOverridesHandler.NewHandler(scheduleSvc, log)
	saveOverride := saveOverrideHandler.NewHandler(scheduleSvc, log)
	resetDay := resetDayHandler.NewHandler(scheduleSvc, log)
	resetWeek := resetWeekHandler.NewHandler(scheduleSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Слоты одной даты и поиск открытых дат
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/open-dates", getOpenDates.Handle).Methods(http.MethodGet)

	// Создание бронирования и управление им по токену
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{token}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{token}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Календарь и сводка ---
	admin.HandleFunc("/calendar-week", getCalendarWeek.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	admin.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/overrides", listOverrides.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/overrides", saveOverride.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/overrides", resetWeek.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/overrides/{date}", resetDay.Handle).Methods(http.MethodDelete)

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
