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

	availableSlotsHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/available_slots"
	checkAvailabilityHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/create_booking"
	findOrCreateSlotHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/find_or_create_slot"
	getBookingHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/get_calendar"
	listBookingsHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/list_bookings"
	listSlotsHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/list_slots"
	transitionBookingHandler "github.com/labims/LIMS-BookingService/internal/api/handlers/transition_booking"
	"github.com/labims/LIMS-BookingService/internal/api/middleware"
	"github.com/labims/LIMS-BookingService/internal/config"
	bookingRepo "github.com/labims/LIMS-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/labims/LIMS-BookingService/internal/infra/storage/slot"
	inventoryServiceClient "github.com/labims/LIMS-BookingService/internal/integrations/inventoryservice"
	userServiceClient "github.com/labims/LIMS-BookingService/internal/integrations/userservice"
	bookingsService "github.com/labims/LIMS-BookingService/internal/service/bookings"
	slotsService "github.com/labims/LIMS-BookingService/internal/service/slots"
	checkAvailabilityUC "github.com/labims/LIMS-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/labims/LIMS-BookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/labims/LIMS-BookingService/internal/usecase/get_calendar"
	"github.com/labims/LIMS-BookingService/pkg/dbmetrics"
	"github.com/labims/LIMS-BookingService/pkg/logger"
	"github.com/labims/LIMS-BookingService/pkg/metrics"
	"github.com/labims/LIMS-BookingService/pkg/simpletxmanager"
	"github.com/labims/LIMS-BookingService/pkg/txmanager"
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

	log.Info("Starting LIMS-BookingService...")
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	inventoryClient := inventoryServiceClient.NewClient(
		cfg.InventoryService.URL,
		time.Duration(cfg.InventoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, InventoryService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.InventoryService.URL, cfg.InventoryService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		slotRepository    *slotRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userClient,
		txMgr,
		log,
	)
	slotSvc := slotsService.NewService(
		slotRepository,
		bookingRepository,
		userClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		userClient,
		inventoryClient,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		inventoryClient,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		userClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	findOrCreateSlot := findOrCreateSlotHandler.NewHandler(slotSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotSvc, log)
	availableSlots := availableSlotsHandler.NewHandler(slotSvc, log)

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

	// Проверка доступности ресурса в окне времени
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Слоты за период
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Свободные слоты ресурса на дату
	api.HandleFunc("/resources/{resourceType}/{resourceId}/available-slots",
		availableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с учетом видимости актора
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Переводы статусов: approve, reject, cancel, complete
	protected.HandleFunc("/bookings/{bookingId}/{action:approve|reject|cancel|complete}",
		transitionBooking.Handle).Methods(http.MethodPatch)

	// --- Календарь ---
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Слоты (создание для менеджеров) ---
	protected.HandleFunc("/slots", findOrCreateSlot.Handle).Methods(http.MethodPost)

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
