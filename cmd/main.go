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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/create_booking"
	createFacilityHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/create_facility"
	getAvailableSlotsHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/get_booking"
	getFacilityBookingsHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/get_facility_bookings"
	getOverstayLimitsHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/get_overstay_limits"
	getUserBookingsHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/get_user_bookings"
	listFacilitiesHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/list_facilities"
	updateFacilityHandler "github.com/m04kA/RCM-BookingService/internal/api/handlers/update_facility"
	"github.com/m04kA/RCM-BookingService/internal/api/middleware"
	"github.com/m04kA/RCM-BookingService/internal/config"
	"github.com/m04kA/RCM-BookingService/internal/events"
	bookingRepo "github.com/m04kA/RCM-BookingService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/RCM-BookingService/internal/infra/storage/facility"
	residentServiceClient "github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
	bookingsService "github.com/m04kA/RCM-BookingService/internal/service/bookings"
	facilitiesService "github.com/m04kA/RCM-BookingService/internal/service/facilities"
	createBookingUC "github.com/m04kA/RCM-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/RCM-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/RCM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RCM-BookingService/pkg/logger"
	"github.com/m04kA/RCM-BookingService/pkg/metrics"
	"github.com/m04kA/RCM-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/RCM-BookingService/pkg/txmanager"
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

	log.Info("Starting RCM-BookingService...")
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

	// Инициализируем клиента ResidentService
	residentClient := residentServiceClient.NewClient(
		cfg.ResidentService.URL,
		time.Duration(cfg.ResidentService.Timeout)*time.Second,
		log,
	)
	log.Info("ResidentService client initialized (url=%s, timeout=%ds)",
		cfg.ResidentService.URL, cfg.ResidentService.Timeout)

	// Инициализируем publisher доменных событий
	publisher := events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Enabled, log)
	if cfg.RabbitMQ.Enabled {
		log.Info("RabbitMQ event publisher enabled (url=%s)", cfg.RabbitMQ.URL)
	} else {
		log.Info("RabbitMQ event publisher disabled")
	}

	// Инициализируем Redis клиент для кеша публичных ответов (если включен)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info("Redis response cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		facilityRepository *facilityRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &createBookingUC.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		residentClient,
		publisher,
		txMgr,
		timeProvider,
		log,
	)
	facilitySvc := facilitiesService.NewService(
		facilityRepository,
		residentClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		residentClient,
		publisher,
		txMgr,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		facilityRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	createFacility := createFacilityHandler.NewHandler(facilitySvc, log)
	updateFacility := updateFacilityHandler.NewHandler(facilitySvc, log)
	getOverstayLimits := getOverstayLimitsHandler.NewHandler(cfg.Overstay.OverstayLimits(), log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	public := api.PathPrefix("").Subrouter()
	if cfg.Redis.Enabled {
		public.Use(middleware.Cache(
			redisClient,
			cfg.Redis.CachePrefix,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			log,
		))
		log.Info("Response cache middleware enabled for public routes")
	}

	// Список объектов сообщества
	public.HandleFunc("/communities/{id}/facilities", listFacilities.Handle).Methods(http.MethodGet)

	// Доступные слоты объекта на день
	public.HandleFunc("/facilities/{id}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Лимиты пребывания посетителей
	public.HandleFunc("/communities/{id}/overstay-limits", getOverstayLimits.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{id}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление объектами (для администраторов) ---
	// Список бронирований объекта
	protected.HandleFunc("/facilities/{id}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)

	// Создание объекта
	protected.HandleFunc("/communities/{id}/facilities", createFacility.Handle).Methods(http.MethodPost)

	// Обновление объекта
	protected.HandleFunc("/facilities/{id}", updateFacility.Handle).Methods(http.MethodPut)

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
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
