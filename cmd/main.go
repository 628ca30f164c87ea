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

	adminCoachesHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/admin_coaches"
	adminCourtsHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/admin_courts"
	adminEquipmentHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/admin_equipment"
	adminPricingRulesHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/admin_pricing_rules"
	cancelBookingHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/get_booking"
	getRecentBookingsHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/get_recent_bookings"
	quotePriceHandler "github.com/acornglobus/court-booking-service/internal/api/handlers/quote_price"
	"github.com/acornglobus/court-booking-service/internal/api/middleware"
	"github.com/acornglobus/court-booking-service/internal/config"
	"github.com/acornglobus/court-booking-service/internal/infra/cache"
	bookingRepo "github.com/acornglobus/court-booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/acornglobus/court-booking-service/internal/infra/storage/catalog"
	bookingsService "github.com/acornglobus/court-booking-service/internal/service/bookings"
	catalogService "github.com/acornglobus/court-booking-service/internal/service/catalog"
	createBookingUC "github.com/acornglobus/court-booking-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/acornglobus/court-booking-service/internal/usecase/get_availability"
	quotePriceUC "github.com/acornglobus/court-booking-service/internal/usecase/quote_price"
	"github.com/acornglobus/court-booking-service/pkg/dbmetrics"
	"github.com/acornglobus/court-booking-service/pkg/logger"
	"github.com/acornglobus/court-booking-service/pkg/metrics"
	"github.com/acornglobus/court-booking-service/pkg/simpletxmanager"
	"github.com/acornglobus/court-booking-service/pkg/txmanager"
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

	log.Info("Starting court-booking-service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Кеш доступности: Redis, если включён, иначе заглушка
	var availabilityCache interface {
		Get(ctx context.Context, date string) ([]byte, error)
		Set(ctx context.Context, date string, payload []byte) error
		Invalidate(ctx context.Context, date string) error
	}
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		availabilityCache = cache.New(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	} else {
		availabilityCache = cache.Noop{}
		log.Info("Availability cache disabled")
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, availabilityCache, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	quotePriceUseCase := quotePriceUC.NewUseCase(catalogRepository, log)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		availabilityCache,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		quotePriceUseCase,
		txMgr,
		availabilityCache,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getRecentBookings := getRecentBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	adminCourts := adminCourtsHandler.NewHandler(catalogSvc, log)
	adminCoaches := adminCoachesHandler.NewHandler(catalogSvc, log)
	adminEquipment := adminEquipmentHandler.NewHandler(catalogSvc, log)
	adminPricingRules := adminPricingRulesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/recent", getRecentBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Создание бронирований — под rate limit, если включён
	bookingWrite := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		bookingWrite.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	bookingWrite.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Админские маршруты — под статическим токеном
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	admin.HandleFunc("/courts", adminCourts.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/courts", adminCourts.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/courts/{id}", adminCourts.HandleUpdate).Methods(http.MethodPut)

	admin.HandleFunc("/coaches", adminCoaches.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/coaches", adminCoaches.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/coaches/{id}", adminCoaches.HandleUpdate).Methods(http.MethodPut)

	admin.HandleFunc("/equipment", adminEquipment.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/equipment", adminEquipment.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/equipment/{id}", adminEquipment.HandleUpdate).Methods(http.MethodPut)

	admin.HandleFunc("/pricing-rules", adminPricingRules.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/pricing-rules", adminPricingRules.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/pricing-rules/{id}", adminPricingRules.HandleUpdate).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
