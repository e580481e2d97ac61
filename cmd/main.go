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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/godivinity-atl/GOD-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/godivinity-atl/GOD-BookingService/internal/api/handlers/get_available_slots"
	getBlockedDatesHandler "github.com/godivinity-atl/GOD-BookingService/internal/api/handlers/get_blocked_dates"
	getBookingHandler "github.com/godivinity-atl/GOD-BookingService/internal/api/handlers/get_booking"
	getProgramsHandler "github.com/godivinity-atl/GOD-BookingService/internal/api/handlers/get_programs"
	listBookingsHandler "github.com/godivinity-atl/GOD-BookingService/internal/api/handlers/list_bookings"
	"github.com/godivinity-atl/GOD-BookingService/internal/api/middleware"
	"github.com/godivinity-atl/GOD-BookingService/internal/config"
	bookingRepo "github.com/godivinity-atl/GOD-BookingService/internal/infra/storage/booking"
	sheetsRelayClient "github.com/godivinity-atl/GOD-BookingService/internal/integrations/sheets"
	bookingsService "github.com/godivinity-atl/GOD-BookingService/internal/service/bookings"
	createBookingUC "github.com/godivinity-atl/GOD-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/godivinity-atl/GOD-BookingService/internal/usecase/get_available_slots"
	"github.com/godivinity-atl/GOD-BookingService/pkg/dbmetrics"
	"github.com/godivinity-atl/GOD-BookingService/pkg/logger"
	"github.com/godivinity-atl/GOD-BookingService/pkg/metrics"
	"github.com/godivinity-atl/GOD-BookingService/pkg/simpletxmanager"
	"github.com/godivinity-atl/GOD-BookingService/pkg/txmanager"
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

	log.Info("Starting GOD-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (локальный журнал бронирований)
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

	// Инициализируем клиента релея таблицы бронирований
	sheetsClient := sheetsRelayClient.NewClient(
		cfg.SheetsRelay.URL,
		cfg.SheetsRelay.GetToken,
		cfg.SheetsRelay.PostToken,
		time.Duration(cfg.SheetsRelay.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Sheets relay client initialized (timeout=%ds)", cfg.SheetsRelay.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		sheetsClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		sheetsClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingSvc,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(bookingSvc, log)
	getPrograms := getProgramsHandler.NewHandler(log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог программ
	api.HandleFunc("/programs", getPrograms.Handle).Methods(http.MethodGet)

	// Слоты на дату для программы
	api.HandleFunc("/programs/{programId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Объединённое множество занятых дат для календаря
	api.HandleFunc("/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Операторский просмотр журнала
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// CORS: виджет живёт на сайте храма, API на другом origin
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
