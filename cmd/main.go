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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/create_desk"
	createOfficeSpaceHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/create_office_space"
	createReservationHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/create_reservation"
	deleteDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/delete_desk"
	deleteReservationHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/delete_reservation"
	getBookingBoardHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_booking_board"
	getOfficeLayoutHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_office_layout"
	listOfficeSpacesHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/list_office_spaces"
	updateOfficeLayoutHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/update_office_layout"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBookingService/internal/config"
	displayNameCache "github.com/m04kA/SMC-DeskBookingService/internal/infra/cache/displayname"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	officeSpaceRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/officespace"
	reservationRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/reservation"
	userServiceClient "github.com/m04kA/SMC-DeskBookingService/internal/integrations/userservice"
	desksService "github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
	layoutEditor "github.com/m04kA/SMC-DeskBookingService/internal/service/layouteditor"
	officesService "github.com/m04kA/SMC-DeskBookingService/internal/service/offices"
	reservationsService "github.com/m04kA/SMC-DeskBookingService/internal/service/reservations"
	getBookingBoardUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_booking_board"
	submitBookingUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-DeskBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/logger"
	"github.com/m04kA/SMC-DeskBookingService/pkg/metrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DeskBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-DeskBookingService...")
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

	// Подключаемся к Redis (кеш отображаемых имен)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		// Кеш не критичен, сервис деградирует до прямых запросов в UserService
		log.Warn("Failed to ping redis at %s, display name cache degraded: %v", cfg.Redis.Addr, err)
	} else {
		log.Info("Successfully connected to redis at %s", cfg.Redis.Addr)
	}

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		officeRepository      *officeSpaceRepo.Repository
		deskRepository        *deskRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		officeRepository = officeSpaceRepo.NewRepository(wrappedDB)
		deskRepository = deskRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		officeRepository = officeSpaceRepo.NewRepository(db)
		deskRepository = deskRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Кеш отображаемых имен пользователей
	nameCache := displayNameCache.NewCache(redisClient, log)

	// Инициализируем сервисы
	officesSvc := officesService.NewService(officeRepository, log)
	desksSvc := desksService.NewService(deskRepository, officeRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Фабрика сессий редактора разметки (стол + фигура меняются вместе)
	editorFactory := layoutEditor.NewFactory(officesSvc, desksSvc, log)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		reservationRepository,
		deskRepository,
		userClient,
		txMgr,
		log,
	)

	getBookingBoardUseCase := getBookingBoardUC.NewUseCase(
		officeRepository,
		deskRepository,
		reservationRepository,
		nameCache,
		userClient,
		log,
	)

	// Инициализируем handlers
	listOfficeSpaces := listOfficeSpacesHandler.NewHandler(officesSvc, log)
	createOfficeSpace := createOfficeSpaceHandler.NewHandler(officesSvc, log)
	getOfficeLayout := getOfficeLayoutHandler.NewHandler(officesSvc, log)
	updateOfficeLayout := updateOfficeLayoutHandler.NewHandler(officesSvc, log)
	createDesk := createDeskHandler.NewHandler(editorFactory, log)
	deleteDesk := deleteDeskHandler.NewHandler(editorFactory, log)
	getBookingBoard := getBookingBoardHandler.NewHandler(getBookingBoardUseCase, log)
	createReservation := createReservationHandler.NewHandler(submitBookingUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)

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
	// PUBLIC ROUTES (аутентификация опциональна)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Список офисов
	public.HandleFunc("/office-spaces", listOfficeSpaces.Handle).Methods(http.MethodGet)

	// Разметка офиса
	public.HandleFunc("/office-spaces/{officeSpaceID}/layout", getOfficeLayout.Handle).Methods(http.MethodGet)

	// Доска бронирования (флаги mine заполняются только при наличии X-User-ID)
	public.HandleFunc("/office-spaces/{officeSpaceID}/board", getBookingBoard.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Офисы и разметка ---
	protected.HandleFunc("/office-spaces", createOfficeSpace.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/office-spaces/{officeSpaceID}/layout", updateOfficeLayout.Handle).Methods(http.MethodPut)

	// --- Столы ---
	protected.HandleFunc("/office-spaces/{officeSpaceID}/desks", createDesk.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/office-spaces/{officeSpaceID}/desks/{deskName}", deleteDesk.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationID}", deleteReservation.Handle).Methods(http.MethodDelete)

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
