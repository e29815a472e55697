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

	cancelBookingHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/create_booking"
	deleteNotificationHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/delete_notification"
	getAvailabilityHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/get_booking"
	getPhotographerBookingsHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/get_photographer_bookings"
	getUserBookingsHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/get_user_bookings"
	listNotificationsHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/list_notifications"
	markNotificationReadHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/mark_notification_read"
	updateAvailabilityHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/lenslot/LS-BookingService/internal/api/handlers/update_booking_status"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
	"github.com/lenslot/LS-BookingService/internal/config"
	availabilityRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/booking"
	notificationRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/notification"
	profileServiceClient "github.com/lenslot/LS-BookingService/internal/integrations/profileservice"
	"github.com/lenslot/LS-BookingService/internal/notify"
	availabilityService "github.com/lenslot/LS-BookingService/internal/service/availability"
	bookingsService "github.com/lenslot/LS-BookingService/internal/service/bookings"
	notificationsService "github.com/lenslot/LS-BookingService/internal/service/notifications"
	createBookingUC "github.com/lenslot/LS-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/lenslot/LS-BookingService/internal/usecase/get_available_slots"
	"github.com/lenslot/LS-BookingService/pkg/dbmetrics"
	"github.com/lenslot/LS-BookingService/pkg/logger"
	"github.com/lenslot/LS-BookingService/pkg/metrics"
	"github.com/lenslot/LS-BookingService/pkg/simpletxmanager"
	"github.com/lenslot/LS-BookingService/pkg/txmanager"
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

	log.Info("Starting LS-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем клиента профильного сервиса
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хаб доставки уведомлений внутри процесса
	hub := notify.NewHub()

	timeProvider := &createBookingUC.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		notificationRepository,
		hub,
		timeProvider,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		log,
	)
	notificationSvc := notificationsService.NewService(
		notificationRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		notificationRepository,
		profileClient,
		hub,
		txMgr,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		&getAvailableSlotsUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getPhotographerBookings := getPhotographerBookingsHandler.NewHandler(bookingSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	deleteNotification := deleteNotificationHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность фотографа: недельный шаблон, открытые даты и настройки
	api.HandleFunc("/photographers/{photographerId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Слоты на дату с разметкой bookable
	api.HandleFunc("/photographers/{photographerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса (подтверждение/завершение фотографом)
	protected.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Кабинет фотографа ---
	// Список бронирований фотографа с фильтрацией
	protected.HandleFunc("/photographers/{photographerId}/bookings",
		getPhotographerBookings.Handle).Methods(http.MethodGet)

	// Сохранение доступности
	protected.HandleFunc("/photographers/{photographerId}/availability",
		updateAvailability.Handle).Methods(http.MethodPut)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", markNotificationRead.HandleAll).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{id}/read", markNotificationRead.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{id}", deleteNotification.Handle).Methods(http.MethodDelete)

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
