package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	bookingFlowHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/booking_flow"
	createBookingHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/create_booking"
	deleteAppointmentHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/delete_appointment"
	deleteServiceHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/delete_service"
	describeServiceHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/describe_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/get_available_slots"
	getDashboardHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/get_dashboard"
	getSettingsHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/get_settings"
	listAppointmentsHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/list_services"
	saveServiceHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/save_service"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/update_appointment_status"
	updateSettingsHandler "github.com/m04kA/SMC-LuxeBook/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-LuxeBook/internal/api/middleware"
	"github.com/m04kA/SMC-LuxeBook/internal/config"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/memstore"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/pgstore"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/redisstore"
	appointmentRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/settings"
	"github.com/m04kA/SMC-LuxeBook/internal/insight"
	"github.com/m04kA/SMC-LuxeBook/internal/integrations/gemini"
	appointmentsService "github.com/m04kA/SMC-LuxeBook/internal/service/appointments"
	dashboardService "github.com/m04kA/SMC-LuxeBook/internal/service/dashboard"
	servicesService "github.com/m04kA/SMC-LuxeBook/internal/service/services"
	settingsService "github.com/m04kA/SMC-LuxeBook/internal/service/settings"
	bookingFlowUC "github.com/m04kA/SMC-LuxeBook/internal/usecase/booking_flow"
	createBookingUC "github.com/m04kA/SMC-LuxeBook/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
	"github.com/m04kA/SMC-LuxeBook/pkg/metrics"
	"github.com/m04kA/SMC-LuxeBook/pkg/otelx"
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

	log.Info("Starting LuxeBook...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Backend)

	ctx := context.Background()

	// Трассировка (при выключенной настраиваются только propagators)
	shutdownTracing, err := otelx.Setup(ctx, otelx.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Tracing.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}

	// Инициализируем метрики (если включены); nil-коллектор безопасен
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем хранилище
	store, closeStore, err := openStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer closeStore()

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(store, log)
	serviceRepository := serviceRepo.NewRepository(store, log)
	settingsRepository := settingsRepo.NewRepository(store, log)

	// Генератор текстов: без ключа AI функции отвечают заглушками
	var generator insight.Generator
	geminiClient, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:  cfg.Insight.APIKey,
		Model:   cfg.Insight.Model,
		Timeout: cfg.Insight.RequestTimeout(),
	}, log)
	switch {
	case err == nil:
		generator = geminiClient
		log.Info("Gemini client initialized (model=%s, timeout=%ds)", cfg.Insight.Model, cfg.Insight.Timeout)
	case errors.Is(err, gemini.ErrNotConfigured):
		log.Warn("Gemini API key is not set, AI features are disabled")
	default:
		log.Error("Failed to initialize Gemini client, AI features are disabled: %v", err)
	}
	insightProvider := insight.New(generator, metricsCollector, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		settingsRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		getAvailableSlotsUseCase,
		metricsCollector,
		cfg.Booking.SubmitDelay(),
		log,
	)

	flowMachine := bookingFlowUC.NewMachine(
		serviceRepository,
		getAvailableSlotsUseCase,
		createBookingUseCase,
		metricsCollector,
		log,
	)
	flowRegistry := bookingFlowUC.NewRegistry(flowMachine, cfg.Booking.IdleTTL(), log)
	if err := flowRegistry.StartSweeper(cfg.Booking.FlowSweepSchedule); err != nil {
		log.Fatal("Failed to start booking flow sweeper: %v", err)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	servicesSvc := servicesService.NewService(serviceRepository, insightProvider, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	dashboardSvc := dashboardService.NewService(
		appointmentRepository,
		serviceRepository,
		insightProvider,
		cfg.Insight.DashboardInsightTimeout(),
		log,
	)

	// Инициализируем handlers
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listServices := listServicesHandler.NewHandler(servicesSvc, log)
	saveService := saveServiceHandler.NewHandler(servicesSvc, log)
	deleteService := deleteServiceHandler.NewHandler(servicesSvc, log)
	describeService := describeServiceHandler.NewHandler(servicesSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	bookingFlow := bookingFlowHandler.NewHandler(flowRegistry, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская часть)
	// ============================================================

	api.HandleFunc("/business", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)

	// --- Мастер записи ---
	api.HandleFunc("/booking-flows", bookingFlow.Start).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{flowId}", bookingFlow.Get).Methods(http.MethodGet)
	api.HandleFunc("/booking-flows/{flowId}/events", bookingFlow.ApplyEvent).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (аутентификация вне рамок сервиса)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// --- Панель ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/insight", getDashboard.HandleInsight).Methods(http.MethodGet)

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/confirm", updateAppointmentStatus.Confirm).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", updateAppointmentStatus.Cancel).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Услуги ---
	admin.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", saveService.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/describe", describeService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", saveService.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Настройки ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, cfg.Tracing.ServiceName),
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем фоновые задачи
	flowRegistry.StopSweeper()
	dashboardSvc.Wait()
	log.Info("Background jobs stopped")

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to shutdown tracing: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// openStore подключает выбранный бэкенд хранилища. Возвращаемую функцию нужно вызвать при остановке
func openStore(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (kv.Store, func(), error) {
	switch cfg.Backend {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}

		store := pgstore.NewStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
		}

		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
		return store, func() { _ = db.Close() }, nil

	case config.StorageRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}

		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		return redisstore.NewStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	default:
		log.Warn("Using in-memory storage, data is lost on restart")
		return memstore.NewStore(), func() {}, nil
	}
}
