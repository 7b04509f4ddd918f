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

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	calculateEndTimeHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/calculate_end_time"
	createAppointmentHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/create_appointment"
	createContactHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/create_contact"
	deleteAppointmentHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/delete_appointment"
	deleteContactHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/delete_contact"
	getAppointmentHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/get_available_slots"
	getContactHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/get_contact"
	getServicesHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/get_services"
	getTechnicianAvailabilityHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/get_technician_availability"
	getTechniciansHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/get_technicians"
	getVehiclesHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/get_vehicles"
	healthHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/list_appointments"
	listContactsHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/list_contacts"
	updateAppointmentHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/update_appointment"
	updateContactHandler "github.com/m04kA/SMC-TintingService/internal/api/handlers/update_contact"
	"github.com/m04kA/SMC-TintingService/internal/api/middleware"
	"github.com/m04kA/SMC-TintingService/internal/catalog"
	"github.com/m04kA/SMC-TintingService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-TintingService/internal/infra/storage/appointment"
	contactRepo "github.com/m04kA/SMC-TintingService/internal/infra/storage/contact"
	appointmentsService "github.com/m04kA/SMC-TintingService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-TintingService/internal/service/catalog"
	contactsService "github.com/m04kA/SMC-TintingService/internal/service/contacts"
	calculateEndTimeUC "github.com/m04kA/SMC-TintingService/internal/usecase/calculate_end_time"
	getAvailableSlotsUC "github.com/m04kA/SMC-TintingService/internal/usecase/get_available_slots"
	getTechnicianAvailabilityUC "github.com/m04kA/SMC-TintingService/internal/usecase/get_technician_availability"
	"github.com/m04kA/SMC-TintingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TintingService/pkg/logger"
	"github.com/m04kA/SMC-TintingService/pkg/metrics"
	"github.com/m04kA/SMC-TintingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	configPath := config.Path()
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-TintingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Справочник услуг, техников и автомобилей
	var ref *catalog.Catalog
	if cfg.Catalog.File != "" {
		ref, err = catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			log.Fatal("Failed to load catalog: %v", err)
		}
		log.Info("Catalog loaded from %s", cfg.Catalog.File)
	} else {
		ref = catalog.Default()
		log.Info("Using built-in catalog")
	}
	log.Info("Catalog: services=%d, packages=%d, technicians=%d",
		len(ref.Services), len(ref.Packages), len(ref.Technicians))

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
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

	// Без recorder обёртка только проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, recorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	contactRepository := contactRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)

	// Инициализируем use cases
	location := cfg.Scheduling.Location()
	log.Info("Scheduling: timezone=%s, strict_service_ids=%t, precise_availability_minutes=%t",
		location, cfg.Scheduling.StrictServiceIDs, cfg.Scheduling.PreciseAvailabilityMinutes)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		ref,
		getAvailableSlotsUC.AlwaysAvailable{},
		cfg.Scheduling.StrictServiceIDs,
		log,
	)
	calculateEndTimeUseCase := calculateEndTimeUC.NewUseCase(
		ref,
		location,
		cfg.Scheduling.StrictServiceIDs,
		log,
	)
	getTechnicianAvailabilityUseCase := getTechnicianAvailabilityUC.NewUseCase(
		ref,
		cfg.Scheduling.PreciseAvailabilityMinutes,
		log,
	)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(ref, log)
	contactsSvc := contactsService.NewService(contactRepository, txMgr, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		calculateEndTimeUseCase,
		txMgr,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	calculateEndTime := calculateEndTimeHandler.NewHandler(calculateEndTimeUseCase, log)
	getTechnicianAvailability := getTechnicianAvailabilityHandler.NewHandler(getTechnicianAvailabilityUseCase, log)
	getTechnicians := getTechniciansHandler.NewHandler(catalogSvc)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getVehicles := getVehiclesHandler.NewHandler(catalogSvc)

	listContacts := listContactsHandler.NewHandler(contactsSvc, log)
	getContact := getContactHandler.NewHandler(contactsSvc, log)
	createContact := createContactHandler.NewHandler(contactsSvc, log)
	updateContact := updateContactHandler.NewHandler(contactsSvc, log)
	deleteContact := deleteContactHandler.NewHandler(contactsSvc, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)

	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	api.HandleFunc("/scheduling/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/scheduling/calculate-end-time", calculateEndTime.Handle).Methods(http.MethodGet)

	// --- Техники ---
	api.HandleFunc("/technicians", getTechnicians.Handle).Methods(http.MethodGet)
	api.HandleFunc("/technicians/{id}/availability", getTechnicianAvailability.Handle).Methods(http.MethodGet)

	// --- Услуги и пакеты ---
	api.HandleFunc("/services", getServices.HandleServices).Methods(http.MethodGet)
	api.HandleFunc("/services/packages", getServices.HandlePackages).Methods(http.MethodGet)
	api.HandleFunc("/services/packages/{id}", getServices.HandlePackage).Methods(http.MethodGet)
	api.HandleFunc("/services/tags", getServices.HandleTags).Methods(http.MethodGet)

	// --- Автомобили ---
	api.HandleFunc("/vehicles/years", getVehicles.HandleYears).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/makes", getVehicles.HandleMakes).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/models", getVehicles.HandleModels).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/types", getVehicles.HandleTypes).Methods(http.MethodGet)

	// --- Чтение клиентов и записей ---
	api.HandleFunc("/contacts", listContacts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/contacts/{id}", getContact.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header, если [auth] enabled)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth)
		log.Info("Auth enabled for write routes")
	}

	// --- Клиенты ---
	protected.HandleFunc("/contacts", createContact.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/contacts/{id}", updateContact.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/contacts/{id}", deleteContact.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// CORS поверх всего роутера, включая preflight OPTIONS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{middleware.HeaderRequestID},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler(r)

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
	close(stopMetricsCh)

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
