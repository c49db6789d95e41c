package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createSessionHandler "github.com/mgiudice/ODC-TurnosService/internal/api/handlers/create_session"
	getAppointmentTypesHandler "github.com/mgiudice/ODC-TurnosService/internal/api/handlers/get_appointment_types"
	getAvailableDatesHandler "github.com/mgiudice/ODC-TurnosService/internal/api/handlers/get_available_dates"
	getInsurersHandler "github.com/mgiudice/ODC-TurnosService/internal/api/handlers/get_insurers"
	getSessionHandler "github.com/mgiudice/ODC-TurnosService/internal/api/handlers/get_session"
	submitAppointmentHandler "github.com/mgiudice/ODC-TurnosService/internal/api/handlers/submit_appointment"
	updateFieldHandler "github.com/mgiudice/ODC-TurnosService/internal/api/handlers/update_field"
	"github.com/mgiudice/ODC-TurnosService/internal/api/middleware"
	"github.com/mgiudice/ODC-TurnosService/internal/config"
	"github.com/mgiudice/ODC-TurnosService/internal/flow"
	automationClient "github.com/mgiudice/ODC-TurnosService/internal/integrations/automation"
	insurersService "github.com/mgiudice/ODC-TurnosService/internal/service/insurers"
	sessionsService "github.com/mgiudice/ODC-TurnosService/internal/service/sessions"
	createAppointmentUC "github.com/mgiudice/ODC-TurnosService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/mgiudice/ODC-TurnosService/internal/usecase/get_available_slots"
	lookupPatientUC "github.com/mgiudice/ODC-TurnosService/internal/usecase/lookup_patient"
	"github.com/mgiudice/ODC-TurnosService/pkg/logger"
	"github.com/mgiudice/ODC-TurnosService/pkg/metrics"
	"github.com/mgiudice/ODC-TurnosService/pkg/validator"
	"github.com/mgiudice/ODC-TurnosService/pkg/webhookmetrics"
)

func main() {
	// Cargamos la configuración
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializamos el logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ODC-TurnosService...")
	log.Info("Configuration loaded from config.toml")

	// Inicializamos métricas (si están habilitadas)
	var metricsCollector *metrics.Metrics
	var webhookTransport http.RoundTripper

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		webhookTransport = webhookmetrics.New(nil, metricsCollector)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Cliente de los webhooks de automatización
	automation := automationClient.NewClient(
		automationClient.Endpoints{
			PatientLookupURL:  cfg.Automation.PatientLookupURL,
			AvailableSlotsURL: cfg.Automation.AvailableSlotsURL,
			AppointmentURL:    cfg.Automation.AppointmentURL,
		},
		cfg.Automation.APIKey,
		time.Duration(cfg.Automation.LookupTimeout)*time.Second,
		time.Duration(cfg.Automation.SubmitTimeout)*time.Second,
		webhookTransport,
		log,
	)
	log.Info("Automation client initialized (lookup timeout=%ds, submit timeout=%ds)",
		cfg.Automation.LookupTimeout, cfg.Automation.SubmitTimeout)

	// Listado estático de obras sociales
	insurersSvc, err := insurersService.Load(cfg.Insurers.File)
	if err != nil {
		log.Fatal("Failed to load insurers list: %v", err)
	}
	log.Info("Insurers list loaded from %s (%d providers)", cfg.Insurers.File, len(insurersSvc.List()))

	// Use cases
	lookupUC := lookupPatientUC.NewUseCase(automation, log)
	slotsUC := getAvailableSlotsUC.NewUseCase(automation, log)
	createUC := createAppointmentUC.NewUseCase(automation, log)

	// Administrador de sesiones: cada sesión recibe su propio controlador
	debounce := time.Duration(cfg.Sessions.DebounceMillis) * time.Millisecond
	factory := func() *flow.Controller {
		return flow.NewController(lookupUC, slotsUC, createUC, debounce, log)
	}

	var gauge sessionsService.SessionsGauge
	if cfg.Metrics.Enabled {
		gauge = metricsCollector.ActiveSessions
	}
	sessionsSvc := sessionsService.NewService(
		factory,
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		gauge,
		log,
	)
	sessionsSvc.StartJanitor(time.Duration(cfg.Sessions.CleanupIntervalMins) * time.Minute)
	log.Info("Session manager initialized (ttl=%dm, cleanup=%dm)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.CleanupIntervalMins)

	// Validador de DTOs
	v := validator.NewValidator()

	// Handlers
	createSession := createSessionHandler.NewHandler(sessionsSvc, log)
	getSession := getSessionHandler.NewHandler(sessionsSvc, log)
	updateField := updateFieldHandler.NewHandler(sessionsSvc, v, log)
	submitAppointment := submitAppointmentHandler.NewHandler(sessionsSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(log)
	getAppointmentTypes := getAppointmentTypesHandler.NewHandler(log)
	getInsurers := getInsurersHandler.NewHandler(insurersSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyAuth(cfg.Server.APIKey))

	// Catálogos estáticos
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointment-types", getAppointmentTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/insurers", getInsurers.Handle).Methods(http.MethodGet)

	// Sesiones de formulario
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/fields", updateField.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/submit", submitAppointment.Handle).Methods(http.MethodPost)

	// Servidor HTTP
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

	sessionsSvc.StopJanitor()

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
