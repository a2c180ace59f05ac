package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"perfpulse/internal/config"
	apierrors "perfpulse/internal/errors"
	"perfpulse/internal/infrastructure"
	"perfpulse/internal/middleware"
	"perfpulse/internal/sentiment"
	"perfpulse/internal/services"
	transport "perfpulse/internal/transport/http"
)

// Version information, set at build time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Application holds all the application components
type Application struct {
	Config *config.Config
	Paths  *config.Paths
	Router *chi.Mux
	Server *http.Server
	Logger *slog.Logger
	OTel   *infrastructure.OTelProviders

	// Services
	DataService     *services.DataService
	PipelineService *services.PipelineService
	HealthService   *services.HealthService

	// Error handling
	ErrorHandler *apierrors.ErrorHandler
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	otelProviders, err := infrastructure.InitializeOTel(nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	app := &Application{
		Config: cfg,
		Paths:  paths,
		Logger: logger,
		OTel:   otelProviders,
	}

	app.initializeServices()
	app.setupRouter()
	app.createServer()

	logger.Info("application initialized",
		slog.String("version", Version),
		slog.Int("port", cfg.Server.Port),
		slog.String("dataset", paths.DatasetCSV),
		slog.String("store", paths.ProcessedCSV))

	return app, nil
}

// initializeServices wires the service layer.
func (app *Application) initializeServices() {
	app.ErrorHandler = apierrors.NewErrorHandler(app.Logger, false)

	scorer := sentiment.NewVaderScorer()

	app.DataService = services.NewDataService(app.Paths, scorer, app.Logger)
	app.PipelineService = services.NewPipelineService(app.Paths, app.Logger)
	app.HealthService = services.NewHealthService(Version, BuildTime, app.Paths, app.Logger)
}

// setupRouter configures the HTTP router with middleware and routes
func (app *Application) setupRouter() {
	r := chi.NewRouter()

	// Middleware order matters: request ID first so every later stage
	// logs with the trace_id.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.HTTPMetrics(app.OTel.Meter, app.Logger))
	r.Use(middleware.StructuredLogger(app.Logger))
	r.Use(middleware.Recoverer(app.Logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Compress(5))

	if app.Config.Security.EnableCORS {
		r.Use(middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: app.Config.Security.AllowedOrigins,
			Logger:         app.Logger,
		}))
	}

	if app.Config.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			app.Config.Security.RateLimit.RPS,
			app.Config.Security.RateLimit.Burst,
			app.Logger,
		)
		r.Use(limiter.Handler)
	}

	r.Use(middleware.Timeout(app.Config.Server.RequestTimeout, app.Logger))

	r.NotFound(app.ErrorHandler.NotFound)
	r.MethodNotAllowed(app.ErrorHandler.MethodNotAllowed)

	dataHandler := transport.NewDataHandler(app.DataService, app.Logger, app.ErrorHandler)
	exportHandler := transport.NewExportHandler(app.DataService, app.Logger, app.ErrorHandler)
	pipelineHandler := transport.NewPipelineHandler(app.PipelineService, app.Logger, app.ErrorHandler)
	healthHandler := transport.NewHealthHandler(app.HealthService, app.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Post("/refresh", pipelineHandler.Refresh)
		r.Mount("/export", exportHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
		r.Mount("/", dataHandler.Routes())
	})

	// Prometheus scrape endpoint, outside the JSON API group
	if app.OTel.PrometheusHTTP != nil {
		r.Handle("/metrics", app.OTel.PrometheusHTTP)
	}

	app.Router = r
}

// createServer creates the HTTP server
func (app *Application) createServer() {
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Config.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}
}

// Start starts the HTTP server
func (app *Application) Start() error {
	app.Logger.Info("starting HTTP server",
		slog.String("addr", app.Server.Addr))

	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server and flushes telemetry.
func (app *Application) Stop(ctx context.Context) error {
	app.Logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, app.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := app.OTel.Shutdown(shutdownCtx); err != nil {
		app.Logger.Warn("telemetry shutdown failed",
			slog.String("error", err.Error()))
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}

	return nil
}

// Run starts the application and blocks until a shutdown signal arrives.
func (app *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		app.Logger.Info("received shutdown signal",
			slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
	defer cancel()

	return app.Stop(ctx)
}
