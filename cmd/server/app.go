package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apiMiddleware "github.com/phrazzld/unit-converter/internal/api/middleware"
	"github.com/phrazzld/unit-converter/internal/config"
	"github.com/phrazzld/unit-converter/internal/domain/conversion"
	"github.com/phrazzld/unit-converter/internal/observability"
	"github.com/phrazzld/unit-converter/internal/service"
	"github.com/phrazzld/unit-converter/internal/web"
	"github.com/prometheus/client_golang/prometheus"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Metrics
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer

	// Conversion
	engine    conversion.Service
	converter service.ConverterService

	// Presentation
	renderer *web.Renderer

	// Optional, nil when rate limiting is disabled
	rateLimiter *apiMiddleware.RateLimiter
}

// newApplication creates a new application instance with all dependencies initialized.
// gatherer is the registry metrics were registered with and backs /metrics.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	metrics *observability.Metrics,
	gatherer prometheus.Gatherer,
) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config", service.ErrNilDependency)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger", service.ErrNilDependency)
	}
	if metrics == nil || gatherer == nil {
		return nil, fmt.Errorf("%w: metrics", service.ErrNilDependency)
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		metrics:  metrics,
		gatherer: gatherer,
		engine:   conversion.NewDefaultService(),
	}

	var err error
	app.converter, err = service.NewConverterService(app.engine, cfg.Display.Precision, metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create converter service: %w", err)
	}

	app.renderer, err = web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	if cfg.RateLimit.Enabled {
		app.rateLimiter = apiMiddleware.NewRateLimiter(
			cfg.RateLimit.Capacity,
			time.Duration(cfg.RateLimit.RefillSeconds)*time.Second,
			nil,
		)
		logger.Info("Rate limiting enabled",
			"capacity", cfg.RateLimit.Capacity,
			"refill_seconds", cfg.RateLimit.RefillSeconds)
	}

	logger.Info("Application initialized successfully",
		"categories", len(app.engine.Registry().Categories()),
		"precision", cfg.Display.Precision)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.rateLimiter != nil {
		app.rateLimiter.Stop()
	}

	app.logger.Info("Application shutdown completed")
}
