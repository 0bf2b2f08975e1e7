package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/unit-converter/internal/api"
	apiMiddleware "github.com/phrazzld/unit-converter/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))

	pages := api.NewConverterHandler(app.converter, app.renderer, app.logger)
	convertAPI := api.NewConvertAPIHandler(app.converter, app.logger)

	r.Group(func(r chi.Router) {
		if app.rateLimiter != nil {
			r.Use(apiMiddleware.RateLimit(app.rateLimiter, app.metrics))
		}

		// HTML pages
		r.Get("/", pages.Home)
		r.Get("/convert/{category}", pages.Form)
		r.Get("/convert/{category}/result", pages.Result)
		r.Post("/convert/{category}/result", pages.Result)

		// JSON API
		r.Route("/api", func(r chi.Router) {
			r.Get("/categories", convertAPI.ListCategories)
			r.Get("/categories/{category}", convertAPI.GetCategory)
			r.Post("/convert", convertAPI.Convert)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.HandlerFor(app.gatherer, promhttp.HandlerOpts{}))

	return r
}
