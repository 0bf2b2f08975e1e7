// Package main implements the entry point for the unit converter server,
// which serves the HTML conversion pages and the JSON conversion API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/phrazzld/unit-converter/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		app.logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration, sets up logging and metrics, and builds
// the application with all of its dependencies.
func initializeApp() (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	app, err := newApplication(cfg, l, observability.NewMetrics(), prometheus.DefaultGatherer)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}
