package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/unit-converter/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	slog.Debug("Display and rate limit configuration",
		"precision", cfg.Display.Precision,
		"rate_limit_enabled", cfg.RateLimit.Enabled,
		"rate_limit_capacity", cfg.RateLimit.Capacity)

	return cfg, nil
}
