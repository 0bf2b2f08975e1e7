package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Display   DisplayConfig   `mapstructure:"display" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1,lte=300"`
}

// DisplayConfig controls how conversion results are rendered.
type DisplayConfig struct {
	// Precision is the number of decimal places results are rounded to.
	Precision int `mapstructure:"precision" validate:"gte=0,lte=12"`
}

// RateLimitConfig configures the per-client request limiter.
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Capacity      int  `mapstructure:"capacity" validate:"required_if=Enabled true,gte=0"`
	RefillSeconds int  `mapstructure:"refill_seconds" validate:"required_if=Enabled true,gte=0"`
}
