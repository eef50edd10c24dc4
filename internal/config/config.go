package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the inventory server
type Config struct {
	// Server configuration
	HTTPAddr string `env:"INVENTORY_HTTP_ADDR" envDefault:"127.0.0.1:5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// MetricsAddr is the listen address of the operational metrics
	// endpoint. Empty disables the metrics listener.
	MetricsAddr string `env:"INVENTORY_METRICS_ADDR"`

	// Database configuration
	Database DatabaseConfig

	// Health monitoring
	Health HealthConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// DatabaseConfig holds SQLite database configuration
type DatabaseConfig struct {
	// Path of the database file, resolved against the working directory.
	// The file is created on first run.
	Path string `env:"INVENTORY_DB_PATH" envDefault:"inventory.db"`

	// Connection pool settings
	MaxOpenConns    int           `env:"INVENTORY_DB_MAX_OPEN_CONNS" envDefault:"1"`
	ConnMaxLifetime time.Duration `env:"INVENTORY_DB_CONN_MAX_LIFETIME" envDefault:"0"`
	BusyTimeout     time.Duration `env:"INVENTORY_DB_BUSY_TIMEOUT" envDefault:"5s"`
}

// HealthConfig holds storage health monitor configuration
type HealthConfig struct {
	CheckInterval time.Duration `env:"INVENTORY_HEALTH_CHECK_INTERVAL" envDefault:"30s"`
	CheckTimeout  time.Duration `env:"INVENTORY_HEALTH_CHECK_TIMEOUT" envDefault:"5s"`
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	ReadHeader time.Duration `env:"TIMEOUT_READ_HEADER" envDefault:"5s"`
	Read       time.Duration `env:"TIMEOUT_READ" envDefault:"10s"`
	Write      time.Duration `env:"TIMEOUT_WRITE" envDefault:"30s"`
	Idle       time.Duration `env:"TIMEOUT_IDLE" envDefault:"60s"`
	Shutdown   time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP listen address is required")
	}

	// Validate database config
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database max open conns must be at least 1")
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database busy timeout must not be negative")
	}

	// Validate health monitor config
	if c.Health.CheckInterval <= 0 {
		return fmt.Errorf("health check interval must be positive")
	}
	if c.Health.CheckTimeout <= 0 {
		return fmt.Errorf("health check timeout must be positive")
	}

	// Validate timeouts
	if c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
