package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Logging    LogConfig
	RateLimit  RateLimitConfig
	Storage    StorageConfig
	Calculator CalculatorConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	MaxBodyBytes    int64         `envconfig:"MAX_BODY_BYTES" default:"65536"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// StorageConfig holds the SQLite database location.
type StorageConfig struct {
	Path string `envconfig:"CALC_DB_PATH" default:"data/calculator.db"`
}

// CalculatorConfig holds evaluation defaults and limits.
type CalculatorConfig struct {
	DefaultUnit      string `envconfig:"CALC_DEFAULT_UNIT" default:"deg"`
	DefaultPrecision int    `envconfig:"CALC_DEFAULT_PRECISION" default:"6"`
	MaxPrecision     int    `envconfig:"CALC_MAX_PRECISION" default:"15"`
	MaxExpression    int    `envconfig:"CALC_MAX_EXPRESSION" default:"512"`
	HistoryLimit     int    `envconfig:"CALC_HISTORY_LIMIT" default:"100"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Host:            "0.0.0.0",
			MaxBodyBytes:    64 << 10,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Storage: StorageConfig{
			Path: "data/calculator.db",
		},
		Calculator: CalculatorConfig{
			DefaultUnit:      "deg",
			DefaultPrecision: 6,
			MaxPrecision:     15,
			MaxExpression:    512,
			HistoryLimit:     100,
		},
	}
}

// Validate checks value ranges envconfig cannot express.
func (c *Config) Validate() error {
	calc := c.Calculator
	if calc.MaxPrecision < 0 {
		return fmt.Errorf("CALC_MAX_PRECISION must be non-negative, got %d", calc.MaxPrecision)
	}
	if calc.DefaultPrecision < 0 || calc.DefaultPrecision > calc.MaxPrecision {
		return fmt.Errorf("CALC_DEFAULT_PRECISION must be between 0 and %d, got %d", calc.MaxPrecision, calc.DefaultPrecision)
	}
	if calc.MaxExpression <= 0 {
		return fmt.Errorf("CALC_MAX_EXPRESSION must be positive, got %d", calc.MaxExpression)
	}
	if calc.HistoryLimit <= 0 {
		return fmt.Errorf("CALC_HISTORY_LIMIT must be positive, got %d", calc.HistoryLimit)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("CALC_DB_PATH must not be empty")
	}
	return nil
}
