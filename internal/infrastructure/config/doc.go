// Package config provides 12-factor configuration management for the calculator backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host, body limit)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Storage: SQLite database path
//   - Calculator: Default angle unit, precision and limits
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST, MAX_BODY_BYTES, SHUTDOWN_TIMEOUT
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - CALC_DB_PATH
//   - CALC_DEFAULT_UNIT, CALC_DEFAULT_PRECISION, CALC_MAX_PRECISION
//   - CALC_MAX_EXPRESSION, CALC_HISTORY_LIMIT
package config
