// Package config provides 12-factor configuration for the interval service.
//
// Configuration is loaded from AIN_-prefixed environment variables with
// sensible defaults. CLI flags can override environment variables for
// development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: log level and encoder format
//   - RateLimit: per-IP rate limiting
//   - CORS: allowed origins
//   - Sampling: caps for the sample endpoints
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - AIN_PORT, AIN_HOST
//   - AIN_LOG_LEVEL, AIN_LOG_FORMAT
//   - AIN_RATE_LIMIT_RPS, AIN_RATE_LIMIT_BURST, AIN_RATE_LIMIT_ENABLED
//   - AIN_CORS_ORIGINS, AIN_MAX_SAMPLES, AIN_WS_BATCH_SIZE
package config
