// Package config provides 12-factor configuration management for the primecore
// service and CLI.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Engine: Trial division bound, witness bases, deadlines and list limits
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	ops := common.NewMathOps(cfg.Engine.Settings(), logger.Logger, metrics)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - ENGINE_TRIAL_BOUND, ENGINE_RANDOM_BASES, ENGINE_SEED, ENGINE_FACTOR_TIMEOUT
//   - ENGINE_MAX_LIST_LIMIT, ENGINE_BATCH_CONCURRENCY, ENGINE_RHO_ITERATION_LIMIT
package config
