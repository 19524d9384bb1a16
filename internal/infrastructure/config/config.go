package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Engine    EngineConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
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

// EngineConfig tunes the primality oracle, the factorization engine and the
// limits the math provider enforces.
type EngineConfig struct {
	TrialBound       uint64        `envconfig:"ENGINE_TRIAL_BOUND" default:"1000000"`
	RandomBases      int           `envconfig:"ENGINE_RANDOM_BASES" default:"0"`
	Seed             uint64        `envconfig:"ENGINE_SEED" default:"0"`
	FactorTimeout    time.Duration `envconfig:"ENGINE_FACTOR_TIMEOUT" default:"30s"`
	MaxListLimit     int64         `envconfig:"ENGINE_MAX_LIST_LIMIT" default:"10000000"`
	BatchConcurrency int           `envconfig:"ENGINE_BATCH_CONCURRENCY" default:"8"`
	IterationLimit   uint64        `envconfig:"ENGINE_RHO_ITERATION_LIMIT" default:"200000000"`
}

// Settings converts the engine configuration for the math provider.
func (e EngineConfig) Settings() common.Settings {
	return common.Settings{
		TrialBound:       e.TrialBound,
		RandomBases:      e.RandomBases,
		Seed:             e.Seed,
		IterationLimit:   e.IterationLimit,
		MaxListLimit:     e.MaxListLimit,
		FactorTimeout:    e.FactorTimeout,
		BatchConcurrency: e.BatchConcurrency,
	}
}

// Validate rejects engine settings the provider cannot run with.
func (e EngineConfig) Validate() error {
	if e.TrialBound < 2 {
		return fmt.Errorf("ENGINE_TRIAL_BOUND must be at least 2, got %d", e.TrialBound)
	}
	if e.RandomBases < 0 {
		return fmt.Errorf("ENGINE_RANDOM_BASES must not be negative, got %d", e.RandomBases)
	}
	if e.FactorTimeout <= 0 {
		return fmt.Errorf("ENGINE_FACTOR_TIMEOUT must be positive, got %s", e.FactorTimeout)
	}
	if e.MaxListLimit < 2 {
		return fmt.Errorf("ENGINE_MAX_LIST_LIMIT must be at least 2, got %d", e.MaxListLimit)
	}
	if e.BatchConcurrency < 1 {
		return fmt.Errorf("ENGINE_BATCH_CONCURRENCY must be at least 1, got %d", e.BatchConcurrency)
	}
	return nil
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
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
	s := common.DefaultSettings()
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
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
		Engine: EngineConfig{
			TrialBound:       s.TrialBound,
			RandomBases:      s.RandomBases,
			Seed:             s.Seed,
			FactorTimeout:    s.FactorTimeout,
			MaxListLimit:     s.MaxListLimit,
			BatchConcurrency: s.BatchConcurrency,
			IterationLimit:   s.IterationLimit,
		},
	}
}
