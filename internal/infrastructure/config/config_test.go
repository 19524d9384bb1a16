package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)

	// Engine config
	assert.Equal(t, uint64(1_000_000), cfg.Engine.TrialBound)
	assert.Equal(t, 0, cfg.Engine.RandomBases)
	assert.Equal(t, 30*time.Second, cfg.Engine.FactorTimeout)
	assert.Equal(t, int64(10_000_000), cfg.Engine.MaxListLimit)
	assert.Equal(t, 8, cfg.Engine.BatchConcurrency)
	assert.Equal(t, uint64(200_000_000), cfg.Engine.IterationLimit)
	assert.NoError(t, cfg.Engine.Validate())
}

func TestLoadMatchesDefault(t *testing.T) {
	// With nothing set, envconfig defaults and Default agree
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                       "9000",
		"HOST":                       "127.0.0.1",
		"LOG_LEVEL":                  "debug",
		"LOG_DEV":                    "true",
		"RATE_LIMIT_RPS":             "500",
		"RATE_LIMIT_BURST":           "1000",
		"RATE_LIMIT_ENABLED":         "false",
		"ENGINE_TRIAL_BOUND":         "5000",
		"ENGINE_RANDOM_BASES":        "4",
		"ENGINE_SEED":                "42",
		"ENGINE_FACTOR_TIMEOUT":      "2m",
		"ENGINE_MAX_LIST_LIMIT":      "1000",
		"ENGINE_BATCH_CONCURRENCY":   "2",
		"ENGINE_RHO_ITERATION_LIMIT": "1000",
	}

	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)

	s := cfg.Engine.Settings()
	assert.Equal(t, uint64(5000), s.TrialBound)
	assert.Equal(t, 4, s.RandomBases)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, 2*time.Minute, s.FactorTimeout)
	assert.Equal(t, int64(1000), s.MaxListLimit)
	assert.Equal(t, 2, s.BatchConcurrency)
	assert.Equal(t, uint64(1000), s.IterationLimit)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	err := os.Setenv("PORT", "3000")
	require.NoError(t, err)
	defer os.Unsetenv("PORT")

	err = os.Setenv("LOG_LEVEL", "warn")
	require.NoError(t, err)
	defer os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Verify default values still apply
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, uint64(1_000_000), cfg.Engine.TrialBound)
}

func TestServerConfig(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		host     string
		wantPort string
		wantHost string
	}{
		{
			name:     "default values",
			wantPort: "8000",
			wantHost: "0.0.0.0",
		},
		{
			name:     "custom port",
			port:     "9000",
			wantPort: "9000",
			wantHost: "0.0.0.0",
		},
		{
			name:     "custom port and host",
			port:     "3000",
			host:     "127.0.0.1",
			wantPort: "3000",
			wantHost: "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("PORT")
			os.Unsetenv("HOST")

			if tt.port != "" {
				require.NoError(t, os.Setenv("PORT", tt.port))
				defer os.Unsetenv("PORT")
			}
			if tt.host != "" {
				require.NoError(t, os.Setenv("HOST", tt.host))
				defer os.Unsetenv("HOST")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantHost, cfg.Server.Host)
		})
	}
}

func TestEngineValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"trial bound too small", "ENGINE_TRIAL_BOUND", "1"},
		{"negative random bases", "ENGINE_RANDOM_BASES", "-1"},
		{"zero timeout", "ENGINE_FACTOR_TIMEOUT", "0s"},
		{"list limit too small", "ENGINE_MAX_LIST_LIMIT", "1"},
		{"no concurrency", "ENGINE_BATCH_CONCURRENCY", "0"},
		{"malformed duration", "ENGINE_FACTOR_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.Setenv(tt.key, tt.value))
			defer os.Unsetenv(tt.key)

			_, err := Load()
			assert.Error(t, err)

			// LoadOrDefault falls back rather than failing
			cfg := LoadOrDefault()
			assert.Equal(t, Default(), cfg)
		})
	}
}
