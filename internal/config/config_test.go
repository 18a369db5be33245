package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8090", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.Equal(t, 100000, cfg.Sampling.MaxSamples)
	assert.Equal(t, 256, cfg.Sampling.BatchSize)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "8090", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("AIN_PORT", "9000")
	t.Setenv("AIN_HOST", "127.0.0.1")
	t.Setenv("AIN_LOG_LEVEL", "debug")
	t.Setenv("AIN_LOG_FORMAT", "console")
	t.Setenv("AIN_RATE_LIMIT_RPS", "500")
	t.Setenv("AIN_RATE_LIMIT_BURST", "1000")
	t.Setenv("AIN_RATE_LIMIT_ENABLED", "false")
	t.Setenv("AIN_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("AIN_MAX_SAMPLES", "500")
	t.Setenv("AIN_WS_BATCH_SIZE", "64")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins)
	assert.Equal(t, 500, cfg.Sampling.MaxSamples)
	assert.Equal(t, 64, cfg.Sampling.BatchSize)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	t.Setenv("AIN_PORT", "3000")
	t.Setenv("AIN_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// overridden values
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// defaults still apply
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestSamplingConfig(t *testing.T) {
	tests := []struct {
		name       string
		maxSamples string
		batchSize  string
		wantMax    int
		wantBatch  int
	}{
		{
			name:      "default values",
			wantMax:   100000,
			wantBatch: 256,
		},
		{
			name:       "custom cap",
			maxSamples: "2500",
			wantMax:    2500,
			wantBatch:  256,
		},
		{
			name:       "custom batch",
			maxSamples: "",
			batchSize:  "32",
			wantMax:    100000,
			wantBatch:  32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.maxSamples != "" {
				t.Setenv("AIN_MAX_SAMPLES", tt.maxSamples)
			}
			if tt.batchSize != "" {
				t.Setenv("AIN_WS_BATCH_SIZE", tt.batchSize)
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantMax, cfg.Sampling.MaxSamples)
			assert.Equal(t, tt.wantBatch, cfg.Sampling.BatchSize)
		})
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("AIN_MAX_SAMPLES", "not-a-number")

	_, err := Load()
	require.Error(t, err)

	// LoadOrDefault falls back instead of failing
	cfg := LoadOrDefault()
	assert.Equal(t, Default().Sampling.MaxSamples, cfg.Sampling.MaxSamples)
}
