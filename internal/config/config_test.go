package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "SERVICE_NAME", "VERSION",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_MAX_CONNS",
	"DB_MAX_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "AUTO_MIGRATE", "API_KEY",
	"TRUSTED_PROXIES", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "COST_MAX_LAYERS",
	"JOB_CACHE_SIZE", "JOB_CACHE_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// clearEnvVars blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, 5, cfg.CostMaxLayers)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.True(t, cfg.AutoMigrate)
		assert.Equal(t, "test-key", cfg.APIKey)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("COST_MAX_LAYERS", "8")
		t.Setenv("REQUEST_TIMEOUT", "3s")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")
		t.Setenv("AUTO_MIGRATE", "false")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 8, cfg.CostMaxLayers)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.False(t, cfg.AutoMigrate)
		assert.Contains(t, cfg.GetDBConnString(), "db.example.com:5433")
	})

	t.Run("fails without API key", func(t *testing.T) {
		clearEnvVars(t)

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	t.Run("fails on malformed numbers", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("PORT", "not-a-number")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:           8080,
			APIKey:         "k",
			CostMaxLayers:  5,
			RequestTimeout: time.Second,
			DBMaxConns:     1,
			JobCacheSize:   1,
			RateLimitRPS:   1,
			RateLimitBurst: 1,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"zero layers", func(c *Config) { c.CostMaxLayers = 0 }, "COST_MAX_LAYERS"},
		{"too many layers", func(c *Config) { c.CostMaxLayers = 21 }, "COST_MAX_LAYERS"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"no timeout", func(c *Config) { c.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"no rate", func(c *Config) { c.RateLimitRPS = 0 }, "RATE_LIMIT"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
