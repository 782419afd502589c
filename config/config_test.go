package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_PORT", "APP_ENV", "LOG_LEVEL",
	"DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"REDIS_ENABLED", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_CACHE_TTL",
	"CORS_ALLOWED_ORIGINS",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "hospital.db", cfg.DB.Path)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_NoEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "5001", cfg.App.Port)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_PORT=6001\nDB_PATH=/tmp/clinic.db\nREDIS_CACHE_TTL=bogus\n"), 0o600))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "6001", cfg.App.Port)
	assert.Equal(t, "/tmp/clinic.db", cfg.DB.Path)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)

	t.Setenv("APP_PORT", "7001")
	cfg, err = LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.App.Port, "environment wins over the env file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}, "Driver must be one of"},
		{"non-numeric port", map[string]string{"APP_PORT": "http"}, "Port must be numeric"},
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}, "LogLevel must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig("")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
