package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"clinic-voice-tools/pkg/validator"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	CORS  CORSConfig
}

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	Env      string `validate:"required"`
	LogLevel string `validate:"required,oneof=trace debug info warn warning error"`
}

type DBConfig struct {
	Driver   string `validate:"required,oneof=sqlite postgres"`
	Path     string `validate:"required_if=Driver sqlite"`
	Host     string `validate:"required_if=Driver postgres"`
	Port     string `validate:"required_if=Driver postgres"`
	User     string
	Password string
	Name     string `validate:"required_if=Driver postgres"`
	SSLMode  string
}

type RedisConfig struct {
	Enabled  bool
	Host     string `validate:"required_if=Enabled true"`
	Port     string `validate:"required_if=Enabled true"`
	Password string
	DB       int           `validate:"gte=0"`
	CacheTTL time.Duration `validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads envFile when it exists and overlays environment variables.
// A missing env file is not an error.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	cacheTTL, err := time.ParseDuration(v.GetString("REDIS_CACHE_TTL"))
	if err != nil {
		cacheTTL = 10 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		DB: DBConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Path:     v.GetString("DB_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			CacheTTL: cacheTTL,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := validator.NewValidator().Validate(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "hospital.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "hospital")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_CACHE_TTL", "10m")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
