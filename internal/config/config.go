package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned by Load when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Config holds the process-wide settings resolved at startup.
type Config struct {
	AppPort          string
	DatabaseDriver   string
	DatabaseDSN      string
	JWTSecret        string
	JWTTTL           time.Duration
	EnforceOwnership bool
	RabbitMQURL      string
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments use the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromViper(viper.New())
}

// FromViper resolves the configuration from v, applying defaults for unset keys.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "staffdir.db")
	v.SetDefault("JWT_TTL", "3h")
	v.SetDefault("ENFORCE_OWNERSHIP", false)
	v.SetDefault("RABBITMQ_URL", "")
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		DatabaseDriver:   v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTTTL:           v.GetDuration("JWT_TTL"),
		EnforceOwnership: v.GetBool("ENFORCE_OWNERSHIP"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.JWTTTL <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL %q", v.GetString("JWT_TTL"))
	}
	switch cfg.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	return cfg, nil
}
