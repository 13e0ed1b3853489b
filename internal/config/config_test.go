package config_test

import (
	"testing"
	"time"

	"staffdir/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 3*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.EnforceOwnership)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestFromViper_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.FromViper(viper.New())
	assert.ErrorIs(t, err, config.ErrMissingJWTSecret)
}

func TestFromViper_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("ENFORCE_OWNERSHIP", "true")
	t.Setenv("JWT_TTL", "90m")

	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.True(t, cfg.EnforceOwnership)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
}

func TestFromViper_RejectsUnknownDriver(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("DATABASE_DRIVER", "mongodb")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}
