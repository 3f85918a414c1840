package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "s3cret",
		"DATABASE_URL": "postgres://localhost/pos",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 8, cfg.Auth.LoginAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LoginWindow)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "s3cret",
		"DATABASE_URL":   "postgres://db/pos",
		"ENV":            "production",
		"TOKEN_TTL":      "1h",
		"CORS_ORIGINS":   "https://admin.example.com,https://ops.example.com",
		"RUN_MIGRATIONS": "false",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.RunMigrations)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://admin.example.com", "https://ops.example.com"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_RequiresSecrets(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"DATABASE_URL": "postgres://localhost/pos",
	}))
	assert.Error(t, err)

	_, err = load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	assert.Error(t, err)
}

func TestLoad_RejectsZeroAttempts(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":         "s3cret",
		"DATABASE_URL":       "postgres://localhost/pos",
		"LOGIN_MAX_ATTEMPTS": "0",
	}))
	assert.Error(t, err)
}
