package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MemoryDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PGSQL_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PLATFORM_FEE_RATE", "0.01")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("IDEMPOTENCY_TTL", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.True(t, cfg.PlatformFeeRate.Equal(decimal.RequireFromString("0.01")))
	assert.True(t, cfg.AllowApproveFromHeld)
	assert.Equal(t, "platform-treasury", cfg.TreasuryAccountID)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfig_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"postgres without url":     {"STORE_DRIVER": "postgres", "PGSQL_URL": ""},
		"unknown driver":           {"STORE_DRIVER": "sqlite"},
		"fee rate too high":        {"STORE_DRIVER": "memory", "PLATFORM_FEE_RATE": "1"},
		"fee rate not a number":    {"STORE_DRIVER": "memory", "PLATFORM_FEE_RATE": "abc"},
		"fee without treasury":     {"STORE_DRIVER": "memory", "PLATFORM_FEE_RATE": "0.02", "TREASURY_ACCOUNT_ID": " "},
		"production without token": {"STORE_DRIVER": "memory", "IS_PRODUCTION": "true", "JWT_SECRET": ""},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("PGSQL_URL", "")
			t.Setenv("JWT_SECRET", "x")
			t.Setenv("PLATFORM_FEE_RATE", "0")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_GeneratesDevSecret(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IS_PRODUCTION", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Len(t, cfg.JWTSecret, 64)
}
