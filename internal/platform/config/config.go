package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/utils"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	StoreDriver       string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Marketplace policy
	TreasuryAccountID    string
	PlatformFeeRate      decimal.Decimal
	AllowApproveFromHeld bool

	// Optional administrator created at startup when it does not exist yet.
	AdminUsername string
	AdminPassword string

	// Request handling
	RedisURL           string
	IdempotencyTTL     time.Duration
	CORSAllowedOrigins []string
	RateLimit          string
	LoginRateLimit     string

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "fastpay-escrow")
	v.SetDefault("TREASURY_ACCOUNT_ID", "platform-treasury")
	v.SetDefault("PLATFORM_FEE_RATE", "0")
	v.SetDefault("ALLOW_APPROVE_FROM_HELD", true)
	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("IDEMPOTENCY_TTL", "24h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		StoreDriver:          strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		TreasuryAccountID:    strings.TrimSpace(v.GetString("TREASURY_ACCOUNT_ID")),
		AllowApproveFromHeld: v.GetBool("ALLOW_APPROVE_FROM_HELD"),
		AdminUsername:        strings.TrimSpace(v.GetString("ADMIN_USERNAME")),
		AdminPassword:        v.GetString("ADMIN_PASSWORD"),
		RedisURL:             v.GetString("REDIS_URL"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		LoginRateLimit:       v.GetString("LOGIN_RATE_LIMIT"),
		PosthogAPIKey:        v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:      v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, configError("PGSQL_URL must be set when STORE_DRIVER is %s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
		log.Println("Warning: STORE_DRIVER is memory, state will not survive a restart.")
	default:
		return nil, configError("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, configError("JWT_SECRET must be set in production")
		}
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
		log.Println("Warning: JWT_SECRET not set. Using a random key, tokens will not survive a restart.")
	}

	cfg.JWTExpiryDuration = durationOr(v.GetString("JWT_EXPIRY_DURATION"), time.Hour, "JWT_EXPIRY_DURATION")
	cfg.IdempotencyTTL = durationOr(v.GetString("IDEMPOTENCY_TTL"), 24*time.Hour, "IDEMPOTENCY_TTL")

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "fastpay-escrow"
	}

	feeRate, err := decimal.NewFromString(strings.TrimSpace(v.GetString("PLATFORM_FEE_RATE")))
	if err != nil {
		return nil, configError("invalid PLATFORM_FEE_RATE: %v", err)
	}
	if feeRate.IsNegative() || feeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, configError("PLATFORM_FEE_RATE must be in [0, 1), got %s", feeRate)
	}
	cfg.PlatformFeeRate = feeRate
	if feeRate.IsPositive() && cfg.TreasuryAccountID == "" {
		return nil, configError("TREASURY_ACCOUNT_ID is required when PLATFORM_FEE_RATE is positive")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if (cfg.AdminUsername == "") != (cfg.AdminPassword == "") {
		log.Println("Warning: ADMIN_USERNAME and ADMIN_PASSWORD must both be set to bootstrap an administrator.")
	}

	return cfg, nil
}

func durationOr(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
