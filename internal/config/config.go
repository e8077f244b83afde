package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultDatabaseURL = "sqlite://workflowpro.db"

// Config holds everything the service reads from the environment. The
// deployment platform injects DATABASE_URL for the managed database; the
// rest comes from the service's own variable group.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecretKey      string
	Algorithm         string
	AccessTokenExpire time.Duration

	RedisURL string
	NATSURL  string

	SendGridAPIKey string
	EmailSender    string

	CORSOrigins []string

	LoginRateWindow time.Duration
	LoginRateLimit  int
}

// Load reads the environment (with .env support for local runs) and
// validates the variables the service cannot start without.
func Load() (*Config, error) {
	// Missing .env is fine; on the platform everything is injected.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              GetEnvAsString("PORT", "8000"),
		DatabaseURL:       GetEnvAsString("DATABASE_URL", defaultDatabaseURL),
		JWTSecretKey:      os.Getenv("JWT_SECRET_KEY"),
		Algorithm:         GetEnvAsString("ALGORITHM", "HS256"),
		AccessTokenExpire: time.Duration(GetEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		RedisURL:          os.Getenv("REDIS_URL"),
		NATSURL:           os.Getenv("NATS_URL"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		EmailSender:       os.Getenv("EMAIL_SENDER"),
		CORSOrigins:       []string{GetEnvAsString("FRONTEND_URL", "http://localhost:3000")},
		LoginRateWindow:   GetEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		LoginRateLimit:    GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 10),
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY must be set")
	}
	// Tokens are signed with the shared secret; only HMAC-SHA256 is supported.
	if cfg.Algorithm != "HS256" {
		return nil, fmt.Errorf("unsupported ALGORITHM %q (only HS256 is supported)", cfg.Algorithm)
	}
	if cfg.AccessTokenExpire <= 0 {
		return nil, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
	}

	return cfg, nil
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
