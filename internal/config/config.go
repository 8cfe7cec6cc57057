// Package config loads process-wide configuration from the environment.
// The resulting Config is immutable after Load and shared by every request.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings the server needs. It is populated once at
// startup and never mutated afterwards.
type Config struct {
	Port         string
	DatabasePath string

	// JWTSecret signs session tokens. Required, minimum 32 bytes.
	JWTSecret string

	// TokenTTL is the lifetime embedded in issued session tokens. Note
	// that the session cookie carries its own fixed max-age; the default
	// TTL of 24h keeps the two in agreement.
	TokenTTL time.Duration

	BcryptCost int

	// CookieSecure disables the Secure cookie attribute when false.
	// Only meant for local development over plain HTTP.
	CookieSecure bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "gatehouse.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
	}

	ttl, err := getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	cost, err := getEnvAsInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}
	cfg.BcryptCost = cost

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRY must be positive, got %s", c.TokenTTL)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
