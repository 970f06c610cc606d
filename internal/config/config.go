// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all settings the server needs at startup.
type Config struct {
	Addr       string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	UploadDir  string
}

// Load reads configuration from environment variables, applying defaults
// where appropriate. JWT_SECRET is required and must be long enough for
// HMAC-SHA256.
func Load() (*Config, error) {
	addr := envString("INKPOST_ADDR", "")
	if addr == "" {
		addr = ":" + envString("PORT", "8080")
	}

	cfg := &Config{
		Addr:       addr,
		DBPath:     envString("DATABASE_PATH", "inkpost.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   envDuration("TOKEN_TTL", 7*24*time.Hour),
		BcryptCost: envInt("BCRYPT_COST", 12),
		UploadDir:  envString("UPLOAD_DIR", "uploads"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
