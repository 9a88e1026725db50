package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the portal backend.
type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	TokenTTL          time.Duration
	TelegramToken     string
	DigestTime        string
	DocumentRetention time.Duration
	PurgeInterval     time.Duration
}

// Load reads configuration from the environment (and an optional .env file)
// with sane defaults.
func Load() (Config, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := Config{
		Addr:              envOrDefault("LASTMINUTE_ADDR", ":8080"),
		DatabaseURL:       envOrDefault("DATABASE_URL", "lastminute.db"),
		JWTSecret:         strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:          parseHours(os.Getenv("TOKEN_TTL_HOURS"), 72*time.Hour),
		TelegramToken:     strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DigestTime:        envOrDefault("DIGEST_TIME", "08:00"),
		DocumentRetention: parseHours(os.Getenv("DOCUMENT_RETENTION_HOURS"), 30*24*time.Hour),
		PurgeInterval:     parseHours(os.Getenv("PURGE_INTERVAL_HOURS"), 24*time.Hour),
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func parseHours(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return fallback
	}
	return time.Duration(hours) * time.Hour
}
