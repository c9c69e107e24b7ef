package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Defaults enforced at the input-validation boundary.
const (
	DefaultLeadHours = 0
	MaxLeadHours     = 168
)

// Config keeps runtime settings for the service.
type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	UploadDir       string
	JWTSecret       string
	TokenTTL        time.Duration
	ReminderHorizon time.Duration
	DigestInterval  time.Duration
	DigestTime      string
	TelegramToken   string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:        strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		UploadDir:       strings.TrimSpace(os.Getenv("UPLOAD_DIR")),
		JWTSecret:       strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:        parseHours(strings.TrimSpace(os.Getenv("TOKEN_TTL_HOURS"))),
		ReminderHorizon: parseHours(strings.TrimSpace(os.Getenv("REMINDER_HORIZON_HOURS"))),
		DigestInterval:  parseHours(strings.TrimSpace(os.Getenv("DIGEST_INTERVAL_HOURS"))),
		DigestTime:      strings.TrimSpace(os.Getenv("DIGEST_TIME")),
		TelegramToken:   strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "student_app.db"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.ReminderHorizon == 0 {
		cfg.ReminderHorizon = 7 * 24 * time.Hour
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func parseHours(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
