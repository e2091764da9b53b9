package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// Configured reports whether an outbound mail transport was provided.
// Email stays best-effort and disabled without it.
func (s SMTP) Configured() bool { return s.Host != "" && s.From != "" }

type Config struct {
	Env         string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	BaseURL     string
	SMTP        SMTP
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      24 * time.Hour,
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		SMTP: SMTP{
			Host: os.Getenv("SMTP_HOST"),
			Port: getEnv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			From: os.Getenv("SMTP_FROM"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
		}
		cfg.JWTTTL = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
