package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	DefaultLocale string
	CareersPath   string
	ReminderSpec  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "modonty-admin"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "ar"),
		CareersPath:   getEnv("CAREERS_CONTENT_PATH", "content/careers.md"),
		ReminderSpec:  getEnv("REMINDER_CRON_SPEC", "@every 1h"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
