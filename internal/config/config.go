package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBPath         string
	SecretKey      string
	ServiceKeyHash string
	TokenTTL       time.Duration
	Location       *time.Location
}

// Load reads configuration from .env (when present) and the environment.
// The reference timezone for calendar days comes from TZ and defaults to UTC;
// it is never inferred from the host clock.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", filepath.Join("data", "quitly.db")),
		SecretKey:      getEnv("SECRET_KEY", "change_me_in_production"),
		ServiceKeyHash: getEnv("SERVICE_KEY_HASH", ""),
		TokenTTL:       getDurationEnv("TOKEN_TTL", 12*time.Hour),
		Location:       mustLoadLocation(getEnv("TZ", "UTC")),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		log.Printf("invalid %s %q, using %s", key, value, fallback)
		return fallback
	}
	return parsed
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
