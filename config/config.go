package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	APIBaseURL     string
	RequestTimeout time.Duration
	StoreBackend   string // "file" or "redis"
	StoreFile      string
	RedisURL       string
	StateTTL       time.Duration
}

// Load reads configuration from the .env file and environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "3000"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		StoreBackend:   getEnv("STORE_BACKEND", "file"),
		StoreFile:      getEnv("STORE_FILE", "storefront-state.json"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		StateTTL:       getDuration("STATE_TTL", time.Hour*24*7),
	}
}

// Helper to get an environment variable or return a default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}
