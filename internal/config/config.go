package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	FootballAPIBaseURL string
	FootballAPIKey     string
	LogLevel           string
	FetchWindowDays    int
	AllowedOrigins     string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:matchday.db"),
		FootballAPIBaseURL: envOr("FOOTBALL_API_BASE_URL", "https://apiv2.apifootball.com/"),
		FootballAPIKey:     envOr("FOOTBALL_API_KEY", ""),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		FetchWindowDays:    envIntOr("FETCH_WINDOW_DAYS", 30),
		AllowedOrigins:     envOr("ALLOWED_ORIGINS", "*"),
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.FootballAPIBaseURL == "" {
		return fmt.Errorf("FOOTBALL_API_BASE_URL cannot be empty")
	}
	if c.FetchWindowDays <= 0 {
		return fmt.Errorf("FETCH_WINDOW_DAYS must be positive, got %d", c.FetchWindowDays)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
