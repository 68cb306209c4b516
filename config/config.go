package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL            string
	Port             string
	LogLevel         log.Level
	ScenarioCacheTTL time.Duration
}

// Load reads configuration from environment variables. A .env file in the
// working directory is read first; variables already set in the shell win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	level := log.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		parsed, err := log.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
		}
		level = parsed
	}

	ttl := 5 * time.Minute
	if s := os.Getenv("SCENARIO_CACHE_TTL"); s != "" {
		parsed, err := time.ParseDuration(s)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid SCENARIO_CACHE_TTL %q", s)
		}
		ttl = parsed
	}

	return &Config{
		PGURL:            pgURL,
		Port:             port,
		LogLevel:         level,
		ScenarioCacheTTL: ttl,
	}, nil
}
