package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	errInvalidPort         = errors.New("config: invalid PORT number")
	errFetchTimeoutTooLow  = errors.New("config: FETCH_TIMEOUT must be at least 1s")
	errFetchTimeoutTooHigh = errors.New("config: FETCH_TIMEOUT must be at most 120s")
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port     string
	LogLevel string

	// PublicHost is the hostname this service is reachable at. The link
	// classifier matches hrefs against it when splitting internal from
	// external links, mirroring the behavior of the original checker which
	// compared against its own origin rather than the audited site's.
	PublicHost string

	FetchTimeout time.Duration
	UserAgent    string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "ERROR"),
		PublicHost:   getEnv("PUBLIC_HOST", "localhost"),
		FetchTimeout: getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second),
		UserAgent:    getEnv("USER_AGENT", "SEOAuditBot/1.0"),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.FetchTimeout < time.Second {
		return fmt.Errorf("%w: got %s", errFetchTimeoutTooLow, c.FetchTimeout)
	}
	if c.FetchTimeout > 120*time.Second {
		return fmt.Errorf("%w: got %s", errFetchTimeoutTooHigh, c.FetchTimeout)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return v
}
