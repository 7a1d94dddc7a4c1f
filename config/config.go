package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP      HTTPConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// RateLimitConfig allows Requests per client every Window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// CacheConfig selects redis when RedisAddr is set and the in-process cache
// otherwise.
type CacheConfig struct {
	RedisAddr       string
	TTL             time.Duration
	CleanupInterval time.Duration
}

// DatabaseConfig points at the SQLite file for saved scenarios. An empty
// Path keeps scenarios in memory.
type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultAddr            = ":8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultRateLimit       = 5
	defaultRateWindow      = time.Minute
	defaultCacheTTL        = 15 * time.Minute
	defaultCacheCleanup    = 30 * time.Minute
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

// Load reads a .env file when one exists, then builds the configuration from
// environment variables, applying defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	var errs []error
	cfg := Config{
		HTTP: HTTPConfig{
			Addr:            getEnv("HTTP_ADDR", defaultAddr),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", defaultReadTimeout, &errs),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", defaultWriteTimeout, &errs),
			IdleTimeout:     getEnvAsDuration("HTTP_IDLE_TIMEOUT", defaultIdleTimeout, &errs),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", defaultShutdownTimeout, &errs),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", defaultRateLimit, &errs),
			Window:   getEnvAsDuration("RATE_LIMIT_WINDOW", defaultRateWindow, &errs),
		},
		Cache: CacheConfig{
			RedisAddr:       os.Getenv("REDIS_ADDR"),
			TTL:             getEnvAsDuration("CACHE_TTL", defaultCacheTTL, &errs),
			CleanupInterval: getEnvAsDuration("CACHE_CLEANUP_INTERVAL", defaultCacheCleanup, &errs),
		},
		Database: DatabaseConfig{
			Path: os.Getenv("DATABASE_PATH"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", defaultLogLevel),
			Format: getEnv("LOG_FORMAT", defaultLogFormat),
		},
	}

	if cfg.RateLimit.Requests < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", cfg.RateLimit.Requests))
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.Logging.Format))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int, errs *[]error) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, valueStr))
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, valueStr))
		return fallback
	}
	return value
}
