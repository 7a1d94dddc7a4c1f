package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
		"REDIS_ADDR", "CACHE_TTL", "CACHE_CLEANUP_INTERVAL",
		"DATABASE_PATH", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ReadTimeout != 15*time.Second || cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected timeouts: %+v", cfg.HTTP)
	}
	if cfg.RateLimit.Requests != 5 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("unexpected rate limit: %+v", cfg.RateLimit)
	}
	if cfg.Cache.RedisAddr != "" || cfg.Cache.TTL != 15*time.Minute {
		t.Errorf("unexpected cache config: %+v", cfg.Cache)
	}
	if cfg.Database.Path != "" {
		t.Errorf("expected in-memory scenarios by default, got %q", cfg.Database.Path)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("RATE_LIMIT_REQUESTS", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("DATABASE_PATH", "/tmp/scenarios.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.HTTP.Addr)
	}
	if cfg.RateLimit.Requests != 20 || cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("unexpected rate limit: %+v", cfg.RateLimit)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" || cfg.Cache.TTL != time.Hour {
		t.Errorf("unexpected cache config: %+v", cfg.Cache)
	}
	if cfg.Database.Path != "/tmp/scenarios.db" {
		t.Errorf("unexpected database path %q", cfg.Database.Path)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_REQUESTS", "many")
	t.Setenv("CACHE_TTL", "forever")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected an error")
	}

	for _, want := range []string{"RATE_LIMIT_REQUESTS", "CACHE_TTL", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got %v", want, err)
		}
	}
}

func TestLoad_RejectsZeroRateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_REQUESTS", "0")

	if _, err := Load(); err == nil {
		t.Errorf("expected an error for a zero rate limit")
	}
}
