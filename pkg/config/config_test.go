package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "STORE_API_TIMEOUT", "SESSION_BACKEND", "SESSION_TTL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.AppEnv != "dev" || cfg.HTTPPort != 8080 || cfg.SessionBackend != "memory" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.StoreAPITimeout != 15*time.Second || cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("unexpected duration defaults %+v", cfg)
	}
	if cfg.SecureCookies() {
		t.Fatalf("dev must not force secure cookies")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_API_TIMEOUT", "3s")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()
	if cfg.HTTPPort != 9090 || cfg.StoreAPITimeout != 3*time.Second || cfg.SessionBackend != "redis" || cfg.RedisDB != 2 {
		t.Fatalf("overrides not applied %+v", cfg)
	}
	if !cfg.SecureCookies() {
		t.Fatalf("prod should use secure cookies")
	}
}

func TestLoadFallsBackOnGarbage(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("SESSION_TTL", "-5m")
	t.Setenv("STORE_API_TIMEOUT", "soon")

	cfg := Load()
	if cfg.HTTPPort != 8080 || cfg.SessionTTL != 24*time.Hour || cfg.StoreAPITimeout != 15*time.Second {
		t.Fatalf("expected fallbacks, got %+v", cfg)
	}
}
