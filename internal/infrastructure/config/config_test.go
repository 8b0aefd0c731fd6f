package config

import (
	"context"
	"os"
	"testing"
	"time"
)

// unsetenv clears a variable for the test; t.Setenv first so the original
// value is restored afterwards.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "PORT", "AUTH_ENABLED", "REDIS_TIMEOUT", "DB_ACQUIRE_TIMEOUT")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3001" {
		t.Fatalf("expected default port 3001, got %q", cfg.Port)
	}
	if cfg.AuthEnabled {
		t.Fatalf("auth should default to disabled")
	}
	if cfg.Redis.Timeout != 5*time.Second {
		t.Fatalf("expected default redis timeout 5s, got %v", cfg.Redis.Timeout)
	}
	if cfg.Database.AcquireTimeout != 5*time.Second {
		t.Fatalf("expected default acquire timeout 5s, got %v", cfg.Database.AcquireTimeout)
	}
}

func TestLoad_RedisTimeoutOverride(t *testing.T) {
	t.Setenv("REDIS_TIMEOUT", "250ms")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Redis.Timeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.Redis.Timeout)
	}
}

func TestLoad_AuthRequiresSessionSecret(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for enabled auth without a session secret")
	}

	t.Setenv("SESSION_SECRET", "super-secret")
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.AuthEnabled || cfg.SessionSecret != "super-secret" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
