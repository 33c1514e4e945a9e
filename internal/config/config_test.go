package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/restometrics")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.SessionTTL != 7*24*time.Hour {
		t.Fatalf("expected 7 day session TTL, got %v", cfg.SessionTTL)
	}
	if cfg.ExternalTimeout != 10*time.Second {
		t.Fatalf("expected 10s external timeout, got %v", cfg.ExternalTimeout)
	}
	if cfg.DefaultCity != "Almaty" {
		t.Fatalf("expected default city Almaty, got %q", cfg.DefaultCity)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Fatalf("expected default allowed origins")
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432/app")
	t.Setenv("PORT", "9090")
	t.Setenv("EXTERNAL_TIMEOUT", "3s")
	t.Setenv("DEFAULT_CITY", "Astana")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.ExternalTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.ExternalTimeout)
	}
	if cfg.DefaultCity != "Astana" {
		t.Fatalf("expected Astana, got %q", cfg.DefaultCity)
	}
}

func TestLoadDoesNotLeakStateBetweenCalls(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432/app")

	t.Setenv("PORT", "9090")
	first, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", first.Port)
	}

	if err := os.Unsetenv("PORT"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Port != "8080" {
		t.Fatalf("a later load must fall back to the default, got %q", second.Port)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}
