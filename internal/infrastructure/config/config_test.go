package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SHIELD_KEY", "test-key")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Production() {
		t.Fatal("default env should not be production")
	}
	if cfg.Shield.MaxRequests != 50 {
		t.Fatalf("expected default max requests 50, got %d", cfg.Shield.MaxRequests)
	}
	if cfg.Shield.Window() != 10*time.Minute {
		t.Fatalf("expected 10m window, got %s", cfg.Shield.Window())
	}
}

func TestLoad_MissingJWTSecretPanics(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SHIELD_KEY", "test-key")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when JWT_SECRET is unset")
		}
	}()
	Load()
}

func TestLoad_MissingShieldKeyPanics(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SHIELD_KEY", "")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when SHIELD_KEY is unset")
		}
	}()
	Load()
}

func TestProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SHIELD_KEY", "test-key")
	t.Setenv("ENV", "production")

	cfg := Load()
	if !cfg.Production() {
		t.Fatal("expected production mode when ENV=production")
	}
}
