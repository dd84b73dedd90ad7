package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://localhost/medirent_test")
	setEnv(t, "ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.DBMaxConns != 20 || cfg.DBMinConns != 5 {
		t.Errorf("pool defaults = %d/%d, want 20/5", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.ExpiryWindowDays != 30 {
		t.Errorf("ExpiryWindowDays = %d, want 30", cfg.ExpiryWindowDays)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setEnv(t, "DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestResolvedAuthMode(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		authMode string
		want     string
	}{
		{"explicit wins", "production", "development", "development"},
		{"dev inferred", "development", "", "development"},
		{"production inferred", "production", "", "jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Env: tt.env, AuthMode: tt.authMode}
			if got := cfg.ResolvedAuthMode(); got != tt.want {
				t.Errorf("ResolvedAuthMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Env: "production"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when JWT_SECRET missing in jwt mode")
	}

	cfg.JWTSecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate with secret: %v", err)
	}

	cfg.ExpiryWindowDays = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative expiry window")
	}

	dev := &Config{Env: "development"}
	if err := dev.Validate(); err != nil {
		t.Errorf("development mode should not require a secret: %v", err)
	}

	bad := &Config{Env: "production", AuthMode: "saml"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown auth mode")
	}
}
