package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Backup env and restore after test
	oldPort := os.Getenv("PORT")
	oldProxy := os.Getenv("TRUST_PROXY")
	defer func() {
		_ = os.Setenv("PORT", oldPort)
		_ = os.Setenv("TRUST_PROXY", oldProxy)
	}()

	t.Run("Defaults", func(t *testing.T) {
		_ = os.Unsetenv("PORT")
		_ = os.Unsetenv("TRUST_PROXY")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Port != 8000 {
			t.Errorf("Expected default Port 8000, got %d", cfg.Port)
		}
		if cfg.TrustProxy {
			t.Error("Expected TrustProxy disabled by default")
		}
		if addr := cfg.ListenAddr(); addr != ":8000" {
			t.Errorf("Expected ListenAddr :8000, got %s", addr)
		}
	})

	t.Run("Env Overrides", func(t *testing.T) {
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("TRUST_PROXY", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Port != 9090 {
			t.Errorf("Expected Port 9090, got %d", cfg.Port)
		}
		if !cfg.TrustProxy {
			t.Error("Expected TrustProxy enabled")
		}
	})

	t.Run("Invalid Port", func(t *testing.T) {
		for _, port := range []string{"abc", "-1", "0", "70000"} {
			_ = os.Setenv("PORT", port)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for PORT=%q", port)
			}
		}
	})
}
