package config_test

import (
	"testing"

	"github.com/antigravity/Trading-Journal-Backend/internal/config"
)

// TestLoad_CORSOrigins tests that allowed origins come from the
// environment, with the local development origins as the default.
func TestLoad_CORSOrigins(t *testing.T) {
	t.Run("defaults to local development origins", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		want := []string{"http://localhost:3000", "http://localhost"}
		if len(cfg.CORS.AllowedOrigins) != len(want) {
			t.Fatalf("AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
		}
		for i, origin := range want {
			if cfg.CORS.AllowedOrigins[i] != origin {
				t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.CORS.AllowedOrigins[i], origin)
			}
		}
	})

	t.Run("reads comma-separated origins from the environment", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://journal.example.com, http://localhost:8080")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		want := []string{"https://journal.example.com", "http://localhost:8080"}
		if len(cfg.CORS.AllowedOrigins) != len(want) {
			t.Fatalf("AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
		}
		for i, origin := range want {
			if cfg.CORS.AllowedOrigins[i] != origin {
				t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.CORS.AllowedOrigins[i], origin)
			}
		}
	})
}

// TestLoad_InvalidFloat tests that a malformed rate fails loading
// instead of silently falling back.
func TestLoad_InvalidFloat(t *testing.T) {
	t.Setenv("TAX_RATE", "twenty-six percent")

	if _, err := config.Load(); err == nil {
		t.Error("Expected error for malformed TAX_RATE")
	}
}
