package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultRedirectURI", func(t *testing.T) {
		t.Setenv("SPOTIFY_CLIENT_ID", "id")
		t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
		t.Setenv("SPOTIFY_REDIRECT_URI", "")

		cfg := Load()
		if cfg.RedirectURI != DefaultRedirectURI {
			t.Errorf("RedirectURI = %q, want %q", cfg.RedirectURI, DefaultRedirectURI)
		}
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		t.Setenv("SPOTIFY_CLIENT_ID", "my-id")
		t.Setenv("SPOTIFY_CLIENT_SECRET", "my-secret")
		t.Setenv("SPOTIFY_REDIRECT_URI", "http://localhost:9999/cb")

		cfg := Load()
		if cfg.ClientID != "my-id" {
			t.Errorf("ClientID = %q, want %q", cfg.ClientID, "my-id")
		}
		if cfg.ClientSecret != "my-secret" {
			t.Errorf("ClientSecret = %q, want %q", cfg.ClientSecret, "my-secret")
		}
		if cfg.RedirectURI != "http://localhost:9999/cb" {
			t.Errorf("RedirectURI = %q, want %q", cfg.RedirectURI, "http://localhost:9999/cb")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		cfg := &Config{ClientID: "id", ClientSecret: "secret", RedirectURI: DefaultRedirectURI}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("MissingBoth", func(t *testing.T) {
		cfg := &Config{RedirectURI: DefaultRedirectURI}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "SPOTIFY_CLIENT_ID") ||
			!strings.Contains(err.Error(), "SPOTIFY_CLIENT_SECRET") {
			t.Errorf("error should name every missing variable, got %q", err)
		}
	})

	t.Run("MissingSecretOnly", func(t *testing.T) {
		cfg := &Config{ClientID: "id"}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error")
		}
		if strings.Contains(err.Error(), "SPOTIFY_CLIENT_ID") {
			t.Errorf("error should not name present variables, got %q", err)
		}
		if !strings.Contains(err.Error(), "SPOTIFY_CLIENT_SECRET") {
			t.Errorf("error should name the missing secret, got %q", err)
		}
	})
}
