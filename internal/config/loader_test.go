package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"CALENDAR_CONFIG",
			"CALENDAR_HTTP_PORT",
			"CALENDAR_LOG_LEVEL",
			"CALENDAR_BACKEND_URL",
			"CALENDAR_BACKEND_KEY",
			"CALENDAR_ORGANIZER",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.LogLevel != "info" {
			t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
		}
		if cfg.Organizer != "You" {
			t.Fatalf("expected default organizer You, got %q", cfg.Organizer)
		}
		if cfg.BackendConfigured() {
			t.Fatalf("expected backend to be unconfigured by default")
		}
	})

	t.Run("environment overrides file and defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "calendar.yaml")
		contents := "http_port: 9000\nlog_level: debug\nbackend_url: https://file.example.com\nbackend_key: file-key\n"
		if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		t.Setenv("CALENDAR_CONFIG", path)
		t.Setenv("CALENDAR_HTTP_PORT", "9090")
		t.Setenv("CALENDAR_BACKEND_URL", "https://env.example.com")
		t.Setenv("CALENDAR_ORGANIZER", "Front Desk")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090 from environment, got %d", cfg.HTTPPort)
		}
		if cfg.LogLevel != "debug" {
			t.Fatalf("expected log level debug from file, got %q", cfg.LogLevel)
		}
		if cfg.BackendURL != "https://env.example.com" {
			t.Fatalf("expected environment backend URL to win, got %q", cfg.BackendURL)
		}
		if cfg.BackendKey != "file-key" {
			t.Fatalf("expected backend key from file, got %q", cfg.BackendKey)
		}
		if !cfg.BackendConfigured() {
			t.Fatalf("expected backend to be configured")
		}
		if cfg.Organizer != "Front Desk" {
			t.Fatalf("expected organizer Front Desk, got %q", cfg.Organizer)
		}
	})

	t.Run("errors on invalid port", func(t *testing.T) {
		t.Setenv("CALENDAR_CONFIG", "")
		t.Setenv("CALENDAR_HTTP_PORT", "not-a-port")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CALENDAR_HTTP_PORT")
		}
	})

	t.Run("errors when config file is missing", func(t *testing.T) {
		t.Setenv("CALENDAR_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})
}
