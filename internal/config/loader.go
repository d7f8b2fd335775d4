package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures configuration for the calendar service. BackendURL and
// BackendKey identify the hosted table/blob store; leaving both empty is a
// valid configuration that puts the service in fallback-only demo mode.
type Config struct {
	HTTPPort   int    `yaml:"http_port"`
	LogLevel   string `yaml:"log_level"`
	BackendURL string `yaml:"backend_url"`
	BackendKey string `yaml:"backend_key"`
	// Organizer is the identity applied to event drafts that omit one.
	Organizer string `yaml:"organizer"`
}

// BackendConfigured reports whether remote credentials were supplied.
func (c Config) BackendConfigured() bool {
	return c.BackendURL != "" && c.BackendKey != ""
}

// Load resolves configuration in three layers: built-in defaults, an optional
// YAML file (path from CALENDAR_CONFIG), then environment overrides.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:  8080,
		LogLevel:  "info",
		Organizer: "You",
	}

	if path := strings.TrimSpace(os.Getenv("CALENDAR_CONFIG")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	invalid := make([]string, 0, 1)

	if portValue := strings.TrimSpace(os.Getenv("CALENDAR_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "CALENDAR_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if level := strings.TrimSpace(os.Getenv("CALENDAR_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}
	if url := strings.TrimSpace(os.Getenv("CALENDAR_BACKEND_URL")); url != "" {
		cfg.BackendURL = url
	}
	if key := strings.TrimSpace(os.Getenv("CALENDAR_BACKEND_KEY")); key != "" {
		cfg.BackendKey = key
	}
	if organizer := strings.TrimSpace(os.Getenv("CALENDAR_ORGANIZER")); organizer != "" {
		cfg.Organizer = organizer
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist", path)
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
