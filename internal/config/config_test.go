package config

import (
	"os"
	"testing"
	"time"
)

// clearEnv unsets variables for the duration of a test. t.Setenv snapshots
// the prior state (set or unset) and restores it on cleanup.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t, "SARVIEWS_BASE_URL", "SARVIEWS_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Test defaults
	if cfg.Catalog.BaseURL != "https://gm3385dq6j.execute-api.us-west-2.amazonaws.com" {
		t.Errorf("expected default SARVIEWS base URL, got %s", cfg.Catalog.BaseURL)
	}

	if cfg.Catalog.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %s", cfg.Catalog.Timeout)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}

	if cfg.Logging.Format != "text" {
		t.Errorf("expected default log format text, got %s", cfg.Logging.Format)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("SARVIEWS_BASE_URL", "https://sarviews.example.com")
	t.Setenv("SARVIEWS_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Catalog.BaseURL != "https://sarviews.example.com" {
		t.Errorf("expected catalog base URL https://sarviews.example.com, got %s", cfg.Catalog.BaseURL)
	}

	if cfg.Catalog.Timeout != 45*time.Second {
		t.Errorf("expected timeout 45s, got %s", cfg.Catalog.Timeout)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}

	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format json, got %s", cfg.Logging.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantError bool
	}{
		{
			name: "valid config",
			cfg: &Config{
				Catalog: CatalogConfig{
					BaseURL: "https://gm3385dq6j.execute-api.us-west-2.amazonaws.com",
					Timeout: 30 * time.Second,
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "text",
				},
			},
			wantError: false,
		},
		{
			name: "missing catalog base URL",
			cfg: &Config{
				Catalog: CatalogConfig{
					BaseURL: "",
					Timeout: 30 * time.Second,
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "text",
				},
			},
			wantError: true,
		},
		{
			name: "non-positive timeout",
			cfg: &Config{
				Catalog: CatalogConfig{
					BaseURL: "https://gm3385dq6j.execute-api.us-west-2.amazonaws.com",
					Timeout: 0,
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "text",
				},
			},
			wantError: true,
		},
		{
			name: "invalid log level",
			cfg: &Config{
				Catalog: CatalogConfig{
					BaseURL: "https://gm3385dq6j.execute-api.us-west-2.amazonaws.com",
					Timeout: 30 * time.Second,
				},
				Logging: LoggingConfig{
					Level:  "invalid",
					Format: "text",
				},
			},
			wantError: true,
		},
		{
			name: "invalid log format",
			cfg: &Config{
				Catalog: CatalogConfig{
					BaseURL: "https://gm3385dq6j.execute-api.us-west-2.amazonaws.com",
					Timeout: 30 * time.Second,
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "yaml",
				},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
