// Package config loads the GEDO client configuration from
// ~/.gedo/config.yaml with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the client settings.
type Config struct {
	// ServerURL is the backend base URL.
	ServerURL string `yaml:"server_url"`

	// Timeout is the default request deadline.
	Timeout time.Duration `yaml:"timeout"`

	// TokenFile is where the session token is persisted.
	TokenFile string `yaml:"token_file"`

	// RequestsPerSecond throttles outgoing calls. Zero disables pacing.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL: "http://localhost:5000",
		Timeout:   30 * time.Second,
	}
}

// DefaultPath returns ~/.gedo/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gedo", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file is missing, then applies environment overrides. Precedence:
// environment > file > defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	applyEnvOverrides(&cfg)

	if cfg.Timeout <= 0 {
		cfg.Timeout = Default().Timeout
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GEDO_API_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("GEDO_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv("GEDO_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
}
