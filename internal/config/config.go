package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config holds all service configuration values.
type Config struct {
	Listen         string `json:"listen"`
	MetricsListen  string `json:"metrics_listen"`
	TimeoutSec     int    `json:"timeout_sec"`
	MaxConcurrent  int    `json:"max_concurrent"`
	MaxUploadMB    int    `json:"max_upload_mb"`
	MaxImagePixels int64  `json:"max_image_pixels"`

	// Environment configuration (loaded from env vars)
	Env *EnvConfig `json:"-"`
}

// Load reads configuration from config.json with sensible defaults.
func Load() (*Config, error) {
	return LoadFile("config.json")
}

// LoadFile reads configuration from path over the defaults. A missing file
// leaves the defaults in place. A malformed file also yields the defaults,
// together with the parse error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return cfg, nil
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.Listen = strings.TrimSpace(cfg.Listen)
	cfg.MetricsListen = strings.TrimSpace(cfg.MetricsListen)
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:         ":8080",
		MetricsListen:  ":9090",
		TimeoutSec:     30,
		MaxConcurrent:  64,
		MaxUploadMB:    10,
		MaxImagePixels: 40_000_000,
		Env:            LoadEnv(),
	}
}

// MaxUploadBytes is the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if c.Listen == "" {
		errs = append(errs, "listen address is required")
	}
	if c.MetricsListen != "" && c.MetricsListen == c.Listen {
		errs = append(errs, fmt.Sprintf("metrics_listen must differ from listen (%s)", c.Listen))
	}

	if c.TimeoutSec <= 0 {
		errs = append(errs, "timeout_sec must be positive")
	}
	if c.MaxConcurrent <= 0 {
		errs = append(errs, "max_concurrent must be positive")
	}
	if c.MaxUploadMB <= 0 || c.MaxUploadMB > 100 {
		errs = append(errs, "max_upload_mb must be between 1 and 100")
	}
	if c.MaxImagePixels <= 0 {
		errs = append(errs, "max_image_pixels must be positive")
	}

	if c.Env != nil {
		if c.Env.AuthEnabled {
			if _, err := os.Stat(c.Env.KeysFile); os.IsNotExist(err) {
				errs = append(errs, fmt.Sprintf("keys file not found: %s", c.Env.KeysFile))
			}
		}
		if c.Env.AnonRateLimitRPM < 0 {
			errs = append(errs, "ANON_RATE_LIMIT_RPM must not be negative")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}
