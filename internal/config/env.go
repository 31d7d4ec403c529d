package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment represents the application environment
type Environment string

const (
	// Development environment - permissive CORS, debug enabled
	Development Environment = "development"
	// Production environment - explicit origins, production settings
	Production Environment = "production"
)

// EnvConfig holds environment-specific configuration
type EnvConfig struct {
	// Environment name (development, production)
	Env Environment

	// Origins allowed to call the API from a browser. "*" allows any.
	AllowedOrigins []string

	// Feature flags
	Debug bool

	LogLevel string

	// Client authentication
	AuthEnabled bool
	KeysFile    string // Path to keys.json

	// Requests per minute for unauthenticated callers, per IP. 0 = unlimited.
	AnonRateLimitRPM int

	// Path of the persisted usage counters
	UsageFile string
}

// LoadEnv loads environment configuration from environment variables
func LoadEnv() *EnvConfig {
	env := getEnvOrDefault("APP_ENV", "development")

	cfg := &EnvConfig{
		Env:      Environment(strings.ToLower(env)),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	switch cfg.Env {
	case Production:
		cfg.AllowedOrigins = splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*"))
		cfg.Debug = getEnvOrDefault("DEBUG", "false") == "true"
		cfg.AuthEnabled = getEnvOrDefault("AUTH_ENABLED", "true") == "true"
	default: // Development
		cfg.Env = Development // Normalize unknown envs to development
		cfg.AllowedOrigins = splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*"))
		cfg.Debug = getEnvOrDefault("DEBUG", "true") == "true"
		cfg.AuthEnabled = getEnvOrDefault("AUTH_ENABLED", "false") == "true"
		if cfg.LogLevel == "info" {
			cfg.LogLevel = "debug" // Dev default
		}
	}

	cfg.KeysFile = getEnvOrDefault("KEYS_FILE", "keys.json")
	cfg.AnonRateLimitRPM = parseIntOrDefault(os.Getenv("ANON_RATE_LIMIT_RPM"), 120)
	cfg.UsageFile = getEnvOrDefault("USAGE_FILE", "usage.json")

	return cfg
}

// IsDevelopment returns true if running in development mode
func (e *EnvConfig) IsDevelopment() bool {
	return e.Env == Development
}

// IsProduction returns true if running in production mode
func (e *EnvConfig) IsProduction() bool {
	return e.Env == Production
}

// DebugLogging reports whether every request should be logged.
func (e *EnvConfig) DebugLogging() bool {
	return e.Debug || strings.EqualFold(e.LogLevel, "debug")
}

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntOrDefault parses a string as int, returning default on error
func parseIntOrDefault(s string, defaultValue int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}
	return n
}

// splitList splits a comma separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
