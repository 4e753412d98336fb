package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every setting is usable. A missing API key is
// allowed: the service starts and reports it per request.
func ValidateConfig(cfg *Config) error {
	var errors []string
	add := func(field, message string) {
		errors = append(errors, ValidationError{Field: field, Message: message}.Error())
	}

	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port <= 0 || port > 65535 {
		add("SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.Server.Port))
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		add("SERVER_SHUTDOWN_TIMEOUT", "must be positive")
	}

	if cfg.LLM.Model == "" {
		add("GEMINI_MODEL", "must not be empty")
	}
	if cfg.LLM.RequestTimeout < 0 {
		add("LLM_REQUEST_TIMEOUT", "must not be negative")
	}

	switch cfg.Recipe.FallbackPolicy {
	case FallbackSubstitute, FallbackStrict:
	default:
		add("RECIPE_FALLBACK_POLICY", fmt.Sprintf("unknown policy %q, want %q or %q", cfg.Recipe.FallbackPolicy, FallbackSubstitute, FallbackStrict))
	}
	if strings.TrimSpace(cfg.Recipe.DefaultTitle) == "" {
		add("RECIPE_DEFAULT_TITLE", "must not be empty")
	}
	if strings.TrimSpace(cfg.Recipe.DefaultInstructions) == "" {
		add("RECIPE_DEFAULT_INSTRUCTIONS", "must not be empty")
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		add("LOG_LEVEL", err.Error())
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "console" {
		add("LOG_FORMAT", fmt.Sprintf("unknown format %q", cfg.Log.Format))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
