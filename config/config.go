package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// GeminiAPIKeyEnv is the environment variable holding the Gemini credential.
const GeminiAPIKeyEnv = "GEMINI_API_KEY"

// FallbackPolicy decides what happens when a model reply lacks recipe fields.
type FallbackPolicy string

const (
	// FallbackSubstitute fills missing fields with placeholder text.
	FallbackSubstitute FallbackPolicy = "substitute"
	// FallbackStrict fails the request.
	FallbackStrict FallbackPolicy = "strict"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	Server ServerConfig
	LLM    LLMConfig
	Recipe RecipeConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            string
	EnableRootStub  bool
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// LLMConfig holds the language model provider settings
type LLMConfig struct {
	APIKey   string
	Model    string
	JSONMode bool
	// BaseURL overrides the Gemini endpoint, e.g. for a proxy.
	BaseURL string
	// RequestTimeout bounds a single provider call. Zero disables the bound.
	RequestTimeout time.Duration
}

// HasCredential reports whether an API key is configured.
func (c LLMConfig) HasCredential() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// RecipeConfig holds prompt and reply handling settings
type RecipeConfig struct {
	FallbackPolicy      FallbackPolicy
	DefaultTitle        string
	DefaultInstructions string
	StrictPrompt        bool
	RepairJSON          bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string
}

// Mode returns the reply mode reported by the health check.
func (c LLMConfig) Mode() string {
	if c.JSONMode {
		return "json"
	}
	return "text"
}

var envBindings = map[string][]string{
	"server.host":             {"SERVER_HOST"},
	"server.port":             {"PORT", "SERVER_PORT"},
	"server.enable_root_stub": {"SERVER_ENABLE_ROOT_STUB"},
	"server.shutdown_timeout": {"SERVER_SHUTDOWN_TIMEOUT"},
	"cors.allowed_origins":    {"CORS_ALLOWED_ORIGINS"},
	"llm.api_key":             {GeminiAPIKeyEnv},
	"llm.api_key_file":        {"GEMINI_API_KEY_FILE"},
	"llm.model":               {"GEMINI_MODEL"},
	"llm.json_mode":           {"GEMINI_JSON_MODE"},
	"llm.base_url":            {"GEMINI_BASE_URL"},
	"llm.request_timeout":     {"LLM_REQUEST_TIMEOUT"},
	"recipe.fallback_policy":  {"RECIPE_FALLBACK_POLICY"},
	"recipe.default_title":    {"RECIPE_DEFAULT_TITLE"},
	"recipe.default_steps":    {"RECIPE_DEFAULT_INSTRUCTIONS"},
	"recipe.strict_prompt":    {"RECIPE_STRICT_PROMPT"},
	"recipe.json_repair":      {"RECIPE_JSON_REPAIR"},
	"log.level":               {"LOG_LEVEL"},
	"log.format":              {"LOG_FORMAT"},
}

func setDefaults(v *viper.Viper, env Environment) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.enable_root_stub", true)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.json_mode", true)
	v.SetDefault("llm.request_timeout", 60*time.Second)
	v.SetDefault("recipe.fallback_policy", string(FallbackSubstitute))
	v.SetDefault("recipe.default_title", "Chef AI Recipe")
	v.SetDefault("recipe.default_steps", "The steps could not be generated.")
	v.SetDefault("recipe.strict_prompt", true)
	v.SetDefault("recipe.json_repair", false)
	v.SetDefault("log.level", "info")
	if env == Development {
		v.SetDefault("log.format", "console")
	} else {
		v.SetDefault("log.format", "json")
	}
}

// LoadConfig creates a new Config instance with values from the environment,
// an optional .env file and docker secrets
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	env := GetEnvironment()
	v := viper.New()
	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	setDefaults(v, env)

	apiKey, err := resolveAPIKey(v)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: env,
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetString("server.port"),
			EnableRootStub:  v.GetBool("server.enable_root_stub"),
			AllowedOrigins:  splitList(v.GetString("cors.allowed_origins")),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		LLM: LLMConfig{
			APIKey:         apiKey,
			Model:          strings.TrimSpace(v.GetString("llm.model")),
			JSONMode:       v.GetBool("llm.json_mode"),
			BaseURL:        strings.TrimSpace(v.GetString("llm.base_url")),
			RequestTimeout: v.GetDuration("llm.request_timeout"),
		},
		Recipe: RecipeConfig{
			FallbackPolicy:      FallbackPolicy(strings.ToLower(strings.TrimSpace(v.GetString("recipe.fallback_policy")))),
			DefaultTitle:        v.GetString("recipe.default_title"),
			DefaultInstructions: v.GetString("recipe.default_steps"),
			StrictPrompt:        v.GetBool("recipe.strict_prompt"),
			RepairJSON:          v.GetBool("recipe.json_repair"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv loads a .env file when one is present. ENV_FILE overrides the path.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// resolveAPIKey looks at GEMINI_API_KEY, then GEMINI_API_KEY_FILE, then the
// gemini_api_key docker secret. An absent key is not an error.
func resolveAPIKey(v *viper.Viper) (string, error) {
	if key := strings.TrimSpace(v.GetString("llm.api_key")); key != "" {
		return key, nil
	}

	if keyFile := v.GetString("llm.api_key_file"); keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	return readSecret("gemini_api_key"), nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
