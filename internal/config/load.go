package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrNoAPIKey is returned when no provider API key is configured at all.
// This is a user-recoverable condition: the message names the variables
// to set rather than crashing deeper in the stack.
var ErrNoAPIKey = errors.New(
	"no provider API key configured; set MISSIVE_LLM_GROQ_API_KEY, " +
		"MISSIVE_LLM_OPENAI_API_KEY, or MISSIVE_LLM_GEMINI_API_KEY")

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// MISSIVE_ prefix with underscores for nesting (for example
// MISSIVE_SERVER_PORT) and take precedence over file values.
// Returns a populated Config struct or an error if loading or validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. Every key needs one so AutomaticEnv picks up overrides
	// during Unmarshal.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.default_provider", "groq")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.groq_api_key", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.openai_model", "gpt-3.5-turbo")
	v.SetDefault("llm.groq_model", "llama3-8b-8192")
	v.SetDefault("llm.gemini_model", "gemini-2.0-flash")
	v.SetDefault("llm.groq_base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.request_timeout_seconds", 60)

	// Optional config file; absence is fine.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with MISSIVE_ prefix override everything.
	v.SetEnvPrefix("MISSIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// The default provider must be usable, and at least one backend must
	// have a key at all.
	if cfg.LLM.APIKeyFor(cfg.LLM.DefaultProvider) == "" {
		if cfg.LLM.OpenAIAPIKey == "" && cfg.LLM.GroqAPIKey == "" && cfg.LLM.GeminiAPIKey == "" {
			return nil, ErrNoAPIKey
		}
		return nil, fmt.Errorf(
			"default provider %q has no API key configured (set MISSIVE_LLM_%s_API_KEY)",
			cfg.LLM.DefaultProvider, strings.ToUpper(cfg.LLM.DefaultProvider))
	}

	return &cfg, nil
}
