// Package config loads and validates application configuration from the
// environment and an optional config file.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all completion-backend related settings. Sampling
// parameters are fixed here per deployment; they are configuration, not
// request-time state.
type LLMConfig struct {
	// DefaultProvider is the backend used when a request names no
	// provider, or names one that is not registered.
	DefaultProvider string `mapstructure:"default_provider" validate:"required,oneof=openai groq gemini"`

	// Per-provider API keys. A provider without a key is simply not
	// registered; at least one key must be present (checked in Load,
	// since which one is present is the user's choice).
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	GroqAPIKey   string `mapstructure:"groq_api_key"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// Per-provider model identifiers.
	OpenAIModel string `mapstructure:"openai_model" validate:"required"`
	GroqModel   string `mapstructure:"groq_model"   validate:"required"`
	GeminiModel string `mapstructure:"gemini_model" validate:"required"`

	// GroqBaseURL is the OpenAI-compatible endpoint the Groq profile
	// points at.
	GroqBaseURL string `mapstructure:"groq_base_url" validate:"required,url"`

	// Sampling parameters applied to every completion call.
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `mapstructure:"max_tokens"  validate:"required,gt=0"`

	// RequestTimeoutSeconds bounds each backend call. Exceeding it
	// surfaces as a timeout error to the caller.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0,lte=600"`
}

// APIKeyFor returns the configured API key for the given provider name,
// or the empty string when none is set.
func (c LLMConfig) APIKeyFor(provider string) string {
	switch provider {
	case "openai":
		return c.OpenAIAPIKey
	case "groq":
		return c.GroqAPIKey
	case "gemini":
		return c.GeminiAPIKey
	default:
		return ""
	}
}
