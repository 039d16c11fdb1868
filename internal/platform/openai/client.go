// Package openai implements the generation.CompletionClient capability
// using the official openai-go SDK. A non-empty BaseURL points the client
// at any OpenAI-compatible endpoint, which is how the Groq backend is
// served: same wire protocol, different host and model.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/phrazzld/missive-api/internal/generation"
)

// Config holds everything needed to construct a Client.
type Config struct {
	// Provider is the registry name this client answers to, for example
	// "openai" or "groq".
	Provider string

	// APIKey authenticates against the endpoint. Never logged.
	APIKey string

	// Model is the chat model identifier to request.
	Model string

	// BaseURL, when non-empty, overrides the default OpenAI endpoint
	// with an OpenAI-compatible one.
	BaseURL string
}

// Client calls a chat-completion endpoint speaking the OpenAI protocol.
type Client struct {
	provider string
	model    string
	api      openai.Client
	logger   *slog.Logger
}

// New validates cfg and constructs a Client.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.Provider == "" {
		return nil, fmt.Errorf("%w: provider name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s API key cannot be empty", generation.ErrInvalidConfig, cfg.Provider)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: %s model cannot be empty", generation.ErrInvalidConfig, cfg.Provider)
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		provider: strings.ToLower(cfg.Provider),
		model:    cfg.Model,
		api:      openai.NewClient(opts...),
		logger:   logger,
	}, nil
}

// Complete implements generation.CompletionClient.
func (c *Client) Complete(ctx context.Context, prompt string, params generation.SamplingParams) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	c.logger.DebugContext(ctx, "sending completion request",
		"provider", c.provider,
		"model", c.model,
		"prompt_length", len(prompt))

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(params.Temperature),
		MaxTokens:   openai.Int(int64(params.MaxTokens)),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", generation.ErrBackendTimeout, c.provider)
		}
		return "", fmt.Errorf("%w: %s: %v", generation.ErrBackendFailure, c.provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: %s returned no choices", generation.ErrEmptyCompletion, c.provider)
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", generation.ErrEmptyCompletion, c.provider)
	}
	return text, nil
}

// ProviderName implements generation.CompletionClient.
func (c *Client) ProviderName() string {
	return c.provider
}

// ModelName implements generation.CompletionClient.
func (c *Client) ModelName() string {
	return c.model
}
