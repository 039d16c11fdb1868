// Package gemini implements the generation.CompletionClient capability
// using Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/phrazzld/missive-api/internal/generation"
)

// Config holds everything needed to construct a Client.
type Config struct {
	// APIKey authenticates against the Gemini API. Never logged.
	APIKey string

	// Model is the Gemini model identifier to request.
	Model string
}

// Client calls the Gemini API for text completions.
type Client struct {
	model  string
	api    *genai.Client
	logger *slog.Logger
}

// New validates cfg, creates the underlying Gemini client, and returns a
// Client ready for use.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: gemini model cannot be empty", generation.ErrInvalidConfig)
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Client{
		model:  cfg.Model,
		api:    api,
		logger: logger,
	}, nil
}

// Complete implements generation.CompletionClient.
func (c *Client) Complete(ctx context.Context, prompt string, params generation.SamplingParams) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	c.logger.DebugContext(ctx, "sending completion request",
		"provider", generation.ProviderGemini,
		"model", c.model,
		"prompt_length", len(prompt))

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(params.Temperature)),
		MaxOutputTokens: int32(params.MaxTokens),
	}

	resp, err := c.api.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: gemini", generation.ErrBackendTimeout)
		}
		return "", fmt.Errorf("%w: gemini: %v", generation.ErrBackendFailure, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: gemini returned no candidates", generation.ErrEmptyCompletion)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: gemini", generation.ErrContentBlocked)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: gemini", generation.ErrEmptyCompletion)
	}
	return text, nil
}

// ProviderName implements generation.CompletionClient.
func (c *Client) ProviderName() string {
	return generation.ProviderGemini
}

// ModelName implements generation.CompletionClient.
func (c *Client) ModelName() string {
	return c.model
}
