package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/missive-api/internal/config"
	"github.com/phrazzld/missive-api/internal/generation"
	"github.com/phrazzld/missive-api/internal/platform/gemini"
	"github.com/phrazzld/missive-api/internal/platform/logger"
	openaiclient "github.com/phrazzld/missive-api/internal/platform/openai"
	"github.com/phrazzld/missive-api/internal/prompt"
	"github.com/phrazzld/missive-api/internal/service"
	"github.com/phrazzld/missive-api/internal/session"
)

// application holds the fully wired dependencies of one server process.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	drafts   *service.DraftService
	sessions *session.Store
}

// newApplication loads configuration, sets up logging, registers the
// configured completion backends, and constructs the draft service.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"default_provider", cfg.LLM.DefaultProvider)

	clients, err := buildClientRegistry(ctx, cfg.LLM, appLogger)
	if err != nil {
		return nil, err
	}

	drafts, err := service.NewDraftService(
		prompt.DefaultRegistry(),
		clients,
		generation.SamplingParams{
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		},
		time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second,
		appLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft service: %w", err)
	}

	return &application{
		config:   cfg,
		logger:   appLogger,
		drafts:   drafts,
		sessions: session.NewStore(),
	}, nil
}

// buildClientRegistry registers a completion client for every provider
// that has an API key configured. Providers without keys are skipped, so
// a deployment with only a Groq key still serves requests naming other
// providers through the default fallback.
func buildClientRegistry(ctx context.Context, cfg config.LLMConfig, appLogger *slog.Logger) (*generation.Registry, error) {
	registry := generation.NewRegistry(appLogger, cfg.DefaultProvider)

	if cfg.OpenAIAPIKey != "" {
		client, err := openaiclient.New(openaiclient.Config{
			Provider: generation.ProviderOpenAI,
			APIKey:   cfg.OpenAIAPIKey,
			Model:    cfg.OpenAIModel,
		}, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		registry.Register(client)
	}

	if cfg.GroqAPIKey != "" {
		client, err := openaiclient.New(openaiclient.Config{
			Provider: generation.ProviderGroq,
			APIKey:   cfg.GroqAPIKey,
			Model:    cfg.GroqModel,
			BaseURL:  cfg.GroqBaseURL,
		}, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		registry.Register(client)
	}

	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(ctx, gemini.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		}, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		registry.Register(client)
	}

	appLogger.Info("completion backends registered", "providers", registry.Providers())
	return registry, nil
}
