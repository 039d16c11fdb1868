// Package service provides the application-level orchestration between
// the HTTP host, the prompt templates, and the completion backends.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/missive-api/internal/domain"
	"github.com/phrazzld/missive-api/internal/generation"
	"github.com/phrazzld/missive-api/internal/prompt"
	"github.com/phrazzld/missive-api/internal/redact"
)

// PipelineStep is one render-then-complete stage of a multi-step
// generation. Each step renders its template against the variables
// accumulated so far (including earlier steps' outputs) and contributes
// its completion under OutputVar.
type PipelineStep struct {
	// TemplateID names the registered template this step renders.
	TemplateID string

	// OutputVar is the variable name this step's completion is stored
	// under, making it available to later steps and to the final result.
	OutputVar string
}

// analysisPipeline is the two-step analyze-then-generate flow: step one
// examines the subject, step two writes the email guided by that
// analysis.
var analysisPipeline = []PipelineStep{
	{TemplateID: prompt.TemplateAnalysis, OutputVar: domain.OutputAnalysis},
	{TemplateID: prompt.TemplateEmailFromAnalysis, OutputVar: domain.OutputEmail},
}

// DraftService orchestrates email generation: it validates options,
// resolves a completion backend, renders prompts, and normalizes backend
// responses into GenerationResults. The service owns no per-request
// state and is safe to reuse across requests; the caller-supplied
// ConversationMemory is the only shared mutable state and belongs to a
// single session.
type DraftService struct {
	templates *prompt.Registry
	clients   *generation.Registry
	params    generation.SamplingParams
	timeout   time.Duration
	logger    *slog.Logger
}

// NewDraftService creates a DraftService. The timeout bounds each
// individual backend call; exceeding it surfaces as
// generation.ErrBackendTimeout.
func NewDraftService(
	templates *prompt.Registry,
	clients *generation.Registry,
	params generation.SamplingParams,
	timeout time.Duration,
	logger *slog.Logger,
) (*DraftService, error) {
	if templates == nil {
		return nil, errors.New("template registry is required")
	}
	if clients == nil {
		return nil, errors.New("client registry is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &DraftService{
		templates: templates,
		clients:   clients,
		params:    params,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Generate produces an email draft for the given options.
//
// With a nil memory, it runs either the single-step flow (a customized
// template assembled from the options) or, when opts.UseAnalysis is set,
// the two-step analysis pipeline. With a non-nil memory it renders the
// follow-up template with the session's conversation transcript and
// appends the new exchange to memory after success.
//
// Validation failures are reported before any backend call is made, so a
// rejected request has no side effects. Backend failures abort the
// remaining steps and leave memory untouched; no partial result is
// returned.
func (s *DraftService) Generate(
	ctx context.Context,
	opts domain.GenerationOptions,
	memory *domain.ConversationMemory,
) (*domain.GenerationResult, error) {
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	client, err := s.clients.Resolve(opts.Provider)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "generating draft",
		"provider", client.ProviderName(),
		"model", client.ModelName(),
		"tone", string(opts.Tone),
		"paragraphs", opts.ParagraphCount,
		"use_analysis", opts.UseAnalysis,
		"with_memory", memory != nil)

	var (
		email   string
		outputs map[string]string
	)
	switch {
	case memory != nil:
		email, outputs, err = s.generateFollowUp(ctx, client, opts, memory)
	case opts.UseAnalysis:
		outputs, err = s.runPipeline(ctx, client, analysisPipeline, map[string]string{
			"subject": opts.Subject,
		})
		if err == nil {
			email = outputs[domain.OutputEmail]
		}
	default:
		email, outputs, err = s.generateSingle(ctx, client, opts)
	}
	if err != nil {
		return nil, err
	}

	result, err := domain.NewGenerationResult(email, client.ProviderName(), client.ModelName(), outputs)
	if err != nil {
		return nil, err
	}

	if memory != nil {
		memory.Append(opts.Subject, result.Email)
	}
	return result, nil
}

// generateSingle runs the one-template flow: assemble a customized
// template from the options, render it, and complete once.
func (s *DraftService) generateSingle(
	ctx context.Context,
	client generation.CompletionClient,
	opts domain.GenerationOptions,
) (string, map[string]string, error) {
	tpl := prompt.BuildCustomTemplate(opts.Tone, opts.IncludePostscript)
	rendered, err := tpl.Render(map[string]string{
		"subject": opts.Subject,
		"tone":    string(opts.Tone),
		"length":  strconv.Itoa(opts.ParagraphCount),
	})
	if err != nil {
		return "", nil, err
	}

	email, err := s.complete(ctx, client, rendered)
	if err != nil {
		return "", nil, err
	}
	return email, map[string]string{domain.OutputEmail: email}, nil
}

// generateFollowUp renders the follow-up template with the session's
// conversation transcript. The caller appends to memory only after the
// whole generation succeeded.
func (s *DraftService) generateFollowUp(
	ctx context.Context,
	client generation.CompletionClient,
	opts domain.GenerationOptions,
	memory *domain.ConversationMemory,
) (string, map[string]string, error) {
	rendered, err := s.templates.Render(prompt.TemplateFollowUp, map[string]string{
		"subject":      opts.Subject,
		"chat_history": memory.Transcript(),
	})
	if err != nil {
		return "", nil, err
	}

	email, err := s.complete(ctx, client, rendered)
	if err != nil {
		return "", nil, err
	}
	return email, map[string]string{domain.OutputEmail: email}, nil
}

// runPipeline executes steps sequentially, feeding each step's output
// into the variable set of the ones after it. The first failing step
// aborts the rest; nothing partial is returned.
func (s *DraftService) runPipeline(
	ctx context.Context,
	client generation.CompletionClient,
	steps []PipelineStep,
	vars map[string]string,
) (map[string]string, error) {
	outputs := make(map[string]string, len(steps))
	for _, step := range steps {
		rendered, err := s.templates.Render(step.TemplateID, vars)
		if err != nil {
			return nil, err
		}

		text, err := s.complete(ctx, client, rendered)
		if err != nil {
			return nil, fmt.Errorf("pipeline step %q: %w", step.OutputVar, err)
		}

		vars[step.OutputVar] = text
		outputs[step.OutputVar] = text
		s.logger.DebugContext(ctx, "pipeline step complete",
			"step", step.OutputVar,
			"output_length", len(text))
	}
	return outputs, nil
}

// complete performs one backend call under the service timeout and
// normalizes the outcome: deadline errors map to ErrBackendTimeout, other
// failures wrap ErrBackendFailure unless the client already classified
// them, and the returned text is trimmed of surrounding whitespace.
func (s *DraftService) complete(
	ctx context.Context,
	client generation.CompletionClient,
	renderedPrompt string,
) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := client.Complete(callCtx, renderedPrompt, s.params)
	if err != nil {
		// Error strings from provider SDKs can echo request details,
		// so scrub before logging.
		s.logger.ErrorContext(ctx, "completion call failed",
			"provider", client.ProviderName(),
			"error", redact.Error(err))

		switch {
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, generation.ErrBackendTimeout):
			return "", fmt.Errorf("%w: no response within %s", generation.ErrBackendTimeout, s.timeout)
		case errors.Is(err, generation.ErrEmptyCompletion),
			errors.Is(err, generation.ErrContentBlocked),
			errors.Is(err, generation.ErrBackendFailure):
			return "", err
		default:
			return "", fmt.Errorf("%w: %v", generation.ErrBackendFailure, err)
		}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", generation.ErrEmptyCompletion
	}
	return trimmed, nil
}
