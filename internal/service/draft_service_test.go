package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/missive-api/internal/domain"
	"github.com/phrazzld/missive-api/internal/generation"
	"github.com/phrazzld/missive-api/internal/mocks"
	"github.com/phrazzld/missive-api/internal/prompt"
	"github.com/phrazzld/missive-api/internal/service"
)

func newTestService(t *testing.T, client *mocks.MockCompletionClient, timeout time.Duration) *service.DraftService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clients := generation.NewRegistry(logger, client.ProviderName())
	clients.Register(client)

	svc, err := service.NewDraftService(
		prompt.DefaultRegistry(),
		clients,
		generation.SamplingParams{Temperature: 0.7, MaxTokens: 1024},
		timeout,
		logger,
	)
	require.NoError(t, err)
	return svc
}

func TestGenerateSingleStep(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCompletionClientWithResponse("groq", "\n\nSubject: Enhanced\n\nDear [Name],\n\nBody.\n\n")
	svc := newTestService(t, client, time.Minute)

	opts, err := domain.NewGenerationOptions("Quarterly Strategy Meeting - June 15th")
	require.NoError(t, err)

	result, err := svc.Generate(context.Background(), opts, nil)
	require.NoError(t, err)

	assert.Equal(t, "Subject: Enhanced\n\nDear [Name],\n\nBody.", result.Email,
		"surrounding whitespace is trimmed from the backend response")
	assert.Equal(t, "groq", result.Provider)
	assert.Equal(t, "mock-model", result.Model)

	email, ok := result.Output(domain.OutputEmail)
	assert.True(t, ok)
	assert.Equal(t, result.Email, email)
	_, ok = result.Output(domain.OutputAnalysis)
	assert.False(t, ok, "single-step generation has no analysis output")

	require.Equal(t, 1, client.Calls.Count)
	sent := client.Calls.Prompts[0]
	assert.Contains(t, sent, "SUBJECT: Quarterly Strategy Meeting - June 15th")
	assert.Contains(t, sent, "REQUESTED TONE: professional")
	assert.Contains(t, sent, "EMAIL LENGTH: 3 paragraphs")
	assert.NotContains(t, sent, "{subject}")
	assert.NotContains(t, sent, "P.S.", "postscript was not requested")

	assert.Equal(t, 0.7, client.Calls.Params[0].Temperature)
	assert.Equal(t, 1024, client.Calls.Params[0].MaxTokens)
}

func TestGenerateDefaultOptionsEndToEnd(t *testing.T) {
	t.Parallel()

	client := &mocks.MockCompletionClient{Provider: "groq"}
	client.CompleteFn = func(_ context.Context, p string, _ generation.SamplingParams) (string, error) {
		return fmt.Sprintf("  prompt was %d bytes  ", len(p)), nil
	}
	svc := newTestService(t, client, time.Minute)

	opts := domain.GenerationOptions{
		Subject:        "Quarterly Strategy Meeting - June 15th",
		Tone:           domain.ToneProfessional,
		ParagraphCount: 3,
	}

	result, err := svc.Generate(context.Background(), opts, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Email)
	assert.Equal(t, strings.TrimSpace(result.Email), result.Email)
	require.Equal(t, 1, client.Calls.Count)
	assert.Contains(t, client.Calls.Prompts[0], "Quarterly Strategy Meeting - June 15th")
}

func TestGenerateSingleStepWithPostscriptAndTone(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCompletionClientWithResponse("groq", "email text")
	svc := newTestService(t, client, time.Minute)

	opts := domain.GenerationOptions{
		Subject:           "Flash Sale Ends Tonight",
		Tone:              domain.ToneUrgent,
		ParagraphCount:    2,
		IncludePostscript: true,
	}

	_, err := svc.Generate(context.Background(), opts, nil)
	require.NoError(t, err)

	require.Equal(t, 1, client.Calls.Count)
	sent := client.Calls.Prompts[0]
	assert.Contains(t, sent, "REQUESTED TONE: urgent")
	assert.Contains(t, sent, "sense of urgency")
	assert.Contains(t, sent, "P.S.")
}

func TestGenerateValidationFailuresMakeNoBackendCall(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		opts    domain.GenerationOptions
		wantErr error
	}{
		{
			name:    "empty subject",
			opts:    domain.GenerationOptions{Subject: "   ", ParagraphCount: 3},
			wantErr: domain.ErrEmptySubject,
		},
		{
			name:    "paragraph count too low",
			opts:    domain.GenerationOptions{Subject: "hi", ParagraphCount: 0},
			wantErr: domain.ErrParagraphCountOutOfRange,
		},
		{
			name:    "paragraph count too high",
			opts:    domain.GenerationOptions{Subject: "hi", ParagraphCount: 6},
			wantErr: domain.ErrParagraphCountOutOfRange,
		},
		{
			name:    "invalid tone",
			opts:    domain.GenerationOptions{Subject: "hi", Tone: "sarcastic", ParagraphCount: 3},
			wantErr: domain.ErrInvalidTone,
		},
		{
			name: "subject too long",
			opts: domain.GenerationOptions{
				Subject:        strings.Repeat("a", domain.MaxSubjectLength+1),
				ParagraphCount: 3,
			},
			wantErr: domain.ErrSubjectTooLong,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockCompletionClientWithResponse("groq", "email")
			svc := newTestService(t, client, time.Minute)

			_, err := svc.Generate(context.Background(), tc.opts, nil)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 0, client.Calls.Count, "rejected requests must not reach the backend")
		})
	}
}

func TestGenerateAnalysisPipeline(t *testing.T) {
	t.Parallel()

	const analysisText = "The subject announces a meeting and implies a deadline."

	responses := []string{analysisText, "Final email body."}
	call := 0
	client := &mocks.MockCompletionClient{Provider: "groq"}
	client.CompleteFn = func(_ context.Context, _ string, _ generation.SamplingParams) (string, error) {
		resp := responses[call]
		call++
		return resp, nil
	}

	svc := newTestService(t, client, time.Minute)
	opts := domain.GenerationOptions{
		Subject:        "Quarterly Strategy Meeting - June 15th",
		Tone:           domain.ToneProfessional,
		ParagraphCount: 3,
		UseAnalysis:    true,
	}

	result, err := svc.Generate(context.Background(), opts, nil)
	require.NoError(t, err)

	assert.Equal(t, "Final email body.", result.Email)
	gotAnalysis, ok := result.Output(domain.OutputAnalysis)
	assert.True(t, ok)
	assert.Equal(t, analysisText, gotAnalysis)

	require.Equal(t, 2, client.Calls.Count)
	assert.Contains(t, client.Calls.Prompts[0], "Quarterly Strategy Meeting - June 15th")
	assert.Contains(t, client.Calls.Prompts[1], analysisText,
		"the second prompt is fed the first step's literal output")
}

func TestGenerateAnalysisPipelineAbortsOnStepFailure(t *testing.T) {
	t.Parallel()

	client := &mocks.MockCompletionClient{Provider: "groq", Err: errors.New("boom")}
	svc := newTestService(t, client, time.Minute)

	opts := domain.GenerationOptions{
		Subject:        "Subject",
		ParagraphCount: 3,
		UseAnalysis:    true,
	}

	result, err := svc.Generate(context.Background(), opts, nil)
	assert.Nil(t, result, "no partial result on pipeline failure")
	assert.ErrorIs(t, err, generation.ErrBackendFailure)
	assert.Equal(t, 1, client.Calls.Count, "the failing step aborts the rest of the pipeline")
}

func TestGenerateFollowUpUsesTranscript(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCompletionClientWithResponse("groq", "Follow-up email.")
	svc := newTestService(t, client, time.Minute)

	memory := domain.NewConversationMemory()
	memory.Append("Original Subject", "Original email body")

	opts := domain.GenerationOptions{Subject: "Any updates?", ParagraphCount: 3}
	result, err := svc.Generate(context.Background(), opts, memory)
	require.NoError(t, err)

	require.Equal(t, 1, client.Calls.Count)
	sent := client.Calls.Prompts[0]
	assert.Contains(t, sent, "Human: Original Subject")
	assert.Contains(t, sent, "AI: Original email body")
	assert.Contains(t, sent, "Any updates?")

	// The new exchange is appended after success.
	require.Equal(t, 2, memory.Len())
	last := memory.Exchanges()[1]
	assert.Equal(t, "Any updates?", last.Subject)
	assert.Equal(t, result.Email, last.Email)
}

func TestGenerateFollowUpFailureLeavesMemoryUntouched(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCompletionClientWithError("groq", errors.New("backend down"))
	svc := newTestService(t, client, time.Minute)

	memory := domain.NewConversationMemory()
	memory.Append("Original Subject", "Original email body")

	opts := domain.GenerationOptions{Subject: "Any updates?", ParagraphCount: 3}
	_, err := svc.Generate(context.Background(), opts, memory)
	assert.ErrorIs(t, err, generation.ErrBackendFailure)
	assert.Equal(t, 1, memory.Len(), "failed generations must not append to memory")
}

func TestGenerateBackendTimeout(t *testing.T) {
	t.Parallel()

	client := &mocks.MockCompletionClient{Provider: "groq"}
	client.CompleteFn = func(ctx context.Context, _ string, _ generation.SamplingParams) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}
	svc := newTestService(t, client, 10*time.Millisecond)

	opts := domain.GenerationOptions{Subject: "Subject", ParagraphCount: 3}
	_, err := svc.Generate(context.Background(), opts, nil)
	assert.ErrorIs(t, err, generation.ErrBackendTimeout)
}

func TestGenerateEmptyCompletion(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCompletionClientWithResponse("groq", "   \n\t  ")
	svc := newTestService(t, client, time.Minute)

	opts := domain.GenerationOptions{Subject: "Subject", ParagraphCount: 3}
	_, err := svc.Generate(context.Background(), opts, nil)
	assert.ErrorIs(t, err, generation.ErrEmptyCompletion)
}

func TestGenerateUnknownProviderFallsBack(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCompletionClientWithResponse("groq", "email text")
	svc := newTestService(t, client, time.Minute)

	opts := domain.GenerationOptions{
		Subject:        "Subject",
		ParagraphCount: 3,
		Provider:       "anthropic",
	}

	result, err := svc.Generate(context.Background(), opts, nil)
	require.NoError(t, err)
	assert.Equal(t, "groq", result.Provider, "unknown providers fall back to the default backend")
	assert.Equal(t, 1, client.Calls.Count)
}
