package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/missive-api/internal/api"
	"github.com/phrazzld/missive-api/internal/domain"
	"github.com/phrazzld/missive-api/internal/generation"
	"github.com/phrazzld/missive-api/internal/mocks"
	"github.com/phrazzld/missive-api/internal/prompt"
	"github.com/phrazzld/missive-api/internal/service"
	"github.com/phrazzld/missive-api/internal/session"
)

// newTestRouter wires the handlers onto a router the way the server
// does, backed by the given mock client.
func newTestRouter(t *testing.T, client *mocks.MockCompletionClient) (http.Handler, *session.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clients := generation.NewRegistry(logger, client.ProviderName())
	clients.Register(client)

	drafts, err := service.NewDraftService(
		prompt.DefaultRegistry(),
		clients,
		generation.SamplingParams{Temperature: 0.7, MaxTokens: 1024},
		time.Minute,
		logger,
	)
	require.NoError(t, err)

	sessions := session.NewStore()
	draftHandler := api.NewDraftHandler(drafts, logger)
	sessionHandler := api.NewSessionHandler(sessions, drafts, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/drafts", draftHandler.CreateDraft)
		r.Post("/sessions", sessionHandler.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Delete("/", sessionHandler.DeleteSession)
			r.Post("/drafts", sessionHandler.CreateSessionDraft)
			r.Get("/download", sessionHandler.DownloadDraft)
		})
	})
	return r, sessions
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateDraftSuccess(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCompletionClientWithResponse("groq", "Generated email body.")
	router, _ := newTestRouter(t, client)

	rec := postJSON(t, router, "/api/drafts", map[string]any{
		"subject": "Quarterly Strategy Meeting - June 15th",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp api.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Generated email body.", resp.Email)
	assert.Equal(t, "groq", resp.Provider)
	assert.Equal(t, "mock-model", resp.Model)
	assert.Equal(t, "Generated email body.", resp.Outputs[domain.OutputEmail])
}

func TestCreateDraftAnalysis(t *testing.T) {
	t.Parallel()

	responses := []string{"Analysis of the subject.", "Final email."}
	call := 0
	client := &mocks.MockCompletionClient{Provider: "groq"}
	client.CompleteFn = func(context.Context, string, generation.SamplingParams) (string, error) {
		resp := responses[call]
		call++
		return resp, nil
	}
	router, _ := newTestRouter(t, client)

	rec := postJSON(t, router, "/api/drafts", map[string]any{
		"subject":      "Quarterly Strategy Meeting",
		"use_analysis": true,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp api.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Final email.", resp.Email)
	assert.Equal(t, "Analysis of the subject.", resp.Outputs[domain.OutputAnalysis])
}

func TestCreateDraftValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing subject", map[string]any{"tone": "friendly"}},
		{"length too low", map[string]any{"subject": "hi", "length": 0}},
		{"length too high", map[string]any{"subject": "hi", "length": 6}},
		{"invalid tone", map[string]any{"subject": "hi", "tone": "sarcastic"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockCompletionClientWithResponse("groq", "email")
			router, _ := newTestRouter(t, client)

			rec := postJSON(t, router, "/api/drafts", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, 0, client.Calls.Count, "rejected requests must not reach the backend")
		})
	}
}

func TestCreateDraftInvalidJSON(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCompletionClientWithResponse("groq", "email")
	router, _ := newTestRouter(t, client)

	req := httptest.NewRequest(http.MethodPost, "/api/drafts", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDraftBackendErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"backend failure", errors.New("connection refused"), http.StatusBadGateway},
		{"timeout", generation.ErrBackendTimeout, http.StatusGatewayTimeout},
		{"content blocked", generation.ErrContentBlocked, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockCompletionClientWithError("groq", tc.err)
			router, _ := newTestRouter(t, client)

			rec := postJSON(t, router, "/api/drafts", map[string]any{"subject": "hi"})
			assert.Equal(t, tc.wantStatus, rec.Code, rec.Body.String())

			// Upstream error detail never reaches the response body.
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
