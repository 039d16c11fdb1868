// Package mocks provides test doubles for the application's ports.
package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/missive-api/internal/generation"
)

// MockCompletionClient implements generation.CompletionClient for testing.
type MockCompletionClient struct {
	// CompleteFn allows test cases to mock the Complete behavior. When
	// nil, the mock returns Response/Err.
	CompleteFn func(ctx context.Context, prompt string, params generation.SamplingParams) (string, error)

	// Default response values
	Response string
	Err      error

	// Provider and Model reported by the mock. Provider defaults to
	// "mock" when empty.
	Provider string
	Model    string

	// Call tracking for verification
	Calls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Complete was called
		Count int

		// Prompts contains every prompt passed to Complete, in order
		Prompts []string

		// Params contains the sampling params of every call, in order
		Params []generation.SamplingParams
	}
}

// Complete implements the generation.CompletionClient interface.
func (m *MockCompletionClient) Complete(
	ctx context.Context,
	prompt string,
	params generation.SamplingParams,
) (string, error) {
	m.Calls.mu.Lock()
	m.Calls.Count++
	m.Calls.Prompts = append(m.Calls.Prompts, prompt)
	m.Calls.Params = append(m.Calls.Params, params)
	m.Calls.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt, params)
	}
	return m.Response, m.Err
}

// ProviderName implements the generation.CompletionClient interface.
func (m *MockCompletionClient) ProviderName() string {
	if m.Provider == "" {
		return "mock"
	}
	return m.Provider
}

// ModelName implements the generation.CompletionClient interface.
func (m *MockCompletionClient) ModelName() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

// NewMockCompletionClientWithResponse creates a mock that always returns
// the given text.
func NewMockCompletionClientWithResponse(provider, response string) *MockCompletionClient {
	return &MockCompletionClient{Provider: provider, Response: response}
}

// NewMockCompletionClientWithError creates a mock that always fails with
// the given error.
func NewMockCompletionClientWithError(provider string, err error) *MockCompletionClient {
	return &MockCompletionClient{Provider: provider, Err: err}
}
