package generation

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Known provider names. Clients register under these identifiers; the
// registry itself accepts any name, so new providers are added by
// registering a client, not by extending a switch.
const (
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Registry resolves provider names to registered completion clients.
//
// Resolution deliberately never fails on an unrecognized name: callers
// asking for a provider that was never registered get the configured
// default client instead. Existing callers depend on this fallback, so it
// is part of the registry's contract; Lookup is the strict variant for
// callers that want an error.
type Registry struct {
	mu              sync.RWMutex
	clients         map[string]CompletionClient
	defaultProvider string
	logger          *slog.Logger
}

// NewRegistry creates a registry whose fallback is the client registered
// under defaultProvider.
func NewRegistry(logger *slog.Logger, defaultProvider string) *Registry {
	return &Registry{
		clients:         make(map[string]CompletionClient),
		defaultProvider: strings.ToLower(defaultProvider),
		logger:          logger,
	}
}

// Register adds a client under its own provider name, replacing any
// previous registration.
func (r *Registry) Register(client CompletionClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[strings.ToLower(client.ProviderName())] = client
}

// Lookup returns the client registered under name, or ErrUnknownProvider.
func (r *Registry) Lookup(name string) (CompletionClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return client, nil
}

// Resolve returns the client for name, falling back to the default client
// when name is empty or not registered. The fallback is logged at WARN so
// misconfigured callers are visible without failing their requests.
// Returns ErrNoDefaultClient only when the default itself is missing.
func (r *Registry) Resolve(name string) (CompletionClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := strings.ToLower(strings.TrimSpace(name))
	if client, ok := r.clients[normalized]; ok {
		return client, nil
	}

	fallback, ok := r.clients[r.defaultProvider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDefaultClient, r.defaultProvider)
	}
	if normalized != "" && normalized != r.defaultProvider {
		r.logger.Warn("unknown provider requested, using default",
			"requested_provider", normalized,
			"default_provider", r.defaultProvider)
	}
	return fallback, nil
}

// Providers returns the names of all registered clients.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}
