package generation

import "errors"

// Common errors returned by completion clients and the provider registry.
var (
	// ErrEmptyPrompt is returned when a completion is requested with an
	// empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrBackendFailure is returned when the completion call fails at
	// the backend: network faults, authentication errors, and rate
	// limits are not distinguished further.
	ErrBackendFailure = errors.New("completion backend call failed")

	// ErrBackendTimeout is returned when the completion call exceeded
	// its deadline.
	ErrBackendTimeout = errors.New("completion backend call timed out")

	// ErrEmptyCompletion is returned when the backend answered
	// successfully but produced no text.
	ErrEmptyCompletion = errors.New("backend returned an empty completion")

	// ErrContentBlocked is returned when the backend refused to generate
	// due to its safety filters.
	ErrContentBlocked = errors.New("content blocked by backend safety filters")

	// ErrInvalidConfig is returned when a client is constructed with
	// unusable configuration.
	ErrInvalidConfig = errors.New("invalid completion client configuration")

	// ErrUnknownProvider is returned by Registry.Lookup for provider
	// names with no registered client. Resolve never returns it; see the
	// fallback behavior documented there.
	ErrUnknownProvider = errors.New("unknown completion provider")

	// ErrNoDefaultClient is returned when a registry is asked to resolve
	// a provider before its default client was registered.
	ErrNoDefaultClient = errors.New("no default completion client registered")
)
