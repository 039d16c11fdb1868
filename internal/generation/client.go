package generation

import "context"

// SamplingParams are the model sampling settings applied to one
// completion call. They are fixed per provider profile at configuration
// time, not negotiated per request.
type SamplingParams struct {
	// Temperature controls output randomness (0 deterministic, higher
	// more varied).
	Temperature float64

	// MaxTokens bounds the length of the generated completion.
	MaxTokens int
}

// CompletionClient is the capability every completion backend provides:
// take a prompt, return generated text. Implementations wrap one hosted
// provider each and must honor context cancellation.
type CompletionClient interface {
	// Complete sends the prompt to the backend and returns the generated
	// text. Failures are reported through the package error taxonomy:
	// backend/network faults wrap ErrBackendFailure, exceeded deadlines
	// wrap ErrBackendTimeout, and a successful call that produced no
	// text returns ErrEmptyCompletion.
	Complete(ctx context.Context, prompt string, params SamplingParams) (string, error)

	// ProviderName returns the stable lowercase identifier of the
	// backend (for example "groq"), used for registry lookup and
	// logging.
	ProviderName() string

	// ModelName returns the model identifier this client is configured
	// to call.
	ModelName() string
}
