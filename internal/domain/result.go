package domain

import "time"

// Names of intermediate outputs a pipeline can contribute to a result.
const (
	OutputAnalysis = "analysis"
	OutputEmail    = "email"
)

// GenerationResult is the outcome of one successful generation: the final
// email text plus any intermediate named outputs a multi-step pipeline
// produced along the way. Results are immutable once created.
type GenerationResult struct {
	// Email is the final generated email, trimmed of surrounding
	// whitespace.
	Email string `json:"email"`

	// Outputs maps intermediate artifact names (for example
	// OutputAnalysis) to their text. Single-step generations carry only
	// OutputEmail.
	Outputs map[string]string `json:"outputs,omitempty"`

	// Provider is the name of the backend that produced the email. When
	// an unknown provider was requested this reflects the default
	// backend the request fell back to.
	Provider string `json:"provider"`

	// Model is the model identifier the backend used.
	Model string `json:"model"`

	CreatedAt time.Time `json:"created_at"`
}

// NewGenerationResult builds a result, copying the outputs map so later
// mutation by the caller cannot change the result.
func NewGenerationResult(email, provider, model string, outputs map[string]string) (*GenerationResult, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	copied := make(map[string]string, len(outputs))
	for k, v := range outputs {
		copied[k] = v
	}
	return &GenerationResult{
		Email:     email,
		Outputs:   copied,
		Provider:  provider,
		Model:     model,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Output returns the named intermediate output and whether it exists.
func (r *GenerationResult) Output(name string) (string, bool) {
	v, ok := r.Outputs[name]
	return v, ok
}
