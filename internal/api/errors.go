package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/missive-api/internal/domain"
	"github.com/phrazzld/missive-api/internal/generation"
	"github.com/phrazzld/missive-api/internal/prompt"
	"github.com/phrazzld/missive-api/internal/session"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors: the request itself was bad. Every specific
	// validation sentinel wraps ErrValidation, so one check covers them.
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound

	// Backend timeouts
	case errors.Is(err, generation.ErrBackendTimeout):
		return http.StatusGatewayTimeout

	// Backend failures: the upstream completion service misbehaved
	case errors.Is(err, generation.ErrBackendFailure),
		errors.Is(err, generation.ErrEmptyCompletion),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway

	// Template errors are programming errors, not client mistakes
	case errors.Is(err, prompt.ErrUnknownTemplate),
		errors.Is(err, prompt.ErrMissingVariable):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessageForStatus returns the sanitized client-facing message for a
// mapped status code.
func ErrorMessageForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid generation request"
	case http.StatusNotFound:
		return "Session not found"
	case http.StatusGatewayTimeout:
		return "The generation backend did not respond in time"
	case http.StatusBadGateway:
		return "The generation backend failed to produce an email"
	default:
		return "Internal server error"
	}
}
