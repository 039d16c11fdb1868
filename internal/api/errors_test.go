package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/missive-api/internal/domain"
	"github.com/phrazzld/missive-api/internal/generation"
	"github.com/phrazzld/missive-api/internal/prompt"
	"github.com/phrazzld/missive-api/internal/session"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"empty subject", domain.ErrEmptySubject, http.StatusBadRequest},
		{"subject too long", domain.ErrSubjectTooLong, http.StatusBadRequest},
		{"invalid tone", domain.ErrInvalidTone, http.StatusBadRequest},
		{"paragraph count", domain.ErrParagraphCountOutOfRange, http.StatusBadRequest},
		{"validation category", domain.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("request rejected: %w", domain.ErrInvalidTone), http.StatusBadRequest},
		{"session not found", session.ErrNotFound, http.StatusNotFound},
		{"backend timeout", generation.ErrBackendTimeout, http.StatusGatewayTimeout},
		{"backend failure", generation.ErrBackendFailure, http.StatusBadGateway},
		{"empty completion", generation.ErrEmptyCompletion, http.StatusBadGateway},
		{"content blocked", generation.ErrContentBlocked, http.StatusBadGateway},
		{"unknown template", prompt.ErrUnknownTemplate, http.StatusInternalServerError},
		{"missing variable", prompt.ErrMissingVariable, http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}
