// Package api implements the HTTP surface of the email draft service.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/missive-api/internal/api/shared"
	"github.com/phrazzld/missive-api/internal/domain"
	"github.com/phrazzld/missive-api/internal/service"
)

// DraftRequest represents the request body for generating an email draft.
type DraftRequest struct {
	Subject string `json:"subject"            validate:"required,min=1"`
	Tone    string `json:"tone"`
	// Length is the requested paragraph count. Omitted means the default
	// of three; an explicit out-of-range value is rejected.
	Length            *int   `json:"length"`
	IncludePostscript bool   `json:"include_postscript"`
	Provider          string `json:"provider"`
	UseAnalysis       bool   `json:"use_analysis"`
}

// DraftResponse represents the response data for a generated draft.
type DraftResponse struct {
	Email     string            `json:"email"`
	Outputs   map[string]string `json:"outputs,omitempty"`
	Provider  string            `json:"provider"`
	Model     string            `json:"model"`
	CreatedAt time.Time         `json:"created_at"`
}

// DraftHandler handles draft-generation HTTP requests.
type DraftHandler struct {
	drafts    *service.DraftService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(drafts *service.DraftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{
		drafts:    drafts,
		validator: validator.New(),
		logger:    logger,
	}
}

// CreateDraft handles POST /api/drafts requests: a one-shot generation
// with no conversation memory.
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	opts, err := optionsFromRequest(req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.drafts.Generate(r.Context(), opts, nil)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusBadRequest {
			// Validation errors are safe and useful to echo back.
			shared.RespondWithError(w, r, status, err.Error())
			return
		}
		shared.RespondWithErrorAndLog(w, r, status, ErrorMessageForStatus(status), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, draftToResponse(result))
}

// optionsFromRequest converts a DraftRequest into domain options,
// applying the UI defaults for omitted fields.
func optionsFromRequest(req DraftRequest) (domain.GenerationOptions, error) {
	tone, err := domain.ParseTone(req.Tone)
	if err != nil {
		return domain.GenerationOptions{}, err
	}

	length := 3
	if req.Length != nil {
		length = *req.Length
	}

	return domain.GenerationOptions{
		Subject:           req.Subject,
		Tone:              tone,
		ParagraphCount:    length,
		IncludePostscript: req.IncludePostscript,
		Provider:          req.Provider,
		UseAnalysis:       req.UseAnalysis,
	}, nil
}

// draftToResponse converts a domain.GenerationResult to a DraftResponse.
func draftToResponse(result *domain.GenerationResult) DraftResponse {
	return DraftResponse{
		Email:     result.Email,
		Outputs:   result.Outputs,
		Provider:  result.Provider,
		Model:     result.Model,
		CreatedAt: result.CreatedAt,
	}
}
