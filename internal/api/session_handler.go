package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/phrazzld/missive-api/internal/api/shared"
	"github.com/phrazzld/missive-api/internal/domain"
	"github.com/phrazzld/missive-api/internal/service"
	"github.com/phrazzld/missive-api/internal/session"
)

// SessionResponse represents the response data for a session.
type SessionResponse struct {
	SessionID string            `json:"session_id"`
	CreatedAt time.Time         `json:"created_at"`
	Exchanges []domain.Exchange `json:"exchanges"`
}

// SessionHandler handles session-scoped HTTP requests: creating and
// discarding sessions, follow-up generation threading the session's
// conversation memory, and draft download.
type SessionHandler struct {
	sessions  *session.Store
	drafts    *service.DraftService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *session.Store, drafts *service.DraftService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		drafts:    drafts,
		validator: validator.New(),
		logger:    logger,
	}
}

// CreateSession handles POST /api/sessions requests.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	h.logger.InfoContext(r.Context(), "session created", "session_id", sess.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(sess))
}

// GetSession handles GET /api/sessions/{id} requests.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// DeleteSession handles DELETE /api/sessions/{id} requests, discarding
// the session and its conversation memory.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID")
		return
	}
	h.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// CreateSessionDraft handles POST /api/sessions/{id}/drafts requests:
// generation threading the session's conversation memory, so the prompt
// carries the transcript of every prior exchange. A failed generation
// leaves the session history untouched.
func (h *SessionHandler) CreateSessionDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

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

	// Serialize generation per session so a concurrent request cannot
	// append between this one's transcript read and its own append.
	sess.Lock()
	defer sess.Unlock()

	result, err := h.drafts.Generate(r.Context(), opts, sess.Memory)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusBadRequest {
			shared.RespondWithError(w, r, status, err.Error())
			return
		}
		shared.RespondWithErrorAndLog(w, r, status, ErrorMessageForStatus(status), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, draftToResponse(result))
}

// DownloadDraft handles GET /api/sessions/{id}/download requests,
// serving the session's latest email as a plain-text attachment.
func (h *SessionHandler) DownloadDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	email := sess.LatestEmail()
	if email == "" {
		shared.RespondWithError(w, r, http.StatusNotFound, "No draft generated in this session yet")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="generated_email.txt"`)
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, email); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write draft download", "error", err)
	}
}

// lookupSession parses the path ID and fetches the session, writing the
// error response itself when either step fails.
func (h *SessionHandler) lookupSession(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID")
		return nil, false
	}
	sess, err := h.sessions.Get(id)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return sess, true
}

// sessionToResponse converts a domain.Session to a SessionResponse.
func sessionToResponse(sess *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID: sess.ID.String(),
		CreatedAt: sess.CreatedAt,
		Exchanges: sess.Memory.Exchanges(),
	}
}
