package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the caller-owned state surrounding one user's interaction:
// an identifier, the conversation memory threaded through follow-up
// generations, and the drafts produced so far. Sessions live in memory
// for the caller's lifetime and are discarded at session end.
type Session struct {
	ID        uuid.UUID           `json:"id"`
	Memory    *ConversationMemory `json:"-"`
	CreatedAt time.Time           `json:"created_at"`

	mu sync.Mutex
}

// NewSession creates a session with a fresh ID and empty memory.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		Memory:    NewConversationMemory(),
		CreatedAt: time.Now().UTC(),
	}
}

// Lock serializes generation within this session. A follow-up generation
// reads the transcript, calls the backend, then appends the new exchange;
// the host must hold the session lock across that whole window so two
// concurrent requests cannot interleave and produce drafts built from a
// transcript that is stale by append time.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the lock taken by Lock.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Validate checks that the session carries usable state.
func (s *Session) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySessionID
	}
	return nil
}

// LatestEmail returns the most recently generated email in this session,
// or the empty string if nothing has been generated yet.
func (s *Session) LatestEmail() string {
	exchanges := s.Memory.Exchanges()
	if len(exchanges) == 0 {
		return ""
	}
	return exchanges[len(exchanges)-1].Email
}
