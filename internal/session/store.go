// Package session provides the in-memory store for UI sessions. Sessions
// exist only for the lifetime of the process; nothing here touches
// durable storage.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/missive-api/internal/domain"
)

// ErrNotFound indicates the requested session does not exist (or was
// already discarded).
var ErrNotFound = errors.New("session not found")

// Store is a mutex-guarded map of live sessions. A session's
// ConversationMemory must only be used by one request at a time; the
// store guards its own map, not the sessions it hands out.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*domain.Session)}
}

// Create makes a new session, registers it, and returns it.
func (s *Store) Create() *domain.Session {
	sess := domain.NewSession()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given ID, or ErrNotFound.
func (s *Store) Get(id uuid.UUID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete discards a session and its memory. Deleting an unknown ID is a
// no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
