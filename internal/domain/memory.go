package domain

import (
	"strings"
	"sync"
	"time"
)

// Exchange records one completed generation: the subject the caller asked
// about and the email that came back.
type Exchange struct {
	Subject   string    `json:"subject"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationMemory is the append-only history of prior exchanges within
// one session. It exists only to render the chat-history block of
// follow-up prompts and is never persisted to durable storage.
//
// All methods are safe for concurrent use: an HTTP host can serve a
// session snapshot or download while a generation is in flight. Callers
// that need a whole generate-then-append cycle to be atomic must
// serialize at the session level (see Session.Lock).
type ConversationMemory struct {
	mu        sync.RWMutex
	exchanges []Exchange
}

// NewConversationMemory returns an empty memory.
func NewConversationMemory() *ConversationMemory {
	return &ConversationMemory{}
}

// Append records a completed exchange. Entries are kept in insertion
// order; nothing is ever removed or rewritten.
func (m *ConversationMemory) Append(subject, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exchanges = append(m.exchanges, Exchange{
		Subject:   subject,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	})
}

// Len reports the number of recorded exchanges.
func (m *ConversationMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.exchanges)
}

// Exchanges returns a copy of the recorded exchanges in chronological
// order. The copy keeps callers from mutating history.
func (m *ConversationMemory) Exchanges() []Exchange {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Exchange, len(m.exchanges))
	copy(out, m.exchanges)
	return out
}

// Transcript renders all prior exchanges as the plain-text conversation
// block substituted into follow-up prompts:
//
//	Human: <subject>
//	AI: <email>
//
// one pair per exchange, in chronological order. An empty memory renders
// as an empty string.
func (m *ConversationMemory) Transcript() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.exchanges) == 0 {
		return ""
	}
	var b strings.Builder
	for i, ex := range m.exchanges {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Human: ")
		b.WriteString(ex.Subject)
		b.WriteString("\nAI: ")
		b.WriteString(ex.Email)
	}
	return b.String()
}
