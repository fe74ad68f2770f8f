// Package memory provides map-backed repository implementations used by
// tests and local development. Records are deep-copied at the boundary so
// the services stay the exclusive mutation path.
package memory

import (
	"context"
	"sync"

	"assurscore/domain/core"
	"assurscore/domain/questionnaire"
	"assurscore/ports"
)

// SessionRepository is an in-memory ports.SessionRepository.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*questionnaire.Session
}

// NewSessionRepository creates an empty in-memory session store
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[core.SessionID]*questionnaire.Session)}
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

// Get retrieves a session by id
func (r *SessionRepository) Get(_ context.Context, id core.SessionID) (*questionnaire.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s.Clone(), nil
}

// Save persists the session
func (r *SessionRepository) Save(_ context.Context, session *questionnaire.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session.Version++
	r.sessions[session.ID] = session.Clone()
	return nil
}

// Len returns the number of stored sessions. Test helper.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
