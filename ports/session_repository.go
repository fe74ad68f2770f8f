package ports

import (
	"context"

	"assurscore/domain/core"
	"assurscore/domain/questionnaire"
)

// SessionRepository defines the interface for questionnaire session storage.
// Implementations must give the caller read-your-write consistency within a
// logical operation, and serialize concurrent saves of the same session id
// (optimistic version check or per-key lock).
type SessionRepository interface {
	// Get retrieves a session by id. Returns core.ErrSessionNotFound when absent.
	Get(ctx context.Context, id core.SessionID) (*questionnaire.Session, error)

	// Save persists the session, creating or overwriting it.
	Save(ctx context.Context, session *questionnaire.Session) error
}
