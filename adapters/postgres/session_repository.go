package postgres

import (
	"context"
	"database/sql"
	"errors"

	"assurscore/domain/core"
	"assurscore/domain/questionnaire"
	"assurscore/ports"

	"github.com/jmoiron/sqlx"
)

// SessionRepositoryImpl implements SessionRepository for PostgreSQL
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Get retrieves a session by id
func (r *SessionRepositoryImpl) Get(ctx context.Context, id core.SessionID) (*questionnaire.Session, error) {
	var session questionnaire.Session
	err := r.db.GetContext(ctx, &session, `
		SELECT id, insurance_type, answers, current_index, status, user_id,
		       contact_email, analysis_id, initial_price, version, created_at, updated_at
		FROM questionnaire_sessions
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Save persists the session with an optimistic version check. Concurrent
// saves of the same session id lose with ErrSessionConflict instead of
// silently clobbering the other writer's answers.
func (r *SessionRepositoryImpl) Save(ctx context.Context, session *questionnaire.Session) error {
	if session.Version == 0 {
		session.Version = 1
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO questionnaire_sessions
				(id, insurance_type, answers, current_index, status, user_id,
				 contact_email, analysis_id, initial_price, version, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, session.ID, session.Type, session.Answers, session.CurrentIndex,
			session.Status, session.UserID, session.ContactEmail, session.AnalysisID,
			session.InitialPrice, session.Version, session.CreatedAt, session.UpdatedAt)
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE questionnaire_sessions
		SET answers = $2, current_index = $3, status = $4, user_id = $5,
		    contact_email = $6, analysis_id = $7, version = version + 1, updated_at = $8
		WHERE id = $1 AND version = $9
	`, session.ID, session.Answers, session.CurrentIndex, session.Status,
		session.UserID, session.ContactEmail, session.AnalysisID,
		session.UpdatedAt, session.Version)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionConflict
	}
	session.Version++
	return nil
}

// ErrSessionConflict signals a lost optimistic-lock race on a session save.
var ErrSessionConflict = errors.New("session was modified concurrently")
