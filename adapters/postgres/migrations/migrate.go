// Package migrations manages the database schema. Migrations are ordered
// in-code statements tracked in a schema_migrations table, applied once each.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

type migration struct {
	Version string
	SQL     string
}

var all = []migration{
	{
		Version: "001_questionnaire_sessions",
		SQL: `
			CREATE TABLE IF NOT EXISTS questionnaire_sessions (
				id TEXT PRIMARY KEY,
				insurance_type TEXT NOT NULL,
				answers JSONB NOT NULL DEFAULT '{}',
				current_index INTEGER NOT NULL DEFAULT 0,
				status TEXT NOT NULL DEFAULT 'in_progress',
				user_id TEXT NOT NULL DEFAULT '',
				contact_email TEXT NOT NULL DEFAULT '',
				analysis_id TEXT NOT NULL DEFAULT '',
				initial_price DOUBLE PRECISION NOT NULL DEFAULT 0,
				version INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_sessions_user ON questionnaire_sessions (user_id) WHERE user_id <> '';
			CREATE INDEX IF NOT EXISTS idx_sessions_status ON questionnaire_sessions (status);`,
	},
	{
		Version: "002_analysis_results",
		SQL: `
			CREATE TABLE IF NOT EXISTS analysis_results (
				id TEXT PRIMARY KEY,
				session_id TEXT NOT NULL,
				insurance_type TEXT NOT NULL,
				score INTEGER NOT NULL,
				score_label TEXT NOT NULL,
				insights JSONB NOT NULL DEFAULT '[]',
				savings_min DOUBLE PRECISION NOT NULL DEFAULT 0,
				savings_max DOUBLE PRECISION NOT NULL DEFAULT 0,
				savings_breakdown JSONB NOT NULL DEFAULT '{}',
				answers JSONB NOT NULL DEFAULT '{}',
				user_id TEXT NOT NULL DEFAULT '',
				is_unlocked BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_analyses_session ON analysis_results (session_id);
			CREATE INDEX IF NOT EXISTS idx_analyses_user ON analysis_results (user_id) WHERE user_id <> '';`,
	},
}

// Migrator handles database schema migrations
type Migrator struct {
	db *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

// Up executes all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.appliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, mig := range all {
		if applied[mig.Version] {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", mig.Version, err)
		}
	}
	return nil
}

func (m *Migrator) appliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func (m *Migrator) apply(ctx context.Context, mig migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, mig.Version); err != nil {
		return err
	}
	return tx.Commit()
}
