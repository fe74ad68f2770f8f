package postgres

import (
	"context"
	"database/sql"
	"errors"

	"assurscore/domain/analysis"
	"assurscore/domain/core"
	"assurscore/ports"

	"github.com/jmoiron/sqlx"
)

// AnalysisRepositoryImpl implements AnalysisRepository for PostgreSQL
type AnalysisRepositoryImpl struct {
	db *sqlx.DB
}

// NewAnalysisRepository creates a new PostgreSQL analysis repository
func NewAnalysisRepository(db *sqlx.DB) ports.AnalysisRepository {
	return &AnalysisRepositoryImpl{db: db}
}

// analysisRow is the flat scan target; TotalSavings is stored as two columns.
type analysisRow struct {
	analysis.Result
	SavingsMin float64 `db:"savings_min"`
	SavingsMax float64 `db:"savings_max"`
}

const analysisColumns = `
	id, session_id, insurance_type, score, score_label, insights,
	savings_min, savings_max, savings_breakdown, answers, user_id,
	is_unlocked, created_at`

// Get retrieves a result by id
func (r *AnalysisRepositoryImpl) Get(ctx context.Context, id core.AnalysisID) (*analysis.Result, error) {
	var row analysisRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+analysisColumns+`
		FROM analysis_results
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrAnalysisNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toResult(), nil
}

// Save persists the result, creating or overwriting it
func (r *AnalysisRepositoryImpl) Save(ctx context.Context, result *analysis.Result) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analysis_results
			(id, session_id, insurance_type, score, score_label, insights,
			 savings_min, savings_max, savings_breakdown, answers, user_id,
			 is_unlocked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			is_unlocked = EXCLUDED.is_unlocked
	`, result.ID, result.SessionID, result.Type, result.Score, result.ScoreLabel,
		result.Insights, result.TotalSavings.Min, result.TotalSavings.Max,
		result.Breakdown, result.Answers, result.UserID, result.IsUnlocked,
		result.CreatedAt)
	return err
}

// FindBySessionID returns the result linked to a session
func (r *AnalysisRepositoryImpl) FindBySessionID(ctx context.Context, id core.SessionID) (*analysis.Result, error) {
	var row analysisRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+analysisColumns+`
		FROM analysis_results
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrAnalysisNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toResult(), nil
}

// ListRecent returns up to limit results, newest first
func (r *AnalysisRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*analysis.Result, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []analysisRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+analysisColumns+`
		FROM analysis_results
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*analysis.Result, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toResult())
	}
	return out, nil
}

func (row *analysisRow) toResult() *analysis.Result {
	result := row.Result
	result.TotalSavings = analysis.SavingsRange{Min: row.SavingsMin, Max: row.SavingsMax}
	return &result
}
