package ports

import (
	"context"

	"assurscore/domain/analysis"
	"assurscore/domain/core"
)

// AnalysisRepository defines the interface for analysis result storage.
type AnalysisRepository interface {
	// Get retrieves a result by id. Returns core.ErrAnalysisNotFound when absent.
	Get(ctx context.Context, id core.AnalysisID) (*analysis.Result, error)

	// Save persists the result, creating or overwriting it.
	Save(ctx context.Context, result *analysis.Result) error

	// FindBySessionID returns the result produced by a session, or
	// core.ErrAnalysisNotFound when none exists.
	FindBySessionID(ctx context.Context, id core.SessionID) (*analysis.Result, error)

	// ListRecent returns up to limit results, newest first.
	ListRecent(ctx context.Context, limit int) ([]*analysis.Result, error)
}
