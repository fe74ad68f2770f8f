package memory

import (
	"context"
	"sort"
	"sync"

	"assurscore/domain/analysis"
	"assurscore/domain/core"
	"assurscore/ports"
)

// AnalysisRepository is an in-memory ports.AnalysisRepository.
type AnalysisRepository struct {
	mu      sync.RWMutex
	results map[core.AnalysisID]*analysis.Result
}

// NewAnalysisRepository creates an empty in-memory analysis store
func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{results: make(map[core.AnalysisID]*analysis.Result)}
}

var _ ports.AnalysisRepository = (*AnalysisRepository)(nil)

// Get retrieves a result by id
func (r *AnalysisRepository) Get(_ context.Context, id core.AnalysisID) (*analysis.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.results[id]
	if !ok {
		return nil, core.ErrAnalysisNotFound
	}
	return cloneResult(res), nil
}

// Save persists the result
func (r *AnalysisRepository) Save(_ context.Context, result *analysis.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.ID] = cloneResult(result)
	return nil
}

// FindBySessionID returns the result linked to a session
func (r *AnalysisRepository) FindBySessionID(_ context.Context, id core.SessionID) (*analysis.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.results {
		if res.SessionID == id {
			return cloneResult(res), nil
		}
	}
	return nil, core.ErrAnalysisNotFound
}

// ListRecent returns up to limit results, newest first
func (r *AnalysisRepository) ListRecent(_ context.Context, limit int) ([]*analysis.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*analysis.Result, 0, len(r.results))
	for _, res := range r.results {
		out = append(out, cloneResult(res))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func cloneResult(r *analysis.Result) *analysis.Result {
	cp := *r
	cp.Insights = append(analysis.Insights{}, r.Insights...)
	cp.Breakdown = make(analysis.Breakdown, len(r.Breakdown))
	for k, v := range r.Breakdown {
		cp.Breakdown[k] = v
	}
	cp.Answers = r.Answers.Clone()
	return &cp
}
