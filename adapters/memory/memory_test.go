package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assurscore/domain/analysis"
	"assurscore/domain/core"
	"assurscore/domain/insurance"
	"assurscore/domain/questionnaire"
)

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	s := questionnaire.NewSession(insurance.TypeAuto, "", 0)
	require.NoError(t, s.RecordAnswer("age_conducteur", 40))
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, 40, got.Answers["age_conducteur"])
	assert.Equal(t, 1, got.Version)
}

func TestSessionRepository_GetUnknown(t *testing.T) {
	_, err := NewSessionRepository().Get(context.Background(), core.SessionID(core.NewID()))
	assert.ErrorIs(t, err, core.ErrSessionNotFound)
}

func TestSessionRepository_IsolatesStoredState(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	s := questionnaire.NewSession(insurance.TypeAuto, "", 0)
	require.NoError(t, repo.Save(ctx, s))

	// Mutating a fetched copy must not leak into the store.
	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	got.Answers["franchise"] = 999
	got.Status = questionnaire.StatusAbandoned

	fresh, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, fresh.Answers.Has("franchise"))
	assert.Equal(t, questionnaire.StatusInProgress, fresh.Status)
}

func TestAnalysisRepository_RoundTrip(t *testing.T) {
	repo := NewAnalysisRepository()
	ctx := context.Background()

	r := &analysis.Result{
		ID:        core.AnalysisID(core.NewID()),
		SessionID: core.SessionID(core.NewID()),
		Type:      insurance.TypeGAV,
		Score:     82,
		Insights:  analysis.Insights{{ID: core.InsightID(core.NewID()), Status: analysis.StatusOK}},
		Breakdown: analysis.Breakdown{},
		Answers:   insurance.Answers{},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, r))

	got, err := repo.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 82, got.Score)

	bySession, err := repo.FindBySessionID(ctx, r.SessionID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, bySession.ID)

	_, err = repo.FindBySessionID(ctx, core.SessionID(core.NewID()))
	assert.ErrorIs(t, err, core.ErrAnalysisNotFound)
}

func TestAnalysisRepository_ListRecent(t *testing.T) {
	repo := NewAnalysisRepository()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &analysis.Result{
			ID:        core.AnalysisID(core.NewID()),
			SessionID: core.SessionID(core.NewID()),
			Score:     i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 4, recent[0].Score, "newest first")
	assert.Equal(t, 3, recent[1].Score)
	assert.Equal(t, 2, recent[2].Score)
}
