package app

import (
	"context"

	"github.com/montanaflynn/stats"

	"assurscore/domain/analysis"
	"assurscore/domain/core"
	"assurscore/domain/insurance"
	"assurscore/ports"
)

// AnalysisService persists and retrieves analysis results, applies the
// paywall filter and handles unlock and claim transitions.
type AnalysisService struct {
	analyses ports.AnalysisRepository
	engine   *analysis.Engine
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(analyses ports.AnalysisRepository, engine *analysis.Engine) *AnalysisService {
	return &AnalysisService{analyses: analyses, engine: engine}
}

// Get returns the paywall-filtered view of a result for a viewer. entitled
// marks a verified credit spend for this viewer; it unlocks the view without
// flipping the stored result. Results bound to a user are only readable by
// that user.
func (s *AnalysisService) Get(ctx context.Context, id core.AnalysisID, viewer core.UserID, entitled bool) (analysis.View, error) {
	result, err := s.analyses.Get(ctx, id)
	if err != nil {
		return analysis.View{}, err
	}
	if !result.UserID.IsEmpty() && result.UserID != viewer {
		return analysis.View{}, core.NewForbiddenError("analysis", id.String())
	}
	return analysis.NewView(result, result.IsUnlocked || entitled), nil
}

// FindBySession returns the filtered view of the result a session produced.
func (s *AnalysisService) FindBySession(ctx context.Context, sessionID core.SessionID, viewer core.UserID) (analysis.View, error) {
	result, err := s.analyses.FindBySessionID(ctx, sessionID)
	if err != nil {
		return analysis.View{}, err
	}
	if !result.UserID.IsEmpty() && result.UserID != viewer {
		return analysis.View{}, core.NewForbiddenError("analysis", result.ID.String())
	}
	return analysis.NewView(result, result.IsUnlocked), nil
}

// Unlock marks the result unlocked for a user. Triggered by the external
// payment or credit-spend confirmation; idempotent so at-least-once delivery
// is harmless. Score and insights are never touched.
func (s *AnalysisService) Unlock(ctx context.Context, id core.AnalysisID, userID core.UserID) (analysis.View, error) {
	result, err := s.analyses.Get(ctx, id)
	if err != nil {
		return analysis.View{}, err
	}
	if !result.UserID.IsEmpty() && !userID.IsEmpty() && result.UserID != userID {
		return analysis.View{}, core.NewForbiddenError("analysis", id.String())
	}

	if !result.IsUnlocked {
		result.Unlock(userID)
		if err := s.analyses.Save(ctx, result); err != nil {
			return analysis.View{}, err
		}
	}
	return analysis.NewView(result, true), nil
}

// Claim makes an analysis id durable across a login. When a result with the
// id already exists it wins and the supplied answers are ignored; otherwise
// the engine regenerates the result deterministically from the answers under
// the same id. The user is attached either way.
func (s *AnalysisService) Claim(ctx context.Context, id core.AnalysisID, sessionID core.SessionID, t insurance.Type, answers insurance.Answers, userID core.UserID) (*analysis.Result, error) {
	if id.IsEmpty() {
		return nil, core.NewValidationError("analysisId", "cannot be empty")
	}

	existing, err := s.analyses.Get(ctx, id)
	if err == nil {
		if !existing.UserID.IsEmpty() && existing.UserID != userID {
			return nil, core.NewForbiddenError("analysis", id.String())
		}
		existing.AttachUser(userID)
		if err := s.analyses.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !core.IsNotFoundError(err) {
		return nil, err
	}

	if !t.IsValid() {
		return nil, core.ErrUnknownInsuranceType
	}
	result := s.engine.Analyze(sessionID, t, answers, id)
	result.AttachUser(userID)
	if err := s.analyses.Save(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Summary aggregates headline numbers over recent analyses.
type Summary struct {
	Count         int     `json:"count"`
	MeanScore     float64 `json:"meanScore"`
	MedianScore   float64 `json:"medianScore"`
	MeanSavings   float64 `json:"meanSavings"`
	TotalInsights int     `json:"totalInsights"`
}

// ScoreSummary computes mean/median score and mean midpoint savings over the
// most recent results.
func (s *AnalysisService) ScoreSummary(ctx context.Context) (Summary, error) {
	results, err := s.analyses.ListRecent(ctx, 200)
	if err != nil {
		return Summary{}, err
	}
	if len(results) == 0 {
		return Summary{}, nil
	}

	scores := make([]float64, 0, len(results))
	savings := make([]float64, 0, len(results))
	totalInsights := 0
	for _, r := range results {
		scores = append(scores, float64(r.Score))
		savings = append(savings, (r.TotalSavings.Min+r.TotalSavings.Max)/2)
		totalInsights += len(r.Insights)
	}

	meanScore, err := stats.Mean(scores)
	if err != nil {
		return Summary{}, err
	}
	medianScore, err := stats.Median(scores)
	if err != nil {
		return Summary{}, err
	}
	meanSavings, err := stats.Mean(savings)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:         len(results),
		MeanScore:     meanScore,
		MedianScore:   medianScore,
		MeanSavings:   meanSavings,
		TotalInsights: totalInsights,
	}, nil
}
