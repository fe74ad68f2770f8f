package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"

	"assurscore/domain/analysis"
	"assurscore/domain/core"
	"assurscore/domain/insurance"
)

// insightPayload augments an insight view with the markdown-rendered HTML of
// its full description. Strategies author Full in markdown.
type insightPayload struct {
	analysis.InsightView
	FullHTML string `json:"fullDescriptionHtml,omitempty"`
}

// analysisPayload shadows the insight lists of the embedded view with their
// rendered counterparts.
type analysisPayload struct {
	analysis.View
	FreeInsights []insightPayload `json:"freeInsights,omitempty"`
	Insights     []insightPayload `json:"insights,omitempty"`
}

func renderView(v analysis.View) analysisPayload {
	out := analysisPayload{View: v}
	for _, in := range v.FreeInsights {
		out.FreeInsights = append(out.FreeInsights, renderInsight(in))
	}
	for _, in := range v.Insights {
		out.Insights = append(out.Insights, renderInsight(in))
	}
	return out
}

func renderInsight(in analysis.InsightView) insightPayload {
	p := insightPayload{InsightView: in}
	if in.Full != "" {
		p.FullHTML = string(markdown.ToHTML([]byte(in.Full), nil, nil))
	}
	return p
}

func (a *App) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysisID, err := core.ParseAnalysisID(chi.URLParam(r, "analysisID"))
	if err != nil {
		a.respondError(w, core.NewValidationError("analysisId", "is required"))
		return
	}

	view, err := a.analyses.Get(r.Context(), analysisID, callerIdentity(r).UserID, false)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renderView(view))
}

func (a *App) handleGetAnalysisBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := core.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		a.respondError(w, core.NewValidationError("sessionId", "is required"))
		return
	}

	view, err := a.analyses.FindBySession(r.Context(), sessionID, callerIdentity(r).UserID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renderView(view))
}

// handleUnlock is the delivery point for the external payment or
// credit-spend confirmation. Idempotent: replays return the unlocked view.
func (a *App) handleUnlock(w http.ResponseWriter, r *http.Request) {
	analysisID, err := core.ParseAnalysisID(chi.URLParam(r, "analysisID"))
	if err != nil {
		a.respondError(w, core.NewValidationError("analysisId", "is required"))
		return
	}

	view, err := a.analyses.Unlock(r.Context(), analysisID, callerIdentity(r).UserID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renderView(view))
}

type claimRequest struct {
	SessionID     string            `json:"sessionId"`
	InsuranceType string            `json:"insuranceType"`
	Answers       insurance.Answers `json:"answers"`
}

// handleClaim keeps an analysis id stable across a login. An existing result
// wins; otherwise the engine regenerates it from the supplied answers.
func (a *App) handleClaim(w http.ResponseWriter, r *http.Request) {
	analysisID, err := core.ParseAnalysisID(chi.URLParam(r, "analysisID"))
	if err != nil {
		a.respondError(w, core.NewValidationError("analysisId", "is required"))
		return
	}

	caller := callerIdentity(r)
	if caller.IsAnonymous() {
		a.respondError(w, core.NewForbiddenError("analysis", analysisID.String()))
		return
	}

	var req claimRequest
	if err := decodeJSON(r, &req); err != nil {
		a.respondError(w, core.NewValidationError("body", "invalid JSON payload"))
		return
	}

	t, err := insurance.ParseType(req.InsuranceType)
	if err != nil {
		a.respondError(w, err)
		return
	}

	result, err := a.analyses.Claim(r.Context(), analysisID, core.SessionID(req.SessionID), t, req.Answers, caller.UserID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renderView(analysis.NewView(result, result.IsUnlocked)))
}

func (a *App) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.analyses.ScoreSummary(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
