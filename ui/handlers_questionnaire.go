package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"assurscore/domain/core"
	"assurscore/domain/insurance"
)

type startRequest struct {
	InsuranceType string  `json:"insuranceType"`
	InitialPrice  float64 `json:"initialPrice,omitempty"`
}

func (a *App) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		a.respondError(w, core.NewValidationError("body", "invalid JSON payload"))
		return
	}

	t, err := insurance.ParseType(req.InsuranceType)
	if err != nil {
		a.respondError(w, err)
		return
	}

	result, err := a.questionnaire.Start(r.Context(), t, callerIdentity(r).UserID, req.InitialPrice)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

type nextRequest struct {
	QuestionID string      `json:"questionId"`
	Answer     interface{} `json:"answer"`
}

func (a *App) handleNext(w http.ResponseWriter, r *http.Request) {
	sessionID, err := a.ownedSession(r)
	if err != nil {
		a.respondError(w, err)
		return
	}

	var req nextRequest
	if err := decodeJSON(r, &req); err != nil {
		a.respondError(w, core.NewValidationError("body", "invalid JSON payload"))
		return
	}
	if req.QuestionID == "" {
		a.respondError(w, core.NewValidationError("questionId", "is required"))
		return
	}

	result, err := a.questionnaire.Next(r.Context(), sessionID, req.QuestionID, req.Answer)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (a *App) handlePrev(w http.ResponseWriter, r *http.Request) {
	sessionID, err := a.ownedSession(r)
	if err != nil {
		a.respondError(w, err)
		return
	}

	result, err := a.questionnaire.Prev(r.Context(), sessionID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (a *App) handleComplete(w http.ResponseWriter, r *http.Request) {
	sessionID, err := a.ownedSession(r)
	if err != nil {
		a.respondError(w, err)
		return
	}

	result, err := a.questionnaire.Complete(r.Context(), sessionID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type draftRequest struct {
	Email string `json:"email,omitempty"`
}

func (a *App) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, err := a.ownedSession(r)
	if err != nil {
		a.respondError(w, err)
		return
	}

	var req draftRequest
	if err := decodeJSON(r, &req); err != nil {
		a.respondError(w, core.NewValidationError("body", "invalid JSON payload"))
		return
	}

	draftID, err := a.questionnaire.SaveDraft(r.Context(), sessionID, req.Email)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"draftId": draftID.String()})
}

func (a *App) handleAbandon(w http.ResponseWriter, r *http.Request) {
	sessionID, err := a.ownedSession(r)
	if err != nil {
		a.respondError(w, err)
		return
	}

	if err := a.questionnaire.Abandon(r.Context(), sessionID); err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "abandoned"})
}

func (a *App) handleResume(w http.ResponseWriter, r *http.Request) {
	sessionID, err := a.ownedSession(r)
	if err != nil {
		a.respondError(w, err)
		return
	}

	result, err := a.questionnaire.Resume(r.Context(), sessionID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ownedSession parses the session id from the URL and enforces ownership:
// sessions bound to a user are only reachable by that user, anonymous
// sessions by anyone holding the id.
func (a *App) ownedSession(r *http.Request) (core.SessionID, error) {
	sessionID, err := core.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		return "", core.NewValidationError("sessionId", "is required")
	}
	if _, err := a.questionnaire.VerifySessionOwnership(r.Context(), sessionID, callerIdentity(r).UserID); err != nil {
		return "", err
	}
	return sessionID, nil
}
