package app

import (
	"context"

	"assurscore/domain/analysis"
	"assurscore/domain/core"
	"assurscore/domain/insurance"
	"assurscore/domain/questionnaire"
	"assurscore/ports"
)

// QuestionnaireService orchestrates the questionnaire session lifecycle:
// creation, answer submission and advancement, draft persistence, completion
// (which runs the analysis engine) and ownership-aware retrieval.
type QuestionnaireService struct {
	sessions ports.SessionRepository
	analyses ports.AnalysisRepository
	catalog  ports.QuestionCatalog
	engine   *analysis.Engine
}

// NewQuestionnaireService creates a questionnaire service
func NewQuestionnaireService(
	sessions ports.SessionRepository,
	analyses ports.AnalysisRepository,
	catalog ports.QuestionCatalog,
	engine *analysis.Engine,
) *QuestionnaireService {
	return &QuestionnaireService{
		sessions: sessions,
		analyses: analyses,
		catalog:  catalog,
		engine:   engine,
	}
}

// StartResult is the response of Start.
type StartResult struct {
	SessionID core.SessionID         `json:"sessionId"`
	Question  questionnaire.Question `json:"question"`
	Progress  questionnaire.Progress `json:"progress"`
}

// NextResult is the response of Next. Question is nil when the walk reached
// the end of the effective sequence (Complete=true).
type NextResult struct {
	Complete    bool                    `json:"complete"`
	CanComplete bool                    `json:"canComplete"`
	Question    *questionnaire.Question `json:"question,omitempty"`
	Progress    questionnaire.Progress  `json:"progress"`
}

// PrevResult is the response of Prev.
type PrevResult struct {
	Question questionnaire.Question `json:"question"`
	Progress questionnaire.Progress `json:"progress"`
}

// CompleteResult is the response of Complete.
type CompleteResult struct {
	AnalysisID    core.AnalysisID   `json:"analysisId"`
	Analysis      *analysis.Result  `json:"analysis"`
	InsuranceType insurance.Type    `json:"insuranceType"`
	Answers       insurance.Answers `json:"answers"`
}

// ResumeResult rehydrates a stored session for the frontend.
type ResumeResult struct {
	SessionID  core.SessionID          `json:"sessionId"`
	Type       insurance.Type          `json:"insuranceType"`
	Status     questionnaire.Status    `json:"status"`
	Question   *questionnaire.Question `json:"question,omitempty"`
	Progress   questionnaire.Progress  `json:"progress"`
	AnalysisID core.AnalysisID         `json:"analysisId,omitempty"`
}

// Start creates an in-progress session for the insurance type and returns
// the first catalog question. userID may be empty for anonymous visitors.
func (s *QuestionnaireService) Start(ctx context.Context, t insurance.Type, userID core.UserID, initialPrice float64) (*StartResult, error) {
	if !t.IsValid() {
		return nil, core.ErrUnknownInsuranceType
	}

	first, err := s.catalog.FirstQuestion(t)
	if err != nil {
		return nil, err
	}

	session := questionnaire.NewSession(t, userID, initialPrice)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	seq, err := s.catalog.Sequence(t, session.Answers)
	if err != nil {
		return nil, err
	}

	return &StartResult{
		SessionID: session.ID,
		Question:  first,
		Progress:  questionnaire.ComputeProgress(seq, 0),
	}, nil
}

// Next records the answer for the question at the current pointer and walks
// to the next question of the effective sequence. Follow-ups unlocked by the
// answer appear immediately after it. When the walk reaches the end, the
// result reports Complete=true and whether completion is allowed; a required
// question left unanswered anywhere in the sequence is surfaced first.
func (s *QuestionnaireService) Next(ctx context.Context, sessionID core.SessionID, questionID string, answer interface{}) (*NextResult, error) {
	session, err := s.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	seq, err := s.catalog.Sequence(session.Type, session.Answers)
	if err != nil {
		return nil, err
	}
	session.ClampIndex(len(seq))

	current := seq[session.CurrentIndex]
	if current.ID != questionID {
		return nil, core.ErrQuestionMismatch
	}
	if answer == nil && current.Required {
		return nil, core.ErrMissingAnswer
	}

	if err := session.RecordAnswer(questionID, answer); err != nil {
		return nil, err
	}

	// Recompute: the answer just given may have toggled follow-ups.
	seq, err = s.catalog.Sequence(session.Type, session.Answers)
	if err != nil {
		return nil, err
	}

	pos := indexOf(seq, questionID)
	if pos < 0 {
		// The answered question fell out of its own sequence; walk restarts
		// at the first open required question.
		pos = len(seq) - 1
	}

	if pos+1 < len(seq) {
		session.CurrentIndex = pos + 1
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
		next := seq[session.CurrentIndex]
		return &NextResult{
			Question: &next,
			Progress: questionnaire.ComputeProgress(seq, session.CurrentIndex),
		}, nil
	}

	// End of the effective sequence. Surface any required question skipped
	// along the way before reporting completion.
	if open := questionnaire.FirstUnansweredRequired(seq, session.Answers); open >= 0 {
		session.CurrentIndex = open
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
		q := seq[open]
		return &NextResult{
			Question: &q,
			Progress: questionnaire.ComputeProgress(seq, open),
		}, nil
	}

	session.ClampIndex(len(seq))
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &NextResult{
		Complete:    true,
		CanComplete: true,
		Progress:    questionnaire.ComputeProgress(seq, session.CurrentIndex),
	}, nil
}

// Prev moves the pointer back one step in the effective sequence. Fails with
// an invalid-state error at the first question, leaving the pointer untouched.
func (s *QuestionnaireService) Prev(ctx context.Context, sessionID core.SessionID) (*PrevResult, error) {
	session, err := s.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	seq, err := s.catalog.Sequence(session.Type, session.Answers)
	if err != nil {
		return nil, err
	}
	session.ClampIndex(len(seq))

	if err := session.Retreat(); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &PrevResult{
		Question: seq[session.CurrentIndex],
		Progress: questionnaire.ComputeProgress(seq, session.CurrentIndex),
	}, nil
}

// Complete runs the analysis engine over the full answer set, persists the
// result linked to the session (and its user when bound) and transitions the
// session to completed.
func (s *QuestionnaireService) Complete(ctx context.Context, sessionID core.SessionID) (*CompleteResult, error) {
	session, err := s.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	seq, err := s.catalog.Sequence(session.Type, session.Answers)
	if err != nil {
		return nil, err
	}
	if questionnaire.FirstUnansweredRequired(seq, session.Answers) >= 0 {
		return nil, core.ErrSessionIncomplete
	}

	result := s.engine.Analyze(session.ID, session.Type, session.Answers, "")
	if !session.UserID.IsEmpty() {
		result.AttachUser(session.UserID)
	}
	if err := s.analyses.Save(ctx, result); err != nil {
		return nil, err
	}

	if err := session.Complete(result.ID); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &CompleteResult{
		AnalysisID:    result.ID,
		Analysis:      result,
		InsuranceType: session.Type,
		Answers:       session.Answers.Clone(),
	}, nil
}

// SaveDraft attaches an optional contact email for later resumption. The
// session status does not change; the draft id is the session id.
func (s *QuestionnaireService) SaveDraft(ctx context.Context, sessionID core.SessionID, email string) (core.SessionID, error) {
	session, err := s.activeSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	session.AttachEmail(email)
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", err
	}
	return session.ID, nil
}

// Abandon transitions the session to abandoned. Terminal.
func (s *QuestionnaireService) Abandon(ctx context.Context, sessionID core.SessionID) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := session.Abandon(); err != nil {
		return err
	}
	return s.sessions.Save(ctx, session)
}

// Resume rehydrates a stored session without mutating it. Ownership is never
// adopted here: an anonymous session stays anonymous until an explicit
// save-to-account action binds it.
func (s *QuestionnaireService) Resume(ctx context.Context, sessionID core.SessionID) (*ResumeResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := &ResumeResult{
		SessionID:  session.ID,
		Type:       session.Type,
		Status:     session.Status,
		AnalysisID: session.AnalysisID,
	}

	if !session.IsActive() {
		return out, nil
	}

	seq, err := s.catalog.Sequence(session.Type, session.Answers)
	if err != nil {
		return nil, err
	}
	session.ClampIndex(len(seq))
	q := seq[session.CurrentIndex]
	out.Question = &q
	out.Progress = questionnaire.ComputeProgress(seq, session.CurrentIndex)
	return out, nil
}

// VerifySessionOwnership loads a session and checks the caller may touch it.
// Unknown ids yield not-found; a session bound to another user yields
// forbidden; anonymous sessions pass for any caller.
func (s *QuestionnaireService) VerifySessionOwnership(ctx context.Context, sessionID core.SessionID, caller core.UserID) (*questionnaire.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsAnonymous() && session.UserID != caller {
		return nil, core.NewForbiddenError("session", sessionID.String())
	}
	return session, nil
}

func (s *QuestionnaireService) activeSession(ctx context.Context, sessionID core.SessionID) (*questionnaire.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsActive() {
		return nil, core.ErrSessionNotActive
	}
	return session, nil
}

func indexOf(seq []questionnaire.Question, questionID string) int {
	for i, q := range seq {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}
