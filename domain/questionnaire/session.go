package questionnaire

import (
	"time"

	"assurscore/domain/core"
	"assurscore/domain/insurance"
)

// Status represents the lifecycle state of a questionnaire session
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// Session tracks one user's walk through a question catalog. It is exclusively
// owned by the questionnaire service; callers never mutate it directly.
type Session struct {
	ID            core.SessionID    `json:"id" db:"id"`
	Type          insurance.Type    `json:"insuranceType" db:"insurance_type"`
	Answers       insurance.Answers `json:"answers" db:"answers"`
	CurrentIndex  int               `json:"currentQuestionIndex" db:"current_index"`
	Status        Status            `json:"status" db:"status"`
	UserID        core.UserID       `json:"userId,omitempty" db:"user_id"`
	ContactEmail  string            `json:"contactEmail,omitempty" db:"contact_email"`
	AnalysisID    core.AnalysisID   `json:"analysisId,omitempty" db:"analysis_id"`
	InitialPrice  float64           `json:"initialPrice,omitempty" db:"initial_price"`
	Version       int               `json:"-" db:"version"`
	CreatedAt     time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time         `json:"updatedAt" db:"updated_at"`
}

// NewSession creates an in-progress session for the given insurance type.
// userID stays empty for anonymous sessions; binding happens explicitly.
func NewSession(t insurance.Type, userID core.UserID, initialPrice float64) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           core.SessionID(core.NewID()),
		Type:         t,
		Answers:      make(insurance.Answers),
		CurrentIndex: 0,
		Status:       StatusInProgress,
		UserID:       userID,
		InitialPrice: initialPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsActive reports whether the session still accepts mutations.
func (s *Session) IsActive() bool {
	return s.Status == StatusInProgress
}

// RecordAnswer stores or overwrites the answer for a question id.
// Only valid while in progress.
func (s *Session) RecordAnswer(questionID string, answer interface{}) error {
	if !s.IsActive() {
		return core.ErrSessionNotActive
	}
	s.Answers[questionID] = answer
	s.touch()
	return nil
}

// Advance moves the pointer forward one step.
func (s *Session) Advance() {
	s.CurrentIndex++
	s.touch()
}

// Retreat moves the pointer back one step. Fails at the first question and
// leaves the pointer untouched.
func (s *Session) Retreat() error {
	if s.CurrentIndex == 0 {
		return core.ErrAlreadyAtFirstStep
	}
	s.CurrentIndex--
	s.touch()
	return nil
}

// ClampIndex pulls the pointer back inside the effective sequence. Needed
// after an earlier answer changes and a follow-up disappears from the walk.
func (s *Session) ClampIndex(sequenceLen int) {
	if sequenceLen == 0 {
		s.CurrentIndex = 0
		return
	}
	if s.CurrentIndex >= sequenceLen {
		s.CurrentIndex = sequenceLen - 1
	}
	if s.CurrentIndex < 0 {
		s.CurrentIndex = 0
	}
}

// Complete transitions in_progress -> completed and links the analysis.
func (s *Session) Complete(analysisID core.AnalysisID) error {
	if !s.IsActive() {
		return core.NewInvalidStateError("complete session", string(s.Status))
	}
	s.Status = StatusCompleted
	s.AnalysisID = analysisID
	s.touch()
	return nil
}

// Abandon transitions in_progress -> abandoned. Terminal.
func (s *Session) Abandon() error {
	if !s.IsActive() {
		return core.NewInvalidStateError("abandon session", string(s.Status))
	}
	s.Status = StatusAbandoned
	s.touch()
	return nil
}

// AttachEmail records a contact email for draft resumption. No status change.
func (s *Session) AttachEmail(email string) {
	if email != "" {
		s.ContactEmail = email
	}
	s.touch()
}

// OwnedBy reports whether the session is bound to the given user.
// Anonymous sessions (empty UserID) are owned by nobody.
func (s *Session) OwnedBy(userID core.UserID) bool {
	return !s.UserID.IsEmpty() && s.UserID == userID
}

// IsAnonymous reports whether the session has no bound user.
func (s *Session) IsAnonymous() bool {
	return s.UserID.IsEmpty()
}

// Clone returns a deep-enough copy for handing across the repository
// boundary without sharing the answers map.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Answers = s.Answers.Clone()
	return &cp
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// Progress describes the user's position in the effective sequence.
type Progress struct {
	Current   int    `json:"current"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
	StepLabel string `json:"stepLabel"`
}

// ComputeProgress derives the progress view for a pointer position within an
// effective sequence. Current is 1-based; Total shrinks and grows as
// follow-ups appear or disappear.
func ComputeProgress(sequence []Question, index int) Progress {
	total := len(sequence)
	if total == 0 {
		return Progress{}
	}
	if index >= total {
		index = total - 1
	}
	if index < 0 {
		index = 0
	}
	current := index + 1
	return Progress{
		Current:   current,
		Total:     total,
		Percent:   int(float64(current)/float64(total)*100 + 0.5),
		StepLabel: sequence[index].Section,
	}
}
