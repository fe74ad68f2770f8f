// Package catalog provides the static question trees consumed by the
// questionnaire engine. Authoring lives here, in code; the engine only
// walks the effective sequence.
package catalog

import (
	"assurscore/domain/core"
	"assurscore/domain/insurance"
	"assurscore/domain/questionnaire"
	"assurscore/ports"
)

// StaticCatalog implements ports.QuestionCatalog over in-code question
// definitions. Immutable after construction, safe for concurrent reads.
type StaticCatalog struct {
	questions map[insurance.Type][]questionnaire.Question
}

// New builds the catalog with every supported insurance type.
func New() *StaticCatalog {
	return &StaticCatalog{
		questions: map[insurance.Type][]questionnaire.Question{
			insurance.TypeAuto:       autoQuestions(),
			insurance.TypeHabitation: habitationQuestions(),
			insurance.TypeGAV:        gavQuestions(),
			insurance.TypeMutuelle:   mutuelleQuestions(),
		},
	}
}

var _ ports.QuestionCatalog = (*StaticCatalog)(nil)

// FirstQuestion returns the first question of a type's catalog.
func (c *StaticCatalog) FirstQuestion(t insurance.Type) (questionnaire.Question, error) {
	qs, ok := c.questions[t]
	if !ok || len(qs) == 0 {
		return questionnaire.Question{}, core.ErrCatalogNotFound
	}
	return qs[0], nil
}

// Sequence returns the effective question sequence for the answers so far.
func (c *StaticCatalog) Sequence(t insurance.Type, answers insurance.Answers) ([]questionnaire.Question, error) {
	qs, ok := c.questions[t]
	if !ok {
		return nil, core.ErrCatalogNotFound
	}
	return questionnaire.EffectiveSequence(qs, answers), nil
}

// SequenceLength returns the length of the effective sequence.
func (c *StaticCatalog) SequenceLength(t insurance.Type, answers insurance.Answers) (int, error) {
	seq, err := c.Sequence(t, answers)
	if err != nil {
		return 0, err
	}
	return len(seq), nil
}

// NextQuestion returns the question following afterID in the effective
// sequence, or nil at the end of the walk.
func (c *StaticCatalog) NextQuestion(t insurance.Type, answers insurance.Answers, afterID string) (*questionnaire.Question, error) {
	seq, err := c.Sequence(t, answers)
	if err != nil {
		return nil, err
	}
	for i, q := range seq {
		if q.ID == afterID {
			if i+1 < len(seq) {
				next := seq[i+1]
				return &next, nil
			}
			return nil, nil
		}
	}
	return nil, core.ErrQuestionNotFound
}
