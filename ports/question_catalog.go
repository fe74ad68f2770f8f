package ports

import (
	"assurscore/domain/insurance"
	"assurscore/domain/questionnaire"
)

// QuestionCatalog exposes the ordered, type-specific question trees the
// questionnaire engine walks. The catalog is static authored data; all
// methods are pure reads. Sequence results honor conditional follow-ups,
// so they depend on the answers recorded so far.
type QuestionCatalog interface {
	// FirstQuestion returns the first question of a type's catalog.
	// Returns core.ErrCatalogNotFound for a type with no catalog.
	FirstQuestion(t insurance.Type) (questionnaire.Question, error)

	// Sequence returns the effective question sequence for the answers so far.
	Sequence(t insurance.Type, answers insurance.Answers) ([]questionnaire.Question, error)

	// SequenceLength returns the length of the effective sequence.
	SequenceLength(t insurance.Type, answers insurance.Answers) (int, error)

	// NextQuestion returns the question following afterID in the effective
	// sequence, or nil when afterID is the last reachable question.
	NextQuestion(t insurance.Type, answers insurance.Answers, afterID string) (*questionnaire.Question, error)
}
