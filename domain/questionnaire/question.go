package questionnaire

import (
	"fmt"
	"strings"

	"assurscore/domain/insurance"
)

// QuestionKind is the input widget the frontend should render for a question.
type QuestionKind string

const (
	KindChoice      QuestionKind = "choice"
	KindMultiChoice QuestionKind = "multi_choice"
	KindNumber      QuestionKind = "number"
	KindText        QuestionKind = "text"
	KindBool        QuestionKind = "bool"
)

// Question is a single catalog entry. Follow-ups are nested questions that
// only enter the effective sequence when the parent answer satisfies their
// condition.
type Question struct {
	ID        string       `json:"id"`
	Section   string       `json:"section"`
	Label     string       `json:"label"`
	Kind      QuestionKind `json:"kind"`
	Options   []string     `json:"options,omitempty"`
	Required  bool         `json:"required"`
	FollowUps []FollowUp   `json:"followUps,omitempty"`
}

// FollowUp gates a nested question on the parent answer.
type FollowUp struct {
	Condition Condition `json:"condition"`
	Question  Question  `json:"question"`
}

// Condition is an equality or containment test against the parent answer.
// Exactly one of Equals/Contains is set.
type Condition struct {
	Equals   interface{} `json:"equals,omitempty"`
	Contains string      `json:"contains,omitempty"`
}

// Matches evaluates the condition against a submitted answer.
// Equality compares string forms so numeric answers match numeric conditions
// regardless of how JSON decoded them. Containment matches either a substring
// of a string answer or membership in a multi-choice answer.
func (c Condition) Matches(answer interface{}) bool {
	if answer == nil {
		return false
	}
	if c.Equals != nil {
		return asComparable(answer) == asComparable(c.Equals)
	}
	if c.Contains != "" {
		switch v := answer.(type) {
		case string:
			return strings.Contains(v, c.Contains)
		case []string:
			for _, e := range v {
				if e == c.Contains {
					return true
				}
			}
		case []interface{}:
			for _, e := range v {
				if s, ok := e.(string); ok && s == c.Contains {
					return true
				}
			}
		}
		return false
	}
	return false
}

func asComparable(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		// Trim trailing zeros so 18 and 18.0 compare equal.
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", t), "0"), ".")
	case int:
		return fmt.Sprintf("%d", t)
	case int64:
		return fmt.Sprintf("%d", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// EffectiveSequence flattens the catalog questions for one insurance type
// into the ordered list actually reachable given the answers recorded so far.
// Follow-ups appear immediately after their parent, and only while the parent
// answer satisfies their condition. The result is recomputed on every call
// and never cached inside a session: changing an earlier answer can make
// follow-ups appear or disappear.
func EffectiveSequence(questions []Question, answers insurance.Answers) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, q)
		out = appendFollowUps(out, q, answers)
	}
	return out
}

func appendFollowUps(out []Question, parent Question, answers insurance.Answers) []Question {
	answer, ok := answers[parent.ID]
	if !ok {
		return out
	}
	for _, fu := range parent.FollowUps {
		if !fu.Condition.Matches(answer) {
			continue
		}
		out = append(out, fu.Question)
		out = appendFollowUps(out, fu.Question, answers)
	}
	return out
}

// FirstUnansweredRequired returns the index of the first required question in
// the effective sequence without a recorded answer, or -1 when every required
// question has been answered.
func FirstUnansweredRequired(sequence []Question, answers insurance.Answers) int {
	for i, q := range sequence {
		if q.Required && !answers.Has(q.ID) {
			return i
		}
	}
	return -1
}
