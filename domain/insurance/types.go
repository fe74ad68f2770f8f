package insurance

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"assurscore/domain/core"
)

// Type identifies the kind of insurance contract under analysis.
type Type string

const (
	TypeAuto       Type = "auto"
	TypeHabitation Type = "habitation"
	TypeGAV        Type = "gav"
	TypeMutuelle   Type = "mutuelle"
)

// AllTypes lists every supported insurance type in catalog order.
func AllTypes() []Type {
	return []Type{TypeAuto, TypeHabitation, TypeGAV, TypeMutuelle}
}

// ParseType parses a string into a Type
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeAuto:
		return TypeAuto, nil
	case TypeHabitation:
		return TypeHabitation, nil
	case TypeGAV:
		return TypeGAV, nil
	case TypeMutuelle:
		return TypeMutuelle, nil
	default:
		return "", core.NewValidationError("insuranceType", "unknown insurance type: "+s)
	}
}

// IsValid checks whether the type is one of the supported values
func (t Type) IsValid() bool {
	switch t {
	case TypeAuto, TypeHabitation, TypeGAV, TypeMutuelle:
		return true
	}
	return false
}

// String returns the string representation
func (t Type) String() string {
	return string(t)
}

// Answers maps question ids to submitted answers. Values are whatever the
// questionnaire collected: strings, numbers, bools or string slices.
// It maps to a PostgreSQL JSONB column.
type Answers map[string]interface{}

// Value implements driver.Valuer interface
func (a Answers) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner interface
func (a *Answers) Scan(value interface{}) error {
	if value == nil {
		*a = make(Answers)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*a = make(Answers)
		return nil
	}

	if len(bytes) == 0 {
		*a = make(Answers)
		return nil
	}

	result := make(Answers)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*a = result
	return nil
}

// Clone returns a shallow copy of the answer map. Slice values are copied
// as well so callers cannot mutate stored state through a returned session.
func (a Answers) Clone() Answers {
	if a == nil {
		return nil
	}
	out := make(Answers, len(a))
	for k, v := range a {
		if s, ok := v.([]string); ok {
			out[k] = append([]string(nil), s...)
			continue
		}
		if s, ok := v.([]interface{}); ok {
			out[k] = append([]interface{}(nil), s...)
			continue
		}
		out[k] = v
	}
	return out
}

// Has reports whether an answer was recorded for the question id.
func (a Answers) Has(questionID string) bool {
	_, ok := a[questionID]
	return ok
}

// String returns the answer as a string, or "" when absent or not a string.
func (a Answers) String(questionID string) string {
	if v, ok := a[questionID].(string); ok {
		return v
	}
	return ""
}

// Float returns the answer as a float64. JSON decoding turns all numbers
// into float64, so ints submitted over the wire land here too.
func (a Answers) Float(questionID string) (float64, bool) {
	switch v := a[questionID].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Bool returns the answer as a bool, or false when absent or not a bool.
func (a Answers) Bool(questionID string) bool {
	v, _ := a[questionID].(bool)
	return v
}

// Strings returns the answer as a string slice (multi-choice answers).
func (a Answers) Strings(questionID string) []string {
	switch v := a[questionID].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
