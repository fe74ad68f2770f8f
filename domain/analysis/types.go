package analysis

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"assurscore/domain/core"
	"assurscore/domain/insurance"
)

// Category buckets insights for the savings breakdown.
type Category string

const (
	CategoryTarif      Category = "tarif"
	CategoryGarantie   Category = "garantie"
	CategoryCouverture Category = "couverture"
	CategoryProfil     Category = "profil"
	CategoryRisque     Category = "risque"
)

// Status is an insight's severity verdict.
type Status string

const (
	StatusOK        Status = "OK"
	StatusAttention Status = "ATTENTION"
	StatusDanger    Status = "DANGER"
)

// Priority ranks insights; P1 is the most important.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// SavingsRange is a min/max yearly savings estimate in euros.
type SavingsRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Add returns the elementwise sum of two ranges.
func (r SavingsRange) Add(other SavingsRange) SavingsRange {
	return SavingsRange{Min: r.Min + other.Min, Max: r.Max + other.Max}
}

// IsZero reports whether the range carries no estimate.
func (r SavingsRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Content is the textual body of an insight. Full is authored in markdown.
type Content struct {
	Title string `json:"title"`
	Short string `json:"short"`
	Full  string `json:"full"`
}

// Insight is a single scored, categorized finding attached to a result.
type Insight struct {
	ID         core.InsightID `json:"id"`
	StrategyID string         `json:"strategyId"`
	Category   Category       `json:"category"`
	Status     Status         `json:"status"`
	Priority   Priority       `json:"priority"`
	Content    Content        `json:"content"`
	Savings    *SavingsRange  `json:"savingsImpact,omitempty"`
	Free       bool           `json:"isFreeInsight"`
}

// Insights is an ordered insight list mapping to a JSONB column.
type Insights []Insight

// Value implements driver.Valuer interface
func (in Insights) Value() (driver.Value, error) {
	if in == nil {
		return json.Marshal(Insights{})
	}
	return json.Marshal(in)
}

// Scan implements sql.Scanner interface
func (in *Insights) Scan(value interface{}) error {
	if value == nil {
		*in = Insights{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*in = Insights{}
		return nil
	}
	if len(bytes) == 0 {
		*in = Insights{}
		return nil
	}
	result := Insights{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*in = result
	return nil
}

// Breakdown groups savings ranges by category, JSONB-backed.
type Breakdown map[Category]SavingsRange

// Value implements driver.Valuer interface
func (b Breakdown) Value() (driver.Value, error) {
	if b == nil {
		return json.Marshal(Breakdown{})
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner interface
func (b *Breakdown) Scan(value interface{}) error {
	if value == nil {
		*b = make(Breakdown)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*b = make(Breakdown)
		return nil
	}
	if len(bytes) == 0 {
		*b = make(Breakdown)
		return nil
	}
	result := make(Breakdown)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*b = result
	return nil
}

// Result is a completed analysis for one questionnaire session. Mutations
// after creation are limited to flipping IsUnlocked and attaching a user.
type Result struct {
	ID           core.AnalysisID   `json:"id" db:"id"`
	SessionID    core.SessionID    `json:"sessionId" db:"session_id"`
	Type         insurance.Type    `json:"insuranceType" db:"insurance_type"`
	Score        int               `json:"score" db:"score"`
	ScoreLabel   string            `json:"scoreLabel" db:"score_label"`
	Insights     Insights          `json:"insights" db:"insights"`
	TotalSavings SavingsRange      `json:"totalSavings" db:"-"`
	Breakdown    Breakdown         `json:"savingsBreakdown" db:"savings_breakdown"`
	Answers      insurance.Answers `json:"-" db:"answers"`
	UserID       core.UserID       `json:"userId,omitempty" db:"user_id"`
	IsUnlocked   bool              `json:"isUnlocked" db:"is_unlocked"`
	CreatedAt    time.Time         `json:"createdAt" db:"created_at"`
}

// Unlock flips the result to unlocked for the given user. Idempotent: a
// second unlock for the same user is a no-op, never an error.
func (r *Result) Unlock(userID core.UserID) {
	r.IsUnlocked = true
	if r.UserID.IsEmpty() && !userID.IsEmpty() {
		r.UserID = userID
	}
}

// AttachUser binds an anonymous result to a user. No-op when already bound.
func (r *Result) AttachUser(userID core.UserID) {
	if r.UserID.IsEmpty() {
		r.UserID = userID
	}
}

// OwnedBy reports whether the result is bound to the given user.
func (r *Result) OwnedBy(userID core.UserID) bool {
	return !r.UserID.IsEmpty() && r.UserID == userID
}

// FreeInsights returns the insights visible through the paywall.
func (r *Result) FreeInsights() Insights {
	out := Insights{}
	for _, in := range r.Insights {
		if in.Free {
			out = append(out, in)
		}
	}
	return out
}
