package analysis

import "assurscore/domain/insurance"

// InsightView is the outward-facing shape of an insight. Strategy ids and
// raw answers never cross this boundary, locked or not.
type InsightView struct {
	ID       string        `json:"id"`
	Category Category      `json:"category"`
	Status   Status        `json:"status"`
	Priority Priority      `json:"priority"`
	Title    string        `json:"title"`
	Short    string        `json:"shortDescription"`
	Full     string        `json:"fullDescription,omitempty"`
	Savings  *SavingsRange `json:"savingsImpact,omitempty"`
	Free     bool          `json:"isFreeInsight"`
}

// View is the paywall-filtered representation of a Result. Locked views
// carry only the free insights plus headline numbers; unlocked views carry
// everything.
type View struct {
	ID            string         `json:"id"`
	InsuranceType insurance.Type `json:"insuranceType"`
	Score         int            `json:"score"`
	ScoreLabel    string         `json:"scoreLabel"`
	FreeInsights  []InsightView  `json:"freeInsights,omitempty"`
	Insights      []InsightView  `json:"insights,omitempty"`
	InsightsCount int            `json:"insightsCount"`
	TotalSavings  SavingsRange   `json:"totalSavings"`
	Breakdown     Breakdown      `json:"savingsBreakdown,omitempty"`
	IsUnlocked    bool           `json:"isUnlocked"`
}

// NewView builds the outward representation of a result for a viewer.
// unlocked combines the result's own unlock state with any viewer-side
// entitlement (a credit spend verified upstream).
func NewView(r *Result, unlocked bool) View {
	v := View{
		ID:            r.ID.String(),
		InsuranceType: r.Type,
		Score:         r.Score,
		ScoreLabel:    r.ScoreLabel,
		InsightsCount: len(r.Insights),
		TotalSavings:  r.TotalSavings,
		IsUnlocked:    unlocked,
	}

	if !unlocked {
		for _, in := range r.Insights {
			if !in.Free {
				continue
			}
			v.FreeInsights = append(v.FreeInsights, newInsightView(in, true))
		}
		return v
	}

	v.Insights = make([]InsightView, 0, len(r.Insights))
	for _, in := range r.Insights {
		v.Insights = append(v.Insights, newInsightView(in, true))
	}
	v.Breakdown = r.Breakdown
	return v
}

// newInsightView maps an insight to its outward shape. Free insights act as
// teasers and keep their full text even behind the paywall.
func newInsightView(in Insight, full bool) InsightView {
	iv := InsightView{
		ID:       in.ID.String(),
		Category: in.Category,
		Status:   in.Status,
		Priority: in.Priority,
		Title:    in.Content.Title,
		Short:    in.Content.Short,
		Free:     in.Free,
	}
	if full {
		iv.Full = in.Content.Full
		iv.Savings = in.Savings
	}
	return iv
}
