package analysis

// Scoring starts every contract at a neutral baseline and deducts per
// insight depending on severity and priority. A type with no registered
// strategies therefore scores exactly the baseline.
const ScoreBaseline = 100

// Label thresholds.
const (
	scoreSolidMin      = 75
	scoreImprovableMin = 50
)

var deductions = map[Status]map[Priority]int{
	StatusDanger: {
		PriorityP1: 25,
		PriorityP2: 18,
		PriorityP3: 12,
	},
	StatusAttention: {
		PriorityP1: 10,
		PriorityP2: 7,
		PriorityP3: 4,
	},
	// OK insights inform without costing points.
	StatusOK: {},
}

// ComputeScore aggregates insight verdicts into a 0-100 contract score.
func ComputeScore(insights []Insight) int {
	score := ScoreBaseline
	for _, in := range insights {
		score -= deductions[in.Status][in.Priority]
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// ScoreLabel maps a score to its human label. Deterministic: >=75 solid,
// >=50 improvable, below that weak.
func ScoreLabel(score int) string {
	switch {
	case score >= scoreSolidMin:
		return "solid"
	case score >= scoreImprovableMin:
		return "improvable"
	default:
		return "weak"
	}
}

// SumSavings totals the non-nil savings impacts and groups them by category.
func SumSavings(insights []Insight) (SavingsRange, Breakdown) {
	total := SavingsRange{}
	breakdown := make(Breakdown)
	for _, in := range insights {
		if in.Savings == nil {
			continue
		}
		total = total.Add(*in.Savings)
		breakdown[in.Category] = breakdown[in.Category].Add(*in.Savings)
	}
	return total, breakdown
}
