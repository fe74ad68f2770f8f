package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	testCases := []struct {
		name     string
		insights []Insight
		want     int
	}{
		{"no insights keeps baseline", nil, 100},
		{"ok insights cost nothing", []Insight{
			{Status: StatusOK, Priority: PriorityP1},
			{Status: StatusOK, Priority: PriorityP3},
		}, 100},
		{"single danger p1", []Insight{
			{Status: StatusDanger, Priority: PriorityP1},
		}, 75},
		{"mixed severities", []Insight{
			{Status: StatusDanger, Priority: PriorityP2},
			{Status: StatusAttention, Priority: PriorityP1},
			{Status: StatusAttention, Priority: PriorityP3},
			{Status: StatusOK, Priority: PriorityP2},
		}, 100 - 18 - 10 - 4},
		{"floor at zero", []Insight{
			{Status: StatusDanger, Priority: PriorityP1},
			{Status: StatusDanger, Priority: PriorityP1},
			{Status: StatusDanger, Priority: PriorityP1},
			{Status: StatusDanger, Priority: PriorityP1},
			{Status: StatusDanger, Priority: PriorityP1},
		}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeScore(tc.insights))
		})
	}
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "solid", ScoreLabel(100))
	assert.Equal(t, "solid", ScoreLabel(75))
	assert.Equal(t, "improvable", ScoreLabel(74))
	assert.Equal(t, "improvable", ScoreLabel(50))
	assert.Equal(t, "weak", ScoreLabel(49))
	assert.Equal(t, "weak", ScoreLabel(0))
}

func TestSumSavings(t *testing.T) {
	insights := []Insight{
		{Category: CategoryTarif, Savings: &SavingsRange{Min: 100, Max: 300}},
		{Category: CategoryTarif, Savings: &SavingsRange{Min: 50, Max: 80}},
		{Category: CategoryGarantie, Savings: &SavingsRange{Min: 20, Max: 40}},
		{Category: CategoryProfil}, // no savings attached
	}

	total, breakdown := SumSavings(insights)

	assert.Equal(t, SavingsRange{Min: 170, Max: 420}, total)
	assert.Equal(t, SavingsRange{Min: 150, Max: 380}, breakdown[CategoryTarif])
	assert.Equal(t, SavingsRange{Min: 20, Max: 40}, breakdown[CategoryGarantie])
	_, hasProfil := breakdown[CategoryProfil]
	assert.False(t, hasProfil, "insights without savings stay out of the breakdown")
}
