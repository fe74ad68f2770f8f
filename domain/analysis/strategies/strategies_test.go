package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assurscore/domain/analysis"
	"assurscore/domain/insurance"
)

func TestRegisterAll(t *testing.T) {
	r := analysis.NewRegistry()
	RegisterAll(r)

	for _, ty := range insurance.AllTypes() {
		assert.Greater(t, r.Count(ty), 0, "type %s must have strategies", ty)
	}
}

func TestRegisterAll_UniqueIDs(t *testing.T) {
	r := analysis.NewRegistry()
	RegisterAll(r)

	seen := map[string]bool{}
	for _, ty := range insurance.AllTypes() {
		for _, s := range r.For(ty) {
			require.False(t, seen[s.ID()], "duplicate strategy id %s", s.ID())
			seen[s.ID()] = true
		}
	}
}

func TestDriverAge(t *testing.T) {
	s := driverAge{base{id: "auto.driver_age", category: analysis.CategoryProfil, free: true}}

	assert.False(t, s.Applies(insurance.Answers{}))
	assert.True(t, s.Applies(insurance.Answers{"age_conducteur": 17}))

	v := s.Evaluate(insurance.Answers{"age_conducteur": 17})
	assert.Equal(t, analysis.StatusDanger, v.Status)
	assert.Equal(t, analysis.PriorityP1, v.Priority)

	v = s.Evaluate(insurance.Answers{"age_conducteur": 22})
	assert.Equal(t, analysis.StatusAttention, v.Status)
	require.NotNil(t, v.Savings)
	assert.LessOrEqual(t, v.Savings.Min, v.Savings.Max)

	v = s.Evaluate(insurance.Answers{"age_conducteur": 40})
	assert.Equal(t, analysis.StatusOK, v.Status)
}

func TestPremiumBenchmark(t *testing.T) {
	s := premiumBenchmark{base{id: "auto.premium_benchmark", category: analysis.CategoryTarif, free: true}}

	assert.False(t, s.Applies(insurance.Answers{"prime_mensuelle": 50}))
	answers := insurance.Answers{"prime_mensuelle": float64(110), "type_couverture": "tous_risques"}
	require.True(t, s.Applies(answers))

	// 110 / 68 is above the 1.5 danger threshold.
	v := s.Evaluate(answers)
	assert.Equal(t, analysis.StatusDanger, v.Status)
	require.NotNil(t, v.Savings)
	assert.Greater(t, v.Savings.Min, 0.0)
	assert.LessOrEqual(t, v.Savings.Min, v.Savings.Max)

	v = s.Evaluate(insurance.Answers{"prime_mensuelle": float64(85), "type_couverture": "tous_risques"})
	assert.Equal(t, analysis.StatusAttention, v.Status)

	v = s.Evaluate(insurance.Answers{"prime_mensuelle": float64(60), "type_couverture": "tous_risques"})
	assert.Equal(t, analysis.StatusOK, v.Status)
	assert.Nil(t, v.Savings)
}

func TestCoverageLevel(t *testing.T) {
	s := coverageLevel{base{id: "auto.coverage_level", category: analysis.CategoryCouverture}}

	v := s.Evaluate(insurance.Answers{"type_couverture": "tous_risques", "valeur_vehicule": float64(3000)})
	assert.Equal(t, analysis.StatusAttention, v.Status)

	v = s.Evaluate(insurance.Answers{"type_couverture": "tiers"})
	assert.Equal(t, analysis.StatusAttention, v.Status)

	v = s.Evaluate(insurance.Answers{"type_couverture": "tous_risques", "valeur_vehicule": float64(15000)})
	assert.Equal(t, analysis.StatusOK, v.Status)
}

func TestDeductible(t *testing.T) {
	s := deductible{base{id: "auto.deductible", category: analysis.CategoryTarif}}

	v := s.Evaluate(insurance.Answers{"franchise": float64(800)})
	assert.Equal(t, analysis.StatusAttention, v.Status)
	assert.Equal(t, analysis.PriorityP2, v.Priority)

	v = s.Evaluate(insurance.Answers{"franchise": float64(100)})
	assert.Equal(t, analysis.StatusAttention, v.Status)
	assert.Equal(t, analysis.PriorityP3, v.Priority)

	v = s.Evaluate(insurance.Answers{"franchise": float64(300)})
	assert.Equal(t, analysis.StatusOK, v.Status)
}

func TestGuaranteeGaps(t *testing.T) {
	s := guaranteeGaps{base{id: "auto.guarantee_gaps", category: analysis.CategoryGarantie}}

	v := s.Evaluate(insurance.Answers{"garanties_incluses": []string{"assistance_0km", "protection_juridique"}})
	assert.Equal(t, analysis.StatusOK, v.Status)

	v = s.Evaluate(insurance.Answers{"garanties_incluses": []string{"bris_de_glace"}})
	assert.Equal(t, analysis.StatusAttention, v.Status)
	assert.Contains(t, v.Content.Full, "assistance 0 km")
	assert.Contains(t, v.Content.Full, "protection juridique")
}

func TestJoinFr(t *testing.T) {
	assert.Equal(t, "", joinFr(nil))
	assert.Equal(t, "a", joinFr([]string{"a"}))
	assert.Equal(t, "a et b", joinFr([]string{"a", "b"}))
	assert.Equal(t, "a, b et c", joinFr([]string{"a", "b", "c"}))
}

func TestEngineWithRealStrategies_UnderageDriver(t *testing.T) {
	r := analysis.NewRegistry()
	RegisterAll(r)
	engine := analysis.NewEngine(r, nil)

	answers := insurance.Answers{
		"age_conducteur":     17,
		"type_couverture":    "tiers_plus",
		"franchise":          float64(300),
		"sinistres_3_ans":    "0",
		"garanties_incluses": []string{"assistance_0km", "protection_juridique"},
		"prime_mensuelle":    float64(45),
	}

	result := engine.Analyze("session-1", insurance.TypeAuto, answers, "")

	assert.Less(t, result.Score, analysis.ScoreBaseline)
	var danger bool
	for _, in := range result.Insights {
		if in.Status == analysis.StatusDanger {
			danger = true
		}
	}
	assert.True(t, danger, "an underage driver must yield a DANGER insight")
}
