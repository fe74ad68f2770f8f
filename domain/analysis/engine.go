package analysis

import (
	"time"

	"assurscore/domain/core"
	"assurscore/domain/insurance"
)

// Logger is the narrow logging surface the engine needs to report strategy
// failures without re-raising them to the caller.
type Logger interface {
	Error(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

// Engine runs every registered strategy over a completed answer set and
// aggregates the verdicts into a Result. Deterministic and pure given
// identical answers and registry contents.
type Engine struct {
	registry *Registry
	logger   Logger
}

// NewEngine creates an analysis engine bound to a strategy registry.
// The registry is injected, never reached through a global.
func NewEngine(registry *Registry, logger Logger) *Engine {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{registry: registry, logger: logger}
}

// Analyze evaluates all applicable strategies for the insurance type and
// builds the scored result. existingID, when non-empty, is reused so an
// analysis can keep its id across a login; otherwise a fresh id is assigned.
// The result starts locked and retains the answers for later regeneration.
func (e *Engine) Analyze(sessionID core.SessionID, t insurance.Type, answers insurance.Answers, existingID core.AnalysisID) *Result {
	insights := Insights{}
	for _, strategy := range e.registry.For(t) {
		insight, ok := e.run(strategy, answers)
		if !ok {
			continue
		}
		insights = append(insights, insight)
	}

	score := ComputeScore(insights)
	total, breakdown := SumSavings(insights)

	id := existingID
	if id.IsEmpty() {
		id = core.AnalysisID(core.NewID())
	}

	return &Result{
		ID:           id,
		SessionID:    sessionID,
		Type:         t,
		Score:        score,
		ScoreLabel:   ScoreLabel(score),
		Insights:     insights,
		TotalSavings: total,
		Breakdown:    breakdown,
		Answers:      answers.Clone(),
		IsUnlocked:   false,
		CreatedAt:    time.Now().UTC(),
	}
}

// run evaluates one strategy. A strategy that panics is treated as "did not
// apply": the failure is logged and the analysis continues.
func (e *Engine) run(strategy Strategy, answers insurance.Answers) (insight Insight, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("strategy %s panicked, skipping: %v", strategy.ID(), r)
			ok = false
		}
	}()

	if !strategy.Applies(answers) {
		return Insight{}, false
	}

	verdict := strategy.Evaluate(answers)
	return Insight{
		ID:         core.InsightID(core.NewID()),
		StrategyID: strategy.ID(),
		Category:   strategy.Category(),
		Status:     verdict.Status,
		Priority:   verdict.Priority,
		Content:    verdict.Content,
		Savings:    verdict.Savings,
		Free:       strategy.Free(),
	}, true
}
