package analysis

import (
	"sync"

	"assurscore/domain/insurance"
)

// Verdict is the outcome of one strategy evaluation.
type Verdict struct {
	Status   Status
	Priority Priority
	Content  Content
	Savings  *SavingsRange
}

// Strategy is a single stateless rule over questionnaire answers. Applies
// decides relevance; Evaluate computes the verdict. Strategies only read the
// answer keys they care about and must be side-effect free.
type Strategy interface {
	ID() string
	Category() Category
	Free() bool
	Applies(answers insurance.Answers) bool
	Evaluate(answers insurance.Answers) Verdict
}

// Registry holds the ordered strategy collections per insurance type.
// It is populated once at startup and read-only afterwards; the mutex only
// guards registration-time writes.
type Registry struct {
	mu         sync.RWMutex
	strategies map[insurance.Type][]Strategy
}

// NewRegistry creates an empty strategy registry
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[insurance.Type][]Strategy)}
}

// Register appends a strategy to the type's sequence. Registration order is
// evaluation order. Duplicate registration is not guarded and will duplicate
// evaluation; that is a wiring mistake, not a runtime concern.
func (r *Registry) Register(t insurance.Type, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[t] = append(r.strategies[t], s)
}

// For returns the ordered strategy sequence for a type. Unknown or
// unregistered types yield an empty slice, never an error.
func (r *Registry) For(t insurance.Type) []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Strategy, len(r.strategies[t]))
	copy(out, r.strategies[t])
	return out
}

// Count returns the number of strategies registered for a type.
func (r *Registry) Count(t insurance.Type) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.strategies[t])
}
