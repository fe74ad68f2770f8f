// Package strategies holds the concrete analysis rules, one small stateless
// value per rule, grouped by insurance type. RegisterAll wires them into a
// registry in a stable order; that order drives insight ordering in results.
package strategies

import (
	"assurscore/domain/analysis"
	"assurscore/domain/insurance"
)

// base carries the static metadata every strategy exposes.
type base struct {
	id       string
	category analysis.Category
	free     bool
}

func (b base) ID() string                  { return b.id }
func (b base) Category() analysis.Category { return b.category }
func (b base) Free() bool                  { return b.free }

func savings(min, max float64) *analysis.SavingsRange {
	return &analysis.SavingsRange{Min: min, Max: max}
}

// RegisterAll registers every strategy for every insurance type.
// Called once at startup; the registry is read-only afterwards.
func RegisterAll(r *analysis.Registry) {
	for _, s := range autoStrategies() {
		r.Register(insurance.TypeAuto, s)
	}
	for _, s := range habitationStrategies() {
		r.Register(insurance.TypeHabitation, s)
	}
	for _, s := range gavStrategies() {
		r.Register(insurance.TypeGAV, s)
	}
	for _, s := range mutuelleStrategies() {
		r.Register(insurance.TypeMutuelle, s)
	}
}
