package difficulty

import (
	"fmt"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

// Resolver maps (model, level) pairs onto concrete generation
// parameters via per-model progression tables.
type Resolver struct {
	tables map[mathmodel.Operation]*progressionTable
}

// NewResolver returns a Resolver over the built-in progression tables.
func NewResolver() *Resolver {
	return &Resolver{tables: tables}
}

// Resolve returns the parameter record for a model at a level.
// An unknown model or an out-of-range level is a hard error: the
// tables cover every valid (year, subLevel) pair by construction.
func (r *Resolver) Resolve(modelID mathmodel.Operation, level curriculum.Level) (mathmodel.Params, error) {
	if !level.Valid() {
		return mathmodel.Params{}, fmt.Errorf("level %s out of range", level)
	}
	table, ok := r.tables[modelID]
	if !ok {
		return mathmodel.Params{}, fmt.Errorf("no progression table for model %q", modelID)
	}
	return table[level.Year-1][level.SubLevel-1], nil
}

// Supports reports whether the resolver has a progression table for a model.
func (r *Resolver) Supports(modelID mathmodel.Operation) bool {
	_, ok := r.tables[modelID]
	return ok
}

// NextLevel returns the adjacent level, saturating at the grid edges.
func (r *Resolver) NextLevel(level curriculum.Level, advancing bool) curriculum.Level {
	return level.Next(advancing)
}
