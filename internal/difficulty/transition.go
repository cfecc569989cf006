package difficulty

import (
	"fmt"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

// Transition reports how smoothly a model's parameters change between
// two levels. Warnings are advisory; callers may still use the result.
type Transition struct {
	IsSmooth bool     `json:"is_smooth"`
	Warnings []string `json:"warnings,omitempty"`
}

// maxSimultaneousChanges is the most parameters a single step may alter
// before the step is flagged as abrupt.
const maxSimultaneousChanges = 2

// ValidateTransition flags parameter jumps between two levels that
// exceed the smoothness rules: no more than one scale parameter may
// shrink by over 50%, and at most two parameters may change at once.
func (r *Resolver) ValidateTransition(modelID mathmodel.Operation, from, to curriculum.Level) (Transition, error) {
	a, err := r.Resolve(modelID, from)
	if err != nil {
		return Transition{}, err
	}
	b, err := r.Resolve(modelID, to)
	if err != nil {
		return Transition{}, err
	}

	var warnings []string

	scaleDrops := 0
	for _, s := range []struct {
		name     string
		from, to int
	}{
		{"max value", a.MaxValue, b.MaxValue},
		{"max multiplier", a.MaxMultiplier, b.MaxMultiplier},
		{"operand count", a.OperandCount, b.OperandCount},
	} {
		if s.from > 0 && float64(s.to) < float64(s.from)*0.5 {
			scaleDrops++
			if scaleDrops > 1 {
				warnings = append(warnings, fmt.Sprintf(
					"%s→%s: %s drops from %d to %d; more than one scale parameter over-halved",
					from, to, s.name, s.from, s.to))
			}
		}
	}

	if changed := countChanges(a, b); changed > maxSimultaneousChanges {
		warnings = append(warnings, fmt.Sprintf(
			"%s→%s: %d parameters change at once (max %d)",
			from, to, changed, maxSimultaneousChanges))
	}

	return Transition{IsSmooth: len(warnings) == 0, Warnings: warnings}, nil
}

// countChanges counts the parameters that differ between two records.
func countChanges(a, b mathmodel.Params) int {
	n := 0
	if a.MaxValue != b.MaxValue {
		n++
	}
	if a.MinValue != b.MinValue {
		n++
	}
	if a.OperandCount != b.OperandCount {
		n++
	}
	if a.Carrying != b.Carrying {
		n++
	}
	if a.DecimalPlaces != b.DecimalPlaces {
		n++
	}
	if a.MaxMultiplier != b.MaxMultiplier {
		n++
	}
	if a.AllowRemainder != b.AllowRemainder {
		n++
	}
	if !equalInts(a.PercentValues, b.PercentValues) {
		n++
	}
	return n
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
