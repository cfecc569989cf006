package difficulty

import (
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

// Load is the estimated cognitive demand of a parameter set.
// Sub-scores and Total are clamped to 0-100.
type Load struct {
	WorkingMemory int `json:"working_memory"`
	Procedural    int `json:"procedural"`
	Conceptual    int `json:"conceptual"`
	Visual        int `json:"visual"`
	Total         int `json:"total"`
}

// CognitiveLoad scores the demand a parameter set places on a student.
// Working memory scales with digit count and operand count, procedural
// with carrying/remainder mechanics, conceptual with the abstraction
// the model itself requires.
func (r *Resolver) CognitiveLoad(modelID mathmodel.Operation, p mathmodel.Params) Load {
	digits := digitCount(p.MaxValue)
	surplus := p.OperandCount - 2
	if surplus < 0 {
		surplus = 0
	}

	working := digits*12 + surplus*15 + p.DecimalPlaces*8

	procedural := p.DecimalPlaces * 12
	switch p.Carrying {
	case mathmodel.FreqRare:
		procedural += 15
	case mathmodel.FreqCommon:
		procedural += 30
	case mathmodel.FreqAlways:
		procedural += 45
	}
	if p.AllowRemainder {
		procedural += 25
	}
	if p.MaxMultiplier > 12 {
		procedural += 15
	}

	conceptual := conceptualBase(modelID) + p.DecimalPlaces*10
	if len(p.PercentValues) > 3 {
		conceptual += 10
	}

	visual := 10
	if surplus > 0 {
		visual += 10
	}

	working = clamp(working)
	procedural = clamp(procedural)
	conceptual = clamp(conceptual)
	visual = clamp(visual)

	total := clamp((working*3 + procedural*3 + conceptual*3 + visual) / 10)

	return Load{
		WorkingMemory: working,
		Procedural:    procedural,
		Conceptual:    conceptual,
		Visual:        visual,
		Total:         total,
	}
}

// conceptualBase ranks the intrinsic abstraction of each model.
func conceptualBase(modelID mathmodel.Operation) int {
	switch modelID {
	case mathmodel.OpAddition:
		return 10
	case mathmodel.OpSubtraction:
		return 15
	case mathmodel.OpMultiplication:
		return 25
	case mathmodel.OpDivision:
		return 35
	case mathmodel.OpPercentage:
		return 45
	case mathmodel.OpUnitRate:
		return 50
	default:
		return 20
	}
}

func digitCount(v int) int {
	if v <= 0 {
		return 1
	}
	n := 0
	for v > 0 {
		n++
		v /= 10
	}
	return n
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
