// Package distractor synthesises pedagogically plausible wrong answers
// from rule-based error simulators and a misconception library.
package distractor

import (
	"math/rand"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

// Kind orders strategies by pedagogical preference: misconception-based
// distractors are accepted first, then operational errors, then
// proximity-based fillers.
type Kind int

const (
	KindMisconception Kind = iota
	KindOperational
	KindProximity
)

func (k Kind) String() string {
	switch k {
	case KindMisconception:
		return "misconception"
	case KindOperational:
		return "operational"
	case KindProximity:
		return "proximity"
	default:
		return "unknown"
	}
}

// Context tells strategies what produced the correct answer.
type Context struct {
	Model         mathmodel.Operation
	Format        curriculum.Format
	Operands      []float64
	Year          int
	DecimalPlaces int
}

// Candidate is one raw wrong-answer value before post-processing.
type Candidate struct {
	Value     float64
	Reasoning string
}

// Strategy is one wrong-answer generator. AppliesTo gates it per
// context; Generate may return nil when the context lacks what it
// needs. A failing strategy never aborts the others.
type Strategy struct {
	Name      string
	Kind      Kind
	Priority  int
	AppliesTo func(c Context) bool
	Generate  func(correct float64, c Context, rng *rand.Rand) []Candidate
}
