package distractor

import (
	"fmt"
	"math/rand"

	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

// builtinStrategies returns the rule-based error simulators.
func builtinStrategies() []Strategy {
	return []Strategy{
		{
			Name:     "wrong-operation",
			Kind:     KindOperational,
			Priority: 80,
			AppliesTo: func(c Context) bool {
				return len(c.Operands) >= 2 && c.Model != mathmodel.OpUnitRate
			},
			Generate: wrongOperation,
		},
		{
			Name:     "place-value",
			Kind:     KindOperational,
			Priority: 70,
			AppliesTo: func(c Context) bool {
				return c.Model == mathmodel.OpAddition || c.Model == mathmodel.OpSubtraction
			},
			Generate: placeValue,
		},
		{
			Name:     "partial-calculation",
			Kind:     KindOperational,
			Priority: 60,
			AppliesTo: func(c Context) bool {
				return c.Model == mathmodel.OpAddition && len(c.Operands) > 2
			},
			Generate: partialCalculation,
		},
		{
			Name:     "percent-scale",
			Kind:     KindOperational,
			Priority: 65,
			AppliesTo: func(c Context) bool {
				return c.Model == mathmodel.OpPercentage && len(c.Operands) >= 2
			},
			Generate: percentScale,
		},
		{
			Name:     "unit-confusion",
			Kind:     KindOperational,
			Priority: 65,
			AppliesTo: func(c Context) bool {
				return c.Model == mathmodel.OpUnitRate && len(c.Operands) >= 2
			},
			Generate: unitConfusion,
		},
		{
			Name:     "magnitude",
			Kind:     KindProximity,
			Priority: 40,
			AppliesTo: func(c Context) bool { return true },
			Generate:  magnitude,
		},
		{
			Name:     "off-by-small",
			Kind:     KindProximity,
			Priority: 30,
			AppliesTo: func(c Context) bool { return true },
			Generate:  offBySmall,
		},
	}
}

// wrongOperation applies the wrong operator to the first two operands,
// simulating a student misreading the question.
func wrongOperation(correct float64, c Context, _ *rand.Rand) []Candidate {
	a, b := c.Operands[0], c.Operands[1]
	var out []Candidate
	add := func(v float64, op string) {
		out = append(out, Candidate{
			Value:     v,
			Reasoning: fmt.Sprintf("used %s instead of the asked operation", op),
		})
	}
	switch c.Model {
	case mathmodel.OpAddition:
		add(a-b, "subtraction")
		add(a*b, "multiplication")
	case mathmodel.OpSubtraction:
		add(a+b, "addition")
	case mathmodel.OpMultiplication:
		add(a+b, "addition")
		if b != 0 {
			add(a/b, "division")
		}
	case mathmodel.OpDivision:
		add(a*b, "multiplication")
		add(a-b, "subtraction")
	case mathmodel.OpPercentage:
		add(a-b, "subtraction")
	}
	return out
}

// placeValue simulates carry/borrow slips: answers one place-value
// column off from the correct result.
func placeValue(correct float64, c Context, _ *rand.Rand) []Candidate {
	shift := 10.0
	if correct >= 1000 {
		shift = 100
	}
	return []Candidate{
		{Value: correct - shift, Reasoning: "dropped a carry between columns"},
		{Value: correct + shift, Reasoning: "carried twice between columns"},
	}
}

// partialCalculation stops early in a multi-operand chain.
func partialCalculation(_ float64, c Context, _ *rand.Rand) []Candidate {
	sum := 0.0
	for _, v := range c.Operands[:len(c.Operands)-1] {
		sum += v
	}
	return []Candidate{{
		Value:     sum,
		Reasoning: fmt.Sprintf("stopped after adding %d of %d numbers", len(c.Operands)-1, len(c.Operands)),
	}}
}

// percentScale confuses the percent scale: forgets the /100, or takes
// the percentage number itself as the answer.
func percentScale(_ float64, c Context, _ *rand.Rand) []Candidate {
	base, percent := c.Operands[0], c.Operands[1]
	return []Candidate{
		{Value: base * percent, Reasoning: "multiplied by the percentage without dividing by 100"},
		{Value: percent, Reasoning: "gave the percentage itself as the answer"},
	}
}

// unitConfusion mixes up total price and unit price.
func unitConfusion(_ float64, c Context, _ *rand.Rand) []Candidate {
	quantity, total := c.Operands[0], c.Operands[1]
	out := []Candidate{
		{Value: total, Reasoning: "gave the total price instead of the price per item"},
	}
	if quantity != 0 {
		out = append(out, Candidate{
			Value:     total * quantity,
			Reasoning: "multiplied instead of dividing by the quantity",
		})
	}
	return out
}

// magnitude is a ×10 / ÷10 slip.
func magnitude(correct float64, _ Context, _ *rand.Rand) []Candidate {
	return []Candidate{
		{Value: correct * 10, Reasoning: "answer ten times too large"},
		{Value: correct / 10, Reasoning: "answer ten times too small"},
	}
}

// offBySmall is a near-miss filler used when richer strategies cannot
// produce enough candidates.
func offBySmall(correct float64, c Context, rng *rand.Rand) []Candidate {
	delta := 1.0 + float64(rng.Intn(3))
	if correct >= 100 {
		delta *= 10
	}
	return []Candidate{
		{Value: correct + delta, Reasoning: "counted slightly past the answer"},
		{Value: correct - delta, Reasoning: "stopped counting slightly short"},
	}
}
