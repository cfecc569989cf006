package distractor

import (
	"math"
	"math/rand"

	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

// Misconception is a named, documented class of student reasoning
// error, with a generator producing distractors consistent with it.
type Misconception struct {
	ID          string
	Model       mathmodel.Operation
	MinYear     int
	MaxYear     int
	Description string
	Example     string
	Generate    func(correct float64, c Context) []Candidate
}

// Library holds misconceptions keyed by model, filterable by year.
type Library struct {
	entries []Misconception
}

// NewLibrary returns the built-in misconception library.
func NewLibrary() *Library {
	return &Library{entries: builtinMisconceptions()}
}

// For returns the misconceptions applicable to a model and year.
func (l *Library) For(model mathmodel.Operation, year int) []Misconception {
	var out []Misconception
	for _, m := range l.entries {
		if m.Model == model && year >= m.MinYear && year <= m.MaxYear {
			out = append(out, m)
		}
	}
	return out
}

// strategies adapts library entries into distractor strategies so the
// engine can rank them alongside the rule-based generators.
func (l *Library) strategies() []Strategy {
	out := make([]Strategy, 0, len(l.entries))
	for _, m := range l.entries {
		m := m
		out = append(out, Strategy{
			Name:     m.ID,
			Kind:     KindMisconception,
			Priority: 90,
			AppliesTo: func(c Context) bool {
				return c.Model == m.Model && c.Year >= m.MinYear && c.Year <= m.MaxYear
			},
			Generate: func(correct float64, c Context, _ *rand.Rand) []Candidate {
				return m.Generate(correct, c)
			},
		})
	}
	return out
}

func builtinMisconceptions() []Misconception {
	return []Misconception{
		{
			ID:          "add-no-carry",
			Model:       mathmodel.OpAddition,
			MinYear:     2,
			MaxYear:     6,
			Description: "Adds each column independently and discards carries",
			Example:     "345 + 278 = 513 (5+8=13, writes 3; 4+7=11, writes 1; 3+2=5)",
			Generate: func(_ float64, c Context) []Candidate {
				if len(c.Operands) < 2 {
					return nil
				}
				v := digitwiseAddNoCarry(c.Operands)
				return []Candidate{{Value: v, Reasoning: "added each column but threw the carries away"}}
			},
		},
		{
			ID:          "subtract-smaller-digit",
			Model:       mathmodel.OpSubtraction,
			MinYear:     2,
			MaxYear:     6,
			Description: "Always subtracts the smaller digit from the larger in each column instead of borrowing",
			Example:     "62 - 28 = 46 (8-2=6 instead of borrowing for 2-8)",
			Generate: func(_ float64, c Context) []Candidate {
				if len(c.Operands) < 2 {
					return nil
				}
				v := digitwiseSubSmallerFromLarger(c.Operands[0], c.Operands[1])
				return []Candidate{{Value: v, Reasoning: "subtracted the smaller digit from the larger in every column"}}
			},
		},
		{
			ID:          "multiply-by-adding",
			Model:       mathmodel.OpMultiplication,
			MinYear:     1,
			MaxYear:     4,
			Description: "Confuses multiplication with addition",
			Example:     "6 × 4 = 10",
			Generate: func(_ float64, c Context) []Candidate {
				if len(c.Operands) < 2 {
					return nil
				}
				return []Candidate{{
					Value:     c.Operands[0] + c.Operands[1],
					Reasoning: "added the numbers instead of multiplying",
				}}
			},
		},
		{
			ID:          "remainder-as-decimal",
			Model:       mathmodel.OpDivision,
			MinYear:     4,
			MaxYear:     6,
			Description: "Writes the remainder as if it were a decimal fraction",
			Example:     "23 ÷ 4 = 5 r 3, written as 5.3",
			Generate: func(correct float64, c Context) []Candidate {
				if len(c.Operands) < 2 || c.Operands[1] == 0 {
					return nil
				}
				dividend, divisor := c.Operands[0], c.Operands[1]
				rem := math.Mod(dividend, divisor)
				if rem == 0 {
					return nil
				}
				return []Candidate{{
					Value:     correct + rem/10,
					Reasoning: "wrote the remainder after a decimal point",
				}}
			},
		},
		{
			ID:          "percent-of-hundred",
			Model:       mathmodel.OpPercentage,
			MinYear:     4,
			MaxYear:     6,
			Description: "Computes the percentage of 100 regardless of the actual base",
			Example:     "25% of 60 answered as 25",
			Generate: func(_ float64, c Context) []Candidate {
				if len(c.Operands) < 2 {
					return nil
				}
				return []Candidate{{
					Value:     c.Operands[1],
					Reasoning: "found the percentage of 100 instead of the given amount",
				}}
			},
		},
		{
			ID:          "rate-quantity-swap",
			Model:       mathmodel.OpUnitRate,
			MinYear:     4,
			MaxYear:     6,
			Description: "Divides the quantity by the price instead of the price by the quantity",
			Example:     "3 pens for £6 answered as 3 ÷ 6 = £0.50",
			Generate: func(_ float64, c Context) []Candidate {
				if len(c.Operands) < 2 || c.Operands[1] == 0 {
					return nil
				}
				return []Candidate{{
					Value:     c.Operands[0] / c.Operands[1],
					Reasoning: "divided the quantity by the price instead of the price by the quantity",
				}}
			},
		},
	}
}

// digitwiseAddNoCarry adds operands column by column, keeping only the
// ones digit of each column sum.
func digitwiseAddNoCarry(ops []float64) float64 {
	result := 0
	for col := 0; col < 9; col++ {
		div := 1
		for i := 0; i < col; i++ {
			div *= 10
		}
		colSum := 0
		remaining := false
		for _, v := range ops {
			n := int(math.Round(v))
			if n/div > 0 {
				remaining = true
			}
			colSum += (n / div) % 10
		}
		if !remaining {
			break
		}
		result += (colSum % 10) * div
	}
	return float64(result)
}

// digitwiseSubSmallerFromLarger subtracts column by column, always
// taking the smaller digit from the larger.
func digitwiseSubSmallerFromLarger(a, b float64) float64 {
	x, y := int(math.Round(a)), int(math.Round(b))
	result := 0
	div := 1
	for x > 0 || y > 0 {
		da, db := x%10, y%10
		d := da - db
		if d < 0 {
			d = -d
		}
		result += d * div
		div *= 10
		x /= 10
		y /= 10
	}
	return float64(result)
}
