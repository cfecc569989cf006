package mathmodel

import "math/rand"

// maxStructureAttempts bounds the retries used to hit a requested
// structural feature (carry, borrow) before accepting whatever came out.
const maxStructureAttempts = 12

type additionModel struct{}

func (m *additionModel) ID() Operation { return OpAddition }

func (m *additionModel) DefaultParams(year int) Params {
	switch {
	case year <= 1:
		return Params{MaxValue: 10, OperandCount: 2, Carrying: FreqNever}
	case year == 2:
		return Params{MaxValue: 20, OperandCount: 2, Carrying: FreqRare}
	case year == 3:
		return Params{MaxValue: 100, OperandCount: 2, Carrying: FreqCommon}
	case year == 4:
		return Params{MaxValue: 1000, OperandCount: 2, Carrying: FreqCommon}
	case year == 5:
		return Params{MaxValue: 10000, OperandCount: 3, Carrying: FreqCommon, DecimalPlaces: 2}
	default:
		return Params{MaxValue: 100000, OperandCount: 3, Carrying: FreqAlways, DecimalPlaces: 2}
	}
}

func (m *additionModel) Generate(p Params, rng *rand.Rand) (*Output, error) {
	scale := pow10(p.DecimalPlaces)
	lo := p.minValue() * scale
	hi := p.MaxValue * scale
	count := p.operandCount()

	wantCarry := rng.Float64() < p.Carrying.chance()

	var ops []int
	for attempt := 0; attempt < maxStructureAttempts; attempt++ {
		ops = ops[:0]
		for i := 0; i < count; i++ {
			ops = append(ops, randBetween(rng, lo, hi))
		}
		if carryNeeded(ops) == wantCarry {
			break
		}
	}

	operands := make([]float64, len(ops))
	sum := 0
	for i, v := range ops {
		operands[i] = float64(v) / float64(scale)
		sum += v
	}

	return &Output{
		Operation: OpAddition,
		Addition: &AdditionResult{
			Operands:      operands,
			Sum:           float64(sum) / float64(scale),
			CarryRequired: carryNeeded(ops),
		},
	}, nil
}

// carryNeeded reports whether column-wise addition of the operands
// produces at least one carry.
func carryNeeded(ops []int) bool {
	carry := 0
	for col := 0; ; col++ {
		div := pow10(col)
		colSum := carry
		done := true
		for _, v := range ops {
			if v/div > 0 {
				done = false
			}
			colSum += (v / div) % 10
		}
		if done {
			return false
		}
		if colSum >= 10 {
			return true
		}
		carry = colSum / 10
	}
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
