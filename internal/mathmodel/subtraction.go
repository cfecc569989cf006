package mathmodel

import "math/rand"

type subtractionModel struct{}

func (m *subtractionModel) ID() Operation { return OpSubtraction }

func (m *subtractionModel) DefaultParams(year int) Params {
	switch {
	case year <= 1:
		return Params{MaxValue: 10, Carrying: FreqNever}
	case year == 2:
		return Params{MaxValue: 20, Carrying: FreqRare}
	case year == 3:
		return Params{MaxValue: 100, Carrying: FreqCommon}
	case year == 4:
		return Params{MaxValue: 1000, Carrying: FreqCommon}
	case year == 5:
		return Params{MaxValue: 10000, Carrying: FreqCommon, DecimalPlaces: 2}
	default:
		return Params{MaxValue: 100000, Carrying: FreqAlways, DecimalPlaces: 2}
	}
}

func (m *subtractionModel) Generate(p Params, rng *rand.Rand) (*Output, error) {
	scale := pow10(p.DecimalPlaces)
	lo := p.minValue() * scale
	hi := p.MaxValue * scale

	wantBorrow := rng.Float64() < p.Carrying.chance()

	var minuend, subtrahend int
	for attempt := 0; attempt < maxStructureAttempts; attempt++ {
		a := randBetween(rng, lo, hi)
		b := randBetween(rng, lo, hi)
		if a < b {
			a, b = b, a
		}
		minuend, subtrahend = a, b
		if borrowNeeded(minuend, subtrahend) == wantBorrow {
			break
		}
	}

	return &Output{
		Operation: OpSubtraction,
		Subtraction: &SubtractionResult{
			Minuend:        float64(minuend) / float64(scale),
			Subtrahend:     float64(subtrahend) / float64(scale),
			Difference:     float64(minuend-subtrahend) / float64(scale),
			BorrowRequired: borrowNeeded(minuend, subtrahend),
		},
	}, nil
}

// borrowNeeded reports whether column-wise subtraction a-b requires
// borrowing from a higher column. Assumes a >= b.
func borrowNeeded(a, b int) bool {
	for b > 0 {
		if a%10 < b%10 {
			return true
		}
		a /= 10
		b /= 10
	}
	return false
}
