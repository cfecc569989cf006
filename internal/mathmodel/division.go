package mathmodel

import "math/rand"

type divisionModel struct{}

func (m *divisionModel) ID() Operation { return OpDivision }

func (m *divisionModel) DefaultParams(year int) Params {
	switch {
	case year <= 2:
		return Params{MaxValue: 10, MaxMultiplier: 5}
	case year == 3:
		return Params{MaxValue: 12, MaxMultiplier: 10}
	case year == 4:
		return Params{MaxValue: 50, MaxMultiplier: 12, AllowRemainder: true}
	case year == 5:
		return Params{MaxValue: 100, MaxMultiplier: 12, AllowRemainder: true}
	default:
		return Params{MaxValue: 500, MaxMultiplier: 25, AllowRemainder: true}
	}
}

// Generate builds the division from quotient and divisor so the result
// is always exact apart from an optional remainder. The remainder is
// non-negative and strictly smaller than the divisor.
func (m *divisionModel) Generate(p Params, rng *rand.Rand) (*Output, error) {
	maxDivisor := p.MaxMultiplier
	if maxDivisor < 2 {
		maxDivisor = 10
	}

	divisor := randBetween(rng, 2, maxDivisor)
	quotient := randBetween(rng, p.minValue(), p.MaxValue)

	remainder := 0
	if p.AllowRemainder && divisor > 1 && rng.Float64() < 0.5 {
		remainder = randBetween(rng, 1, divisor-1)
	}

	return &Output{
		Operation: OpDivision,
		Division: &DivisionResult{
			Dividend:  divisor*quotient + remainder,
			Divisor:   divisor,
			Quotient:  quotient,
			Remainder: remainder,
		},
	}, nil
}
