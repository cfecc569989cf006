package mathmodel

import "math/rand"

type multiplicationModel struct{}

func (m *multiplicationModel) ID() Operation { return OpMultiplication }

func (m *multiplicationModel) DefaultParams(year int) Params {
	switch {
	case year <= 2:
		return Params{MaxValue: 5, MaxMultiplier: 5}
	case year == 3:
		return Params{MaxValue: 12, MaxMultiplier: 10}
	case year == 4:
		return Params{MaxValue: 99, MaxMultiplier: 12}
	case year == 5:
		return Params{MaxValue: 999, MaxMultiplier: 12}
	default:
		return Params{MaxValue: 999, MaxMultiplier: 99, DecimalPlaces: 1}
	}
}

func (m *multiplicationModel) Generate(p Params, rng *rand.Rand) (*Output, error) {
	scale := pow10(p.DecimalPlaces)
	maxMult := p.MaxMultiplier
	if maxMult < 2 {
		maxMult = 10
	}

	multiplicand := randBetween(rng, p.minValue()*scale, p.MaxValue*scale)
	multiplier := randBetween(rng, 2, maxMult)

	a := float64(multiplicand) / float64(scale)
	product := roundTo(a*float64(multiplier), p.DecimalPlaces)

	return &Output{
		Operation: OpMultiplication,
		Multiplication: &MultiplicationResult{
			Multiplicand: a,
			Multiplier:   float64(multiplier),
			Product:      product,
		},
	}, nil
}
