package mathmodel

import "math/rand"

type percentageModel struct{}

func (m *percentageModel) ID() Operation { return OpPercentage }

func (m *percentageModel) DefaultParams(year int) Params {
	switch {
	case year <= 4:
		return Params{MaxValue: 100, PercentValues: []int{50, 100}}
	case year == 5:
		return Params{MaxValue: 200, PercentValues: []int{10, 25, 50, 75}}
	default:
		return Params{MaxValue: 500, PercentValues: []int{5, 10, 20, 25, 40, 75}, DecimalPlaces: 2}
	}
}

func (m *percentageModel) Generate(p Params, rng *rand.Rand) (*Output, error) {
	percents := p.PercentValues
	if len(percents) == 0 {
		percents = []int{10, 25, 50}
	}
	percent := percents[rng.Intn(len(percents))]

	// Bases are multiples of 10 so lower-year results stay whole.
	base := randBetween(rng, 1, p.MaxValue/10) * 10
	if base < 10 {
		base = 10
	}

	value := roundTo(float64(base)*float64(percent)/100, 2)

	return &Output{
		Operation: OpPercentage,
		Percentage: &PercentageResult{
			Base:    float64(base),
			Percent: percent,
			Value:   value,
		},
	}, nil
}
