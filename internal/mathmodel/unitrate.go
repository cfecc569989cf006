package mathmodel

import "math/rand"

type unitRateModel struct{}

func (m *unitRateModel) ID() Operation { return OpUnitRate }

func (m *unitRateModel) DefaultParams(year int) Params {
	switch {
	case year <= 4:
		return Params{MaxValue: 10, MaxMultiplier: 4, DecimalPlaces: 2}
	case year == 5:
		return Params{MaxValue: 20, MaxMultiplier: 6, DecimalPlaces: 2}
	default:
		return Params{MaxValue: 50, MaxMultiplier: 10, DecimalPlaces: 2}
	}
}

// Generate builds the rate from the unit price so TotalPrice is always
// an exact multiple of it.
func (m *unitRateModel) Generate(p Params, rng *rand.Rand) (*Output, error) {
	maxQty := p.MaxMultiplier
	if maxQty < 2 {
		maxQty = 6
	}
	quantity := randBetween(rng, 2, maxQty)

	// Unit prices are drawn in pence to avoid float drift.
	maxPence := p.MaxValue * 100
	if maxPence < 100 {
		maxPence = 100
	}
	unitPence := randBetween(rng, 10, maxPence)

	return &Output{
		Operation: OpUnitRate,
		UnitRate: &UnitRateResult{
			Quantity:   quantity,
			TotalPrice: float64(unitPence*quantity) / 100,
			UnitPrice:  float64(unitPence) / 100,
		},
	}, nil
}
