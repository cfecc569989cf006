package mathmodel

// Frequency says how often a structural feature (carrying, borrowing)
// should appear in generated calculations.
type Frequency string

const (
	FreqNever  Frequency = "never"
	FreqRare   Frequency = "rare"
	FreqCommon Frequency = "common"
	FreqAlways Frequency = "always"
)

// chance returns the probability of the feature appearing for a draw.
func (f Frequency) chance() float64 {
	switch f {
	case FreqNever:
		return 0
	case FreqRare:
		return 0.25
	case FreqCommon:
		return 0.6
	case FreqAlways:
		return 1
	default:
		return 0
	}
}

// Params is the parameter record the difficulty resolver produces for
// one (model, level) pair. Models read only the fields they define;
// everything else stays at its zero value.
type Params struct {
	// MaxValue is the largest operand a model may generate.
	MaxValue int `json:"max_value"`

	// MinValue is the smallest operand. Defaults to 1 when zero.
	MinValue int `json:"min_value,omitempty"`

	// OperandCount is the number of operands for chain-style models
	// (ADDITION). Defaults to 2 when zero.
	OperandCount int `json:"operand_count,omitempty"`

	// Carrying controls carry frequency for ADDITION and borrow
	// frequency for SUBTRACTION.
	Carrying Frequency `json:"carrying,omitempty"`

	// DecimalPlaces is the number of decimal places operands may carry.
	// 0 means whole numbers; 2 is used for money.
	DecimalPlaces int `json:"decimal_places,omitempty"`

	// MaxMultiplier bounds the times-table range for MULTIPLICATION and
	// the quantity for UNIT_RATE.
	MaxMultiplier int `json:"max_multiplier,omitempty"`

	// AllowRemainder permits non-zero remainders for DIVISION.
	AllowRemainder bool `json:"allow_remainder,omitempty"`

	// PercentValues lists the percentages PERCENTAGE may pick from.
	PercentValues []int `json:"percent_values,omitempty"`
}

// minValue returns the effective lower bound.
func (p Params) minValue() int {
	if p.MinValue <= 0 {
		return 1
	}
	return p.MinValue
}

// operandCount returns the effective operand count.
func (p Params) operandCount() int {
	if p.OperandCount < 2 {
		return 2
	}
	return p.OperandCount
}
