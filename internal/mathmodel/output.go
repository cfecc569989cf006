package mathmodel

// Operation identifies a math model.
type Operation string

const (
	OpAddition       Operation = "ADDITION"
	OpSubtraction    Operation = "SUBTRACTION"
	OpMultiplication Operation = "MULTIPLICATION"
	OpDivision       Operation = "DIVISION"
	OpPercentage     Operation = "PERCENTAGE"
	OpUnitRate       Operation = "UNIT_RATE"
)

// Symbol returns the display operator for an operation, or "" when the
// operation has no single-operator form.
func (o Operation) Symbol() string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return ""
	}
}

// Output is the result record of one model run. Exactly one variant
// field is non-nil, matching Operation, so format strategies can switch
// on the operation and read typed fields.
type Output struct {
	Operation Operation

	Addition       *AdditionResult
	Subtraction    *SubtractionResult
	Multiplication *MultiplicationResult
	Division       *DivisionResult
	Percentage     *PercentageResult
	UnitRate       *UnitRateResult
}

// AdditionResult holds a sum of two or more operands.
type AdditionResult struct {
	Operands      []float64
	Sum           float64
	CarryRequired bool
}

// SubtractionResult holds a single subtraction.
type SubtractionResult struct {
	Minuend        float64
	Subtrahend     float64
	Difference     float64
	BorrowRequired bool
}

// MultiplicationResult holds a single product.
type MultiplicationResult struct {
	Multiplicand float64
	Multiplier   float64
	Product      float64
}

// DivisionResult holds an integer division with remainder.
// Remainder is always non-negative and smaller than Divisor.
type DivisionResult struct {
	Dividend  int
	Divisor   int
	Quotient  int
	Remainder int
}

// PercentageResult holds a percentage-of-a-value calculation.
type PercentageResult struct {
	Base    float64
	Percent int
	Value   float64
}

// UnitRateResult holds one priced quantity and its derived unit rate.
type UnitRateResult struct {
	Quantity   int
	TotalPrice float64
	UnitPrice  float64
}

// Result returns the canonical correct answer for the output.
func (o *Output) Result() float64 {
	switch o.Operation {
	case OpAddition:
		return o.Addition.Sum
	case OpSubtraction:
		return o.Subtraction.Difference
	case OpMultiplication:
		return o.Multiplication.Product
	case OpDivision:
		return float64(o.Division.Quotient)
	case OpPercentage:
		return o.Percentage.Value
	case OpUnitRate:
		return o.UnitRate.UnitPrice
	default:
		return 0
	}
}

// OperandValues returns the operands that fed the result, in display order.
func (o *Output) OperandValues() []float64 {
	switch o.Operation {
	case OpAddition:
		return append([]float64(nil), o.Addition.Operands...)
	case OpSubtraction:
		return []float64{o.Subtraction.Minuend, o.Subtraction.Subtrahend}
	case OpMultiplication:
		return []float64{o.Multiplication.Multiplicand, o.Multiplication.Multiplier}
	case OpDivision:
		return []float64{float64(o.Division.Dividend), float64(o.Division.Divisor)}
	case OpPercentage:
		return []float64{o.Percentage.Base, float64(o.Percentage.Percent)}
	case OpUnitRate:
		return []float64{float64(o.UnitRate.Quantity), o.UnitRate.TotalPrice}
	default:
		return nil
	}
}
