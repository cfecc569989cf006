package mathmodel

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestRegistry_AllBuiltinsRegistered(t *testing.T) {
	r := NewRegistry()
	want := []Operation{
		OpAddition, OpSubtraction, OpMultiplication,
		OpDivision, OpPercentage, OpUnitRate,
	}
	for _, id := range want {
		if _, err := r.Get(id); err != nil {
			t.Errorf("Get(%s) failed: %v", id, err)
		}
	}
	if got := len(r.IDs()); got != len(want) {
		t.Errorf("IDs() returned %d models, want %d", got, len(want))
	}
}

func TestRegistry_UnknownModel(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("TRIGONOMETRY")
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	var unknown *ErrUnknownModel
	if !errors.As(err, &unknown) {
		t.Errorf("expected *ErrUnknownModel, got %T", err)
	}
}

func TestAddition_OperandsWithinBounds(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get(OpAddition)
	rng := testRNG()
	p := Params{MaxValue: 60, OperandCount: 2, Carrying: FreqCommon}

	for i := 0; i < 50; i++ {
		out, err := m.Generate(p, rng)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		sum := 0.0
		for _, op := range out.Addition.Operands {
			if op < 1 || op > 60 {
				t.Errorf("operand %v outside [1,60]", op)
			}
			sum += op
		}
		if out.Addition.Sum != sum {
			t.Errorf("Sum = %v, want %v", out.Addition.Sum, sum)
		}
		if out.Result() != out.Addition.Sum {
			t.Errorf("Result() = %v, want %v", out.Result(), out.Addition.Sum)
		}
	}
}

func TestAddition_CarryNeverRespected(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get(OpAddition)
	rng := testRNG()
	p := Params{MaxValue: 10, OperandCount: 2, Carrying: FreqNever}

	carried := 0
	for i := 0; i < 100; i++ {
		out, err := m.Generate(p, rng)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if out.Addition.CarryRequired {
			carried++
		}
	}
	// The generator retries to avoid carries; at MaxValue 10 it should
	// nearly always succeed.
	if carried > 5 {
		t.Errorf("%d/100 sums required a carry despite FreqNever", carried)
	}
}

func TestSubtraction_NonNegativeDifference(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get(OpSubtraction)
	rng := testRNG()
	p := Params{MaxValue: 100, Carrying: FreqCommon}

	for i := 0; i < 50; i++ {
		out, err := m.Generate(p, rng)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		s := out.Subtraction
		if s.Difference < 0 {
			t.Errorf("negative difference %v", s.Difference)
		}
		if s.Minuend-s.Subtrahend != s.Difference {
			t.Errorf("%v - %v != %v", s.Minuend, s.Subtrahend, s.Difference)
		}
	}
}

func TestDivision_RemainderInvariant(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get(OpDivision)
	rng := testRNG()
	p := Params{MaxValue: 50, MaxMultiplier: 12, AllowRemainder: true}

	for i := 0; i < 50; i++ {
		out, err := m.Generate(p, rng)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		d := out.Division
		if d.Remainder < 0 || d.Remainder >= d.Divisor {
			t.Errorf("remainder %d outside [0,%d)", d.Remainder, d.Divisor)
		}
		if d.Divisor*d.Quotient+d.Remainder != d.Dividend {
			t.Errorf("%d*%d+%d != %d", d.Divisor, d.Quotient, d.Remainder, d.Dividend)
		}
	}
}

func TestDivision_NoRemainderWhenDisallowed(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get(OpDivision)
	rng := testRNG()
	p := Params{MaxValue: 12, MaxMultiplier: 10}

	for i := 0; i < 50; i++ {
		out, _ := m.Generate(p, rng)
		if out.Division.Remainder != 0 {
			t.Fatalf("got remainder %d with AllowRemainder=false", out.Division.Remainder)
		}
	}
}

func TestPercentage_ValueConsistent(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get(OpPercentage)
	rng := testRNG()
	p := Params{MaxValue: 200, PercentValues: []int{10, 25, 50}}

	for i := 0; i < 50; i++ {
		out, _ := m.Generate(p, rng)
		pc := out.Percentage
		want := pc.Base * float64(pc.Percent) / 100
		if math.Abs(pc.Value-want) > 0.005 {
			t.Errorf("%d%% of %v = %v, want %v", pc.Percent, pc.Base, pc.Value, want)
		}
	}
}

func TestUnitRate_TotalIsExactMultiple(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get(OpUnitRate)
	rng := testRNG()
	p := Params{MaxValue: 10, MaxMultiplier: 4, DecimalPlaces: 2}

	for i := 0; i < 50; i++ {
		out, _ := m.Generate(p, rng)
		u := out.UnitRate
		want := u.UnitPrice * float64(u.Quantity)
		if math.Abs(u.TotalPrice-want) > 0.005 {
			t.Errorf("total %v != unit %v × qty %d", u.TotalPrice, u.UnitPrice, u.Quantity)
		}
	}
}

func TestGenerate_DeterministicUnderFixedSeed(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get(OpAddition)
	p := Params{MaxValue: 100, OperandCount: 2, Carrying: FreqCommon}

	a, _ := m.Generate(p, rand.New(rand.NewSource(7)))
	b, _ := m.Generate(p, rand.New(rand.NewSource(7)))
	if a.Addition.Sum != b.Addition.Sum {
		t.Errorf("same seed produced different sums: %v vs %v", a.Addition.Sum, b.Addition.Sum)
	}
}

func TestCarryNeeded(t *testing.T) {
	tests := []struct {
		ops  []int
		want bool
	}{
		{[]int{12, 13}, false},
		{[]int{15, 18}, true},
		{[]int{345, 278}, true},
		{[]int{100, 200}, false},
		{[]int{99, 1}, true},
	}
	for _, tt := range tests {
		if got := carryNeeded(tt.ops); got != tt.want {
			t.Errorf("carryNeeded(%v) = %v, want %v", tt.ops, got, tt.want)
		}
	}
}

func TestBorrowNeeded(t *testing.T) {
	tests := []struct {
		a, b int
		want bool
	}{
		{45, 23, false},
		{42, 28, true},
		{100, 1, true},
		{60, 30, false},
	}
	for _, tt := range tests {
		if got := borrowNeeded(tt.a, tt.b); got != tt.want {
			t.Errorf("borrowNeeded(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
