package format

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/difficulty"
	"github.com/andyxwarren/factory-architect-sub002/internal/distractor"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
	"github.com/andyxwarren/factory-architect-sub002/internal/scenario"
)

func testDeps(seed int64) Deps {
	rng := rand.New(rand.NewSource(seed))
	return Deps{
		Models:      mathmodel.NewRegistry(),
		Resolver:    difficulty.NewResolver(),
		Scenarios:   scenario.NewSelector(nil, rng),
		Distractors: distractor.NewEngine(nil, rng),
		RNG:         rng,
	}
}

func level(year, sub int) curriculum.Level {
	return curriculum.Level{Year: year, SubLevel: sub}
}

func TestRegistry_AllFormatsRegistered(t *testing.T) {
	r := NewRegistry(testDeps(1))
	for _, f := range curriculum.AllFormats() {
		if _, err := r.Get(f); err != nil {
			t.Errorf("Get(%s): %v", f, err)
		}
	}
}

func TestDirectCalculation_Addition(t *testing.T) {
	r := NewRegistry(testDeps(1))
	s, _ := r.Get(curriculum.FormatDirectCalculation)

	q, err := s.Generate(Params{ModelID: mathmodel.OpAddition, Level: level(3, 2)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Text == "" {
		t.Error("empty question text")
	}
	if q.Solution.Answer == "" {
		t.Error("empty answer")
	}
	if q.Solution.Explanation == "" {
		t.Error("empty explanation")
	}
	if len(q.Solution.Steps) == 0 {
		t.Error("no worked steps")
	}
	if q.LevelLabel != "3.2" {
		t.Errorf("LevelLabel = %q, want 3.2", q.LevelLabel)
	}
	if q.ID == "" {
		t.Error("empty question id")
	}
}

func TestDirectCalculation_DistractorsDistinct(t *testing.T) {
	r := NewRegistry(testDeps(2))
	s, _ := r.Get(curriculum.FormatDirectCalculation)

	for i := 0; i < 25; i++ {
		q, err := s.Generate(Params{ModelID: mathmodel.OpAddition, Level: level(4, 1)})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		seen := map[string]bool{q.Solution.Answer: true}
		for _, d := range q.Solution.Distractors {
			if seen[d.Value] {
				t.Errorf("distractor %q duplicates the answer or another distractor", d.Value)
			}
			seen[d.Value] = true
		}
	}
}

func TestDirectCalculation_UnsupportedModel(t *testing.T) {
	r := NewRegistry(testDeps(1))
	s, _ := r.Get(curriculum.FormatDirectCalculation)

	_, err := s.Generate(Params{ModelID: mathmodel.OpUnitRate, Level: level(4, 1)})
	var unsupported *UnsupportedCombinationError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedCombinationError, got %v", err)
	}
	if unsupported.Reason == "" {
		t.Error("unsupported error carries no reason")
	}
}

func TestDirectCalculation_InvalidLevel(t *testing.T) {
	r := NewRegistry(testDeps(1))
	s, _ := r.Get(curriculum.FormatDirectCalculation)

	_, err := s.Generate(Params{ModelID: mathmodel.OpAddition, Level: level(7, 1)})
	var invalid *ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDirectCalculation_PriceSubstitutionKeepsTotalConsistent(t *testing.T) {
	deps := testDeps(3)
	s := &directCalculation{deps: deps}

	// Year 6 addition uses money parameters, which triggers price
	// substitution whenever the scenario carries priced items.
	for i := 0; i < 20; i++ {
		q, err := s.Generate(Params{
			ModelID:        mathmodel.OpAddition,
			Level:          level(6, 1),
			PreferredTheme: scenario.ThemeShopping,
		})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if q.Parameters.Narrative["price_substituted"] != "true" {
			continue
		}
		answer, err := strconv.ParseFloat(q.Solution.Answer, 64)
		if err != nil {
			t.Fatalf("answer %q not numeric: %v", q.Solution.Answer, err)
		}
		// The text lists each price; their sum must equal the answer.
		var sum float64
		for _, part := range strings.Split(q.Text, "£")[1:] {
			num := part
			for j, r := range part {
				if (r < '0' || r > '9') && r != '.' {
					num = part[:j]
					break
				}
			}
			num = strings.TrimSuffix(num, ".")
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				t.Fatalf("bad price fragment %q in %q", num, q.Text)
			}
			sum += v
		}
		if diff := sum - answer; diff > 0.005 || diff < -0.005 {
			t.Errorf("listed prices sum to %.2f but answer is %.2f (text %q)", sum, answer, q.Text)
		}
	}
}

func TestComparison_WinnerConsistentWithRule(t *testing.T) {
	r := NewRegistry(testDeps(4))
	s, _ := r.Get(curriculum.FormatComparison)

	for i := 0; i < 25; i++ {
		q, err := s.Generate(Params{ModelID: mathmodel.OpUnitRate, Level: level(5, 1)})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		// Each option's unit price appears as "£X.XX each)".
		rates := map[string]float64{}
		for _, label := range []string{"Option A", "Option B"} {
			idx := strings.Index(q.Text, label)
			if idx < 0 {
				t.Fatalf("option %s missing from text %q", label, q.Text)
			}
			rest := q.Text[idx:]
			eachIdx := strings.Index(rest, " each)")
			if eachIdx < 0 {
				t.Fatalf("no unit price for %s in %q", label, q.Text)
			}
			start := strings.LastIndex(rest[:eachIdx], "£")
			rate, err := strconv.ParseFloat(rest[start+len("£"):eachIdx], 64)
			if err != nil {
				t.Fatalf("bad rate in %q: %v", rest[:eachIdx], err)
			}
			rates[label] = rate
		}

		winner := q.Solution.Answer
		loser := "Option B"
		if winner == "Option B" {
			loser = "Option A"
		}
		if rates[winner] > rates[loser] {
			t.Errorf("declared winner %s has higher unit rate %.2f vs %.2f",
				winner, rates[winner], rates[loser])
		}
	}
}

// constantModel always returns the same sum, forcing comparison ties.
type constantModel struct{}

func (constantModel) ID() mathmodel.Operation { return mathmodel.OpAddition }

func (constantModel) Generate(p mathmodel.Params, rng *rand.Rand) (*mathmodel.Output, error) {
	return &mathmodel.Output{
		Operation: mathmodel.OpAddition,
		Addition:  &mathmodel.AdditionResult{Operands: []float64{6, 4}, Sum: 10},
	}, nil
}

func (constantModel) DefaultParams(year int) mathmodel.Params { return mathmodel.Params{} }

func TestComparison_TieBreakRendersShiftedOption(t *testing.T) {
	deps := testDeps(11)
	deps.Models.Register(constantModel{})
	r := NewRegistry(deps)
	s, _ := r.Get(curriculum.FormatComparison)

	q, err := s.Generate(Params{ModelID: mathmodel.OpAddition, Level: level(4, 1)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Solution.Answer != "Option B" {
		t.Errorf("answer = %q, want Option B after the tie break", q.Solution.Answer)
	}
	// The shifted option must be re-rendered, not just re-scored.
	if !strings.Contains(q.Text, "a total of 10") || !strings.Contains(q.Text, "a total of 11") {
		t.Errorf("text still shows tied totals: %q", q.Text)
	}
}

func TestComparison_DistractorsIncludeReversedAndEqual(t *testing.T) {
	r := NewRegistry(testDeps(5))
	s, _ := r.Get(curriculum.FormatComparison)

	q, err := s.Generate(Params{ModelID: mathmodel.OpUnitRate, Level: level(5, 2)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	strategies := map[string]bool{}
	for _, d := range q.Solution.Distractors {
		strategies[d.Strategy] = true
		if d.Value == q.Solution.Answer {
			t.Errorf("distractor %q equals the answer", d.Value)
		}
	}
	if !strategies["reversed-winner"] {
		t.Error("missing reversed-winner distractor")
	}
	if !strategies["equality-misconception"] {
		t.Error("missing equality misconception distractor")
	}
}

func TestValidation_Year1NeverConceptual(t *testing.T) {
	r := NewRegistry(testDeps(6))
	s, _ := r.Get(curriculum.FormatValidation)

	for i := 0; i < 100; i++ {
		q, err := s.Generate(Params{ModelID: mathmodel.OpAddition, Level: level(1, 2)})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if q.Parameters.Narrative["error_type"] == "conceptual" {
			t.Fatal("conceptual error injected at year 1")
		}
	}
}

func TestValidation_AnswerMatchesClaim(t *testing.T) {
	r := NewRegistry(testDeps(7))
	s, _ := r.Get(curriculum.FormatValidation)

	for i := 0; i < 30; i++ {
		q, err := s.Generate(Params{ModelID: mathmodel.OpSubtraction, Level: level(3, 1)})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		switch q.Parameters.Narrative["subtask"] {
		case "true-false":
			if q.Solution.Answer != "true" && q.Solution.Answer != "false" {
				t.Errorf("true-false answer %q", q.Solution.Answer)
			}
		case "check-the-work":
			if q.Solution.Answer != "yes" && q.Solution.Answer != "no" {
				t.Errorf("check-the-work answer %q", q.Solution.Answer)
			}
		}
		if len(q.Solution.Distractors) == 0 {
			t.Error("validation question has no distractors")
		}
	}
}

func TestPattern_TextHidesTerms(t *testing.T) {
	r := NewRegistry(testDeps(8))
	s, _ := r.Get(curriculum.FormatPatternRecognition)

	for i := 0; i < 25; i++ {
		q, err := s.Generate(Params{ModelID: mathmodel.OpAddition, Level: level(3, 3)})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !strings.Contains(q.Text, "?") {
			t.Errorf("pattern text hides nothing: %q", q.Text)
		}
		if q.Solution.Answer == "" {
			t.Error("empty pattern answer")
		}
		for _, d := range q.Solution.Distractors {
			if d.Value == q.Solution.Answer {
				t.Errorf("distractor %q equals the answer", d.Value)
			}
		}
	}
}

func TestPattern_GeometricForMultiplication(t *testing.T) {
	r := NewRegistry(testDeps(9))
	s, _ := r.Get(curriculum.FormatPatternRecognition)

	q, err := s.Generate(Params{ModelID: mathmodel.OpMultiplication, Level: level(5, 1)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Parameters.Narrative["family"] != "geometric" {
		t.Errorf("family = %q, want geometric", q.Parameters.Narrative["family"])
	}
}

func TestDefaultFormatFor(t *testing.T) {
	if f := DefaultFormatFor(mathmodel.OpUnitRate); f != curriculum.FormatComparison {
		t.Errorf("UNIT_RATE default = %s, want COMPARISON", f)
	}
	if f := DefaultFormatFor(mathmodel.OpAddition); f != curriculum.FormatDirectCalculation {
		t.Errorf("ADDITION default = %s, want DIRECT_CALCULATION", f)
	}
}
