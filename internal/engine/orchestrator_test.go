package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/andyxwarren/factory-architect-sub002/internal/format"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

func validRequest() Request {
	return Request{
		ModelID:         string(mathmodel.OpAddition),
		DifficultyLevel: "3.2",
	}
}

func TestGenerateQuestion_HappyPath(t *testing.T) {
	o := NewSeeded(1)
	q, err := o.GenerateQuestion(validRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Text == "" || q.Solution.Answer == "" {
		t.Errorf("incomplete question: %+v", q)
	}
	if q.LevelLabel != "3.2" {
		t.Errorf("LevelLabel = %q, want 3.2", q.LevelLabel)
	}
	if q.Format != "DIRECT_CALCULATION" {
		t.Errorf("inferred format = %q, want DIRECT_CALCULATION", q.Format)
	}
}

func TestGenerateQuestion_SeededDeterminism(t *testing.T) {
	req := validRequest()
	a, err := NewSeeded(99).GenerateQuestion(req)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := NewSeeded(99).GenerateQuestion(req)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if a.Text != b.Text {
		t.Errorf("texts differ under the same seed:\n%q\n%q", a.Text, b.Text)
	}
	if a.Solution.Answer != b.Solution.Answer {
		t.Errorf("answers differ: %q vs %q", a.Solution.Answer, b.Solution.Answer)
	}
	if len(a.Solution.Distractors) != len(b.Solution.Distractors) {
		t.Fatalf("distractor counts differ: %d vs %d",
			len(a.Solution.Distractors), len(b.Solution.Distractors))
	}
	for i := range a.Solution.Distractors {
		if a.Solution.Distractors[i].Value != b.Solution.Distractors[i].Value {
			t.Errorf("distractor %d differs: %q vs %q",
				i, a.Solution.Distractors[i].Value, b.Solution.Distractors[i].Value)
		}
	}
}

func TestGenerateQuestion_YearOnlyDifficulty(t *testing.T) {
	o := NewSeeded(2)
	q, err := o.GenerateQuestion(Request{
		ModelID:   string(mathmodel.OpSubtraction),
		YearLevel: 4,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.LevelLabel != "4.2" {
		t.Errorf("bare year resolved to %q, want 4.2", q.LevelLabel)
	}
}

func TestResolve_ValidationErrors(t *testing.T) {
	o := NewSeeded(3)
	cases := []struct {
		name  string
		req   Request
		field string
	}{
		{"missing model", Request{DifficultyLevel: "2.1"}, "model_id"},
		{"unknown model", Request{ModelID: "CALCULUS", DifficultyLevel: "2.1"}, "model_id"},
		{"bad level string", Request{ModelID: "ADDITION", DifficultyLevel: "9.9"}, "difficulty_level"},
		{"year out of range", Request{ModelID: "ADDITION", YearLevel: 7}, "year_level"},
		{"no difficulty at all", Request{ModelID: "ADDITION"}, "difficulty_level"},
		{"unknown format", Request{ModelID: "ADDITION", DifficultyLevel: "2.1", FormatPreference: "ESSAY"}, "format_preference"},
		{"unknown theme", Request{ModelID: "ADDITION", DifficultyLevel: "2.1", ScenarioTheme: "SPACE"}, "scenario_theme"},
		{"quantity too large", Request{ModelID: "ADDITION", DifficultyLevel: "2.1", Quantity: 21}, "quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := o.GenerateQuestion(tc.req)
			var verr *format.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

// tablelessModel is registered but has no difficulty progression.
type tablelessModel struct{}

func (tablelessModel) ID() mathmodel.Operation { return "ROMAN_NUMERALS" }

func (tablelessModel) Generate(p mathmodel.Params, rng *rand.Rand) (*mathmodel.Output, error) {
	return nil, errors.New("unused")
}

func (tablelessModel) DefaultParams(year int) mathmodel.Params { return mathmodel.Params{} }

func TestGenerateQuestion_ModelWithoutProgression(t *testing.T) {
	models := mathmodel.NewRegistry()
	models.Register(tablelessModel{})
	o := New(format.Deps{Models: models, RNG: rand.New(rand.NewSource(9))})

	_, err := o.GenerateQuestion(Request{ModelID: "ROMAN_NUMERALS", DifficultyLevel: "2.1"})
	var verr *format.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "model_id" {
		t.Errorf("field = %q, want model_id", verr.Field)
	}
}

func TestGenerateQuestion_UnsupportedPairing(t *testing.T) {
	o := NewSeeded(4)
	_, err := o.GenerateQuestion(Request{
		ModelID:          string(mathmodel.OpUnitRate),
		DifficultyLevel:  "5.1",
		FormatPreference: "DIRECT_CALCULATION",
	})
	var unsupported *format.UnsupportedCombinationError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedCombinationError, got %v", err)
	}
}

// flakyModel wraps a real model and fails exactly one scheduled call.
type flakyModel struct {
	inner  mathmodel.Model
	failOn int
	calls  int
}

func (m *flakyModel) ID() mathmodel.Operation { return m.inner.ID() }

func (m *flakyModel) Generate(p mathmodel.Params, rng *rand.Rand) (*mathmodel.Output, error) {
	m.calls++
	if m.calls == m.failOn {
		return nil, errors.New("injected failure")
	}
	return m.inner.Generate(p, rng)
}

func (m *flakyModel) DefaultParams(year int) mathmodel.Params {
	return m.inner.DefaultParams(year)
}

func TestGenerateBatch_PartialFailure(t *testing.T) {
	models := mathmodel.NewRegistry()
	inner, err := models.Get(mathmodel.OpAddition)
	if err != nil {
		t.Fatal(err)
	}
	models.Register(&flakyModel{inner: inner, failOn: 3})

	o := New(format.Deps{
		Models: models,
		RNG:    rand.New(rand.NewSource(5)),
	})

	const n = 5
	req := validRequest()
	req.Quantity = n
	req.FormatPreference = "DIRECT_CALCULATION"

	result, err := o.GenerateBatch(req)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(result.Questions) != n-1 {
		t.Errorf("got %d questions, want %d", len(result.Questions), n-1)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(result.Failures))
	}
	if result.Failures[0].Index != 2 {
		t.Errorf("failure index = %d, want 2", result.Failures[0].Index)
	}
	want := float64(n-1) / float64(n)
	if result.SuccessRate != want {
		t.Errorf("success rate = %v, want %v", result.SuccessRate, want)
	}
}

func TestGenerateBatch_DefaultQuantityIsOne(t *testing.T) {
	o := NewSeeded(6)
	result, err := o.GenerateBatch(validRequest())
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(result.Questions) != 1 {
		t.Errorf("got %d questions, want 1", len(result.Questions))
	}
	if result.SuccessRate != 1 {
		t.Errorf("success rate = %v, want 1", result.SuccessRate)
	}
}

func TestModels_ListsEveryModel(t *testing.T) {
	o := NewSeeded(7)
	models := o.Models()
	if len(models) != 6 {
		t.Fatalf("got %d models, want 6", len(models))
	}
	for _, m := range models {
		if m.DefaultFormat == "" {
			t.Errorf("model %s has no default format", m.ID)
		}
		if len(m.Formats) == 0 {
			t.Errorf("model %s supports no formats", m.ID)
		}
	}
}

func TestFormats_ListsDisplayNames(t *testing.T) {
	o := NewSeeded(10)
	formats := o.Formats()
	if len(formats) != 4 {
		t.Fatalf("got %d formats, want 4", len(formats))
	}
	names := make(map[string]string)
	for _, f := range formats {
		names[f.ID] = f.Name
	}
	if names["DIRECT_CALCULATION"] != "Direct Calculation" {
		t.Errorf("DIRECT_CALCULATION name = %q", names["DIRECT_CALCULATION"])
	}
	if names["PATTERN_RECOGNITION"] != "Pattern Recognition" {
		t.Errorf("PATTERN_RECOGNITION name = %q", names["PATTERN_RECOGNITION"])
	}
}

func TestLevels_FullProgression(t *testing.T) {
	o := NewSeeded(8)
	levels, err := o.Levels(string(mathmodel.OpAddition))
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if len(levels) != 24 {
		t.Fatalf("got %d levels, want 24", len(levels))
	}
	if levels[0].Level != "1.1" || levels[23].Level != "6.4" {
		t.Errorf("levels span %s..%s, want 1.1..6.4", levels[0].Level, levels[23].Level)
	}
	for _, l := range levels {
		if l.Params.MaxValue <= 0 {
			t.Errorf("level %s has no MaxValue", l.Level)
		}
	}

	if _, err := o.Levels("CALCULUS"); err == nil {
		t.Error("expected error for unknown model")
	}
}
