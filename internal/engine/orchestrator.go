// Package engine exposes the top-level question generation facade.
// It validates incoming requests, resolves difficulty, picks a format
// strategy and delegates, single-shot or in batch.
package engine

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/difficulty"
	"github.com/andyxwarren/factory-architect-sub002/internal/distractor"
	"github.com/andyxwarren/factory-architect-sub002/internal/format"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
	"github.com/andyxwarren/factory-architect-sub002/internal/question"
	"github.com/andyxwarren/factory-architect-sub002/internal/scenario"
)

// MaxBatchQuantity bounds how many questions one request may ask for.
const MaxBatchQuantity = 20

// Request is one generation request as received from a caller.
// Difficulty comes either as a full "Y.S" level string or as a bare
// year; exactly one of the two is required.
type Request struct {
	ModelID          string `json:"model_id"`
	DifficultyLevel  string `json:"difficulty_level,omitempty"`
	YearLevel        int    `json:"year_level,omitempty"`
	FormatPreference string `json:"format_preference,omitempty"`
	ScenarioTheme    string `json:"scenario_theme,omitempty"`
	Quantity         int    `json:"quantity,omitempty"`
}

// BatchFailure records one skipped item in a batch.
type BatchFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BatchResult is a possibly-partial batch. SuccessRate is
// len(Questions) over the requested quantity.
type BatchResult struct {
	Questions   []*question.Definition `json:"questions"`
	Failures    []BatchFailure         `json:"failures,omitempty"`
	SuccessRate float64                `json:"success_rate"`
}

// Orchestrator wires the model registry, difficulty resolver, scenario
// selector, distractor engine and format strategies behind one facade.
type Orchestrator struct {
	deps    format.Deps
	formats *format.Registry
}

// New builds an Orchestrator over explicit dependencies. Nil fields
// are filled with the built-in defaults, sharing the supplied RNG.
// A caller-supplied RNG makes output reproducible but restricts the
// Orchestrator to one goroutine; the default RNG is lock-guarded and
// safe for concurrent generation.
func New(deps format.Deps) *Orchestrator {
	if deps.RNG == nil {
		deps.RNG = rand.New(&lockedSource{src: rand.NewSource(time.Now().UnixNano()).(rand.Source64)})
	}
	if deps.Models == nil {
		deps.Models = mathmodel.NewRegistry()
	}
	if deps.Resolver == nil {
		deps.Resolver = difficulty.NewResolver()
	}
	if deps.Scenarios == nil {
		deps.Scenarios = scenario.NewSelector(nil, deps.RNG)
	}
	if deps.Distractors == nil {
		deps.Distractors = distractor.NewEngine(nil, deps.RNG)
	}
	return &Orchestrator{deps: deps, formats: format.NewRegistry(deps)}
}

// NewSeeded builds a default Orchestrator with a deterministic random
// source, for reproducible output. Not safe for concurrent use.
func NewSeeded(seed int64) *Orchestrator {
	return New(format.Deps{RNG: rand.New(rand.NewSource(seed))})
}

// lockedSource serializes a rand source so the shared default RNG can
// be drawn from by concurrent requests.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// GenerateQuestion validates the request and produces one question.
func (o *Orchestrator) GenerateQuestion(req Request) (*question.Definition, error) {
	p, err := o.resolve(req)
	if err != nil {
		return nil, err
	}
	strategy, err := o.formats.Get(p.format)
	if err != nil {
		return nil, err
	}
	return strategy.Generate(format.Params{
		ModelID:        p.modelID,
		Level:          p.level,
		PreferredTheme: p.theme,
	})
}

// GenerateBatch produces up to req.Quantity questions. Individual
// failures are logged and skipped; the result reports the success
// rate so the caller can decide whether a partial batch is acceptable.
func (o *Orchestrator) GenerateBatch(req Request) (*BatchResult, error) {
	if _, err := o.resolve(req); err != nil {
		return nil, err
	}
	n := req.Quantity
	if n <= 0 {
		n = 1
	}

	result := &BatchResult{Questions: make([]*question.Definition, 0, n)}
	for i := 0; i < n; i++ {
		q, err := o.GenerateQuestion(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: batch item %d/%d skipped: %v\n", i+1, n, err)
			result.Failures = append(result.Failures, BatchFailure{Index: i, Reason: err.Error()})
			continue
		}
		result.Questions = append(result.Questions, q)
	}
	result.SuccessRate = float64(len(result.Questions)) / float64(n)
	return result, nil
}

// resolved is a validated request ready for dispatch.
type resolved struct {
	modelID mathmodel.Operation
	level   curriculum.Level
	format  curriculum.Format
	theme   scenario.Theme
}

func (o *Orchestrator) resolve(req Request) (resolved, error) {
	var p resolved

	if req.ModelID == "" {
		return p, &format.ValidationError{Field: "model_id", Message: "model id is required"}
	}
	p.modelID = mathmodel.Operation(req.ModelID)
	if _, err := o.deps.Models.Get(p.modelID); err != nil {
		return p, &format.ValidationError{Field: "model_id", Message: err.Error()}
	}
	if !o.deps.Resolver.Supports(p.modelID) {
		return p, &format.ValidationError{
			Field:   "model_id",
			Message: fmt.Sprintf("model %q has no difficulty progression", p.modelID),
		}
	}

	switch {
	case req.DifficultyLevel != "":
		level, err := curriculum.ParseLevel(req.DifficultyLevel)
		if err != nil {
			return p, &format.ValidationError{Field: "difficulty_level", Message: err.Error()}
		}
		p.level = level
	case req.YearLevel != 0:
		level, err := curriculum.ForYear(req.YearLevel)
		if err != nil {
			return p, &format.ValidationError{Field: "year_level", Message: err.Error()}
		}
		p.level = level
	default:
		return p, &format.ValidationError{
			Field:   "difficulty_level",
			Message: "either difficulty_level or year_level is required",
		}
	}

	if req.FormatPreference != "" {
		f, ok := curriculum.ParseFormat(req.FormatPreference)
		if !ok {
			return p, &format.ValidationError{
				Field:   "format_preference",
				Message: fmt.Sprintf("unknown format %q", req.FormatPreference),
			}
		}
		p.format = f
	} else {
		p.format = format.DefaultFormatFor(p.modelID)
	}

	if req.ScenarioTheme != "" {
		theme, ok := scenario.ParseTheme(req.ScenarioTheme)
		if !ok {
			return p, &format.ValidationError{
				Field:   "scenario_theme",
				Message: fmt.Sprintf("unknown theme %q", req.ScenarioTheme),
			}
		}
		p.theme = theme
	}

	if req.Quantity < 0 || req.Quantity > MaxBatchQuantity {
		return p, &format.ValidationError{
			Field:   "quantity",
			Message: fmt.Sprintf("quantity must be between 1 and %d", MaxBatchQuantity),
		}
	}

	return p, nil
}
