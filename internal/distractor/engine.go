package distractor

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"

	"github.com/andyxwarren/factory-architect-sub002/internal/question"
)

// maxStrategies bounds how many applicable strategies run per request.
const maxStrategies = 8

// maxPerStrategy caps accepted distractors per strategy so one prolific
// generator cannot crowd out the others.
const maxPerStrategy = 2

// Too-close thresholds: a candidate this near the correct answer is no
// use as a distractor.
const (
	tooCloseRelative = 0.05
	tooCloseAbsolute = 1.0
)

// Engine runs the applicable strategies for a context and assembles a
// de-duplicated, strategy-diverse wrong-answer set.
type Engine struct {
	strategies []Strategy
	rng        *rand.Rand
}

// NewEngine builds an Engine over the rule-based strategies and the
// supplied misconception library. A nil library uses the built-in one.
func NewEngine(lib *Library, rng *rand.Rand) *Engine {
	if lib == nil {
		lib = NewLibrary()
	}
	return &Engine{
		strategies: append(lib.strategies(), builtinStrategies()...),
		rng:        rng,
	}
}

// Generate produces up to count distractors for a correct answer.
// When filtering leaves fewer than count candidates the short list is
// returned as-is; callers must tolerate that.
func (e *Engine) Generate(correct float64, c Context, count int) []question.Distractor {
	if count <= 0 {
		return nil
	}

	selected := e.applicable(c)
	candidates := e.run(selected, correct, c)
	return e.assemble(correct, c, candidates, count)
}

// tagged pairs a candidate with its producing strategy.
type tagged struct {
	Candidate
	strategy Strategy
}

// applicable filters and ranks strategies for the context, capped to
// maxStrategies by priority.
func (e *Engine) applicable(c Context) []Strategy {
	var out []Strategy
	for _, s := range e.strategies {
		if s.AppliesTo(c) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	if len(out) > maxStrategies {
		out = out[:maxStrategies]
	}
	return out
}

// run executes each strategy, isolating failures so one broken
// generator cannot abort the rest.
func (e *Engine) run(selected []Strategy, correct float64, c Context) []tagged {
	var out []tagged
	for _, s := range selected {
		for _, cand := range e.runOne(s, correct, c) {
			out = append(out, tagged{Candidate: cand, strategy: s})
		}
	}
	return out
}

func (e *Engine) runOne(s Strategy, correct float64, c Context) (cands []Candidate) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "warning: distractor strategy %s panicked: %v\n", s.Name, r)
			cands = nil
		}
	}()
	return s.Generate(correct, c, e.rng)
}

// assemble post-processes candidates: exact-duplicate removal,
// too-close filtering, per-strategy diversity caps in preference
// order, and truncation to the requested count.
func (e *Engine) assemble(correct float64, c Context, candidates []tagged, count int) []question.Distractor {
	// Preference order: misconceptions first, then by priority.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].strategy.Kind != candidates[j].strategy.Kind {
			return candidates[i].strategy.Kind < candidates[j].strategy.Kind
		}
		return candidates[i].strategy.Priority > candidates[j].strategy.Priority
	})

	seen := map[string]bool{}
	perStrategy := map[string]int{}
	var out []question.Distractor

	for _, t := range candidates {
		if len(out) >= count {
			break
		}
		if tooClose(t.Value, correct) {
			continue
		}
		if t.Value < 0 {
			// Negative wrong answers read as obviously wrong to
			// students who have not met negative numbers.
			continue
		}
		key := question.FormatValue(t.Value, c.DecimalPlaces)
		if seen[key] || key == question.FormatValue(correct, c.DecimalPlaces) {
			continue
		}
		if perStrategy[t.strategy.Name] >= maxPerStrategy {
			continue
		}
		seen[key] = true
		perStrategy[t.strategy.Name]++
		out = append(out, question.Distractor{
			Value:       key,
			DisplayText: key,
			Strategy:    t.strategy.Name,
			Reasoning:   t.Reasoning,
		})
	}
	return out
}

// tooClose reports whether a candidate is within 5% of the correct
// answer, or within an absolute difference of 1.
func tooClose(v, correct float64) bool {
	diff := math.Abs(v - correct)
	if diff < tooCloseAbsolute {
		return true
	}
	base := math.Abs(correct)
	if base == 0 {
		return false
	}
	return diff/base < tooCloseRelative
}
