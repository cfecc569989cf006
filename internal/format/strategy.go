// Package format implements one question-assembly strategy per
// cognitive task type. Each strategy combines a math model output, a
// narrative scenario and a distractor set into a finished question.
package format

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/difficulty"
	"github.com/andyxwarren/factory-architect-sub002/internal/distractor"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
	"github.com/andyxwarren/factory-architect-sub002/internal/question"
	"github.com/andyxwarren/factory-architect-sub002/internal/scenario"
)

// Params is the input to one strategy invocation.
type Params struct {
	ModelID mathmodel.Operation
	Level   curriculum.Level

	// DifficultyParams overrides the resolver lookup when set.
	DifficultyParams *mathmodel.Params

	// PreferredTheme is passed through to scenario selection.
	PreferredTheme scenario.Theme

	// DistractorCount is how many wrong answers to request.
	// Defaults to 3.
	DistractorCount int
}

func (p Params) distractorCount() int {
	if p.DistractorCount <= 0 {
		return 3
	}
	return p.DistractorCount
}

// Strategy assembles questions for one format.
type Strategy interface {
	// Format returns the format this strategy implements.
	Format() curriculum.Format

	// Supports reports whether the strategy can pair with a model.
	Supports(modelID mathmodel.Operation) bool

	// Generate builds one fully populated question definition.
	Generate(p Params) (*question.Definition, error)
}

// Deps are the collaborators every strategy shares.
type Deps struct {
	Models      *mathmodel.Registry
	Resolver    *difficulty.Resolver
	Scenarios   *scenario.Selector
	Distractors *distractor.Engine
	RNG         *rand.Rand
}

// Registry maps formats to strategies.
type Registry struct {
	strategies map[curriculum.Format]Strategy
}

// NewRegistry builds a Registry with every built-in strategy wired to
// the shared dependencies.
func NewRegistry(d Deps) *Registry {
	r := &Registry{strategies: make(map[curriculum.Format]Strategy)}
	r.Register(&directCalculation{deps: d})
	r.Register(&comparison{deps: d})
	r.Register(&validation{deps: d})
	r.Register(&patternRecognition{deps: d})
	return r
}

// Register adds a strategy, replacing any existing one for its format.
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Format()] = s
}

// Get returns the strategy for a format.
func (r *Registry) Get(f curriculum.Format) (Strategy, error) {
	s, ok := r.strategies[f]
	if !ok {
		return nil, &UnsupportedCombinationError{
			Format: string(f),
			Reason: "no strategy registered for format",
		}
	}
	return s, nil
}

// Formats returns the registered formats in sorted order.
func (r *Registry) Formats() []curriculum.Format {
	out := make([]curriculum.Format, 0, len(r.strategies))
	for f := range r.strategies {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultFormatFor infers a format when a request names none.
func DefaultFormatFor(modelID mathmodel.Operation) curriculum.Format {
	if modelID == mathmodel.OpUnitRate {
		return curriculum.FormatComparison
	}
	return curriculum.FormatDirectCalculation
}

// checkLevel enforces the shared difficulty bounds every strategy
// validates before doing any work.
func checkLevel(l curriculum.Level) error {
	if !l.Valid() {
		return &ValidationError{
			Field:   "difficulty",
			Message: fmt.Sprintf("level %s out of range: year 1-6, sub-level 1-4", l),
		}
	}
	return nil
}

// resolveParams returns the override when present, otherwise consults
// the resolver.
func resolveParams(d Deps, p Params) (mathmodel.Params, error) {
	if p.DifficultyParams != nil {
		return *p.DifficultyParams, nil
	}
	return d.Resolver.Resolve(p.ModelID, p.Level)
}

// composeText fills a scenario template with the chosen character and
// the math narrative body.
func composeText(tpl scenario.Template, ctx scenario.Context, character, body string) string {
	s := tpl.Text
	s = strings.ReplaceAll(s, "{character}", character)
	s = strings.ReplaceAll(s, "{setting}", ctx.Setting)
	s = strings.ReplaceAll(s, "{body}", body)
	return s
}

// pickCharacter draws a character from the context, falling back to a
// neutral name for contexts without a cast.
func pickCharacter(ctx scenario.Context, rng *rand.Rand) string {
	if len(ctx.Characters) == 0 {
		return "Alex"
	}
	return ctx.Characters[rng.Intn(len(ctx.Characters))]
}

// newDefinition fills the parts of a definition common to all formats.
func newDefinition(f curriculum.Format, p Params, ctx scenario.Context, load difficulty.Load) *question.Definition {
	return &question.Definition{
		ID:         uuid.NewString(),
		Format:     f,
		ModelID:    string(p.ModelID),
		Level:      p.Level,
		LevelLabel: p.Level.String(),
		Scenario: question.ScenarioRef{
			ID:      ctx.ID,
			Theme:   string(ctx.Theme),
			Setting: ctx.Setting,
		},
		Parameters: question.Parameters{Narrative: make(map[string]string)},
		Metadata: question.Metadata{
			CurriculumTags:   []string{fmt.Sprintf("Y%d", p.Level.Year), strings.ToLower(string(p.ModelID))},
			EstimatedSeconds: 15 + load.Total,
			CognitiveLoad:    load.Total,
			CreatedAt:        time.Now().UTC(),
		},
	}
}

// operandPhrase joins operand display values with commas and "and".
func operandPhrase(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	case 2:
		return values[0] + " and " + values[1]
	default:
		return strings.Join(values[:len(values)-1], ", ") + " and " + values[len(values)-1]
	}
}
