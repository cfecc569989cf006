package format

import (
	"fmt"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
	"github.com/andyxwarren/factory-architect-sub002/internal/question"
	"github.com/andyxwarren/factory-architect-sub002/internal/scenario"
)

// comparison derives competing options from a model and asks which one
// wins under the metric's rule: lower unit rate wins for rate
// questions, higher absolute value wins otherwise.
type comparison struct {
	deps Deps
}

// comparisonAttempts bounds the retries used to get options with
// distinct metric values.
const comparisonAttempts = 10

func (s *comparison) Format() curriculum.Format {
	return curriculum.FormatComparison
}

func (s *comparison) Supports(modelID mathmodel.Operation) bool {
	switch modelID {
	case mathmodel.OpUnitRate, mathmodel.OpAddition, mathmodel.OpMultiplication:
		return true
	}
	return false
}

// option is one side of a comparison.
type option struct {
	label  string
	detail string
	metric float64
}

func (s *comparison) Generate(p Params) (*question.Definition, error) {
	if err := checkLevel(p.Level); err != nil {
		return nil, err
	}
	if !s.Supports(p.ModelID) {
		return nil, &UnsupportedCombinationError{
			ModelID: string(p.ModelID),
			Format:  string(s.Format()),
			Reason:  "model has no comparison rendering",
		}
	}

	params, err := resolveParams(s.deps, p)
	if err != nil {
		return nil, err
	}
	model, err := s.deps.Models.Get(p.ModelID)
	if err != nil {
		return nil, err
	}

	ctx := s.deps.Scenarios.Select(scenario.Criteria{
		Format: s.Format(),
		Year:   p.Level.Year,
		Theme:  p.PreferredTheme,
	})

	lowerWins := p.ModelID == mathmodel.OpUnitRate

	options, err := s.buildOptions(model, params, ctx)
	if err != nil {
		return nil, err
	}

	winner := 0
	for i := 1; i < len(options); i++ {
		better := options[i].metric > options[winner].metric
		if lowerWins {
			better = options[i].metric < options[winner].metric
		}
		if better {
			winner = i
		}
	}

	def := newDefinition(s.Format(), p, ctx, s.deps.Resolver.CognitiveLoad(p.ModelID, params))
	def.Parameters.DecimalPlaces = params.DecimalPlaces
	def.Metadata.CognitiveSkills = []string{"comparison", "reasoning"}
	if lowerWins {
		def.Parameters.CurrencySymbol = "£"
	}

	character := pickCharacter(ctx, s.deps.RNG)
	def.Parameters.Narrative["character"] = character
	def.Parameters.Narrative["winner_rule"] = metricRule(lowerWins)

	body, prompt := comparisonBody(options, lowerWins)
	tpl, ok := ctx.TemplateFor(s.Format())
	if !ok {
		generic := scenario.GenericContext()
		tpl, _ = generic.TemplateFor(s.Format())
	}
	def.Text = composeText(tpl, ctx, character, body+" "+prompt)

	win := options[winner]
	var steps []string
	for _, o := range options {
		steps = append(steps, fmt.Sprintf("%s: %s.", o.label, o.detail))
	}
	steps = append(steps, fmt.Sprintf("%s wins because the rule is: %s.", win.label, metricRule(lowerWins)))

	def.Solution = question.Solution{
		Answer:        win.label,
		AnswerDisplay: win.label,
		Explanation:   fmt.Sprintf("%s. The rule is %s, so %s is the answer.", win.detail, metricRule(lowerWins), win.label),
		Steps:         steps,
		Distractors:   comparisonDistractors(options, winner),
	}
	return def, nil
}

// buildOptions runs the model once per option, retrying until the
// metric values differ so the question has a single defensible winner.
func (s *comparison) buildOptions(model mathmodel.Model, params mathmodel.Params, ctx scenario.Context) ([]option, error) {
	labels := []string{"Option A", "Option B"}
	var opts []option
	var outs []*mathmodel.Output
	for attempt := 0; attempt < comparisonAttempts; attempt++ {
		opts = opts[:0]
		outs = outs[:0]
		for _, label := range labels {
			out, err := model.Generate(params, s.deps.RNG)
			if err != nil {
				return nil, fmt.Errorf("model %s: %w", model.ID(), err)
			}
			outs = append(outs, out)
			opts = append(opts, makeOption(label, out, ctx))
		}
		if opts[0].metric != opts[1].metric {
			return opts, nil
		}
	}
	// Equal after all retries; shift the second option's underlying
	// values and re-render it so the text agrees with the winner.
	opts[1] = makeOption(labels[1], shiftOutput(outs[1]), ctx)
	return opts, nil
}

// shiftOutput returns a copy of out with its value bumped just enough
// to break a tie, keeping the derived fields consistent with each other.
func shiftOutput(out *mathmodel.Output) *mathmodel.Output {
	shifted := *out
	switch out.Operation {
	case mathmodel.OpUnitRate:
		u := *out.UnitRate
		u.UnitPrice += 0.01
		u.TotalPrice = u.UnitPrice * float64(u.Quantity)
		shifted.UnitRate = &u
	case mathmodel.OpAddition:
		a := *out.Addition
		a.Operands = append([]float64(nil), a.Operands...)
		a.Operands[len(a.Operands)-1]++
		a.Sum++
		shifted.Addition = &a
	case mathmodel.OpMultiplication:
		m := *out.Multiplication
		m.Multiplier++
		m.Product = m.Multiplicand * m.Multiplier
		shifted.Multiplication = &m
	}
	return &shifted
}

// makeOption renders one model output as a comparison option.
func makeOption(label string, out *mathmodel.Output, ctx scenario.Context) option {
	switch out.Operation {
	case mathmodel.OpUnitRate:
		u := out.UnitRate
		name := "item"
		if len(ctx.Items) > 0 {
			name = ctx.Items[0].Name
		}
		return option{
			label: label,
			detail: fmt.Sprintf("%d %ss for £%.2f (£%.2f each)",
				u.Quantity, name, u.TotalPrice, u.UnitPrice),
			metric: u.UnitPrice,
		}
	default:
		v := out.Result()
		return option{
			label:  label,
			detail: fmt.Sprintf("a total of %s", question.FormatValue(v, 0)),
			metric: v,
		}
	}
}

func metricRule(lowerWins bool) string {
	if lowerWins {
		return "the lower price per item is the better buy"
	}
	return "the higher total wins"
}

func comparisonBody(options []option, lowerWins bool) (body, prompt string) {
	body = fmt.Sprintf("%s offers %s. %s offers %s.",
		options[0].label, options[0].detail, options[1].label, options[1].detail)
	if lowerWins {
		return body, "Which is the better buy?"
	}
	return body, "Which option has more?"
}

// comparisonDistractors builds the wrong-answer set: the reversed
// winner first, then the equality misconception.
func comparisonDistractors(options []option, winner int) []question.Distractor {
	var out []question.Distractor
	for i, o := range options {
		if i == winner {
			continue
		}
		out = append(out, question.Distractor{
			Value:       o.label,
			DisplayText: o.label,
			Strategy:    "reversed-winner",
			Reasoning:   "applied the comparison rule the wrong way round",
		})
	}
	out = append(out, question.Distractor{
		Value:       "They are the same",
		DisplayText: "They are the same",
		Strategy:    "equality-misconception",
		Reasoning:   "assumed differently priced offers must be equal",
	})
	return out
}
