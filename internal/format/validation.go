package format

import (
	"fmt"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/distractor"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
	"github.com/andyxwarren/factory-architect-sub002/internal/question"
	"github.com/andyxwarren/factory-architect-sub002/internal/scenario"
)

// validation presents a claimed calculation and asks the student to
// judge it: true/false, check-the-work, or pick the right answer.
type validation struct {
	deps Deps
}

func (s *validation) Format() curriculum.Format {
	return curriculum.FormatValidation
}

func (s *validation) Supports(modelID mathmodel.Operation) bool {
	switch modelID {
	case mathmodel.OpAddition, mathmodel.OpSubtraction,
		mathmodel.OpMultiplication, mathmodel.OpDivision:
		return true
	}
	return false
}

// errorType classifies the deliberate error injected into a false claim.
type errorType string

const (
	errComputational errorType = "computational"
	errProcedural    errorType = "procedural"
	errConceptual    errorType = "conceptual"
)

// errorProfile gives the probability of each error type per year.
// Conceptual errors are reserved for year 3 up; the mix shifts toward
// them as years rise.
var errorProfile = map[int][3]float64{
	1: {0.80, 0.20, 0.00},
	2: {0.70, 0.30, 0.00},
	3: {0.60, 0.30, 0.10},
	4: {0.50, 0.30, 0.20},
	5: {0.40, 0.35, 0.25},
	6: {0.30, 0.40, 0.30},
}

// subtask is the presentation variant.
type subtask string

const (
	subTrueFalse subtask = "true-false"
	subCheckWork subtask = "check-the-work"
	subMCVerify  subtask = "multiple-choice-verification"
)

func (s *validation) Generate(p Params) (*question.Definition, error) {
	if err := checkLevel(p.Level); err != nil {
		return nil, err
	}
	if !s.Supports(p.ModelID) {
		return nil, &UnsupportedCombinationError{
			ModelID: string(p.ModelID),
			Format:  string(s.Format()),
			Reason:  "model has no validation rendering",
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
	out, err := model.Generate(params, s.deps.RNG)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", p.ModelID, err)
	}

	ctx := s.deps.Scenarios.Select(scenario.Criteria{
		Format: s.Format(),
		Year:   p.Level.Year,
		Theme:  p.PreferredTheme,
	})

	def := newDefinition(s.Format(), p, ctx, s.deps.Resolver.CognitiveLoad(p.ModelID, params))
	def.Parameters.DecimalPlaces = params.DecimalPlaces
	def.Metadata.CognitiveSkills = []string{"verification", "error-analysis"}

	character := pickCharacter(ctx, s.deps.RNG)
	def.Parameters.Narrative["character"] = character

	variant := s.pickSubtask()
	def.Parameters.Narrative["subtask"] = string(variant)

	correct := out.Result()
	claimIsTrue := s.deps.RNG.Float64() < 0.5
	claimed := correct
	chosenErr := errorType("")
	if !claimIsTrue || variant == subMCVerify {
		// MC verification always needs a wrong claim to contrast with.
		chosenErr = s.pickErrorType(p.Level.Year)
		claimed = injectError(correct, out, chosenErr)
		if variant != subMCVerify {
			claimIsTrue = false
		}
		def.Parameters.Narrative["error_type"] = string(chosenErr)
	}

	dp := params.DecimalPlaces
	expr := claimExpression(out)
	shown := claimed
	if variant != subMCVerify && claimIsTrue {
		shown = correct
	}
	claim := fmt.Sprintf("%s = %s", expr, question.FormatValue(shown, dp))

	tpl, ok := ctx.TemplateFor(s.Format())
	if !ok {
		generic := scenario.GenericContext()
		tpl, _ = generic.TemplateFor(s.Format())
	}

	switch variant {
	case subMCVerify:
		body := fmt.Sprintf("{character} worked out %s and got %s. Which answer is actually correct?",
			expr, question.FormatValue(claimed, dp))
		def.Text = composeText(tpl, ctx, character, body)
		def.Solution = s.mcSolution(correct, claimed, chosenErr, out, p, dp)
	case subCheckWork:
		body := fmt.Sprintf("Check this working: %s. Is the answer correct? Answer yes or no.", claim)
		def.Text = composeText(tpl, ctx, character, body)
		def.Solution = yesNoSolution(claimIsTrue, expr, correct, dp)
	default:
		body := fmt.Sprintf("{character} says %s. True or false?", claim)
		def.Text = composeText(tpl, ctx, character, body)
		def.Solution = trueFalseSolution(claimIsTrue, expr, correct, dp)
	}

	return def, nil
}

func (s *validation) pickSubtask() subtask {
	switch s.deps.RNG.Intn(3) {
	case 0:
		return subCheckWork
	case 1:
		return subMCVerify
	default:
		return subTrueFalse
	}
}

// pickErrorType draws from the year's probability profile.
func (s *validation) pickErrorType(year int) errorType {
	profile, ok := errorProfile[year]
	if !ok {
		profile = errorProfile[3]
	}
	r := s.deps.RNG.Float64()
	switch {
	case r < profile[0]:
		return errComputational
	case r < profile[0]+profile[1]:
		return errProcedural
	default:
		return errConceptual
	}
}

// injectError derives a wrong claimed result of the requested type.
// The returned value always differs from the correct one.
func injectError(correct float64, out *mathmodel.Output, t errorType) float64 {
	ops := out.OperandValues()
	var wrong float64
	switch t {
	case errProcedural:
		// A carry/borrow slip: one place-value column off.
		wrong = correct - 10
		if wrong <= 0 {
			wrong = correct + 10
		}
	case errConceptual:
		// The wrong operation entirely.
		if len(ops) >= 2 {
			switch out.Operation {
			case mathmodel.OpAddition:
				wrong = ops[0] - ops[1]
			case mathmodel.OpSubtraction:
				wrong = ops[0] + ops[1]
			case mathmodel.OpMultiplication:
				wrong = ops[0] + ops[1]
			case mathmodel.OpDivision:
				wrong = ops[0] * ops[1]
			}
		}
	default:
		// A small arithmetic slip.
		wrong = correct + 2
	}
	if wrong == correct || wrong < 0 {
		wrong = correct + 2
	}
	return wrong
}

// claimExpression renders the calculation being claimed.
func claimExpression(out *mathmodel.Output) string {
	ops := out.OperandValues()
	sym := out.Operation.Symbol()
	if len(ops) < 2 || sym == "" {
		return ""
	}
	expr := question.FormatValue(ops[0], 2)
	if ops[0] == float64(int64(ops[0])) {
		expr = question.FormatValue(ops[0], 0)
	}
	for _, v := range ops[1:] {
		s := question.FormatValue(v, 2)
		if v == float64(int64(v)) {
			s = question.FormatValue(v, 0)
		}
		expr += " " + sym + " " + s
	}
	return expr
}

func trueFalseSolution(claimIsTrue bool, expr string, correct float64, dp int) question.Solution {
	answer, other := "false", "true"
	if claimIsTrue {
		answer, other = "true", "false"
	}
	return question.Solution{
		Answer:        answer,
		AnswerDisplay: answer,
		Explanation:   fmt.Sprintf("The correct result of %s is %s.", expr, question.FormatValue(correct, dp)),
		Steps: []string{
			fmt.Sprintf("Work out %s yourself.", expr),
			fmt.Sprintf("Compare your result, %s, with the claim.", question.FormatValue(correct, dp)),
		},
		Distractors: []question.Distractor{{
			Value:       other,
			DisplayText: other,
			Strategy:    "opposite-judgement",
			Reasoning:   "accepted or rejected the claim without checking",
		}},
	}
}

func yesNoSolution(claimIsTrue bool, expr string, correct float64, dp int) question.Solution {
	answer, other := "no", "yes"
	if claimIsTrue {
		answer, other = "yes", "no"
	}
	sol := trueFalseSolution(claimIsTrue, expr, correct, dp)
	sol.Answer = answer
	sol.AnswerDisplay = answer
	sol.Distractors = []question.Distractor{{
		Value:       other,
		DisplayText: other,
		Strategy:    "opposite-judgement",
		Reasoning:   "accepted or rejected the working without checking",
	}}
	return sol
}

// mcSolution asks for the right value, with the flawed claim among the
// distractors.
func (s *validation) mcSolution(correct, claimed float64, t errorType, out *mathmodel.Output, p Params, dp int) question.Solution {
	ds := []question.Distractor{{
		Value:       question.FormatValue(claimed, dp),
		DisplayText: question.FormatValue(claimed, dp),
		Strategy:    "injected-" + string(t),
		Reasoning:   fmt.Sprintf("the claimed answer contains a %s error", t),
	}}
	extra := s.deps.Distractors.Generate(correct, distractor.Context{
		Model:         p.ModelID,
		Format:        s.Format(),
		Operands:      out.OperandValues(),
		Year:          p.Level.Year,
		DecimalPlaces: dp,
	}, p.distractorCount()-1)
	for _, d := range extra {
		if d.Value != ds[0].Value {
			ds = append(ds, d)
		}
	}
	return question.Solution{
		Answer:        question.FormatValue(correct, dp),
		AnswerDisplay: question.FormatValue(correct, dp),
		Explanation:   fmt.Sprintf("The correct result of %s is %s.", claimExpression(out), question.FormatValue(correct, dp)),
		Steps: []string{
			fmt.Sprintf("Work out %s.", claimExpression(out)),
			"Pick the option matching your result.",
		},
		Distractors: ds,
	}
}
