package format

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/distractor"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
	"github.com/andyxwarren/factory-architect-sub002/internal/question"
	"github.com/andyxwarren/factory-architect-sub002/internal/scenario"
)

// directCalculation maps raw operands and a result into a narrative
// word problem asking for the numeric answer.
type directCalculation struct {
	deps Deps
}

func (s *directCalculation) Format() curriculum.Format {
	return curriculum.FormatDirectCalculation
}

func (s *directCalculation) Supports(modelID mathmodel.Operation) bool {
	switch modelID {
	case mathmodel.OpAddition, mathmodel.OpSubtraction,
		mathmodel.OpMultiplication, mathmodel.OpDivision,
		mathmodel.OpPercentage:
		return true
	}
	return false
}

func (s *directCalculation) Generate(p Params) (*question.Definition, error) {
	if err := checkLevel(p.Level); err != nil {
		return nil, err
	}
	if !s.Supports(p.ModelID) {
		return nil, &UnsupportedCombinationError{
			ModelID: string(p.ModelID),
			Format:  string(s.Format()),
			Reason:  "model has no direct-calculation rendering",
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
	def.Metadata.CognitiveSkills = []string{"calculation", "number-facts"}

	// Money levels swap abstract operands for realistic shop prices,
	// recomputing the total so it stays consistent with what the
	// student reads.
	var itemLines []string
	if out.Operation == mathmodel.OpAddition && params.DecimalPlaces == 2 && len(ctx.Items) >= 2 {
		itemLines = substitutePrices(out, ctx, s.deps.RNG)
		def.Parameters.CurrencySymbol = "£"
		def.Parameters.Narrative["price_substituted"] = "true"
	}

	character := pickCharacter(ctx, s.deps.RNG)
	def.Parameters.Narrative["character"] = character

	body, explanation, steps := s.render(out, def.Parameters, itemLines)
	tpl, ok := ctx.TemplateFor(s.Format())
	if !ok {
		generic := scenario.GenericContext()
		tpl, _ = generic.TemplateFor(s.Format())
	}
	def.Text = composeText(tpl, ctx, character, body)

	dp := params.DecimalPlaces
	result := out.Result()
	def.Solution = question.Solution{
		Answer:        question.FormatValue(result, dp),
		AnswerDisplay: question.DisplayValue(result, dp, def.Parameters.CurrencySymbol, def.Parameters.Units),
		Explanation:   explanation,
		Steps:         steps,
		Distractors: s.deps.Distractors.Generate(result, distractor.Context{
			Model:         p.ModelID,
			Format:        s.Format(),
			Operands:      out.OperandValues(),
			Year:          p.Level.Year,
			DecimalPlaces: dp,
		}, p.distractorCount()),
	}

	if def.Parameters.CurrencySymbol != "" {
		for i := range def.Solution.Distractors {
			d := &def.Solution.Distractors[i]
			d.DisplayText = def.Parameters.CurrencySymbol + d.Value
		}
	}

	return def, nil
}

// substitutePrices rewrites an addition's operands as item purchases
// and recomputes the sum, rounded to 2 decimal places.
func substitutePrices(out *mathmodel.Output, ctx scenario.Context, rng *rand.Rand) []string {
	add := out.Addition
	lines := make([]string, 0, len(add.Operands))
	sumPence := 0
	for i := range add.Operands {
		item := ctx.Items[rng.Intn(len(ctx.Items))]
		qty := 1 + rng.Intn(3)
		pence := int(item.UnitPrice*100+0.5) * qty
		add.Operands[i] = float64(pence) / 100
		sumPence += pence
		if qty == 1 {
			lines = append(lines, fmt.Sprintf("a %s for £%.2f", item.Name, float64(pence)/100))
		} else {
			lines = append(lines, fmt.Sprintf("%d %ss for £%.2f", qty, item.Name, float64(pence)/100))
		}
	}
	add.Sum = float64(sumPence) / 100
	return lines
}

// render produces the math narrative, explanation and worked steps for
// one model output.
func (s *directCalculation) render(out *mathmodel.Output, qp question.Parameters, itemLines []string) (body, explanation string, steps []string) {
	dp := qp.DecimalPlaces
	fv := func(v float64) string { return question.DisplayValue(v, dp, qp.CurrencySymbol, "") }

	switch out.Operation {
	case mathmodel.OpAddition:
		a := out.Addition
		parts := make([]string, len(a.Operands))
		for i, v := range a.Operands {
			parts[i] = fv(v)
		}
		expr := strings.Join(parts, " + ")
		if len(itemLines) > 0 {
			body = fmt.Sprintf("They buy %s. How much do they spend altogether?", operandPhrase(itemLines))
		} else {
			body = fmt.Sprintf("They add %s. What is the total?", operandPhrase(parts))
		}
		explanation = fmt.Sprintf("%s = %s.", expr, fv(a.Sum))
		steps = []string{fmt.Sprintf("Add the numbers: %s.", expr)}
		if a.CarryRequired {
			steps = append(steps, "Watch for columns that add to ten or more and carry.")
		}
		steps = append(steps, fmt.Sprintf("The total is %s.", fv(a.Sum)))

	case mathmodel.OpSubtraction:
		sub := out.Subtraction
		body = fmt.Sprintf("They start with %s and use up %s. How much is left?", fv(sub.Minuend), fv(sub.Subtrahend))
		explanation = fmt.Sprintf("%s - %s = %s.", fv(sub.Minuend), fv(sub.Subtrahend), fv(sub.Difference))
		steps = []string{fmt.Sprintf("Take %s away from %s.", fv(sub.Subtrahend), fv(sub.Minuend))}
		if sub.BorrowRequired {
			steps = append(steps, "Exchange from the next column when a digit is too small.")
		}
		steps = append(steps, fmt.Sprintf("That leaves %s.", fv(sub.Difference)))

	case mathmodel.OpMultiplication:
		m := out.Multiplication
		body = fmt.Sprintf("They arrange %s rows of %s. How many is that in total?",
			question.FormatValue(m.Multiplier, 0), fv(m.Multiplicand))
		explanation = fmt.Sprintf("%s × %s = %s.", fv(m.Multiplicand), question.FormatValue(m.Multiplier, 0), fv(m.Product))
		steps = []string{
			fmt.Sprintf("Multiply %s by %s.", fv(m.Multiplicand), question.FormatValue(m.Multiplier, 0)),
			fmt.Sprintf("The product is %s.", fv(m.Product)),
		}

	case mathmodel.OpDivision:
		d := out.Division
		body = fmt.Sprintf("They have %d to share into groups of %d. How many full groups can they make?", d.Dividend, d.Divisor)
		explanation = fmt.Sprintf("%d ÷ %d = %d", d.Dividend, d.Divisor, d.Quotient)
		if d.Remainder > 0 {
			explanation += fmt.Sprintf(" remainder %d", d.Remainder)
		}
		explanation += "."
		steps = []string{fmt.Sprintf("Divide %d by %d.", d.Dividend, d.Divisor)}
		if d.Remainder > 0 {
			steps = append(steps, fmt.Sprintf("%d groups fit, with %d left over.", d.Quotient, d.Remainder))
		} else {
			steps = append(steps, fmt.Sprintf("%d groups fit exactly.", d.Quotient))
		}

	case mathmodel.OpPercentage:
		pc := out.Percentage
		body = fmt.Sprintf("They need to find %d%% of %s. What is it?", pc.Percent, fv(pc.Base))
		explanation = fmt.Sprintf("%d%% of %s is %s.", pc.Percent, fv(pc.Base), fv(pc.Value))
		steps = []string{
			fmt.Sprintf("Find 1%% of %s by dividing by 100.", fv(pc.Base)),
			fmt.Sprintf("Multiply by %d to get %s.", pc.Percent, fv(pc.Value)),
		}
	}
	return body, explanation, steps
}
