package format

import (
	"fmt"
	"strings"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
	"github.com/andyxwarren/factory-architect-sub002/internal/question"
	"github.com/andyxwarren/factory-architect-sub002/internal/scenario"
)

// patternRecognition generates a finite sequence under a rule family,
// hides one or two terms, and asks for the hidden value(s).
type patternRecognition struct {
	deps Deps
}

func (s *patternRecognition) Format() curriculum.Format {
	return curriculum.FormatPatternRecognition
}

func (s *patternRecognition) Supports(modelID mathmodel.Operation) bool {
	switch modelID {
	case mathmodel.OpAddition, mathmodel.OpSubtraction, mathmodel.OpMultiplication:
		return true
	}
	return false
}

// family is one sequence rule family.
type family string

const (
	famArithmetic  family = "arithmetic"
	famGeometric   family = "geometric"
	famFibonacci   family = "fibonacci"
	famQuadratic   family = "quadratic"
	famAlternating family = "alternating"
)

const sequenceLength = 6

func (s *patternRecognition) Generate(p Params) (*question.Definition, error) {
	if err := checkLevel(p.Level); err != nil {
		return nil, err
	}
	if !s.Supports(p.ModelID) {
		return nil, &UnsupportedCombinationError{
			ModelID: string(p.ModelID),
			Format:  string(s.Format()),
			Reason:  "model has no pattern rendering",
		}
	}

	params, err := resolveParams(s.deps, p)
	if err != nil {
		return nil, err
	}

	ctx := s.deps.Scenarios.Select(scenario.Criteria{
		Format: s.Format(),
		Year:   p.Level.Year,
		Theme:  p.PreferredTheme,
	})

	fam := s.pickFamily(p.ModelID, p.Level.Year)
	seq, rule := s.buildSequence(fam, params)

	// Hide one term; two at year 5+ with some probability. The first
	// term stays visible so the pattern is inferable.
	hidden := []int{1 + s.deps.RNG.Intn(sequenceLength-1)}
	if p.Level.Year >= 5 && s.deps.RNG.Float64() < 0.3 {
		second := 1 + s.deps.RNG.Intn(sequenceLength-1)
		if second != hidden[0] {
			hidden = append(hidden, second)
		}
	}
	if len(hidden) == 2 && hidden[0] > hidden[1] {
		hidden[0], hidden[1] = hidden[1], hidden[0]
	}

	def := newDefinition(s.Format(), p, ctx, s.deps.Resolver.CognitiveLoad(p.ModelID, params))
	def.Metadata.CognitiveSkills = []string{"pattern-recognition", "sequencing"}
	def.Parameters.Narrative["family"] = string(fam)

	character := pickCharacter(ctx, s.deps.RNG)
	def.Parameters.Narrative["character"] = character

	display := make([]string, sequenceLength)
	var answers []string
	for i, v := range seq {
		display[i] = question.FormatValue(v, 0)
	}
	for _, h := range hidden {
		answers = append(answers, display[h])
		display[h] = "?"
	}

	body := fmt.Sprintf("The sequence goes %s. What is the missing number?", strings.Join(display, ", "))
	if len(hidden) == 2 {
		body = fmt.Sprintf("The sequence goes %s. What are the two missing numbers?", strings.Join(display, ", "))
	}
	tpl, ok := ctx.TemplateFor(s.Format())
	if !ok {
		generic := scenario.GenericContext()
		tpl, _ = generic.TemplateFor(s.Format())
	}
	def.Text = composeText(tpl, ctx, character, body)

	answer := strings.Join(answers, ", ")
	def.Solution = question.Solution{
		Answer:        answer,
		AnswerDisplay: answer,
		Explanation:   fmt.Sprintf("The pattern is: %s.", rule),
		Steps: []string{
			fmt.Sprintf("Spot the rule: %s.", rule),
			fmt.Sprintf("Apply it to find %s.", answer),
		},
		Distractors: s.patternDistractors(seq, hidden, fam),
	}
	return def, nil
}

// pickFamily chooses a rule family by year-appropriate probability,
// within what the model supports.
func (s *patternRecognition) pickFamily(modelID mathmodel.Operation, year int) family {
	if modelID == mathmodel.OpMultiplication {
		return famGeometric
	}
	var pool []family
	switch {
	case year <= 2:
		pool = []family{famArithmetic, famArithmetic, famArithmetic, famAlternating}
	case year <= 4:
		pool = []family{famArithmetic, famArithmetic, famAlternating, famFibonacci}
	default:
		pool = []family{famArithmetic, famAlternating, famFibonacci, famQuadratic}
	}
	return pool[s.deps.RNG.Intn(len(pool))]
}

// buildSequence materialises a sequence and a rule description.
func (s *patternRecognition) buildSequence(fam family, params mathmodel.Params) ([]float64, string) {
	rng := s.deps.RNG
	maxStart := params.MaxValue / 4
	if maxStart < 2 {
		maxStart = 2
	}
	start := float64(1 + rng.Intn(maxStart))
	seq := make([]float64, sequenceLength)

	switch fam {
	case famGeometric:
		ratio := float64(2 + rng.Intn(2))
		v := start
		for i := range seq {
			seq[i] = v
			v *= ratio
		}
		return seq, fmt.Sprintf("multiply by %s each time", question.FormatValue(ratio, 0))

	case famFibonacci:
		a, b := start, start+float64(1+rng.Intn(3))
		seq[0], seq[1] = a, b
		for i := 2; i < sequenceLength; i++ {
			seq[i] = seq[i-1] + seq[i-2]
		}
		return seq, "add the two previous numbers"

	case famQuadratic:
		for i := range seq {
			n := float64(i + 1)
			seq[i] = start + n*n
		}
		return seq, "add the square numbers in turn"

	case famAlternating:
		up := float64(2 + rng.Intn(4))
		down := float64(1 + rng.Intn(int(up)))
		v := start + down // keep every term positive
		for i := range seq {
			seq[i] = v
			if i%2 == 0 {
				v += up
			} else {
				v -= down
			}
		}
		return seq, fmt.Sprintf("add %s, then subtract %s, repeating",
			question.FormatValue(up, 0), question.FormatValue(down, 0))

	default: // arithmetic, ascending or descending
		step := float64(2 + rng.Intn(8))
		descending := rng.Float64() < 0.3
		v := start
		if descending {
			v = start + step*float64(sequenceLength)
		}
		for i := range seq {
			seq[i] = v
			if descending {
				v -= step
			} else {
				v += step
			}
		}
		dir := "add"
		if descending {
			dir = "subtract"
		}
		return seq, fmt.Sprintf("%s %s each time", dir, question.FormatValue(step, 0))
	}
}

// patternDistractors simulates the classic sequence errors: wrong step
// size, wrong operation, wrong starting point, and off-by-one.
func (s *patternRecognition) patternDistractors(seq []float64, hidden []int, fam family) []question.Distractor {
	h := hidden[0]
	correct := seq[h]
	prev := seq[0]
	if h > 0 {
		prev = seq[h-1]
	}
	step := correct - prev

	type cand struct {
		value     float64
		strategy  string
		reasoning string
	}
	cands := []cand{
		{correct + 1, "off-by-one", "counted one past the hidden term"},
		{correct - 1, "off-by-one", "stopped one short of the hidden term"},
		{prev + step + 1, "wrong-step-size", "used a step one too large"},
		{prev - step, "wrong-operation", "applied the step in the wrong direction"},
		{seq[0] + step, "wrong-starting-point", "restarted the pattern from the first term"},
	}
	if fam == famGeometric && prev != 0 {
		cands = append(cands, cand{prev + 2, "wrong-operation", "added instead of multiplying"})
	}

	suffix := ""
	if len(hidden) == 2 {
		// Perturb only the first hidden term; the second stays correct
		// so the distractor remains plausible.
		suffix = ", " + question.FormatValue(seq[hidden[1]], 0)
	}

	seen := map[string]bool{question.FormatValue(correct, 0) + suffix: true}
	var out []question.Distractor
	for _, c := range cands {
		if c.value < 0 {
			continue
		}
		v := question.FormatValue(c.value, 0) + suffix
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, question.Distractor{
			Value:       v,
			DisplayText: v,
			Strategy:    c.strategy,
			Reasoning:   c.reasoning,
		})
		if len(out) == 3 {
			break
		}
	}
	return out
}
