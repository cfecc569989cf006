// Package question defines the finished question artifact the engine
// hands to callers, plus the shared distractor record.
package question

import (
	"time"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
)

// Distractor is one plausible wrong answer.
type Distractor struct {
	// Value is the canonical answer string, e.g. "613" or "Option B".
	Value string `json:"value"`

	// DisplayText is the value as shown to the student, with any units
	// or currency applied, e.g. "£6.13".
	DisplayText string `json:"display_text"`

	// Strategy names the generation strategy that produced this
	// distractor, e.g. "carry-dropped" or "wrong-operation".
	Strategy string `json:"strategy"`

	// Reasoning describes the student error the distractor simulates.
	Reasoning string `json:"reasoning"`
}

// Solution is the answer block of a question.
type Solution struct {
	// Answer is the canonical correct answer string.
	Answer string `json:"answer"`

	// AnswerDisplay is the correct answer with units/currency applied.
	AnswerDisplay string `json:"answer_display"`

	// Distractors are the wrong-answer choices. May be shorter than
	// requested when filtering removed candidates.
	Distractors []Distractor `json:"distractors"`

	// Explanation is a short human-readable justification of the answer.
	Explanation string `json:"explanation"`

	// Steps are the worked solution steps in display order.
	Steps []string `json:"steps,omitempty"`
}

// ScenarioRef is the narrative wrapper snapshot embedded in a question.
type ScenarioRef struct {
	ID      string `json:"id"`
	Theme   string `json:"theme"`
	Setting string `json:"setting"`
}

// Parameters carries the narrative and formatting inputs that shaped
// the question text.
type Parameters struct {
	// Narrative maps template placeholders to the values substituted
	// into the question text, e.g. "character" -> "Priya".
	Narrative map[string]string `json:"narrative,omitempty"`

	// Units names the unit of the answer, e.g. "stickers". Empty for
	// bare numbers.
	Units string `json:"units,omitempty"`

	// CurrencySymbol is set when the answer is an amount of money.
	CurrencySymbol string `json:"currency_symbol,omitempty"`

	// DecimalPlaces is the display precision of numeric answers.
	DecimalPlaces int `json:"decimal_places"`
}

// Metadata carries curriculum and pacing annotations.
type Metadata struct {
	CurriculumTags   []string  `json:"curriculum_tags,omitempty"`
	CognitiveSkills  []string  `json:"cognitive_skills,omitempty"`
	EstimatedSeconds int       `json:"estimated_seconds"`
	CognitiveLoad    int       `json:"cognitive_load"`
	CreatedAt        time.Time `json:"created_at"`
}

// Definition is the final generated artifact. It is created once per
// generation call and never mutated after being returned; ownership
// passes to the caller.
type Definition struct {
	ID         string            `json:"id"`
	Format     curriculum.Format `json:"format"`
	ModelID    string            `json:"model_id"`
	Level      curriculum.Level  `json:"-"`
	LevelLabel string            `json:"difficulty_level"`
	Scenario   ScenarioRef       `json:"scenario"`
	Parameters Parameters        `json:"parameters"`
	Text       string            `json:"text"`
	Solution   Solution          `json:"solution"`
	Metadata   Metadata          `json:"metadata"`
}
