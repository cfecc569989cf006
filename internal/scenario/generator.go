package scenario

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// proceduralGenerator builds a fresh context for a theme when the
// catalog has no match. Generated contexts mint a unique id carrying a
// timestamp so repeated fallbacks stay distinguishable.
type proceduralGenerator func(year int, rng *rand.Rand) Context

// proceduralGenerators maps themes to their generators. Themes absent
// here fall back to the generic context.
var proceduralGenerators = map[Theme]proceduralGenerator{
	ThemeShopping: generateShopping,
	ThemeSports:   generateSports,
	ThemeNature:   generateNature,
}

func mintID(theme Theme) string {
	return fmt.Sprintf("gen-%s-%d-%s", theme, time.Now().UnixMilli(), uuid.NewString()[:8])
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func generateShopping(year int, rng *rand.Rand) Context {
	settings := []string{"the market stall", "the toy shop", "the book fair"}
	names := []string{"Ruby", "Idris", "Nina", "Jack"}
	return Context{
		ID:      mintID(ThemeShopping),
		Theme:   ThemeShopping,
		Setting: pick(rng, settings),
		Characters: []string{pick(rng, names), pick(rng, names)},
		Items: []Item{
			{Name: "notebook", UnitPrice: 1.50, Unit: "each"},
			{Name: "badge", UnitPrice: 0.65, Unit: "each"},
			{Name: "poster", UnitPrice: 2.20, Unit: "each"},
		},
		Templates:       allFormatTemplates("{character} is browsing {setting}. {body}"),
		YearAppropriate: []int{year},
		Locale:          "en-GB",
	}
}

func generateSports(year int, rng *rand.Rand) Context {
	settings := []string{"the athletics track", "the netball court", "the cricket pitch"}
	names := []string{"Skye", "Marcus", "Tilly", "Dev"}
	return Context{
		ID:      mintID(ThemeSports),
		Theme:   ThemeSports,
		Setting: pick(rng, settings),
		Characters: []string{pick(rng, names), pick(rng, names)},
		Templates:       allFormatTemplates("{character} is training at {setting}. {body}"),
		YearAppropriate: []int{year},
		Locale:          "en-GB",
	}
}

func generateNature(year int, rng *rand.Rand) Context {
	settings := []string{"the pond", "the meadow", "the orchard"}
	names := []string{"Wren", "Caleb", "Sana"}
	return Context{
		ID:      mintID(ThemeNature),
		Theme:   ThemeNature,
		Setting: pick(rng, settings),
		Characters: []string{pick(rng, names), pick(rng, names)},
		Templates:       allFormatTemplates("{character} is exploring {setting}. {body}"),
		YearAppropriate: []int{year},
		Locale:          "en-GB",
	}
}
