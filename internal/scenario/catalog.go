package scenario

import (
	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
)

// allFormatTemplates builds one template per format from a framing
// sentence. The {body} placeholder receives the math narrative composed
// by the format strategy; {character} and {setting} come from the
// context itself.
func allFormatTemplates(framing string) []Template {
	var ts []Template
	for _, f := range curriculum.AllFormats() {
		ts = append(ts, Template{Format: f, Text: framing})
	}
	return ts
}

// DefaultCatalog returns the built-in narrative contexts.
func DefaultCatalog() []Context {
	return []Context{
		{
			ID:      "corner-shop",
			Theme:   ThemeShopping,
			Setting: "the corner shop",
			Characters: []string{"Priya", "Sam", "Leo", "Amara"},
			Items: []Item{
				{Name: "apple", UnitPrice: 0.45, Unit: "each"},
				{Name: "comic", UnitPrice: 2.50, Unit: "each"},
				{Name: "juice carton", UnitPrice: 1.20, Unit: "each"},
				{Name: "packet of stickers", UnitPrice: 0.85, Unit: "each"},
			},
			CulturalElements:    []string{"pocket money", "loyalty stamps"},
			Templates:           allFormatTemplates("{character} is at {setting} with their pocket money. {body}"),
			YearAppropriate:     []int{1, 2, 3, 4},
			RealWorldConnection: "spending pocket money at a local shop",
			Locale:              "en-GB",
		},
		{
			ID:      "supermarket",
			Theme:   ThemeShopping,
			Setting: "the supermarket",
			Characters: []string{"Mrs. Okafor", "Daniel", "Grace"},
			Items: []Item{
				{Name: "loaf of bread", UnitPrice: 1.35, Unit: "each"},
				{Name: "bag of rice", UnitPrice: 3.20, Unit: "per kg"},
				{Name: "box of cereal", UnitPrice: 2.75, Unit: "each"},
				{Name: "bottle of milk", UnitPrice: 1.10, Unit: "per litre"},
			},
			CulturalElements:    []string{"weekly shop", "multibuy offers"},
			Templates:           allFormatTemplates("{character} is doing the weekly shop at {setting}. {body}"),
			YearAppropriate:     []int{3, 4, 5, 6},
			RealWorldConnection: "comparing prices during a family shop",
			Locale:              "en-GB",
		},
		{
			ID:      "school-bake-sale",
			Theme:   ThemeCooking,
			Setting: "the school bake sale",
			Characters: []string{"Aisha", "Tom", "Mei"},
			Items: []Item{
				{Name: "cupcake", UnitPrice: 0.60, Unit: "each"},
				{Name: "flapjack", UnitPrice: 0.50, Unit: "each"},
				{Name: "brownie", UnitPrice: 0.75, Unit: "each"},
			},
			CulturalElements:    []string{"charity fundraiser"},
			Templates:           allFormatTemplates("{character} is helping at {setting}. {body}"),
			YearAppropriate:     []int{2, 3, 4, 5},
			RealWorldConnection: "raising money for charity",
			Locale:              "en-GB",
		},
		{
			ID:      "kitchen-recipes",
			Theme:   ThemeCooking,
			Setting: "the kitchen",
			Characters: []string{"Nana", "Oliver", "Zara"},
			Items: []Item{
				{Name: "bag of flour", UnitPrice: 1.80, Unit: "per kg"},
				{Name: "dozen eggs", UnitPrice: 2.40, Unit: "per dozen"},
				{Name: "butter", UnitPrice: 2.10, Unit: "per pack"},
			},
			Templates:       allFormatTemplates("{character} is baking in {setting} and doubles the recipe. {body}"),
			YearAppropriate: []int{3, 4, 5, 6},
			Locale:          "en-GB",
		},
		{
			ID:      "football-club",
			Theme:   ThemeSports,
			Setting: "football training",
			Characters: []string{"Coach Dani", "Jamal", "Rosie"},
			Items: []Item{
				{Name: "football", UnitPrice: 8.99, Unit: "each"},
				{Name: "cone", UnitPrice: 1.25, Unit: "each"},
				{Name: "bib", UnitPrice: 3.50, Unit: "each"},
			},
			CulturalElements:    []string{"Saturday league"},
			Templates:           allFormatTemplates("At {setting}, {character} keeps the score sheet. {body}"),
			YearAppropriate:     []int{2, 3, 4, 5, 6},
			RealWorldConnection: "keeping scores and kit counts for a team",
			Locale:              "en-GB",
		},
		{
			ID:      "swimming-gala",
			Theme:   ThemeSports,
			Setting: "the swimming gala",
			Characters: []string{"Noor", "Charlie", "Isla"},
			Templates:       allFormatTemplates("{character} is timing races at {setting}. {body}"),
			YearAppropriate: []int{4, 5, 6},
			Locale:          "en-GB",
		},
		{
			ID:      "classroom-supplies",
			Theme:   ThemeSchool,
			Setting: "the classroom",
			Characters: []string{"Mr. Patel", "Eve", "Kofi"},
			Items: []Item{
				{Name: "pencil", UnitPrice: 0.30, Unit: "each"},
				{Name: "exercise book", UnitPrice: 1.15, Unit: "each"},
				{Name: "glue stick", UnitPrice: 0.95, Unit: "each"},
			},
			Templates:           allFormatTemplates("{character} is tidying {setting} and counting supplies. {body}"),
			YearAppropriate:     []int{1, 2, 3, 4},
			RealWorldConnection: "counting and sharing classroom equipment",
			Locale:              "en-GB",
		},
		{
			ID:      "school-library",
			Theme:   ThemeSchool,
			Setting: "the school library",
			Characters: []string{"Ms. Reed", "Hugo", "Lily"},
			Templates:       allFormatTemplates("In {setting}, {character} is sorting the shelves. {body}"),
			YearAppropriate: []int{1, 2, 3, 4, 5, 6},
			Locale:          "en-GB",
		},
		{
			ID:      "garden-wildlife",
			Theme:   ThemeNature,
			Setting: "the school garden",
			Characters: []string{"Fern", "Arun", "Maya"},
			CulturalElements: []string{"bird watch week"},
			Templates:       allFormatTemplates("{character} is recording wildlife in {setting}. {body}"),
			YearAppropriate: []int{1, 2, 3},
			Locale:          "en-GB",
		},
		{
			ID:      "forest-walk",
			Theme:   ThemeNature,
			Setting: "the forest trail",
			Characters: []string{"Ranger Ali", "Poppy", "Ben"},
			Templates:           allFormatTemplates("On a walk along {setting}, {character} spots a pattern. {body}"),
			YearAppropriate:     []int{3, 4, 5, 6},
			RealWorldConnection: "measuring and counting on a nature walk",
			Locale:              "en-GB",
		},
		{
			ID:      "train-journey",
			Theme:   ThemeTravel,
			Setting: "the railway station",
			Characters: []string{"Yusuf", "Clara", "Finn"},
			Items: []Item{
				{Name: "child ticket", UnitPrice: 4.50, Unit: "each"},
				{Name: "snack box", UnitPrice: 3.25, Unit: "each"},
			},
			Templates:           allFormatTemplates("{character} is planning a trip from {setting}. {body}"),
			YearAppropriate:     []int{4, 5, 6},
			RealWorldConnection: "reading timetables and ticket prices",
			Locale:              "en-GB",
		},
		{
			ID:      "seaside-trip",
			Theme:   ThemeTravel,
			Setting: "the seaside",
			Characters: []string{"Gran", "Ava", "Theo"},
			Items: []Item{
				{Name: "ice cream", UnitPrice: 1.80, Unit: "each"},
				{Name: "bucket and spade", UnitPrice: 3.99, Unit: "each"},
			},
			Templates:       allFormatTemplates("On a day out at {setting}, {character} counts their change. {body}"),
			YearAppropriate: []int{1, 2, 3, 4},
			Locale:          "en-GB",
		},
	}
}

// GenericContext is the last-resort fallback when neither the catalog
// nor a procedural generator can serve a request.
func GenericContext() Context {
	return Context{
		ID:              "generic",
		Theme:           ThemeGeneric,
		Setting:         "maths practice",
		Characters:      []string{"Alex", "Jo"},
		Templates:       allFormatTemplates("{character} is practising maths. {body}"),
		YearAppropriate: []int{1, 2, 3, 4, 5, 6},
		Locale:          "en-GB",
	}
}
