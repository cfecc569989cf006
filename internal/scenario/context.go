// Package scenario holds the catalog of narrative contexts used to
// dress calculations as word problems, and the selector that picks one
// per request.
package scenario

import (
	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
)

// Theme groups contexts by narrative flavour.
type Theme string

const (
	ThemeShopping Theme = "SHOPPING"
	ThemeCooking  Theme = "COOKING"
	ThemeSports   Theme = "SPORTS"
	ThemeSchool   Theme = "SCHOOL"
	ThemeNature   Theme = "NATURE"
	ThemeTravel   Theme = "TRAVEL"
	ThemeGeneric  Theme = "GENERIC"
)

// ParseTheme maps a request string onto a Theme.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeShopping, ThemeCooking, ThemeSports, ThemeSchool,
		ThemeNature, ThemeTravel, ThemeGeneric:
		return Theme(s), true
	}
	return "", false
}

// Item is a priced object a context can put into a question.
type Item struct {
	Name      string
	UnitPrice float64
	Unit      string
}

// Template is one question-text template bound to a format. Placeholder
// names in braces are filled by the format strategies.
type Template struct {
	Format curriculum.Format
	Text   string
}

// Context is one narrative wrapper: where the question happens, who is
// in it, and what it is about.
type Context struct {
	ID               string
	Theme            Theme
	Setting          string
	Characters       []string
	Items            []Item
	CulturalElements []string
	Templates        []Template

	// YearAppropriate lists the curriculum years the context suits.
	// Always non-empty.
	YearAppropriate []int

	// RealWorldConnection notes the everyday experience the context
	// draws on. Contexts carrying one score higher during selection.
	RealWorldConnection string

	// Locale tags the currency/measurement conventions of the context.
	Locale string
}

// SupportsFormat reports whether the context has at least one template
// for the format.
func (c *Context) SupportsFormat(f curriculum.Format) bool {
	for _, t := range c.Templates {
		if t.Format == f {
			return true
		}
	}
	return false
}

// TemplateFor returns a template for the format, preferring the first
// declared. The ok result is false when none exists.
func (c *Context) TemplateFor(f curriculum.Format) (Template, bool) {
	for _, t := range c.Templates {
		if t.Format == f {
			return t, true
		}
	}
	return Template{}, false
}

// SuitsYear reports whether the context is appropriate for a year.
func (c *Context) SuitsYear(year int) bool {
	for _, y := range c.YearAppropriate {
		if y == year {
			return true
		}
	}
	return false
}

// yearDistance is how far the context is from a target year: 0 when
// the year is listed, otherwise the gap to the nearest listed year.
func (c *Context) yearDistance(year int) int {
	best := -1
	for _, y := range c.YearAppropriate {
		d := y - year
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return curriculum.MaxYear
	}
	return best
}
