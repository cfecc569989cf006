package scenario

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// syntheticCatalog builds n interchangeable contexts for one year.
func syntheticCatalog(n, year int) []Context {
	var out []Context
	for i := 0; i < n; i++ {
		out = append(out, Context{
			ID:              fmt.Sprintf("ctx-%02d", i),
			Theme:           ThemeSchool,
			Setting:         "the classroom",
			Characters:      []string{"Alex"},
			Templates:       allFormatTemplates("{character} at {setting}. {body}"),
			YearAppropriate: []int{year},
			Locale:          "en-GB",
		})
	}
	return out
}

func TestSelect_FiltersByFormatAndYear(t *testing.T) {
	s := NewSelector(nil, testRNG())
	ctx := s.Select(Criteria{Format: curriculum.FormatDirectCalculation, Year: 2})
	if !ctx.SuitsYear(2) && ctx.Theme != ThemeGeneric {
		t.Errorf("selected context %q does not suit year 2", ctx.ID)
	}
	if !ctx.SupportsFormat(curriculum.FormatDirectCalculation) {
		t.Errorf("selected context %q has no direct-calculation template", ctx.ID)
	}
}

func TestSelect_ThemeMatchPreferred(t *testing.T) {
	s := NewSelector(nil, testRNG())
	for i := 0; i < 10; i++ {
		s.ResetMemory()
		ctx := s.Select(Criteria{
			Format: curriculum.FormatDirectCalculation,
			Year:   3,
			Theme:  ThemeShopping,
		})
		if ctx.Theme != ThemeShopping {
			t.Errorf("requested SHOPPING, got theme %s (context %s)", ctx.Theme, ctx.ID)
		}
	}
}

func TestSelect_ProceduralFallbackForUnmatchedTheme(t *testing.T) {
	// Nature theme at year 5 has no catalog entry covering shopping
	// formats at that year in the synthetic catalog, so force the
	// fallback with an empty catalog.
	s := NewSelector([]Context{}, testRNG())
	ctx := s.Select(Criteria{Format: curriculum.FormatComparison, Year: 4, Theme: ThemeSports})
	if ctx.Theme != ThemeSports {
		t.Errorf("expected procedurally generated SPORTS context, got %s", ctx.Theme)
	}
	if ctx.ID == "" {
		t.Error("generated context has empty id")
	}
}

func TestSelect_GenericFallbackForUnknownTheme(t *testing.T) {
	s := NewSelector([]Context{}, testRNG())
	ctx := s.Select(Criteria{Format: curriculum.FormatValidation, Year: 2, Theme: ThemeTravel})
	if ctx.Theme != ThemeGeneric {
		t.Errorf("expected generic fallback, got theme %s", ctx.Theme)
	}
}

func TestSelect_NoRepeatWithinMemoryWindow(t *testing.T) {
	catalog := syntheticCatalog(DefaultRecentCapacity+5, 3)
	s := NewSelector(catalog, testRNG())

	seen := make(map[string]int)
	for i := 0; i < DefaultRecentCapacity; i++ {
		ctx := s.Select(Criteria{Format: curriculum.FormatDirectCalculation, Year: 3})
		seen[ctx.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("context %s selected %d times within the memory window", id, n)
		}
	}
}

func TestSelect_VarietyAcrossCalls(t *testing.T) {
	catalog := syntheticCatalog(10, 3)
	s := NewSelector(catalog, testRNG())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		ctx := s.Select(Criteria{Format: curriculum.FormatDirectCalculation, Year: 3})
		seen[ctx.ID] = true
	}
	if len(seen) < 3 {
		t.Errorf("only %d distinct contexts over 10 selections", len(seen))
	}
}

func TestRecentMemory_FIFOEviction(t *testing.T) {
	m := newRecentMemory(3)
	m.add("a")
	m.add("b")
	m.add("c")
	m.add("d") // evicts a
	if m.contains("a") {
		t.Error("a should have been evicted")
	}
	for _, id := range []string{"b", "c", "d"} {
		if !m.contains(id) {
			t.Errorf("%s should still be present", id)
		}
	}
}

func TestCatalog_YearAppropriateNonEmpty(t *testing.T) {
	for _, ctx := range DefaultCatalog() {
		if len(ctx.YearAppropriate) == 0 {
			t.Errorf("context %s has empty yearAppropriate set", ctx.ID)
		}
		if len(ctx.Templates) == 0 {
			t.Errorf("context %s has no templates", ctx.ID)
		}
		if len(ctx.Characters) == 0 {
			t.Errorf("context %s has no characters", ctx.ID)
		}
	}
}
