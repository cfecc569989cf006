package curriculum

import (
	"fmt"
	"strconv"
	"strings"
)

// MinYear and MaxYear bound the curriculum years covered by the engine.
const (
	MinYear = 1
	MaxYear = 6
)

// MinSubLevel and MaxSubLevel bound the difficulty gradations within a year.
const (
	MinSubLevel = 1
	MaxSubLevel = 4
)

// Level identifies a position in the two-dimensional difficulty grid:
// a curriculum year (1-6) and a sub-level within that year (1-4).
// The display form is "year.subLevel", e.g. "3.2".
type Level struct {
	Year     int
	SubLevel int
}

// Valid reports whether the level lies within the grid bounds.
func (l Level) Valid() bool {
	return l.Year >= MinYear && l.Year <= MaxYear &&
		l.SubLevel >= MinSubLevel && l.SubLevel <= MaxSubLevel
}

// String returns the canonical "year.subLevel" form.
func (l Level) String() string {
	return fmt.Sprintf("%d.%d", l.Year, l.SubLevel)
}

// ParseLevel parses a "year.subLevel" string into a Level.
// Rejects anything outside years 1-6 and sub-levels 1-4.
func ParseLevel(s string) (Level, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 {
		return Level{}, fmt.Errorf("invalid level %q: want \"year.subLevel\"", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Level{}, fmt.Errorf("invalid level %q: bad year: %w", s, err)
	}
	sub, err := strconv.Atoi(parts[1])
	if err != nil {
		return Level{}, fmt.Errorf("invalid level %q: bad sub-level: %w", s, err)
	}
	l := Level{Year: year, SubLevel: sub}
	if !l.Valid() {
		return Level{}, fmt.Errorf("level %q out of range: year 1-6, sub-level 1-4", s)
	}
	return l, nil
}

// ForYear returns the level a bare year maps to. A year on its own
// lands mid-progression, at sub-level 2.
func ForYear(year int) (Level, error) {
	l := Level{Year: year, SubLevel: 2}
	if !l.Valid() {
		return Level{}, fmt.Errorf("year %d out of range: want 1-6", year)
	}
	return l, nil
}

// Next returns the adjacent level in the progression. Advancing moves
// toward 6.4, otherwise toward 1.1. Saturates at either end rather
// than wrapping.
func (l Level) Next(advancing bool) Level {
	if advancing {
		if l.SubLevel < MaxSubLevel {
			return Level{Year: l.Year, SubLevel: l.SubLevel + 1}
		}
		if l.Year < MaxYear {
			return Level{Year: l.Year + 1, SubLevel: MinSubLevel}
		}
		return l
	}
	if l.SubLevel > MinSubLevel {
		return Level{Year: l.Year, SubLevel: l.SubLevel - 1}
	}
	if l.Year > MinYear {
		return Level{Year: l.Year - 1, SubLevel: MaxSubLevel}
	}
	return l
}

// AllLevels returns every (year, subLevel) pair in progression order.
// The grid always has 24 entries.
func AllLevels() []Level {
	levels := make([]Level, 0, (MaxYear-MinYear+1)*(MaxSubLevel-MinSubLevel+1))
	for y := MinYear; y <= MaxYear; y++ {
		for s := MinSubLevel; s <= MaxSubLevel; s++ {
			levels = append(levels, Level{Year: y, SubLevel: s})
		}
	}
	return levels
}
