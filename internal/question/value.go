package question

import (
	"fmt"
	"math"
	"strconv"
)

// FormatValue renders a numeric answer with the given display
// precision. Whole numbers drop the decimal part when places is zero.
func FormatValue(v float64, places int) string {
	if places <= 0 {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}

// DisplayValue renders a value the way the student sees it: with a
// currency symbol when set, otherwise with a trailing unit when set.
func DisplayValue(v float64, places int, currency, units string) string {
	s := FormatValue(v, places)
	if currency != "" {
		return currency + s
	}
	if units != "" {
		return fmt.Sprintf("%s %s", s, units)
	}
	return s
}
