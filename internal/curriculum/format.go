package curriculum

// Format is the cognitive task type a question asks of the student.
type Format string

const (
	// FormatDirectCalculation asks for the numeric result of a calculation
	// presented in a narrative wrapper.
	FormatDirectCalculation Format = "DIRECT_CALCULATION"

	// FormatComparison asks which of two or more options wins under a
	// stated metric (cheaper per unit, larger value).
	FormatComparison Format = "COMPARISON"

	// FormatValidation presents a claimed calculation and asks whether it
	// is correct, or where the error is.
	FormatValidation Format = "VALIDATION"

	// FormatPatternRecognition presents a sequence with hidden terms and
	// asks for the missing value(s).
	FormatPatternRecognition Format = "PATTERN_RECOGNITION"
)

// AllFormats returns the supported formats in display order.
func AllFormats() []Format {
	return []Format{
		FormatDirectCalculation,
		FormatComparison,
		FormatValidation,
		FormatPatternRecognition,
	}
}

// ParseFormat maps a request string onto a Format.
func ParseFormat(s string) (Format, bool) {
	for _, f := range AllFormats() {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// DisplayName returns a human-readable name for a format.
func (f Format) DisplayName() string {
	switch f {
	case FormatDirectCalculation:
		return "Direct Calculation"
	case FormatComparison:
		return "Comparison"
	case FormatValidation:
		return "Validation"
	case FormatPatternRecognition:
		return "Pattern Recognition"
	default:
		return string(f)
	}
}
