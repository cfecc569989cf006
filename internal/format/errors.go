package format

import "fmt"

// ValidationError reports invalid strategy input, e.g. an out-of-range
// difficulty level. Never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UnsupportedCombinationError reports a model/format pairing the engine
// does not implement. Reason is machine-readable so the HTTP layer can
// pick a distinct status.
type UnsupportedCombinationError struct {
	ModelID string
	Format  string
	Reason  string
}

func (e *UnsupportedCombinationError) Error() string {
	if e.ModelID == "" {
		return fmt.Sprintf("unsupported format %q: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("unsupported combination model=%s format=%s: %s", e.ModelID, e.Format, e.Reason)
}
