package mathmodel

import (
	"fmt"
	"math/rand"
	"sort"
)

// Model is one pluggable calculation unit. Implementations are pure:
// output depends only on the parameters and the supplied random source.
type Model interface {
	// ID returns the operation this model implements.
	ID() Operation

	// Generate produces one calculation under the given parameters.
	Generate(p Params, rng *rand.Rand) (*Output, error)

	// DefaultParams returns sensible parameters for a curriculum year,
	// used when a caller supplies a year without a full level.
	DefaultParams(year int) Params
}

// ErrUnknownModel reports a model id with no registered implementation.
type ErrUnknownModel struct {
	ID string
}

func (e *ErrUnknownModel) Error() string {
	return fmt.Sprintf("unknown math model %q", e.ID)
}

// Registry holds the catalog of math models.
type Registry struct {
	models map[Operation]Model
}

// NewRegistry returns a Registry with every built-in model registered.
func NewRegistry() *Registry {
	r := &Registry{models: make(map[Operation]Model)}
	r.Register(&additionModel{})
	r.Register(&subtractionModel{})
	r.Register(&multiplicationModel{})
	r.Register(&divisionModel{})
	r.Register(&percentageModel{})
	r.Register(&unitRateModel{})
	return r
}

// Register adds a model, replacing any existing model with the same id.
func (r *Registry) Register(m Model) {
	r.models[m.ID()] = m
}

// Get returns the model for an id, or *ErrUnknownModel.
func (r *Registry) Get(id Operation) (Model, error) {
	m, ok := r.models[id]
	if !ok {
		return nil, &ErrUnknownModel{ID: string(id)}
	}
	return m, nil
}

// IDs returns all registered model ids in sorted order.
func (r *Registry) IDs() []Operation {
	ids := make([]Operation, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// randBetween draws an integer in [lo, hi] inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	if v >= 0 {
		return float64(int64(v*scale+0.5)) / scale
	}
	return -float64(int64(-v*scale+0.5)) / scale
}
