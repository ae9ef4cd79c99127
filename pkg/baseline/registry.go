package baseline

import (
	"fmt"
	"sort"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
)

// Scenario names a retirement-planning situation captured in the baseline.
type Scenario string

const (
	// ScenarioGSStraightThrough is a full General Schedule career retiring at the FERS MRA.
	ScenarioGSStraightThrough Scenario = "gs-straight-through"
)

// Extractor reads one scenario's expected values from a loaded workbook.
type Extractor func(wb *Workbook) (*models.ScenarioRecord, error)

// Registry stores extractors keyed by exact scenario name.
type Registry struct {
	extractors map[Scenario]Extractor
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[Scenario]Extractor),
	}
}

// DefaultRegistry returns a registry holding the built-in extractors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.Register(ScenarioGSStraightThrough, ExtractGSStraightThrough); err != nil {
		panic(err)
	}
	return r
}

// Register stores fn under name guarding against duplicates.
func (r *Registry) Register(name Scenario, fn Extractor) error {
	if fn == nil {
		return fmt.Errorf("extractor %q is nil", name)
	}
	if name == "" {
		return fmt.Errorf("scenario name must not be empty")
	}
	if _, exists := r.extractors[name]; exists {
		return fmt.Errorf("scenario %q already registered", name)
	}
	r.extractors[name] = fn
	return nil
}

// Lookup returns the extractor registered for name. Matching is exact.
func (r *Registry) Lookup(name string) (Extractor, error) {
	fn, ok := r.extractors[Scenario(name)]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownScenario, name)
	}
	return fn, nil
}

// Names returns registered scenario names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
