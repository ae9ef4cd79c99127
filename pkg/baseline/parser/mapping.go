package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Mapping binds expected-value fields of each scenario to workbook cells.
type Mapping struct {
	Scenarios map[string]ScenarioMapping `yaml:"scenarios"`
}

// ScenarioMapping lists the cell bindings of one scenario.
type ScenarioMapping struct {
	Fields []FieldMapping `yaml:"fields"`
}

// FieldMapping binds one dotted expected-value path to a cell.
type FieldMapping struct {
	// Path is the dotted field path, e.g. "annuityCalculation.high3Salary".
	Path string `yaml:"path"`
	// Ref is Sheet!A1, 'Sheet Name'!$A$1 or a defined name.
	Ref string `yaml:"ref"`
	// Type is one of currency, number, percentage, date, boolean.
	Type string `yaml:"type"`
}

// LoadMapping reads and validates a YAML mapping file.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMapping(data)
}

// ParseMapping decodes mapping YAML, rejecting unknown keys and value types.
func ParseMapping(data []byte) (*Mapping, error) {
	var m Mapping
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid mapping: %w", err)
	}

	for name, sm := range m.Scenarios {
		seen := make(map[string]bool, len(sm.Fields))
		for i, fm := range sm.Fields {
			if fm.Path == "" || fm.Ref == "" {
				return nil, fmt.Errorf("invalid mapping: scenario %q field %d needs both path and ref", name, i+1)
			}
			if _, err := ParseValueType(fm.Type); err != nil {
				return nil, fmt.Errorf("invalid mapping: scenario %q field %q: %w", name, fm.Path, err)
			}
			if seen[fm.Path] {
				return nil, fmt.Errorf("invalid mapping: scenario %q maps %q twice", name, fm.Path)
			}
			seen[fm.Path] = true
		}
	}
	return &m, nil
}

// For returns the bindings for a scenario, or nil when it has none.
func (m *Mapping) For(scenario string) []FieldMapping {
	if m == nil {
		return nil
	}
	return m.Scenarios[scenario].Fields
}

// Names returns the scenario names the mapping binds, sorted.
func (m *Mapping) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Scenarios))
	for name := range m.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
