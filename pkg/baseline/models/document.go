package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SchemaVersion is the baseline document layout version.
const SchemaVersion = 1

// DefaultMethod describes how the values were captured.
const DefaultMethod = "extract-baseline CLI (see cmd/extract-baseline)"

// Document is the top-level persisted baseline file.
//
// Only Scenarios is edited by a run. ExtractionNotes and any unrecognised
// top-level member are carried as raw JSON so a rewrite reproduces them.
type Document struct {
	// SchemaVersion is always SchemaVersion.
	SchemaVersion int
	// ExtractionNotes carries static metadata about the extraction.
	ExtractionNotes json.RawMessage
	// Scenarios maps scenario name to its record. Entries are kept as raw
	// JSON so records written by other runs are preserved verbatim.
	Scenarios map[string]json.RawMessage
	// Extra holds top-level members this package does not know about.
	Extra map[string]json.RawMessage
}

const (
	keySchemaVersion   = "schemaVersion"
	keyExtractionNotes = "extractionNotes"
	keyScenarios       = "scenarios"
)

// UnmarshalJSON decodes the known members and keeps the rest in Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}

	*d = Document{}
	if raw, ok := members[keySchemaVersion]; ok {
		if err := json.Unmarshal(raw, &d.SchemaVersion); err != nil {
			return fmt.Errorf("%s: %w", keySchemaVersion, err)
		}
		delete(members, keySchemaVersion)
	}
	if raw, ok := members[keyExtractionNotes]; ok {
		d.ExtractionNotes = raw
		delete(members, keyExtractionNotes)
	}
	if raw, ok := members[keyScenarios]; ok {
		if err := json.Unmarshal(raw, &d.Scenarios); err != nil {
			return fmt.Errorf("%s: %w", keyScenarios, err)
		}
		delete(members, keyScenarios)
	}
	if len(members) > 0 {
		d.Extra = members
	}
	return nil
}

// MarshalJSON writes schemaVersion, extractionNotes and scenarios first,
// then Extra members; map members are sorted by key. Raw members are
// written as stored, without HTML escaping.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	version, err := json.Marshal(d.SchemaVersion)
	if err != nil {
		return nil, err
	}
	writeMember(&buf, keySchemaVersion, version, true)

	notes := d.ExtractionNotes
	if len(notes) == 0 {
		if notes, err = json.Marshal(DefaultExtractionNotes()); err != nil {
			return nil, err
		}
	}
	writeMember(&buf, keyExtractionNotes, notes, false)

	buf.WriteString(",")
	buf.WriteString(quote(keyScenarios))
	buf.WriteString(":")
	writeObject(&buf, d.Scenarios)

	for _, key := range sortedKeys(d.Extra) {
		writeMember(&buf, key, d.Extra[key], false)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeObject(buf *bytes.Buffer, members map[string]json.RawMessage) {
	buf.WriteByte('{')
	for i, key := range sortedKeys(members) {
		writeMember(buf, key, members[key], i == 0)
	}
	buf.WriteByte('}')
}

func writeMember(buf *bytes.Buffer, key string, value []byte, first bool) {
	if !first {
		buf.WriteByte(',')
	}
	buf.WriteString(quote(key))
	buf.WriteByte(':')
	buf.Write(value)
}

// quote renders s as a JSON string without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Notes decodes the typed view of ExtractionNotes. Members outside that
// view stay in the raw ExtractionNotes.
func (d *Document) Notes() (ExtractionNotes, error) {
	var notes ExtractionNotes
	if len(d.ExtractionNotes) == 0 {
		return notes, nil
	}
	err := json.Unmarshal(d.ExtractionNotes, &notes)
	return notes, err
}

// ExtractionNotes describes the extraction method and comparison tolerances.
type ExtractionNotes struct {
	Method     string     `json:"method"`
	Tolerances Tolerances `json:"tolerances"`
}

// Tolerances are the allowed deviations used by the parity tests.
type Tolerances struct {
	CurrencyAnnual  string `json:"currency_annual"`
	CurrencyMonthly string `json:"currency_monthly"`
	Percentages     string `json:"percentages"`
	Dates           string `json:"dates"`
}

// DefaultTolerances returns the fixed tolerance block.
func DefaultTolerances() Tolerances {
	return Tolerances{
		CurrencyAnnual:  "±$1.00",
		CurrencyMonthly: "±$0.10",
		Percentages:     "±0.001%",
		Dates:           "exact",
	}
}

// DefaultExtractionNotes returns the metadata written into a new baseline.
func DefaultExtractionNotes() ExtractionNotes {
	return ExtractionNotes{
		Method:     DefaultMethod,
		Tolerances: DefaultTolerances(),
	}
}

// NewDocument returns an empty baseline with the default metadata.
func NewDocument() *Document {
	notes, _ := json.Marshal(DefaultExtractionNotes())
	return &Document{
		SchemaVersion:   SchemaVersion,
		ExtractionNotes: notes,
		Scenarios:       make(map[string]json.RawMessage),
	}
}

// Put inserts or replaces the record stored under name.
func (d *Document) Put(name string, record *ScenarioRecord) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return err
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if d.Scenarios == nil {
		d.Scenarios = make(map[string]json.RawMessage)
	}
	d.Scenarios[name] = data
	return nil
}

// Scenario decodes the record stored under name.
func (d *Document) Scenario(name string) (*ScenarioRecord, bool, error) {
	raw, ok := d.Scenarios[name]
	if !ok {
		return nil, false, nil
	}
	var rec ScenarioRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, true, err
	}
	return &rec, true, nil
}
