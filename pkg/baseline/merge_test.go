package baseline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
)

func pendingRecord(t *testing.T) *models.ScenarioRecord {
	t.Helper()
	record, err := ExtractGSStraightThrough(nil)
	require.NoError(t, err)
	return record
}

func TestMergeCreatesDefaultDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures", "baseline.json")

	require.NoError(t, Merge(path, "gs-straight-through", pendingRecord(t)))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(readFile(t, path), &doc))
	assert.EqualValues(t, 1, doc["schemaVersion"])
	notes := doc["extractionNotes"].(map[string]any)
	assert.Equal(t, map[string]any{
		"currency_annual":  "±$1.00",
		"currency_monthly": "±$0.10",
		"percentages":      "±0.001%",
		"dates":            "exact",
	}, notes["tolerances"])
	assert.Contains(t, doc["scenarios"], "gs-straight-through")
}

func TestMergePreservesSiblings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")

	doc := models.NewDocument()
	doc.Scenarios["leo"] = json.RawMessage(`{"status":"complete","description":"LEO","expectedValues":{"careerProfile":{"hireDate":"1999-01-04","extra":[1,2]}},"notes":[],"owner":"qa"}`)
	doc.Scenarios["gs-straight-through"] = json.RawMessage(`{"status":"complete","expectedValues":{}}`)
	require.NoError(t, SaveDocument(path, doc))

	before, err := LoadDocument(path)
	require.NoError(t, err)

	record := pendingRecord(t)
	require.NoError(t, Merge(path, "gs-straight-through", record))

	after, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, string(before.Scenarios["leo"]), string(after.Scenarios["leo"]))

	got, ok, err := after.Scenario("gs-straight-through")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, record, got)
}

func TestMergeKeepsUnknownMembers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, doc map[string]any)
	}{
		{
			name: "extra top-level, notes and tolerance keys",
			content: `{
  "schemaVersion": 1,
  "generatedBy": "qa",
  "extractionNotes": {
    "method": "manual",
    "spreadsheetSha": "3f2a",
    "tolerances": {"dates": "exact", "years": "±0"}
  },
  "scenarios": {}
}`,
			check: func(t *testing.T, doc map[string]any) {
				assert.Equal(t, "qa", doc["generatedBy"])
				notes := doc["extractionNotes"].(map[string]any)
				assert.Equal(t, "manual", notes["method"])
				assert.Equal(t, "3f2a", notes["spreadsheetSha"])
				assert.Equal(t, map[string]any{"dates": "exact", "years": "±0"}, notes["tolerances"])
			},
		},
		{
			name:    "empty notes stay empty",
			content: `{"schemaVersion": 1, "extractionNotes": {}, "scenarios": {}}`,
			check: func(t *testing.T, doc map[string]any) {
				assert.Equal(t, map[string]any{}, doc["extractionNotes"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "baseline.json")
			writeFile(t, path, tt.content)

			require.NoError(t, Merge(path, "gs-straight-through", pendingRecord(t)))

			var doc map[string]any
			require.NoError(t, json.Unmarshal(readFile(t, path), &doc))
			tt.check(t, doc)
			assert.Contains(t, doc["scenarios"], "gs-straight-through")

			// A second merge leaves the file as it is.
			first := readFile(t, path)
			require.NoError(t, Merge(path, "gs-straight-through", pendingRecord(t)))
			assert.Equal(t, string(first), string(readFile(t, path)))
		})
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")

	require.NoError(t, Merge(path, "gs-straight-through", pendingRecord(t)))
	first := readFile(t, path)
	require.NoError(t, Merge(path, "gs-straight-through", pendingRecord(t)))
	assert.Equal(t, string(first), string(readFile(t, path)))
}

func TestMergeRejectsInvalidBaseline(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{"},
		{"missing scenarios", `{"schemaVersion": 1, "extractionNotes": {}}`},
		{"bad status", `{"schemaVersion": 1, "extractionNotes": {}, "scenarios": {"leo": {"status": "done", "expectedValues": {}}}}`},
		{"notes not strings", `{"schemaVersion": 1, "extractionNotes": {}, "scenarios": {"leo": {"status": "pending", "expectedValues": {}, "notes": [1]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "baseline.json")
			writeFile(t, path, tt.content)

			err := Merge(path, "gs-straight-through", pendingRecord(t))
			require.ErrorIs(t, err, ErrInvalidBaseline)
			assert.Equal(t, tt.content, string(readFile(t, path)))
		})
	}
}

func TestSaveDocumentFormatting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, SaveDocument(path, models.NewDocument()))

	want := `{
  "schemaVersion": 1,
  "extractionNotes": {
    "method": "extract-baseline CLI (see cmd/extract-baseline)",
    "tolerances": {
      "currency_annual": "±$1.00",
      "currency_monthly": "±$0.10",
      "percentages": "±0.001%",
      "dates": "exact"
    }
  },
  "scenarios": {}
}
`
	assert.Equal(t, want, string(readFile(t, path)))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}
