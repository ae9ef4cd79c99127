package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedValuesSet(t *testing.T) {
	tests := []struct {
		path   string
		value  any
		errMsg string
	}{
		{"careerProfile.hireDate", "1995-01-03", ""},
		{"careerProfile.birthDate", 1.0, "expects a string"},
		{"careerProfile.age", "57", "unknown field path"},
		{"annuityCalculation.high3Salary", 98000.0, ""},
		{"annuityCalculation.high3Salary", "98000", "expects a number"},
		{"tspProjection.assumedGrowthRate", 0.06, ""},
		{"fersSupplement.eligible", true, ""},
		{"fersSupplement.eligible", 1.0, "expects a bool"},
		{"fersSupplement.annualAmount", 17403.0, ""},
		{"projectionYears.year10.surplus", -512.25, ""},
		{"projectionYears.year40.annuity", 1.0, "unknown field path"},
		{"projectionYears.year10.bonus", 1.0, "unknown field path"},
		{"projectionYears.yaer10.surplus", 1.0, "unknown field path"},
		{"annuityCalculation", 1.0, "unknown field path"},
		{"a.b.c.d", 1.0, "unknown field path"},
	}

	for _, tt := range tests {
		ev := NewExpectedValues(DefaultProjectionYears...)
		err := ev.Set(tt.path, tt.value)
		if tt.errMsg != "" {
			require.Error(t, err, tt.path)
			assert.Contains(t, err.Error(), tt.errMsg, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)

		leaves, err := ev.Leaves()
		require.NoError(t, err)
		assert.Equal(t, tt.value, leaves[tt.path], tt.path)
	}
}

func TestLeafPaths(t *testing.T) {
	ev := NewExpectedValues("year1")
	assert.Equal(t, []string{
		"annuityCalculation.creditableServiceYears",
		"annuityCalculation.grossAnnuity",
		"annuityCalculation.high3Salary",
		"annuityCalculation.multiplier",
		"annuityCalculation.netAnnuity",
		"annuityCalculation.reductionFactor",
		"careerProfile.birthDate",
		"careerProfile.hireDate",
		"careerProfile.retirementDate",
		"fersSupplement.annualAmount",
		"fersSupplement.eligible",
		"fersSupplement.monthlyAmount",
		"projectionYears.year1.annuity",
		"projectionYears.year1.expenses",
		"projectionYears.year1.surplus",
		"projectionYears.year1.tspWithdrawal",
		"tspProjection.assumedGrowthRate",
		"tspProjection.currentBalance",
		"tspProjection.monthlyContribution",
		"tspProjection.projectedBalanceAtRetirement",
	}, ev.LeafPaths())
}

func TestFinalize(t *testing.T) {
	record := &ScenarioRecord{Status: StatusPending, ExpectedValues: NewExpectedValues("year1")}
	record.Finalize()
	assert.Equal(t, StatusPending, record.Status)

	for _, path := range record.ExpectedValues.LeafPaths() {
		var v any = 1.0
		switch path {
		case "careerProfile.hireDate", "careerProfile.retirementDate", "careerProfile.birthDate":
			v = "2000-01-01"
		case "fersSupplement.eligible":
			v = false
		}
		require.NoError(t, record.ExpectedValues.Set(path, v), path)
	}
	record.Finalize()
	assert.Equal(t, StatusComplete, record.Status)
	assert.True(t, record.ExpectedValues.IsComplete())
}

func TestScenarioRecordJSON(t *testing.T) {
	record := ScenarioRecord{
		Status:         StatusPending,
		Description:    "d",
		ExpectedValues: NewExpectedValues("year1"),
		Notes:          []string{"n"},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "pending",
		"description": "d",
		"expectedValues": {
			"careerProfile": {"hireDate": null, "retirementDate": null, "birthDate": null},
			"annuityCalculation": {"high3Salary": null, "creditableServiceYears": null, "multiplier": null,
				"grossAnnuity": null, "reductionFactor": null, "netAnnuity": null},
			"tspProjection": {"currentBalance": null, "projectedBalanceAtRetirement": null,
				"monthlyContribution": null, "assumedGrowthRate": null},
			"fersSupplement": {"eligible": null, "monthlyAmount": null, "annualAmount": null},
			"projectionYears": {"year1": {"annuity": null, "tspWithdrawal": null, "expenses": null, "surplus": null}}
		},
		"notes": ["n"]
	}`, string(data))
}

func TestDocumentPut(t *testing.T) {
	doc := NewDocument()
	doc.Scenarios["leo"] = json.RawMessage(`{"status":"complete"}`)

	record := &ScenarioRecord{Status: StatusPending, Notes: []string{"first"}}
	require.NoError(t, doc.Put("gs-straight-through", record))
	record.Notes = []string{"second"}
	require.NoError(t, doc.Put("gs-straight-through", record))

	got, ok, err := doc.Scenario("gs-straight-through")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"second"}, got.Notes)
	assert.JSONEq(t, `{"status":"complete"}`, string(doc.Scenarios["leo"]))

	_, ok, err = doc.Scenario("military-buyback")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetKeepsProjectionRows(t *testing.T) {
	ev := NewExpectedValues(DefaultProjectionYears...)
	require.Error(t, ev.Set("projectionYears.year40.annuity", 1.0))
	assert.Len(t, ev.ProjectionYears, len(DefaultProjectionYears))
}

func TestDocumentJSON(t *testing.T) {
	input := `{"zeta":[1],"schemaVersion":1,"extractionNotes":{"tolerances":{"years":"±0"},"method":"m"},"alpha":"<a&b>","scenarios":{"b":{"status":"pending"},"a":{"status":"complete"}}}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))
	assert.Equal(t, 1, doc.SchemaVersion)
	assert.Len(t, doc.Scenarios, 2)
	assert.Len(t, doc.Extra, 2)

	notes, err := doc.Notes()
	require.NoError(t, err)
	assert.Equal(t, "m", notes.Method)

	data, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"schemaVersion":1,"extractionNotes":{"tolerances":{"years":"±0"},"method":"m"},"scenarios":{"a":{"status":"complete"},"b":{"status":"pending"}},"alpha":"<a&b>","zeta":[1]}`, string(data))
}

func TestNewDocumentNotes(t *testing.T) {
	notes, err := NewDocument().Notes()
	require.NoError(t, err)
	assert.Equal(t, DefaultExtractionNotes(), notes)
}
