package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	stub := func(*Workbook) (*models.ScenarioRecord, error) { return &models.ScenarioRecord{}, nil }

	require.NoError(t, r.Register("leo", stub))
	require.NoError(t, r.Register("military-buyback", stub))
	assert.ErrorContains(t, r.Register("leo", stub), "already registered")
	assert.ErrorContains(t, r.Register("", stub), "must not be empty")
	assert.ErrorContains(t, r.Register("roth", nil), "is nil")

	assert.Equal(t, []string{"leo", "military-buyback"}, r.Names())

	fn, err := r.Lookup("leo")
	require.NoError(t, err)
	assert.NotNil(t, fn)

	// Dispatch is an exact match.
	_, err = r.Lookup("LEO")
	require.ErrorIs(t, err, ErrUnknownScenario)
	assert.Equal(t, "unknown scenario 'LEO'", err.Error())
}

func TestDefaultRegistry(t *testing.T) {
	assert.Equal(t, []string{"gs-straight-through"}, DefaultRegistry().Names())
}

func TestExtractGSStraightThrough(t *testing.T) {
	record, err := ExtractGSStraightThrough(nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, record.Status)
	assert.Equal(t, "Full GS career, standard FERS retirement at age 57 with 30 years service", record.Description)
	assert.Equal(t, []string{
		"TODO: Identify which sheet contains the GS scenario data",
		"TODO: Map cell references for each value above",
		"TODO: Extract values and populate expectedValues",
		"Tolerances: currency ±$1.00, percentages ±0.001%",
	}, record.Notes)

	leaves, err := record.ExpectedValues.Leaves()
	require.NoError(t, err)
	assert.Len(t, leaves, 3+6+4+3+4*4)
	for path, v := range leaves {
		assert.Nil(t, v, path)
	}
}
