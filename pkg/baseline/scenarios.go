package baseline

import (
	"github.com/fedretire/extract-baseline/pkg/baseline/models"
)

// ExtractGSStraightThrough returns the GS straight-through record.
//
// The cell layout of this scenario has not been mapped yet, so no cells are
// read: every expected value is null and the record stays pending. Values
// can be bound to cells through a mapping file without changing this
// function.
func ExtractGSStraightThrough(_ *Workbook) (*models.ScenarioRecord, error) {
	return &models.ScenarioRecord{
		Status:         models.StatusPending,
		Description:    "Full GS career, standard FERS retirement at age 57 with 30 years service",
		ExpectedValues: models.NewExpectedValues(models.DefaultProjectionYears...),
		Notes: []string{
			"TODO: Identify which sheet contains the GS scenario data",
			"TODO: Map cell references for each value above",
			"TODO: Extract values and populate expectedValues",
			"Tolerances: currency ±$1.00, percentages ±0.001%",
		},
	}, nil
}
