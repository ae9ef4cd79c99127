// Package baseline extracts reference values from a retirement-planning
// workbook and merges them into a JSON baseline used by parity tests.
package baseline

// Default option values.
const (
	DefaultScenario    = string(ScenarioGSStraightThrough)
	DefaultOutput      = "app/tests/scenarios/fixtures/baseline.json"
	DefaultSpreadsheet = "Retire-original.xlsx"
)

// Options configures a single extraction run.
type Options struct {
	// Scenario selects the extractor by exact name.
	Scenario string `mapstructure:"scenario"`
	// Output is the baseline JSON file to merge into.
	Output string `mapstructure:"output"`
	// Spreadsheet is the source workbook.
	Spreadsheet string `mapstructure:"spreadsheet"`
	// Mapping is an optional YAML file binding expected values to cells.
	// Empty leaves extractor output untouched.
	Mapping string `mapstructure:"mapping"`
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Scenario:    DefaultScenario,
		Output:      DefaultOutput,
		Spreadsheet: DefaultSpreadsheet,
	}
}
