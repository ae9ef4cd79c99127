// Package models defines the data structures persisted in a baseline file.
package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Status is the completion state of a scenario record.
type Status string

const (
	// StatusPending marks a record with at least one unmapped value.
	StatusPending Status = "pending"
	// StatusComplete marks a record whose expected values are all populated.
	StatusComplete Status = "complete"
)

// ScenarioRecord is one named extraction result.
type ScenarioRecord struct {
	// Status is "pending" until every expected value is populated.
	Status Status `json:"status"`
	// Description is a short human-readable summary of the scenario.
	Description string `json:"description"`
	// ExpectedValues holds the reference values read from the workbook.
	ExpectedValues ExpectedValues `json:"expectedValues"`
	// Notes lists free-text remarks in order.
	Notes []string `json:"notes"`
}

// ExpectedValues groups the reference values by calculator section.
type ExpectedValues struct {
	CareerProfile      CareerProfile             `json:"careerProfile"`
	AnnuityCalculation AnnuityCalculation        `json:"annuityCalculation"`
	TSPProjection      TSPProjection             `json:"tspProjection"`
	FERSSupplement     FERSSupplement            `json:"fersSupplement"`
	ProjectionYears    map[string]ProjectionYear `json:"projectionYears"`
}

// CareerProfile holds ISO-8601 dates (YYYY-MM-DD).
type CareerProfile struct {
	HireDate       *string `json:"hireDate"`
	RetirementDate *string `json:"retirementDate"`
	BirthDate      *string `json:"birthDate"`
}

// AnnuityCalculation holds the FERS basic annuity inputs and results.
type AnnuityCalculation struct {
	High3Salary            *float64 `json:"high3Salary"`
	CreditableServiceYears *float64 `json:"creditableServiceYears"`
	Multiplier             *float64 `json:"multiplier"`
	GrossAnnuity           *float64 `json:"grossAnnuity"`
	ReductionFactor        *float64 `json:"reductionFactor"`
	NetAnnuity             *float64 `json:"netAnnuity"`
}

// TSPProjection holds Thrift Savings Plan values.
type TSPProjection struct {
	CurrentBalance               *float64 `json:"currentBalance"`
	ProjectedBalanceAtRetirement *float64 `json:"projectedBalanceAtRetirement"`
	MonthlyContribution          *float64 `json:"monthlyContribution"`
	AssumedGrowthRate            *float64 `json:"assumedGrowthRate"`
}

// FERSSupplement holds the special retirement supplement values.
type FERSSupplement struct {
	Eligible      *bool    `json:"eligible"`
	MonthlyAmount *float64 `json:"monthlyAmount"`
	AnnualAmount  *float64 `json:"annualAmount"`
}

// ProjectionYear holds the cash-flow row for one projected year.
type ProjectionYear struct {
	Annuity       *float64 `json:"annuity"`
	TSPWithdrawal *float64 `json:"tspWithdrawal"`
	Expenses      *float64 `json:"expenses"`
	Surplus       *float64 `json:"surplus"`
}

// DefaultProjectionYears lists the year labels sampled from the projection table.
var DefaultProjectionYears = []string{"year1", "year10", "year20", "year30"}

// NewExpectedValues returns expected values with every leaf null and the
// given projection year labels present.
func NewExpectedValues(years ...string) ExpectedValues {
	ev := ExpectedValues{ProjectionYears: make(map[string]ProjectionYear, len(years))}
	for _, y := range years {
		ev.ProjectionYears[y] = ProjectionYear{}
	}
	return ev
}

// Leaves flattens the expected values into dotted paths
// (e.g. "annuityCalculation.high3Salary") mapped to their JSON values.
// Null leaves map to nil.
func (ev ExpectedValues) Leaves() (map[string]any, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	leaves := make(map[string]any)
	flatten("", tree, leaves)
	return leaves, nil
}

func flatten(prefix string, node map[string]any, out map[string]any) {
	for k, v := range node {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flatten(path, child, out)
			continue
		}
		out[path] = v
	}
}

// LeafPaths returns the sorted dotted paths of every leaf.
func (ev ExpectedValues) LeafPaths() []string {
	leaves, err := ev.Leaves()
	if err != nil {
		return nil
	}
	paths := make([]string, 0, len(leaves))
	for p := range leaves {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// IsComplete reports whether every leaf holds a value.
func (ev ExpectedValues) IsComplete() bool {
	leaves, err := ev.Leaves()
	if err != nil || len(leaves) == 0 {
		return false
	}
	for _, v := range leaves {
		if v == nil {
			return false
		}
	}
	return true
}

// Set assigns one leaf addressed by a dotted path. v must be a string for
// career dates, a bool for fersSupplement.eligible and a float64 otherwise.
// Projection rows must already exist; Set never adds a year label.
func (ev *ExpectedValues) Set(path string, v any) error {
	parts := strings.Split(path, ".")
	if len(parts) == 3 && parts[0] == "projectionYears" {
		return ev.setProjection(parts[1], parts[2], v)
	}
	if len(parts) != 2 {
		return fmt.Errorf("unknown field path %q", path)
	}

	switch parts[0] {
	case "careerProfile":
		s, ok := v.(string)
		if !ok {
			return typeMismatch(path, "string", v)
		}
		switch parts[1] {
		case "hireDate":
			ev.CareerProfile.HireDate = &s
		case "retirementDate":
			ev.CareerProfile.RetirementDate = &s
		case "birthDate":
			ev.CareerProfile.BirthDate = &s
		default:
			return fmt.Errorf("unknown field path %q", path)
		}
		return nil
	case "fersSupplement":
		if parts[1] == "eligible" {
			b, ok := v.(bool)
			if !ok {
				return typeMismatch(path, "bool", v)
			}
			ev.FERSSupplement.Eligible = &b
			return nil
		}
	}

	target := ev.numberField(parts[0], parts[1])
	if target == nil {
		return fmt.Errorf("unknown field path %q", path)
	}
	f, ok := v.(float64)
	if !ok {
		return typeMismatch(path, "number", v)
	}
	*target = &f
	return nil
}

func (ev *ExpectedValues) numberField(group, name string) **float64 {
	switch group {
	case "annuityCalculation":
		a := &ev.AnnuityCalculation
		switch name {
		case "high3Salary":
			return &a.High3Salary
		case "creditableServiceYears":
			return &a.CreditableServiceYears
		case "multiplier":
			return &a.Multiplier
		case "grossAnnuity":
			return &a.GrossAnnuity
		case "reductionFactor":
			return &a.ReductionFactor
		case "netAnnuity":
			return &a.NetAnnuity
		}
	case "tspProjection":
		t := &ev.TSPProjection
		switch name {
		case "currentBalance":
			return &t.CurrentBalance
		case "projectedBalanceAtRetirement":
			return &t.ProjectedBalanceAtRetirement
		case "monthlyContribution":
			return &t.MonthlyContribution
		case "assumedGrowthRate":
			return &t.AssumedGrowthRate
		}
	case "fersSupplement":
		s := &ev.FERSSupplement
		switch name {
		case "monthlyAmount":
			return &s.MonthlyAmount
		case "annualAmount":
			return &s.AnnualAmount
		}
	}
	return nil
}

func (ev *ExpectedValues) setProjection(year, name string, v any) error {
	f, ok := v.(float64)
	if !ok {
		return typeMismatch("projectionYears."+year+"."+name, "number", v)
	}
	row, ok := ev.ProjectionYears[year]
	if !ok {
		return fmt.Errorf("unknown field path %q", "projectionYears."+year+"."+name)
	}
	switch name {
	case "annuity":
		row.Annuity = &f
	case "tspWithdrawal":
		row.TSPWithdrawal = &f
	case "expenses":
		row.Expenses = &f
	case "surplus":
		row.Surplus = &f
	default:
		return fmt.Errorf("unknown field path %q", "projectionYears."+year+"."+name)
	}
	ev.ProjectionYears[year] = row
	return nil
}

func typeMismatch(path, want string, got any) error {
	return fmt.Errorf("field %q expects a %s, got %T", path, want, got)
}

// Finalize sets Status to complete when every expected value is populated.
func (r *ScenarioRecord) Finalize() {
	if r.ExpectedValues.IsComplete() {
		r.Status = StatusComplete
		return
	}
	r.Status = StatusPending
}
