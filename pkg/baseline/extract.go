package baseline

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
	"github.com/fedretire/extract-baseline/pkg/baseline/parser"
)

// Extract loads the workbook, runs the scenario's extractor and applies
// the cell mapping when one is configured. Nothing is written.
func Extract(opts Options, registry *Registry) (*models.ScenarioRecord, error) {
	// Parse the mapping up front so a bad file fails before the workbook is opened
	var mapping *parser.Mapping
	if opts.Mapping != "" {
		m, err := parser.LoadMapping(opts.Mapping)
		if err != nil {
			return nil, fmt.Errorf("load mapping: %w", err)
		}
		for _, name := range m.Names() {
			if _, err := registry.Lookup(name); err != nil {
				return nil, fmt.Errorf("load mapping: %w", err)
			}
		}
		mapping = m
	}

	logrus.WithField("spreadsheet", opts.Spreadsheet).Info("loading workbook")
	wb, err := OpenWorkbook(opts.Spreadsheet)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	for _, sheet := range wb.SheetNames() {
		logrus.WithField("sheet", sheet).Info("available sheet")
	}

	extractor, err := registry.Lookup(opts.Scenario)
	if err != nil {
		return nil, err
	}

	record, err := extractor(wb)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", opts.Scenario, err)
	}

	if fields := mapping.For(opts.Scenario); len(fields) > 0 {
		if err := ApplyMapping(wb, record, fields); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// Run performs one full extraction: load, dispatch, merge, write, and
// echo of the inserted record to stdout. The output file is untouched
// unless every step before the merge succeeded.
func Run(opts Options, registry *Registry, stdout io.Writer) error {
	record, err := Extract(opts, registry)
	if err != nil {
		return err
	}

	if err := Merge(opts.Output, opts.Scenario, record); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"output":   opts.Output,
		"scenario": opts.Scenario,
		"status":   record.Status,
	}).Info("updated baseline")

	jsonData, err := MarshalIndented(record)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintf(stdout, "Updated %s\n", opts.Output)
	_, err = stdout.Write(jsonData)
	return err
}
