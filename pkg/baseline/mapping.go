package baseline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
	"github.com/fedretire/extract-baseline/pkg/baseline/parser"
)

// ApplyMapping reads each bound cell into record and updates its status.
// Every path must name an existing leaf of record; this is checked before
// any cell is read. Empty cells leave their field null. The first failing
// binding aborts with a *MappingError.
func ApplyMapping(wb *Workbook, record *models.ScenarioRecord, fields []parser.FieldMapping) error {
	if len(fields) == 0 {
		return nil
	}

	known := make(map[string]bool)
	for _, path := range record.ExpectedValues.LeafPaths() {
		known[path] = true
	}
	for _, fm := range fields {
		if !known[fm.Path] {
			return NewMappingError(fm.Path, fm.Ref, fmt.Errorf("unknown field path %q", fm.Path))
		}
	}

	for _, fm := range fields {
		t, err := parser.ParseValueType(fm.Type)
		if err != nil {
			return NewMappingError(fm.Path, fm.Ref, err)
		}
		v, err := wb.Value(fm.Ref, t)
		if err != nil {
			return NewMappingError(fm.Path, fm.Ref, err)
		}
		if v == nil {
			logrus.WithFields(logrus.Fields{"field": fm.Path, "ref": fm.Ref}).Warn("mapped cell is empty")
			continue
		}
		if err := record.ExpectedValues.Set(fm.Path, v); err != nil {
			return NewMappingError(fm.Path, fm.Ref, err)
		}
	}

	record.Finalize()
	return nil
}
