package parser

import (
	"fmt"
	"strings"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
	"github.com/xuri/excelize/v2"
)

// DefinedNames lists the workbook's defined names.
func DefinedNames(f *excelize.File) []models.DefinedName {
	var names []models.DefinedName
	for _, dn := range f.GetDefinedName() {
		scope := dn.Scope
		if scope == "" {
			scope = "Workbook"
		}
		names = append(names, models.DefinedName{
			Name:     dn.Name,
			RefersTo: dn.RefersTo,
			Scope:    scope,
		})
	}
	return names
}

// ResolveRef resolves a single-cell reference. Accepted forms are
// Sheet!A1, 'Sheet Name'!$A$1 and the name of a defined name that refers
// to one cell.
func ResolveRef(f *excelize.File, ref string) (models.CellRef, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.CellRef{}, fmt.Errorf("empty cell reference")
	}

	if !strings.Contains(ref, "!") {
		target, err := lookupDefinedName(f, ref)
		if err != nil {
			return models.CellRef{}, err
		}
		ref = target
	}

	cell, err := ParseCellReference(ref)
	if err != nil {
		return models.CellRef{}, err
	}
	if idx, _ := f.GetSheetIndex(cell.Sheet); idx < 0 {
		return models.CellRef{}, fmt.Errorf("sheet %q does not exist", cell.Sheet)
	}
	return cell, nil
}

func lookupDefinedName(f *excelize.File, name string) (string, error) {
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, name) {
			return strings.TrimPrefix(dn.RefersTo, "="), nil
		}
	}
	return "", fmt.Errorf("no defined name %q", name)
}

// ParseCellReference parses a reference string.
// Format: 'SheetName'!$A$1 or SheetName!A1
func ParseCellReference(ref string) (models.CellRef, error) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return models.CellRef{}, fmt.Errorf("reference %q has no sheet name", ref)
	}

	sheet := strings.TrimSpace(ref[:idx])
	axis := strings.TrimSpace(ref[idx+1:])

	// Remove quotes from sheet name, un-doubling embedded quotes
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	if sheet == "" {
		return models.CellRef{}, fmt.Errorf("reference %q has no sheet name", ref)
	}

	// Remove $ signs
	axis = strings.ReplaceAll(axis, "$", "")
	if strings.Contains(axis, ":") {
		return models.CellRef{}, fmt.Errorf("reference %q is a range, expected a single cell", ref)
	}

	col, row, err := excelize.CellNameToCoordinates(axis)
	if err != nil {
		return models.CellRef{}, fmt.Errorf("reference %q: %w", ref, err)
	}
	axis, err = excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.CellRef{}, fmt.Errorf("reference %q: %w", ref, err)
	}

	return models.CellRef{Sheet: sheet, Axis: axis}, nil
}
