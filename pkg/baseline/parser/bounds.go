package parser

import (
	"fmt"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
	"github.com/xuri/excelize/v2"
)

// SummarizeSheet reports the used range and non-empty cell count of a sheet,
// which is what a mapping author needs to locate values to bind.
func SummarizeSheet(f *excelize.File, sheetName string) (models.SheetSummary, error) {
	summary := models.SheetSummary{Name: sheetName}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return summary, err
	}

	area := scanUsedArea(rows)
	if area.cells == 0 {
		return summary, nil
	}
	summary.NonEmptyCells = area.cells

	startCell, err := excelize.CoordinatesToCellName(area.firstCol+1, area.firstRow+1)
	if err != nil {
		return summary, err
	}
	endCell, err := excelize.CoordinatesToCellName(area.lastCol+1, area.lastRow+1)
	if err != nil {
		return summary, err
	}
	summary.UsedRange = fmt.Sprintf("%s:%s", startCell, endCell)

	return summary, nil
}

// usedArea is the zero-based extent of the populated cells of a sheet.
type usedArea struct {
	firstRow, lastRow int
	firstCol, lastCol int
	cells             int
}

// scanUsedArea walks the rows once, widening the extent at every cached
// value. Sheets without values yield a zero cell count.
func scanUsedArea(rows [][]string) usedArea {
	var a usedArea
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			if a.cells == 0 {
				a = usedArea{firstRow: r, lastRow: r, firstCol: c, lastCol: c}
			}
			a.cells++
			a.firstRow = min(a.firstRow, r)
			a.lastRow = max(a.lastRow, r)
			a.firstCol = min(a.firstCol, c)
			a.lastCol = max(a.lastCol, c)
		}
	}
	return a
}
