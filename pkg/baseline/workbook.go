package baseline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
	"github.com/fedretire/extract-baseline/pkg/baseline/parser"
)

// Workbook is a loaded spreadsheet giving read access to cached cell values.
type Workbook struct {
	path     string
	file     *excelize.File
	date1904 bool
}

// OpenWorkbook loads the workbook at path.
// It fails with ErrFileNotFound when path does not exist and with
// ErrInvalidFormat when the file cannot be read as xlsx.
func OpenWorkbook(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error loading workbook: %v", ErrInvalidFormat, err)
	}

	wb := &Workbook{path: path, file: f}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Name returns the workbook file name (no path).
func (w *Workbook) Name() string {
	return filepath.Base(w.path)
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Date1904 reports whether date serials use the 1904 epoch.
func (w *Workbook) Date1904() bool {
	return w.date1904
}

// Cell returns the cached raw value of one cell. Empty cells return "".
func (w *Workbook) Cell(sheet, axis string) (string, error) {
	v, err := parser.ReadCell(w.file, sheet, axis)
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{"sheet": sheet, "cell": axis, "value": v}).Debug("read cell")
	return v, nil
}

// Resolve turns Sheet!A1, 'Sheet'!$A$1 or a defined name into a cell reference.
func (w *Workbook) Resolve(ref string) (models.CellRef, error) {
	return parser.ResolveRef(w.file, ref)
}

// Value reads the cell behind ref and converts it to t.
func (w *Workbook) Value(ref string, t parser.ValueType) (any, error) {
	cell, err := w.Resolve(ref)
	if err != nil {
		return nil, err
	}
	raw, err := w.Cell(cell.Sheet, cell.Axis)
	if err != nil {
		return nil, err
	}
	return parser.ConvertValue(raw, t, w.date1904)
}

// Inspect summarizes every sheet and the defined names.
func (w *Workbook) Inspect() (*models.WorkbookSummary, error) {
	summary := &models.WorkbookSummary{
		BookName:     w.Name(),
		DefinedNames: parser.DefinedNames(w.file),
	}
	for _, name := range w.SheetNames() {
		sheet, err := parser.SummarizeSheet(w.file, name)
		if err != nil {
			return nil, fmt.Errorf("summarize sheet %q: %w", name, err)
		}
		summary.Sheets = append(summary.Sheets, sheet)
	}
	return summary, nil
}
