package models

// WorkbookSummary describes a workbook for reference discovery.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheets in workbook order.
	Sheets []SheetSummary `json:"sheets"`
	// DefinedNames lists workbook and sheet scoped names.
	DefinedNames []DefinedName `json:"defined_names,omitempty"`
}

// SheetSummary describes the populated area of one sheet.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// UsedRange is the bounding box of non-empty cells (e.g. "A1:D10"), empty if the sheet has no data.
	UsedRange string `json:"used_range,omitempty"`
	// NonEmptyCells counts cells with a cached value.
	NonEmptyCells int `json:"non_empty_cells"`
}

// DefinedName is a named reference declared in the workbook.
type DefinedName struct {
	Name     string `json:"name"`
	RefersTo string `json:"refers_to"`
	// Scope is the owning sheet, or "Workbook" for global names.
	Scope string `json:"scope"`
}

// CellRef addresses a single cell.
type CellRef struct {
	Sheet string `json:"sheet"`
	// Axis is the A1-style cell name without "$" markers.
	Axis string `json:"axis"`
}

// String renders the reference as 'Sheet'!A1.
func (r CellRef) String() string {
	return "'" + r.Sheet + "'!" + r.Axis
}
