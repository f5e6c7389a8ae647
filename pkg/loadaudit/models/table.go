package models

// Warnings counts recoveries made while loading a sheet.
type Warnings struct {
	// SheetFallback is true when the template sheet was absent and the first
	// sheet was read instead.
	SheetFallback bool `json:"sheet_fallback,omitempty"`
	// CoercedCells counts non-null numeric cells that failed to parse.
	CoercedCells int `json:"coerced_cells,omitempty"`
	// OrphanRows counts rows dropped because no identifier preceded them.
	OrphanRows int `json:"orphan_rows,omitempty"`
	// MissingColumns lists optional headers absent from the sheet.
	MissingColumns []string `json:"missing_columns,omitempty"`
	// SplitBlocks lists identifiers whose rows are not contiguous.
	SplitBlocks []string `json:"split_blocks,omitempty"`
}

// Any reports whether any recovery was recorded.
func (w Warnings) Any() bool {
	return w.SheetFallback || w.CoercedCells > 0 || w.OrphanRows > 0 ||
		len(w.MissingColumns) > 0 || len(w.SplitBlocks) > 0
}

// Table is the normalized result of one load pass.
type Table struct {
	// Source is the workbook file name (no path).
	Source string `json:"source"`
	// Sheet is the sheet actually read.
	Sheet string `json:"sheet"`
	// Columns is the resolved column schema.
	Columns Columns `json:"columns"`
	// Rows contains the normalized rows in sheet order.
	Rows []NormalizedRow `json:"rows"`
	// Warnings contains recovered parse problems.
	Warnings Warnings `json:"warnings"`
}
