// Package parser reads teaching-plan sheets and normalizes their rows.
package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is the raw content of the sheet selected for loading.
type Sheet struct {
	// Name is the sheet actually read.
	Name string
	// Rows holds raw cell values, one slice per sheet row.
	Rows [][]string
	// Fallback is true when the requested sheet was absent.
	Fallback bool
}

// ReadSheet reads sheetName from f. When the workbook has no such sheet it
// falls back to the first sheet and marks the result.
func ReadSheet(f *excelize.File, sheetName string) (*Sheet, error) {
	name := sheetName
	fallback := false

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		name = list[0]
		fallback = true
	}

	// Raw values keep numbers free of display formatting (thousand separators,
	// fixed decimals) so they parse cleanly.
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	return &Sheet{Name: name, Rows: rows, Fallback: fallback}, nil
}

// cellValue returns the cell at idx, or "" when the row is shorter or the
// column was not resolved.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
