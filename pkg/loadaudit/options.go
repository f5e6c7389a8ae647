// Package loadaudit audits teaching-load workbooks: it loads a teaching-plan
// sheet, reconciles one record per instructor and flags assigned hours that
// exceed payroll capacity.
package loadaudit

const (
	// DefaultWorkbook is the workbook file name expected in the working directory.
	DefaultWorkbook = "DZITAS TITULARES 2025B.xlsx"
	// DefaultSheet is the teaching-plan template sheet.
	DefaultSheet = "PLANTILLA TIT"
	// DefaultHeaderRow is the 0-based index of the header row (the sixth row).
	DefaultHeaderRow = 5
)

// Options configures loading behavior.
type Options struct {
	// Sheet is the sheet to read. Falls back to the first sheet when absent.
	Sheet string
	// HeaderRow is the 0-based index of the header row.
	// If nil, defaults to DefaultHeaderRow.
	HeaderRow *int
	// LenientHeaders retries unmatched headers ignoring case, accents and
	// whitespace.
	LenientHeaders bool
	// CheckBlocks reports identifiers whose rows are not contiguous.
	CheckBlocks bool
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Sheet: DefaultSheet,
	}
}

// SheetName returns the sheet to read.
func (o Options) SheetName() string {
	if o.Sheet == "" {
		return DefaultSheet
	}
	return o.Sheet
}

// HeaderIndex returns the 0-based header row index.
func (o Options) HeaderIndex() int {
	if o.HeaderRow != nil {
		return *o.HeaderRow
	}
	return DefaultHeaderRow
}
