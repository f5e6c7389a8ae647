package loadaudit

import (
	"path/filepath"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads the teaching-plan sheet of the workbook at path and returns the
// normalized table. A workbook that cannot be opened yields a
// *MissingFileError, an unreadable sheet a *ReadError, and a sheet without
// the identifier column a *SchemaError.
func Load(path string, opts Options) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &MissingFileError{Path: path, Err: err}
	}
	defer f.Close()

	sheet, err := parser.ReadSheet(f, opts.SheetName())
	if err != nil {
		return nil, &ReadError{Path: path, Sheet: opts.SheetName(), Err: err}
	}

	headerRow := opts.HeaderIndex()
	var header []string
	if headerRow >= 0 && headerRow < len(sheet.Rows) {
		header = sheet.Rows[headerRow]
	}

	cols := parser.ResolveColumns(header, opts.LenientHeaders)
	if !cols.Has(cols.ID) {
		return nil, &SchemaError{
			Sheet:     sheet.Name,
			Column:    models.HeaderID,
			HeaderRow: headerRow + 1,
		}
	}

	raw := parser.ReadRows(sheet.Rows, headerRow, cols)
	rows, warn := parser.Normalize(raw)
	warn.SheetFallback = sheet.Fallback
	warn.MissingColumns = parser.MissingColumns(cols)
	if opts.CheckBlocks {
		warn.SplitBlocks = parser.SplitBlocks(rows)
	}

	return &models.Table{
		Source:   filepath.Base(path),
		Sheet:    sheet.Name,
		Columns:  cols,
		Rows:     rows,
		Warnings: warn,
	}, nil
}
