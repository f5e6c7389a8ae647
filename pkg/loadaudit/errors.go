package loadaudit

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrFileNotFound indicates the input workbook does not exist or cannot be opened.
var ErrFileNotFound = errors.New("file not found")

// ErrSchema indicates a required column is absent from the header row.
var ErrSchema = errors.New("schema error")

// MissingFileError reports a workbook that could not be opened. Callers halt
// and ask for the file named by FileName.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("workbook %q not found: %v", e.Path, e.Err)
}

// FileName returns the expected workbook file name (no path).
func (e *MissingFileError) FileName() string {
	return filepath.Base(e.Path)
}

func (e *MissingFileError) Unwrap() []error {
	return []error{ErrFileNotFound, e.Err}
}

// SchemaError reports a required header missing from the loaded sheet.
type SchemaError struct {
	Sheet     string
	Column    string
	HeaderRow int // 1-based
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found in sheet %q; check that the header is on row %d",
		e.Column, e.Sheet, e.HeaderRow)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// ReadError reports a workbook that opened but whose sheet could not be read,
// such as a sheet listed in the workbook without its worksheet part.
type ReadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read sheet %q of %s: %v", e.Sheet, filepath.Base(e.Path), e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
