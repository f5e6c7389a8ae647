// Package testkit builds teaching-plan workbooks for tests.
package testkit

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
	"github.com/xuri/excelize/v2"
)

// Header is the template header row in column order.
var Header = []any{
	models.HeaderID,
	models.HeaderPaternalSurname,
	models.HeaderMaternalSurname,
	models.HeaderGivenName,
	models.HeaderPayrollHours,
	models.HeaderBaseHours,
	models.HeaderContractHours,
	models.HeaderAcademicInfo,
	models.HeaderCategory,
	models.HeaderCourse,
	models.HeaderCourseHours,
}

// Preamble returns the five title rows that precede the header.
func Preamble() [][]any {
	return [][]any{
		{"PLANTILLA DE TITULARES"},
		{"CICLO 2025B"},
		{},
		{"PLANTEL", "DZITAS"},
		{},
	}
}

// SampleRows returns three instructor blocks:
//
//	1023 Ana García López    payroll 20, courses 3 + 4.5 + 0, categories A, A, B, null
//	2001 Luis Pérez López    payroll 20, course 20.2 (overage); maternal surname
//	                         is blank in the sheet and filled from Ana's block
//	3002 Marta Ruiz Soto     payroll 20, course 20.1 (within tolerance)
//
// The fourth row of Ana's block has hours but no course and must not count.
func SampleRows() [][]any {
	return [][]any{
		{1023, "García", "López", "Ana", 20, 20, 0, "Lic. Matemáticas", "A", "Álgebra", 3},
		{nil, nil, nil, nil, nil, nil, nil, nil, "A", "Física", 4.5},
		{nil, nil, nil, nil, nil, nil, nil, nil, "B", "Laboratorio", 0},
		{nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, 2},
		{2001, "Pérez", nil, "Luis", 20, 15, 5, "Ing. Civil", "X", "Historia", 20.2},
		{3002, "Ruiz", "Soto", "Marta", 20, 20, 0, nil, "Y", "Arte", 20.1},
	}
}

// Template returns preamble, header and rows as one sheet.
func Template(rows [][]any) [][]any {
	sheet := Preamble()
	sheet = append(sheet, Header)
	return append(sheet, rows...)
}

// WriteWorkbook saves rows into sheet of a new workbook at dir/name and
// returns its path. Nil values leave the cell empty.
func WriteWorkbook(tb testing.TB, dir, name, sheet string, rows [][]any) string {
	tb.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			tb.Fatalf("Failed to rename sheet: %v", err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				tb.Fatalf("Bad coordinates: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				tb.Fatalf("Failed to set %s: %v", cell, err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		tb.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// WriteSample saves the sample template under the template sheet name and
// returns its path.
func WriteSample(tb testing.TB, dir string) string {
	tb.Helper()
	return WriteWorkbook(tb, dir, "sample.xlsx", "PLANTILLA TIT", Template(SampleRows()))
}
