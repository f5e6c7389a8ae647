package parser

import (
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

// ReadRows converts the sheet rows below headerRow (0-based) into RawRows.
// Trailing blank rows are dropped.
func ReadRows(rows [][]string, headerRow int, cols models.Columns) []models.RawRow {
	last := lastDataRow(rows)
	if last <= headerRow {
		return nil
	}

	result := make([]models.RawRow, 0, last-headerRow)
	for rowIdx := headerRow + 1; rowIdx <= last; rowIdx++ {
		row := rows[rowIdx]
		cell := func(idx int) models.Cell {
			return models.NewCell(cellValue(row, idx))
		}
		result = append(result, models.RawRow{
			Row:             rowIdx + 1,
			ID:              cell(cols.ID),
			PaternalSurname: cell(cols.PaternalSurname),
			MaternalSurname: cell(cols.MaternalSurname),
			GivenName:       cell(cols.GivenName),
			PayrollHours:    cell(cols.PayrollHours),
			BaseHours:       cell(cols.BaseHours),
			ContractHours:   cell(cols.ContractHours),
			AcademicInfo:    cell(cols.AcademicInfo),
			Category:        cell(cols.Category),
			Course:          cell(cols.Course),
			CourseHours:     cell(cols.CourseHours),
		})
	}
	return result
}

// ForwardFill replaces null identity cells with the nearest preceding
// non-null value of the same column. The scan runs over the whole sheet and
// is not reset between instructors, so rows must be grouped by instructor
// block. Category, course and course-hours cells are left untouched.
func ForwardFill(raw []models.RawRow) []models.RawRow {
	filled := make([]models.RawRow, len(raw))
	var prev models.RawRow
	for i, r := range raw {
		fill(&r.ID, &prev.ID)
		fill(&r.PaternalSurname, &prev.PaternalSurname)
		fill(&r.MaternalSurname, &prev.MaternalSurname)
		fill(&r.GivenName, &prev.GivenName)
		fill(&r.PayrollHours, &prev.PayrollHours)
		fill(&r.BaseHours, &prev.BaseHours)
		fill(&r.ContractHours, &prev.ContractHours)
		fill(&r.AcademicInfo, &prev.AcademicInfo)
		filled[i] = r
	}
	return filled
}

func fill(cur, last *models.Cell) {
	if cur.Null() {
		*cur = *last
		return
	}
	*last = *cur
}

// FullName joins given name, paternal and maternal surname with single
// spaces. Null parts become empty strings and the result is not trimmed, so
// a missing part leaves a doubled or edge space.
func FullName(given, paternal, maternal models.Cell) string {
	return given.String() + " " + paternal.String() + " " + maternal.String()
}

// Normalize forward-fills identity columns, coerces numeric columns and
// derives the full name. Rows that still have no identifier after filling
// are dropped and counted.
func Normalize(raw []models.RawRow) ([]models.NormalizedRow, models.Warnings) {
	var warn models.Warnings

	number := func(c models.Cell) float64 {
		v, ok := parseNumber(c)
		if !ok {
			warn.CoercedCells++
		}
		return v
	}

	filled := ForwardFill(raw)
	rows := make([]models.NormalizedRow, 0, len(filled))
	for _, r := range filled {
		if r.ID.Null() {
			warn.OrphanRows++
			continue
		}
		rows = append(rows, models.NormalizedRow{
			Row:             r.Row,
			ID:              formatID(r.ID.Value),
			PaternalSurname: r.PaternalSurname.String(),
			MaternalSurname: r.MaternalSurname.String(),
			GivenName:       r.GivenName.String(),
			FullName:        FullName(r.GivenName, r.PaternalSurname, r.MaternalSurname),
			PayrollHours:    number(r.PayrollHours),
			BaseHours:       number(r.BaseHours),
			ContractHours:   number(r.ContractHours),
			AcademicInfo:    r.AcademicInfo.String(),
			Category:        r.Category.Ptr(),
			Course:          r.Course.Ptr(),
			CourseHours:     number(r.CourseHours),
		})
	}
	return rows, warn
}

// SplitBlocks returns identifiers whose rows are not contiguous, in order of
// first detection. A non-empty result means forward-fill may have attributed
// rows to the wrong instructor.
func SplitBlocks(rows []models.NormalizedRow) []string {
	seen := make(map[string]bool)
	reported := make(map[string]bool)
	var split []string
	last := ""
	for i, r := range rows {
		if i > 0 && r.ID != last && seen[r.ID] && !reported[r.ID] {
			split = append(split, r.ID)
			reported[r.ID] = true
		}
		seen[r.ID] = true
		last = r.ID
	}
	return split
}
