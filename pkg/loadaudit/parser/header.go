package parser

import (
	"strings"
	"unicode"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ResolveColumns maps the header row to a column schema. Headers match
// exactly; with lenient set, unmatched fields are retried ignoring case,
// accents and surrounding or repeated whitespace. The first matching column
// wins. Unresolved fields are -1.
func ResolveColumns(header []string, lenient bool) models.Columns {
	find := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		if !lenient {
			return -1
		}
		want := foldHeader(name)
		for i, h := range header {
			if foldHeader(h) == want {
				return i
			}
		}
		return -1
	}

	return models.Columns{
		ID:              find(models.HeaderID),
		PaternalSurname: find(models.HeaderPaternalSurname),
		MaternalSurname: find(models.HeaderMaternalSurname),
		GivenName:       find(models.HeaderGivenName),
		PayrollHours:    find(models.HeaderPayrollHours),
		BaseHours:       find(models.HeaderBaseHours),
		ContractHours:   find(models.HeaderContractHours),
		AcademicInfo:    find(models.HeaderAcademicInfo),
		Category:        find(models.HeaderCategory),
		Course:          find(models.HeaderCourse),
		CourseHours:     find(models.HeaderCourseHours),
	}
}

// MissingColumns returns the headers that were not resolved, in template order.
func MissingColumns(cols models.Columns) []string {
	fields := []struct {
		idx  int
		name string
	}{
		{cols.ID, models.HeaderID},
		{cols.PaternalSurname, models.HeaderPaternalSurname},
		{cols.MaternalSurname, models.HeaderMaternalSurname},
		{cols.GivenName, models.HeaderGivenName},
		{cols.PayrollHours, models.HeaderPayrollHours},
		{cols.BaseHours, models.HeaderBaseHours},
		{cols.ContractHours, models.HeaderContractHours},
		{cols.AcademicInfo, models.HeaderAcademicInfo},
		{cols.Category, models.HeaderCategory},
		{cols.Course, models.HeaderCourse},
		{cols.CourseHours, models.HeaderCourseHours},
	}

	var missing []string
	for _, f := range fields {
		if !cols.Has(f.idx) {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// foldHeader reduces a header to a comparison key: NFC, accents removed,
// case folded, whitespace collapsed.
func foldHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	folded := cases.Fold().String(stripped)
	return strings.Join(strings.Fields(folded), " ")
}
