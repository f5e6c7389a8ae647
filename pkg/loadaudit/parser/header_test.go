package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

func TestResolveColumnsExact(t *testing.T) {
	header := []string{"", models.HeaderCourse, models.HeaderID, models.HeaderID, models.HeaderCourseHours}

	cols := ResolveColumns(header, false)
	if cols.ID != 2 {
		t.Errorf("Expected first ID column at 2, got %d", cols.ID)
	}
	if cols.Course != 1 || cols.CourseHours != 4 {
		t.Errorf("Unexpected course columns: %d, %d", cols.Course, cols.CourseHours)
	}
	if cols.Has(cols.Category) {
		t.Errorf("Expected category to be unresolved, got %d", cols.Category)
	}
}

func TestResolveColumnsStrictIsAccentAndCaseSensitive(t *testing.T) {
	header := []string{"id del docente", "NOMINA", "INFORMACIÓN ACADÉMICA"}

	cols := ResolveColumns(header, false)
	if cols.Has(cols.ID) || cols.Has(cols.PayrollHours) || cols.Has(cols.AcademicInfo) {
		t.Errorf("Strict matching resolved inexact headers: %+v", cols)
	}
}

func TestResolveColumnsLenient(t *testing.T) {
	header := []string{" id del  docente", "NOMINA", "Información Académica", "categorias/ nómina"}

	cols := ResolveColumns(header, true)
	if cols.ID != 0 || cols.PayrollHours != 1 || cols.AcademicInfo != 2 || cols.Category != 3 {
		t.Errorf("Lenient matching failed: %+v", cols)
	}
}

func TestMissingColumns(t *testing.T) {
	header := append([]string(nil), testHeader[:9]...)

	got := MissingColumns(ResolveColumns(header, false))
	want := []string{models.HeaderCourse, models.HeaderCourseHours}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MissingColumns mismatch (-want +got):\n%s", diff)
	}

	if got := MissingColumns(ResolveColumns(testHeader, false)); len(got) != 0 {
		t.Errorf("Expected no missing columns, got %v", got)
	}
}

func TestFoldHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"INFORMACIÓN ACADÉMICA ", "informacion academica"},
		{"HRS.  POR UAC/ASIG", "hrs. por uac/asig"},
		{"NÓMINA", "nomina"},
	}

	for _, tt := range tests {
		if result := foldHeader(tt.input); result != tt.expected {
			t.Errorf("foldHeader(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
