package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

var testHeader = []string{
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

func strPtr(s string) *string { return &s }

func TestReadRowsSkipsHeaderAndTrailingBlanks(t *testing.T) {
	rows := [][]string{
		{"title"},
		testHeader,
		{"1", "A", "B", "C", "10"},
		{},
		{"", "", "", "", "", "", "", "", "", "x", "1"},
		{},
		{"", ""},
	}
	cols := ResolveColumns(testHeader, false)

	raw := ReadRows(rows, 1, cols)
	if len(raw) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(raw))
	}
	if raw[0].Row != 3 {
		t.Errorf("Expected sheet row 3, got %d", raw[0].Row)
	}
	if raw[0].PayrollHours.Value != "10" {
		t.Errorf("Expected payroll '10', got %q", raw[0].PayrollHours.Value)
	}
	if !raw[1].ID.Null() {
		t.Errorf("Expected blank row to have null id")
	}
	if raw[2].Course.String() != "x" {
		t.Errorf("Expected course 'x', got %q", raw[2].Course.String())
	}
}

func TestReadRowsNoData(t *testing.T) {
	cols := ResolveColumns(testHeader, false)
	if raw := ReadRows([][]string{testHeader}, 0, cols); raw != nil {
		t.Errorf("Expected nil, got %v", raw)
	}
	if raw := ReadRows(nil, 5, cols); raw != nil {
		t.Errorf("Expected nil, got %v", raw)
	}
}

func TestForwardFill(t *testing.T) {
	c := models.NewCell
	null := models.Cell{}
	raw := []models.RawRow{
		{ID: c("1"), GivenName: c("Ana"), PayrollHours: c("20"), Category: c("A"), Course: c("M1")},
		{ID: null, GivenName: null, PayrollHours: null, Category: null, Course: c("M2")},
		{ID: c("2"), GivenName: c("Luis"), PayrollHours: null, Category: c("B")},
		{ID: null, GivenName: null, PayrollHours: c("15")},
		{ID: null, GivenName: null, PayrollHours: null},
	}

	filled := ForwardFill(raw)

	wantIDs := []string{"1", "1", "2", "2", "2"}
	wantNames := []string{"Ana", "Ana", "Luis", "Luis", "Luis"}
	// Payroll is not reset at the instructor boundary.
	wantPayroll := []string{"20", "20", "20", "15", "15"}
	for i, r := range filled {
		if r.ID.String() != wantIDs[i] {
			t.Errorf("row %d: id = %q, want %q", i, r.ID.String(), wantIDs[i])
		}
		if r.GivenName.String() != wantNames[i] {
			t.Errorf("row %d: name = %q, want %q", i, r.GivenName.String(), wantNames[i])
		}
		if r.PayrollHours.String() != wantPayroll[i] {
			t.Errorf("row %d: payroll = %q, want %q", i, r.PayrollHours.String(), wantPayroll[i])
		}
	}

	if !filled[1].Category.Null() {
		t.Errorf("Expected category to stay null, got %q", filled[1].Category.Value)
	}
	if !filled[2].Course.Null() {
		t.Errorf("Expected course to stay null, got %q", filled[2].Course.Value)
	}
	if !raw[1].ID.Null() {
		t.Errorf("ForwardFill modified its input")
	}
}

func TestFullName(t *testing.T) {
	tests := []struct {
		given, paternal, maternal string
		expected                  string
	}{
		{"Ana", "García", "López", "Ana García López"},
		{"Luis", "Pérez", "", "Luis Pérez "},
		{"Luis", "", "Pérez", "Luis  Pérez"},
		{"", "", "", "  "},
	}

	for _, tt := range tests {
		result := FullName(models.NewCell(tt.given), models.NewCell(tt.paternal), models.NewCell(tt.maternal))
		if result != tt.expected {
			t.Errorf("FullName(%q, %q, %q) = %q, expected %q",
				tt.given, tt.paternal, tt.maternal, result, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	c := models.NewCell
	raw := []models.RawRow{
		{Row: 6, Category: c("orphan")},
		{Row: 7, ID: c("1023"), PaternalSurname: c("García"), MaternalSurname: c("López"), GivenName: c("Ana"),
			PayrollHours: c("20"), BaseHours: c("pendiente"), ContractHours: c("0"),
			Category: c("A"), Course: c("Álgebra"), CourseHours: c("3")},
		{Row: 8, Category: c("B"), CourseHours: c("2")},
	}

	rows, warn := Normalize(raw)

	want := []models.NormalizedRow{
		{Row: 7, ID: "1023", PaternalSurname: "García", MaternalSurname: "López", GivenName: "Ana",
			FullName: "Ana García López", PayrollHours: 20, Category: strPtr("A"),
			Course: strPtr("Álgebra"), CourseHours: 3},
		{Row: 8, ID: "1023", PaternalSurname: "García", MaternalSurname: "López", GivenName: "Ana",
			FullName: "Ana García López", PayrollHours: 20, Category: strPtr("B"), CourseHours: 2},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}

	if warn.OrphanRows != 1 {
		t.Errorf("Expected 1 orphan row, got %d", warn.OrphanRows)
	}
	// "pendiente" is filled into both rows before coercion.
	if warn.CoercedCells != 2 {
		t.Errorf("Expected 2 coerced cells, got %d", warn.CoercedCells)
	}
}

func TestNormalizeMissingValueMarkers(t *testing.T) {
	c := models.NewCell
	raw := []models.RawRow{
		{Row: 7, ID: c("1"), GivenName: c("Ana"), PayrollHours: c("10"),
			Category: c("X"), Course: c("M1"), CourseHours: c("8")},
		{Row: 8, ID: c(""), Category: c("N/A"), Course: c("N/A"), CourseHours: c("5")},
		{Row: 9, ID: c("#N/A"), GivenName: c("NULL"), Course: c("M2"), CourseHours: c("1")},
	}

	rows, warn := Normalize(raw)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	for i, r := range rows {
		if r.ID != "1" {
			t.Errorf("row %d: id = %q, want %q", i, r.ID, "1")
		}
		if r.GivenName != "Ana" {
			t.Errorf("row %d: name = %q, want %q", i, r.GivenName, "Ana")
		}
	}
	if rows[1].Category != nil {
		t.Errorf("Expected N/A category to be null, got %q", *rows[1].Category)
	}
	if rows[1].Course != nil {
		t.Errorf("Expected N/A course to be null, got %q", *rows[1].Course)
	}
	if diff := cmp.Diff(strPtr("M2"), rows[2].Course); diff != "" {
		t.Errorf("Course mismatch (-want +got):\n%s", diff)
	}
	if warn.CoercedCells != 0 {
		t.Errorf("Expected no coerced cells, got %d", warn.CoercedCells)
	}
}

func TestSplitBlocks(t *testing.T) {
	ids := []string{"1", "1", "2", "1", "3", "2", "2", "1"}
	rows := make([]models.NormalizedRow, len(ids))
	for i, id := range ids {
		rows[i].ID = id
	}

	got := SplitBlocks(rows)
	if diff := cmp.Diff([]string{"1", "2"}, got); diff != "" {
		t.Errorf("SplitBlocks mismatch (-want +got):\n%s", diff)
	}

	if got := SplitBlocks(rows[:3]); len(got) != 0 {
		t.Errorf("Expected no split blocks, got %v", got)
	}
}
