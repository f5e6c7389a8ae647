package models

// OverageTolerance is the fixed absolute slack, in hours, allowed above the
// payroll capacity before an instructor is flagged.
const OverageTolerance = 0.1

// CategoryNotSpecified is the single label reported when the sheet carries no
// category column.
const CategoryNotSpecified = "Sin datos"

// Course represents one assigned course row.
type Course struct {
	// Title is the course title.
	Title string `json:"title"`
	// Hours is the hours assigned for the course.
	Hours float64 `json:"hours"`
}

// InstructorRecord is the reconciled view of one instructor block.
type InstructorRecord struct {
	// ID is the stringified instructor identifier.
	ID string `json:"id"`
	// Name is the display name (see NormalizedRow.FullName).
	Name string `json:"name"`
	// PayrollHours is the contracted payroll capacity in hours.
	PayrollHours float64 `json:"payroll_hours"`
	// BaseHours is the base-position hours.
	BaseHours float64 `json:"base_hours"`
	// ContractHours is the contract hours.
	ContractHours float64 `json:"contract_hours"`
	// AssignedHours is the sum of hours over rows with a course title.
	AssignedHours float64 `json:"assigned_hours"`
	// Overage is true when AssignedHours exceeds PayrollHours + OverageTolerance.
	Overage bool `json:"overage"`
	// Categories lists distinct category labels in first-seen order.
	Categories []string `json:"categories"`
	// Courses lists the instructor's course rows in sheet order.
	Courses []Course `json:"courses"`
}

// IsOverage reports whether assigned exceeds payroll beyond OverageTolerance.
func IsOverage(assigned, payroll float64) bool {
	return assigned > payroll+OverageTolerance
}

// Delta returns assigned minus payroll hours. Positive values are an excess,
// negative values are hours still available.
func (r InstructorRecord) Delta() float64 {
	return r.AssignedHours - r.PayrollHours
}

// Ratio returns the progress ratio of assigned to payroll hours bounded to
// [0, 1]. A zero payroll is treated as a denominator of 1.
func (r InstructorRecord) Ratio() float64 {
	den := r.PayrollHours
	if den == 0 {
		den = 1
	}
	ratio := r.AssignedHours / den
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	}
	return ratio
}
