package models

// RawRow represents one sheet row below the header, before normalization.
type RawRow struct {
	// Row is the sheet row number (1-based).
	Row int `json:"row"`
	// ID is the instructor identifier.
	ID Cell `json:"id"`
	// PaternalSurname is the first surname.
	PaternalSurname Cell `json:"paternal_surname"`
	// MaternalSurname is the second surname.
	MaternalSurname Cell `json:"maternal_surname"`
	// GivenName is the given name(s).
	GivenName Cell `json:"given_name"`
	// PayrollHours is the contracted payroll capacity in hours.
	PayrollHours Cell `json:"payroll_hours"`
	// BaseHours is the base-position hours.
	BaseHours Cell `json:"base_hours"`
	// ContractHours is the contract hours.
	ContractHours Cell `json:"contract_hours"`
	// AcademicInfo is free text describing the instructor's academic profile.
	AcademicInfo Cell `json:"academic_info"`
	// Category is the category/payroll label funding this row.
	Category Cell `json:"category"`
	// Course is the course title. Null for category-only rows.
	Course Cell `json:"course"`
	// CourseHours is the hours assigned for Course.
	CourseHours Cell `json:"course_hours"`
}

// NormalizedRow is a RawRow with identity fields forward-filled and numeric
// fields coerced.
type NormalizedRow struct {
	// Row is the sheet row number (1-based).
	Row int `json:"row"`
	// ID is the stringified instructor identifier.
	ID string `json:"id"`
	// PaternalSurname is the first surname.
	PaternalSurname string `json:"paternal_surname"`
	// MaternalSurname is the second surname.
	MaternalSurname string `json:"maternal_surname"`
	// GivenName is the given name(s).
	GivenName string `json:"given_name"`
	// FullName is given, paternal and maternal joined by single spaces, untrimmed.
	FullName string `json:"full_name"`
	// PayrollHours is the contracted payroll capacity in hours.
	PayrollHours float64 `json:"payroll_hours"`
	// BaseHours is the base-position hours.
	BaseHours float64 `json:"base_hours"`
	// ContractHours is the contract hours.
	ContractHours float64 `json:"contract_hours"`
	// AcademicInfo is free text describing the instructor's academic profile.
	AcademicInfo string `json:"academic_info,omitempty"`
	// Category is the category/payroll label, nil when the cell is null.
	Category *string `json:"category,omitempty"`
	// Course is the course title, nil for category-only rows.
	Course *string `json:"course,omitempty"`
	// CourseHours is the hours assigned for Course.
	CourseHours float64 `json:"course_hours"`
}
