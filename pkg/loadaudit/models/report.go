package models

// Summary holds count and hour statistics over a filtered record set.
type Summary struct {
	// Total is the number of records after filtering.
	Total int `json:"total"`
	// Overage is the number of records flagged as overage.
	Overage int `json:"overage"`
	// Compliant is the number of records within capacity.
	Compliant int `json:"compliant"`
	// AssignedHours is the sum of assigned hours.
	AssignedHours float64 `json:"assigned_hours"`
	// PayrollHours is the sum of payroll capacity.
	PayrollHours float64 `json:"payroll_hours"`
	// MeanUtilization is the mean assigned/payroll ratio over records with a
	// non-zero payroll. Zero when no such record exists.
	MeanUtilization float64 `json:"mean_utilization"`
}

// Report is the result of one audit pass.
type Report struct {
	// Source is the workbook file name (no path).
	Source string `json:"source"`
	// Sheet is the sheet actually read.
	Sheet string `json:"sheet"`
	// Query is the free-text filter applied.
	Query string `json:"query,omitempty"`
	// Status is the status filter applied.
	Status string `json:"status"`
	// Records contains the filtered records.
	Records []InstructorRecord `json:"records"`
	// Summary contains statistics over Records.
	Summary Summary `json:"summary"`
	// Warnings contains recovered parse problems.
	Warnings Warnings `json:"warnings"`
}
