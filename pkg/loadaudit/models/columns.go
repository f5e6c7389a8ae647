package models

// Header names of the teaching-plan template. Matching is exact.
const (
	HeaderID              = "ID DEL DOCENTE"
	HeaderPaternalSurname = "APELLIDO PATERNO"
	HeaderMaternalSurname = "APELLIDO MATERNO"
	HeaderGivenName       = "NOMBRE (S)"
	HeaderPayrollHours    = "NÓMINA"
	HeaderBaseHours       = "HRS PLAZA/BASE"
	HeaderContractHours   = "HRS CONTRATO"
	HeaderAcademicInfo    = "INFORMACIÓN ACADÉMICA " // trailing space is part of the header
	HeaderCategory        = "CATEGORÍAS/ NÓMINA"
	HeaderCourse          = "UNIDAD DE APRENDIZAJE CURRICULAR/ASIGNATURA"
	HeaderCourseHours     = "HRS. POR UAC/ASIG"
)

// Columns maps each known field to its 0-based column index, or -1 when the
// header is absent from the sheet.
type Columns struct {
	ID              int `json:"id"`
	PaternalSurname int `json:"paternal_surname"`
	MaternalSurname int `json:"maternal_surname"`
	GivenName       int `json:"given_name"`
	PayrollHours    int `json:"payroll_hours"`
	BaseHours       int `json:"base_hours"`
	ContractHours   int `json:"contract_hours"`
	AcademicInfo    int `json:"academic_info"`
	Category        int `json:"category"`
	Course          int `json:"course"`
	CourseHours     int `json:"course_hours"`
}

// Has reports whether the column at idx was resolved.
func (c Columns) Has(idx int) bool {
	return idx >= 0
}
