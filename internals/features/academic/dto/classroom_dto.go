package dto

// Header is the denormalized academic context block the classroom
// service embeds in every classroom payload.
type Header struct {
	AcademicPeriodID     string `json:"academicPeriodId"`
	AcademicPeriodName   string `json:"academicPeriodName"`
	AcademicPeriodStatus string `json:"academicPeriodStatus"`

	ProgramID     string `json:"programId"`
	ProgramName   string `json:"programName"`
	ProgramModule string `json:"programModule"`
	ProgramStatus string `json:"programStatus"`

	DidacticID        string `json:"didacticId"`
	DidacticName      string `json:"didacticName"`
	DidacticProgramID string `json:"didacticProgramId"`
	DidacticStatus    string `json:"didacticStatus"`
}

// DidacticUnitRef is the thin unit reference carried inside an
// enrollment entry (full unit payloads come from the didactic-unit
// service).
type DidacticUnitRef struct {
	DidacticID string `json:"didacticId"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}

// EnrollmentDetailDto is one roster entry: the enrolled student plus
// the didactic units they take in this classroom.
type EnrollmentDetailDto struct {
	ID           string            `json:"id"`
	Student      StudentDto        `json:"student"`
	DidacticUnit []DidacticUnitRef `json:"didacticUnit"`
	Status       string            `json:"status"`
}

// ClassroomDto mirrors the classroom-service payload. The roster is
// embedded as enrollmentDetailId (the upstream field name, kept as-is).
type ClassroomDto struct {
	ClassroomID      string                `json:"classroomId"`
	Name             string                `json:"name"`
	Header           Header                `json:"header"`
	EnrollmentDetail []EnrollmentDetailDto `json:"enrollmentDetailId"`
	Capacity         int                   `json:"capacity"`
	Status           string                `json:"status"`
}
