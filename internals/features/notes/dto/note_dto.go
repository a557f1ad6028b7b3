// internals/features/notes/dto/note_dto.go
package dto

import (
	"time"

	academicDTO "gradebook_backend/internals/features/academic/dto"
	noteModel "gradebook_backend/internals/features/notes/model"

	"github.com/google/uuid"
)

/* =========================================================
   Requests
   ========================================================= */

// CreateNoteRequest carries the foreign ids exactly as the sibling
// services know them. Grade is a pointer so required-validation can
// tell "missing" from a literal 0.
type CreateNoteRequest struct {
	StudentID      string   `json:"student_id" validate:"required"`
	ClassroomID    string   `json:"classroom_id" validate:"required"`
	DidacticUnitID string   `json:"didactic_unit_id" validate:"required"`
	CompetenceID   string   `json:"competence_id" validate:"required"`
	CapacityID     string   `json:"capacity_id" validate:"required"`
	Grade          *float64 `json:"grade" validate:"required"`
}

func (r CreateNoteRequest) ToModel() noteModel.NoteModel {
	return noteModel.NoteModel{
		NoteStudentID:      r.StudentID,
		NoteClassroomID:    r.ClassroomID,
		NoteDidacticUnitID: r.DidacticUnitID,
		NoteCompetenceID:   r.CompetenceID,
		NoteCapacityID:     r.CapacityID,
		NoteGrade:          *r.Grade,
	}
}

// UpdateNoteRequest only ever touches the grade; the identifying
// foreign keys are immutable after creation.
type UpdateNoteRequest struct {
	Grade *float64 `json:"grade" validate:"required"`
}

/* =========================================================
   Responses
   ========================================================= */

type NoteResponse struct {
	NoteID         uuid.UUID `json:"note_id"`
	StudentID      string    `json:"student_id"`
	ClassroomID    string    `json:"classroom_id"`
	DidacticUnitID string    `json:"didactic_unit_id"`
	CompetenceID   string    `json:"competence_id"`
	CapacityID     string    `json:"capacity_id"`
	Grade          float64   `json:"grade"`
	GradeStatus    string    `json:"grade_status"`
	Status         string    `json:"status"`
	AssignmentDate time.Time `json:"assignment_date"`
}

func FromNoteModel(m noteModel.NoteModel) NoteResponse {
	return NoteResponse{
		NoteID:         m.NoteID,
		StudentID:      m.NoteStudentID,
		ClassroomID:    m.NoteClassroomID,
		DidacticUnitID: m.NoteDidacticUnitID,
		CompetenceID:   m.NoteCompetenceID,
		CapacityID:     m.NoteCapacityID,
		Grade:          m.NoteGrade,
		GradeStatus:    m.NoteGradeStatus,
		Status:         m.NoteStatus,
		AssignmentDate: m.NoteAssignmentDate,
	}
}

func FromNoteModels(ms []noteModel.NoteModel) []NoteResponse {
	out := make([]NoteResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromNoteModel(m))
	}
	return out
}

// NoteDetailResponse is the per-request composite: the persisted note
// joined with whatever snapshots the sibling services resolved. Absent
// lookups stay nil and are omitted from the JSON.
type NoteDetailResponse struct {
	NoteID         uuid.UUID                    `json:"note_id"`
	Student        *academicDTO.StudentDto      `json:"student,omitempty"`
	Classroom      *academicDTO.ClassroomDto    `json:"classroom,omitempty"`
	DidacticUnit   *academicDTO.DidacticUnitDto `json:"didactic_unit,omitempty"`
	Competence     *academicDTO.CompetenceDto   `json:"competence,omitempty"`
	Capacity       *academicDTO.CapacityDto     `json:"capacity,omitempty"`
	Grade          float64                      `json:"grade"`
	GradeStatus    string                       `json:"grade_status"`
	Status         string                       `json:"status"`
	AssignmentDate time.Time                    `json:"assignment_date"`
}

// StudentDetailResponse joins one roster student with the classroom's
// representative didactic unit and everything graded under it.
type StudentDetailResponse struct {
	StudentID    string                       `json:"student_id"`
	Name         string                       `json:"name"`
	DidacticUnit *academicDTO.DidacticUnitDto `json:"didactic_unit,omitempty"`
	Competencies []academicDTO.CompetenceDto  `json:"competencies"`
	Capacities   []academicDTO.CapacityDto    `json:"capacities"`
}
