// internals/features/notes/model/note_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// NOTE:
// - foreign ids are opaque strings owned by the sibling services
// - (note_student_id, note_capacity_id) uniqueness is enforced by the
//   create workflow, not by a DB constraint
// - note_status: "A" active / "I" inactive (soft-delete lives upstream)
type NoteModel struct {
	NoteID uuid.UUID `gorm:"column:note_id;type:uuid;default:gen_random_uuid();primaryKey" json:"note_id"`

	NoteStudentID      string `gorm:"column:note_student_id;type:varchar(64);not null;index" json:"note_student_id"`
	NoteClassroomID    string `gorm:"column:note_classroom_id;type:varchar(64);not null;index" json:"note_classroom_id"`
	NoteDidacticUnitID string `gorm:"column:note_didactic_unit_id;type:varchar(64);not null" json:"note_didactic_unit_id"`
	NoteCompetenceID   string `gorm:"column:note_competence_id;type:varchar(64);not null" json:"note_competence_id"`
	NoteCapacityID     string `gorm:"column:note_capacity_id;type:varchar(64);not null;index" json:"note_capacity_id"`

	NoteGrade       float64 `gorm:"column:note_grade;type:numeric(5,2);not null" json:"note_grade"`
	NoteGradeStatus string  `gorm:"column:note_grade_status;type:varchar(2);not null" json:"note_grade_status"`
	NoteStatus      string  `gorm:"column:note_status;type:varchar(1);not null;default:'A'" json:"note_status"`

	// Server-assigned at creation, immutable afterwards.
	NoteAssignmentDate time.Time `gorm:"column:note_assignment_date;not null" json:"note_assignment_date"`
}

func (NoteModel) TableName() string { return "notes" }
