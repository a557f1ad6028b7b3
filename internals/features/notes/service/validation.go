// internals/features/notes/service/validation.go
//
// Cross-reference checks behind note creation. Both are read-only:
// they only trigger remote fetches, never writes.
package service

import (
	"context"

	noteModel "gradebook_backend/internals/features/notes/model"
)

// studentInClassroom checks the classroom's enrollment roster for the
// note's student. An absent classroom fails the check; it is never
// vacuously true.
func (s *NoteService) studentInClassroom(ctx context.Context, note *noteModel.NoteModel) bool {
	classroom := s.Academic.FindClassroomByID(ctx, note.NoteClassroomID)
	if classroom.Absent() {
		return false
	}
	for _, detail := range classroom.Value.EnrollmentDetail {
		if detail.Student.ID == note.NoteStudentID {
			return true
		}
	}
	return false
}

// competenceAndCapacityValid checks the claimed hierarchy: the
// competence must belong to the note's didactic unit, and the capacity
// must belong to the note's competence. The capacity fetch is ordered
// after the competence check because its validation depends on the
// competence result; any absent intermediate fails.
func (s *NoteService) competenceAndCapacityValid(ctx context.Context, note *noteModel.NoteModel) bool {
	competence := s.Academic.FindCompetencyByID(ctx, note.NoteCompetenceID)
	if competence.Absent() {
		return false
	}
	if competence.Value.DidacticUnitID != note.NoteDidacticUnitID {
		return false
	}

	capacity := s.Academic.FindCapacityByID(ctx, note.NoteCapacityID)
	if capacity.Absent() {
		return false
	}
	return capacity.Value.CompetencyID == note.NoteCompetenceID
}
