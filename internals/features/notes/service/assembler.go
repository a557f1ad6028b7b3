// internals/features/notes/service/assembler.go
//
// Composite view assembly: fan out the independent remote reads, wait
// for all of them to settle, then join. Absent lookups leave their
// composite field nil instead of failing the whole view.
package service

import (
	"context"

	academicDTO "gradebook_backend/internals/features/academic/dto"
	noteDTO "gradebook_backend/internals/features/notes/dto"
	noteModel "gradebook_backend/internals/features/notes/model"

	"golang.org/x/sync/errgroup"
)

// BuildNoteDetail resolves the five snapshots concurrently. Every
// branch writes its own field, so the join needs no locking; the
// errgroup context ties all branches to the caller's cancellation.
func (s *NoteService) BuildNoteDetail(ctx context.Context, note noteModel.NoteModel) noteDTO.NoteDetailResponse {
	detail := noteDTO.NoteDetailResponse{
		NoteID:         note.NoteID,
		Grade:          note.NoteGrade,
		GradeStatus:    note.NoteGradeStatus,
		Status:         note.NoteStatus,
		AssignmentDate: note.NoteAssignmentDate,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		detail.Student = s.Academic.FindStudentByID(gctx, note.NoteStudentID).Value
		return nil
	})
	g.Go(func() error {
		detail.Classroom = s.Academic.FindClassroomByID(gctx, note.NoteClassroomID).Value
		return nil
	})
	g.Go(func() error {
		detail.DidacticUnit = s.Academic.FindDidacticUnitByID(gctx, note.NoteDidacticUnitID).Value
		return nil
	})
	g.Go(func() error {
		detail.Competence = s.Academic.FindCompetencyByID(gctx, note.NoteCompetenceID).Value
		return nil
	})
	g.Go(func() error {
		detail.Capacity = s.Academic.FindCapacityByID(gctx, note.NoteCapacityID).Value
		return nil
	})
	g.Wait() //nolint:errcheck // branches never return errors, Wait is the join barrier

	return detail
}

func (s *NoteService) buildNoteDetails(ctx context.Context, notes []noteModel.NoteModel) []noteDTO.NoteDetailResponse {
	details := make([]noteDTO.NoteDetailResponse, 0, len(notes))
	for _, n := range notes {
		details = append(details, s.BuildNoteDetail(ctx, n))
	}
	return details
}

// DidacticUnitsByClassroom traverses the classroom roster: collect the
// distinct unit references embedded in the enrollment entries, then
// resolve each through the didactic-unit service. Units that fail to
// resolve are omitted.
func (s *NoteService) DidacticUnitsByClassroom(ctx context.Context, classroomID string) []academicDTO.DidacticUnitDto {
	classroom := s.Academic.FindClassroomByID(ctx, classroomID)
	if classroom.Absent() {
		return nil
	}

	seen := map[string]bool{}
	units := []academicDTO.DidacticUnitDto{}
	for _, detail := range classroom.Value.EnrollmentDetail {
		for _, ref := range detail.DidacticUnit {
			if seen[ref.DidacticID] {
				continue
			}
			seen[ref.DidacticID] = true
			if unit := s.Academic.FindDidacticUnitByID(ctx, ref.DidacticID); unit.Found() {
				units = append(units, *unit.Value)
			}
		}
	}
	return units
}

// StudentDetailsByClassroom builds one record per roster student: the
// student, the classroom's representative didactic unit, every
// competence under that unit and every capacity under each competence.
// Units come from the classroom service's own unit listing, not from
// the roster entries; the first listed unit is the representative one,
// and no listed units means no records.
func (s *NoteService) StudentDetailsByClassroom(ctx context.Context, classroomID string) []noteDTO.StudentDetailResponse {
	students := s.Academic.ListStudentsByClassroom(ctx, classroomID)
	if len(students) == 0 {
		return nil
	}

	units := s.Academic.ListDidacticUnitsByClassroom(ctx, classroomID)
	if len(units) == 0 {
		return nil
	}
	unit := units[0]

	competencies := s.Academic.ListCompetenciesByDidacticUnit(ctx, unit.DidacticID)
	capacities := []academicDTO.CapacityDto{}
	for _, competence := range competencies {
		capacities = append(capacities, s.Academic.ListCapacitiesByCompetence(ctx, competence.CompetencyID)...)
	}

	details := make([]noteDTO.StudentDetailResponse, 0, len(students))
	for _, student := range students {
		details = append(details, noteDTO.StudentDetailResponse{
			StudentID:    student.ID,
			Name:         student.FullName(),
			DidacticUnit: &unit,
			Competencies: competencies,
			Capacities:   capacities,
		})
	}
	return details
}

// ClassroomsByDidacticUnitWithRoster lists the unit's classrooms and
// rebuilds each roster from an independent student fetch, discarding
// whatever enrollment list the raw classroom payload embedded.
func (s *NoteService) ClassroomsByDidacticUnitWithRoster(ctx context.Context, didacticUnitID string) []academicDTO.ClassroomDto {
	classrooms := s.Academic.ListClassroomsByDidacticUnit(ctx, didacticUnitID)
	for i := range classrooms {
		students := s.Academic.ListStudentsByClassroom(ctx, classrooms[i].ClassroomID)
		rebuilt := make([]academicDTO.EnrollmentDetailDto, 0, len(students))
		for _, student := range students {
			rebuilt = append(rebuilt, academicDTO.EnrollmentDetailDto{Student: student})
		}
		classrooms[i].EnrollmentDetail = rebuilt
	}
	return classrooms
}
