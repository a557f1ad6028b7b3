// internals/features/notes/service/note_service.go
//
// Top-level note workflows: create, update, lists, email summary.
// Validation and assembly live in validation.go / assembler.go; this
// file owns sequencing and the persistence calls.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	academicClient "gradebook_backend/internals/features/academic/client"
	academicDTO "gradebook_backend/internals/features/academic/dto"
	noteDTO "gradebook_backend/internals/features/notes/dto"
	noteModel "gradebook_backend/internals/features/notes/model"
	noteRepo "gradebook_backend/internals/features/notes/repository"

	"github.com/google/uuid"
)

type NoteService struct {
	Repo     noteRepo.NoteRepository
	Academic *academicClient.Client
}

func NewNoteService(repo noteRepo.NoteRepository, academic *academicClient.Client) *NoteService {
	return &NoteService{Repo: repo, Academic: academic}
}

/* =========================================================
   CREATE
   duplicate-check → enrollment-check → competence-check →
   classify → persist; any failed check is terminal.
   ========================================================= */

func (s *NoteService) CreateNote(ctx context.Context, note *noteModel.NoteModel) (*noteModel.NoteModel, error) {
	existing, err := s.Repo.FindByStudentAndCapacity(ctx, note.NoteStudentID, note.NoteCapacityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("[NOTES] duplicate grade for student=%s capacity=%s", note.NoteStudentID, note.NoteCapacityID)
		return nil, ErrDuplicateNote
	}

	if !s.studentInClassroom(ctx, note) {
		log.Printf("[NOTES] student=%s not enrolled in classroom=%s", note.NoteStudentID, note.NoteClassroomID)
		return nil, ErrStudentNotEnrolled
	}

	if !s.competenceAndCapacityValid(ctx, note) {
		log.Printf("[NOTES] competence=%s/capacity=%s invalid for unit=%s", note.NoteCompetenceID, note.NoteCapacityID, note.NoteDidacticUnitID)
		return nil, ErrInvalidCompetence
	}

	note.NoteGradeStatus = DetermineGradeStatus(note.NoteGrade)
	note.NoteStatus = "A"
	note.NoteAssignmentDate = time.Now()

	if err := s.Repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

/* =========================================================
   UPDATE
   No re-validation of enrollment or competence linkage: the
   creation-time checks are trusted. Only grade and its derived
   status change; assignment date and foreign keys stay put.
   ========================================================= */

func (s *NoteService) UpdateNote(ctx context.Context, id uuid.UUID, grade float64) (*noteModel.NoteModel, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNoteNotFound
	}

	existing.NoteGrade = grade
	existing.NoteGradeStatus = DetermineGradeStatus(grade)

	if err := s.Repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

/* =========================================================
   LISTS
   ========================================================= */

// NotesByStatus answers fully resolved composites, one fan-out join
// per note.
func (s *NoteService) NotesByStatus(ctx context.Context, status string) ([]noteDTO.NoteDetailResponse, error) {
	notes, err := s.Repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.buildNoteDetails(ctx, notes), nil
}

// NotesByStudent answers raw records.
func (s *NoteService) NotesByStudent(ctx context.Context, studentID string) ([]noteModel.NoteModel, error) {
	return s.Repo.FindByStudentID(ctx, studentID)
}

// NotesByClassroom answers fully resolved composites.
func (s *NoteService) NotesByClassroom(ctx context.Context, classroomID string) ([]noteDTO.NoteDetailResponse, error) {
	notes, err := s.Repo.FindByClassroomID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	return s.buildNoteDetails(ctx, notes), nil
}

/* =========================================================
   CATALOG BROWSING (gateway pass-throughs)
   ========================================================= */

func (s *NoteService) StudyPrograms(ctx context.Context) []academicDTO.StudyProgramDto {
	return s.Academic.ListActiveStudyPrograms(ctx)
}

func (s *NoteService) DidacticUnitsByProgram(ctx context.Context, programID string) []academicDTO.DidacticUnitDto {
	return s.Academic.ListDidacticUnitsByProgram(ctx, programID)
}

func (s *NoteService) ClassroomsByProgram(ctx context.Context, programID string) []academicDTO.ClassroomDto {
	return s.Academic.ListClassroomsByStudyProgram(ctx, programID)
}

func (s *NoteService) CompetenciesByDidacticUnit(ctx context.Context, didacticUnitID string) []academicDTO.CompetenceDto {
	return s.Academic.ListCompetenciesByDidacticUnit(ctx, didacticUnitID)
}

func (s *NoteService) CapacitiesByCompetence(ctx context.Context, competenceID string) []academicDTO.CapacityDto {
	return s.Academic.ListCapacitiesByCompetence(ctx, competenceID)
}

func (s *NoteService) StudentsByClassroom(ctx context.Context, classroomID string) []academicDTO.StudentDto {
	return s.Academic.ListStudentsByClassroom(ctx, classroomID)
}

/* =========================================================
   EMAIL SUMMARY
   ========================================================= */

// SendStudentNotesByEmail composes one line per note (notes whose
// didactic unit cannot be resolved are left out of the body) and sends
// the summary through the email service. Delivery failure always
// surfaces as ErrEmailDelivery.
func (s *NoteService) SendStudentNotesByEmail(ctx context.Context, studentID, emailAddress string) error {
	notes, err := s.Repo.FindByStudentID(ctx, studentID)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return ErrNoNotes
	}

	var body strings.Builder
	body.WriteString("Here are your grades:\n")
	for _, note := range notes {
		unit := s.Academic.FindDidacticUnitByID(ctx, note.NoteDidacticUnitID)
		if unit.Absent() {
			continue
		}
		fmt.Fprintf(&body, "Subject: %s, Grade: %.2f, Status: %s\n", unit.Value.Name, note.NoteGrade, note.NoteGradeStatus)
	}

	username := studentID
	if student := s.Academic.FindStudentByID(ctx, studentID); student.Found() {
		username = student.Value.FullName()
	}

	email := academicDTO.Email{
		To:          emailAddress,
		Subject:     "Your grades summary",
		Username:    username,
		MainMessage: body.String(),
	}
	if err := s.Academic.SendEmail(ctx, email); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	return nil
}
