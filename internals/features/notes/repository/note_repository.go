// internals/features/notes/repository/note_repository.go
package repository

import (
	"context"
	"errors"

	noteModel "gradebook_backend/internals/features/notes/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteRepository is the minimal CRUD contract the orchestration layer
// needs. Single-item finders answer (nil, nil) when nothing matches;
// a non-nil error always means the store itself failed.
type NoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*noteModel.NoteModel, error)
	FindByStatus(ctx context.Context, status string) ([]noteModel.NoteModel, error)
	FindByStudentID(ctx context.Context, studentID string) ([]noteModel.NoteModel, error)
	FindByClassroomID(ctx context.Context, classroomID string) ([]noteModel.NoteModel, error)
	FindByStudentAndCapacity(ctx context.Context, studentID, capacityID string) (*noteModel.NoteModel, error)
	Create(ctx context.Context, note *noteModel.NoteModel) error
	Save(ctx context.Context, note *noteModel.NoteModel) error
}

type GormNoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{DB: db}
}

func (r *GormNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*noteModel.NoteModel, error) {
	var m noteModel.NoteModel
	err := r.DB.WithContext(ctx).
		Where("note_id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormNoteRepository) FindByStatus(ctx context.Context, status string) ([]noteModel.NoteModel, error) {
	var ms []noteModel.NoteModel
	err := r.DB.WithContext(ctx).
		Where("note_status = ?", status).
		Order("note_assignment_date DESC").
		Find(&ms).Error
	return ms, err
}

func (r *GormNoteRepository) FindByStudentID(ctx context.Context, studentID string) ([]noteModel.NoteModel, error) {
	var ms []noteModel.NoteModel
	err := r.DB.WithContext(ctx).
		Where("note_student_id = ?", studentID).
		Order("note_assignment_date DESC").
		Find(&ms).Error
	return ms, err
}

func (r *GormNoteRepository) FindByClassroomID(ctx context.Context, classroomID string) ([]noteModel.NoteModel, error) {
	var ms []noteModel.NoteModel
	err := r.DB.WithContext(ctx).
		Where("note_classroom_id = ?", classroomID).
		Order("note_assignment_date DESC").
		Find(&ms).Error
	return ms, err
}

// FindByStudentAndCapacity is the compound probe behind duplicate
// detection at create time.
func (r *GormNoteRepository) FindByStudentAndCapacity(ctx context.Context, studentID, capacityID string) (*noteModel.NoteModel, error) {
	var m noteModel.NoteModel
	err := r.DB.WithContext(ctx).
		Where("note_student_id = ? AND note_capacity_id = ?", studentID, capacityID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormNoteRepository) Create(ctx context.Context, note *noteModel.NoteModel) error {
	return r.DB.WithContext(ctx).Create(note).Error
}

func (r *GormNoteRepository) Save(ctx context.Context, note *noteModel.NoteModel) error {
	return r.DB.WithContext(ctx).Save(note).Error
}
