// internals/features/notes/controller/note_controller.go
package controller

import (
	"errors"
	"strings"

	noteDTO "gradebook_backend/internals/features/notes/dto"
	noteService "gradebook_backend/internals/features/notes/service"
	helper "gradebook_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NoteController struct {
	Service *noteService.NoteService
}

// CREATE
// POST /api/v1/notes/create
func (h *NoteController) CreateNote(c *fiber.Ctx) error {
	var req noteDTO.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// normalize ids before they travel to the sibling services
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.ClassroomID = strings.TrimSpace(req.ClassroomID)
	req.DidacticUnitID = strings.TrimSpace(req.DidacticUnitID)
	req.CompetenceID = strings.TrimSpace(req.CompetenceID)
	req.CapacityID = strings.TrimSpace(req.CapacityID)

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	note := req.ToModel()
	created, err := h.Service.CreateNote(c.UserContext(), &note)
	if err != nil {
		switch {
		case errors.Is(err, noteService.ErrDuplicateNote):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, noteService.ErrStudentNotEnrolled),
			errors.Is(err, noteService.ErrInvalidCompetence):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create note")
	}

	return helper.JsonCreated(c, "Note created", noteDTO.FromNoteModel(*created))
}

// UPDATE
// PUT /api/v1/notes/update/:id
func (h *NoteController) UpdateNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}

	var req noteDTO.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updated, err := h.Service.UpdateNote(c.UserContext(), id, *req.Grade)
	if err != nil {
		if errors.Is(err, noteService.ErrNoteNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update note")
	}

	return helper.JsonUpdated(c, "Note updated", noteDTO.FromNoteModel(*updated))
}

/* =========================================================
   NOTE LISTS
   ========================================================= */

// GET /api/v1/notes/list/active
func (h *NoteController) ListActiveNotes(c *fiber.Ctx) error {
	details, err := h.Service.NotesByStatus(c.UserContext(), "A")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list notes")
	}
	return helper.JsonList(c, "Active notes", details)
}

// GET /api/v1/notes/list/inactive
func (h *NoteController) ListInactiveNotes(c *fiber.Ctx) error {
	details, err := h.Service.NotesByStatus(c.UserContext(), "I")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list notes")
	}
	return helper.JsonList(c, "Inactive notes", details)
}

// GET /api/v1/notes/student/:studentId/notes
func (h *NoteController) NotesByStudent(c *fiber.Ctx) error {
	notes, err := h.Service.NotesByStudent(c.UserContext(), c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list notes")
	}
	return helper.JsonList(c, "Notes by student", noteDTO.FromNoteModels(notes))
}

// GET /api/v1/notes/classroom/:classroomId/notes
func (h *NoteController) NotesByClassroom(c *fiber.Ctx) error {
	details, err := h.Service.NotesByClassroom(c.UserContext(), c.Params("classroomId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list notes")
	}
	return helper.JsonList(c, "Notes by classroom", details)
}

/* =========================================================
   CATALOG BROWSING
   ========================================================= */

// GET /api/v1/notes/classroom/:classroomId/students
func (h *NoteController) StudentsByClassroom(c *fiber.Ctx) error {
	students := h.Service.StudentsByClassroom(c.UserContext(), c.Params("classroomId"))
	return helper.JsonList(c, "Students by classroom", students)
}

// GET /api/v1/notes/classroom/:classroomId/didactic-units
func (h *NoteController) DidacticUnitsByClassroom(c *fiber.Ctx) error {
	units := h.Service.DidacticUnitsByClassroom(c.UserContext(), c.Params("classroomId"))
	return helper.JsonList(c, "Didactic units by classroom", units)
}

// GET /api/v1/notes/classroom/:classroomId/student-details
func (h *NoteController) StudentDetailsByClassroom(c *fiber.Ctx) error {
	details := h.Service.StudentDetailsByClassroom(c.UserContext(), c.Params("classroomId"))
	return helper.JsonList(c, "Student details by classroom", details)
}

// GET /api/v1/notes/study-programs
func (h *NoteController) StudyPrograms(c *fiber.Ctx) error {
	programs := h.Service.StudyPrograms(c.UserContext())
	return helper.JsonList(c, "Active study programs", programs)
}

// GET /api/v1/notes/study-program/:programId/didactic-units
func (h *NoteController) DidacticUnitsByProgram(c *fiber.Ctx) error {
	units := h.Service.DidacticUnitsByProgram(c.UserContext(), c.Params("programId"))
	return helper.JsonList(c, "Didactic units by program", units)
}

// GET /api/v1/notes/study-program/:programId/classrooms
func (h *NoteController) ClassroomsByProgram(c *fiber.Ctx) error {
	classrooms := h.Service.ClassroomsByProgram(c.UserContext(), c.Params("programId"))
	return helper.JsonList(c, "Classrooms by program", classrooms)
}

// GET /api/v1/notes/didactic-unit/:didacticUnitId/classrooms
func (h *NoteController) ClassroomsByDidacticUnit(c *fiber.Ctx) error {
	classrooms := h.Service.ClassroomsByDidacticUnitWithRoster(c.UserContext(), c.Params("didacticUnitId"))
	return helper.JsonList(c, "Classrooms by didactic unit", classrooms)
}

// GET /api/v1/notes/didactic-unit/:didacticUnitId/competencies
func (h *NoteController) CompetenciesByDidacticUnit(c *fiber.Ctx) error {
	competencies := h.Service.CompetenciesByDidacticUnit(c.UserContext(), c.Params("didacticUnitId"))
	return helper.JsonList(c, "Competencies by didactic unit", competencies)
}

// GET /api/v1/notes/competence/:competenceId/capacities
func (h *NoteController) CapacitiesByCompetence(c *fiber.Ctx) error {
	capacities := h.Service.CapacitiesByCompetence(c.UserContext(), c.Params("competenceId"))
	return helper.JsonList(c, "Capacities by competence", capacities)
}

/* =========================================================
   EMAIL SUMMARY
   ========================================================= */

// POST /api/v1/notes/student/:studentId/send-notes?email=addr
func (h *NoteController) SendNotesByEmail(c *fiber.Ctx) error {
	emailAddress := strings.TrimSpace(c.Query("email"))
	if emailAddress == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email query parameter is required")
	}

	err := h.Service.SendStudentNotesByEmail(c.UserContext(), c.Params("studentId"), emailAddress)
	if err != nil {
		switch {
		case errors.Is(err, noteService.ErrNoNotes):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, noteService.ErrEmailDelivery):
			return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send notes email")
	}

	return helper.JsonOK(c, "Notes email sent", nil)
}
