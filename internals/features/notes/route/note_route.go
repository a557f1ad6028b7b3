// internals/features/notes/route/note_route.go
package route

import (
	noteController "gradebook_backend/internals/features/notes/controller"
	noteService "gradebook_backend/internals/features/notes/service"

	"github.com/gofiber/fiber/v2"
)

/*
Teacher-facing routes: grade workflows + catalog browsing.
Mount example: NoteRoutes(app.Group("/api/v1"), svc)
*/
func NoteRoutes(r fiber.Router, svc *noteService.NoteService) {
	ctl := &noteController.NoteController{Service: svc}
	notes := r.Group("/notes")

	notes.Post("/create", ctl.CreateNote)      // POST /api/v1/notes/create
	notes.Put("/update/:id", ctl.UpdateNote)   // PUT  /api/v1/notes/update/:id
	notes.Get("/list/active", ctl.ListActiveNotes)
	notes.Get("/list/inactive", ctl.ListInactiveNotes)

	notes.Get("/student/:studentId/notes", ctl.NotesByStudent)
	notes.Post("/student/:studentId/send-notes", ctl.SendNotesByEmail)

	notes.Get("/classroom/:classroomId/notes", ctl.NotesByClassroom)
	notes.Get("/classroom/:classroomId/students", ctl.StudentsByClassroom)
	notes.Get("/classroom/:classroomId/didactic-units", ctl.DidacticUnitsByClassroom)
	notes.Get("/classroom/:classroomId/student-details", ctl.StudentDetailsByClassroom)

	notes.Get("/study-programs", ctl.StudyPrograms)
	notes.Get("/study-program/:programId/didactic-units", ctl.DidacticUnitsByProgram)
	notes.Get("/study-program/:programId/classrooms", ctl.ClassroomsByProgram)

	notes.Get("/didactic-unit/:didacticUnitId/classrooms", ctl.ClassroomsByDidacticUnit)
	notes.Get("/didactic-unit/:didacticUnitId/competencies", ctl.CompetenciesByDidacticUnit)
	notes.Get("/competence/:competenceId/capacities", ctl.CapacitiesByCompetence)
}
