// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicClient "gradebook_backend/internals/features/academic/client"
	noteRepo "gradebook_backend/internals/features/notes/repository"
	noteRoute "gradebook_backend/internals/features/notes/route"
	noteService "gradebook_backend/internals/features/notes/service"
)

// SetupRoutes wires the feature graph: repository over the shared DB,
// gateway client from env, service on top, routes at the edge.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	repo := noteRepo.NewNoteRepository(db)
	academic := academicClient.NewFromEnv()
	svc := noteService.NewNoteService(repo, academic)

	api := app.Group("/api/v1")
	noteRoute.NoteRoutes(api, svc)
}
