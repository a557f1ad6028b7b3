package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registers the shared middleware chain.
// Order matters: recovery first so a panic in CORS handling still
// returns a clean 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
}
