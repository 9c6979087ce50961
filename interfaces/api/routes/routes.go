package routes

import (
	"github.com/gofiber/fiber/v2"

	"family-planner/interfaces/api/handlers"
)

// SetupRoutes mounts everything at the root; the board API has no
// version prefix.
func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)
	SetupBootstrapRoutes(app, h)
	SetupTaskRoutes(app, h)
}
