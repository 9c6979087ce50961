package routes

import (
	"github.com/gofiber/fiber/v2"

	"family-planner/interfaces/api/handlers"
)

func SetupBootstrapRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/bootstrap", h.BootstrapHandler.Bootstrap)
}
