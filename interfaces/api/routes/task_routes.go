package routes

import (
	"github.com/gofiber/fiber/v2"

	"family-planner/interfaces/api/handlers"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers) {
	tasks := app.Group("/tasks")
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Patch("/:id", h.TaskHandler.UpdateTask)
	tasks.Patch("/:id/status", h.TaskHandler.UpdateStatus)
	tasks.Patch("/:id/assignee", h.TaskHandler.UpdateAssignee)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
