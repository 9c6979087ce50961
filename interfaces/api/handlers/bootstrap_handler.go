package handlers

import (
	"github.com/gofiber/fiber/v2"

	"family-planner/domain/services"
	"family-planner/pkg/logger"
	"family-planner/pkg/utils"
)

type BootstrapHandler struct {
	bootstrapService services.BootstrapService
}

func NewBootstrapHandler(bootstrapService services.BootstrapService) *BootstrapHandler {
	return &BootstrapHandler{
		bootstrapService: bootstrapService,
	}
}

// Bootstrap returns the bare {users, tasks} object, not the success
// envelope; clients consume it directly on startup.
func (h *BootstrapHandler) Bootstrap(c *fiber.Ctx) error {
	ctx := c.UserContext()

	resp, err := h.bootstrapService.Bootstrap(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Bootstrap failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
