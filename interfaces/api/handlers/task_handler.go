package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"family-planner/domain/dto"
	"family-planner/domain/services"
	"family-planner/pkg/logger"
	"family-planner/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		return h.taskError(c, err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "title", task.Title)

	return utils.CreatedResponse(c, dto.NewTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := h.taskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "task_id", taskID, "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, &req)
	if err != nil {
		return h.taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.NewTaskResponse(task))
}

func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := h.taskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "task_id", taskID, "details", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.UpdateStatus(ctx, taskID, &req)
	if err != nil {
		return h.taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.NewTaskResponse(task))
}

func (h *TaskHandler) UpdateAssignee(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := h.taskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateAssigneeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	task, err := h.taskService.UpdateAssignee(ctx, taskID, &req)
	if err != nil {
		return h.taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.NewTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := h.taskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		return h.taskError(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) taskID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		logger.WarnContext(c.UserContext(), "Invalid task ID", "task_id", c.Params("id"))
		return 0, errors.New("invalid task id")
	}
	return uint(id), nil
}

// taskError maps service errors onto the two failure categories the API
// distinguishes: not-found and validation.
func (h *TaskHandler) taskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, services.ErrAssigneeNotFound):
		return utils.ValidationErrorResponse(c, map[string]string{
			"assignedToUserId": "assigned user does not exist",
		})
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
