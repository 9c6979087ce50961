package serviceimpl

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"family-planner/domain/dto"
	"family-planner/domain/models"
	"family-planner/domain/repositories"
	"family-planner/domain/services"
	"family-planner/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	if err := s.checkAssignee(ctx, req.AssignedToUserID); err != nil {
		return nil, err
	}

	status := models.Status(req.Status)
	if status == "" {
		status = models.StatusTodo
	}

	task := &models.Task{
		Title:            req.Title,
		Description:      req.Description,
		DueDay:           models.Weekday(req.DueDay),
		Priority:         models.Priority(req.Priority),
		Status:           status,
		AssignedToUserID: req.AssignedToUserID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "title", req.Title, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "due_day", task.DueDay)
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// Apply-if-present merge: absent fields leave the stored value alone.
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDay != nil {
		task.DueDay = models.Weekday(*req.DueDay)
	}
	if req.Priority != nil {
		task.Priority = models.Priority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = models.Status(*req.Status)
	}
	// The assignee needs key presence, not just non-nil: an explicit null
	// releases the task, a missing key keeps the current assignee.
	if req.AssignedToUserID.Set {
		if err := s.checkAssignee(ctx, req.AssignedToUserID.Value); err != nil {
			return nil, err
		}
		task.AssignedToUserID = req.AssignedToUserID.Value
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	return task, nil
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, taskID uint, req *dto.UpdateStatusRequest) (*models.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = models.Status(req.Status)

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task status", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task status updated", "task_id", taskID, "status", task.Status)
	return task, nil
}

func (s *TaskServiceImpl) UpdateAssignee(ctx context.Context, taskID uint, req *dto.UpdateAssigneeRequest) (*models.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.checkAssignee(ctx, req.AssignedToUserID); err != nil {
		return nil, err
	}

	// nil clears the assignment; the task becomes open again.
	task.AssignedToUserID = req.AssignedToUserID

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task assignee", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task assignee updated", "task_id", taskID, "open", task.Open())
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uint) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID)
			return services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return nil
}

func (s *TaskServiceImpl) getTask(ctx context.Context, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Task not found", "task_id", taskID)
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) checkAssignee(ctx context.Context, userID *uint) error {
	if userID == nil {
		return nil
	}
	exists, err := s.userRepo.Exists(ctx, *userID)
	if err != nil {
		return err
	}
	if !exists {
		logger.WarnContext(ctx, "Assignee does not exist", "user_id", *userID)
		return services.ErrAssigneeNotFound
	}
	return nil
}
