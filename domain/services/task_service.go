package services

import (
	"context"

	"family-planner/domain/dto"
	"family-planner/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, taskID uint, req *dto.UpdateStatusRequest) (*models.Task, error)
	UpdateAssignee(ctx context.Context, taskID uint, req *dto.UpdateAssigneeRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uint) error
}
