package serviceimpl

import (
	"context"

	"family-planner/domain/dto"
	"family-planner/domain/repositories"
	"family-planner/domain/services"
	"family-planner/pkg/logger"
)

type BootstrapServiceImpl struct {
	userRepo repositories.UserRepository
	taskRepo repositories.TaskRepository
}

func NewBootstrapService(userRepo repositories.UserRepository, taskRepo repositories.TaskRepository) services.BootstrapService {
	return &BootstrapServiceImpl{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// Bootstrap returns every user and every task in one payload. There is no
// pagination; the board is small enough that the unbounded result is an
// accepted limitation.
func (s *BootstrapServiceImpl) Bootstrap(ctx context.Context) (*dto.BootstrapResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users for bootstrap", "error", err)
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks for bootstrap", "error", err)
		return nil, err
	}

	resp := &dto.BootstrapResponse{
		Users: make([]dto.UserResponse, len(users)),
		Tasks: make([]dto.TaskResponse, len(tasks)),
	}
	for i, u := range users {
		resp.Users[i] = *dto.NewUserResponse(u)
	}
	for i, t := range tasks {
		resp.Tasks[i] = *dto.NewTaskResponse(t)
	}

	return resp, nil
}
