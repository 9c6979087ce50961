package repositories

import (
	"context"

	"family-planner/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	// Update writes the full row back; merge semantics live in the service.
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	// List returns every task ordered by creation time ascending.
	List(ctx context.Context) ([]*models.Task, error)
}
