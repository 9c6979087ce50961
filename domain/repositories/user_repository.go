package repositories

import (
	"context"

	"family-planner/domain/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
}
