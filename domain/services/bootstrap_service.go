package services

import (
	"context"

	"family-planner/domain/dto"
)

type BootstrapService interface {
	Bootstrap(ctx context.Context) (*dto.BootstrapResponse, error)
}
