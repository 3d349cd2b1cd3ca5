package repository

import (
	"context"

	"github.com/google/uuid"

	"sdrops-service/internal/domain/entity"
)

// IncentiveRepository defines the interface for SPIFF storage operations
type IncentiveRepository interface {
	List(ctx context.Context) ([]*entity.Incentive, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Incentive, error)
	Create(ctx context.Context, incentive *entity.Incentive) error
	Update(ctx context.Context, incentive *entity.Incentive) error
	Delete(ctx context.Context, id uuid.UUID) error
}
