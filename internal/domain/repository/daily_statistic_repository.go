package repository

import (
	"context"

	"github.com/google/uuid"

	"sdrops-service/internal/domain/entity"
)

// DailyStatisticRepository defines the interface for daily statistic storage operations
type DailyStatisticRepository interface {
	List(ctx context.Context) ([]*entity.DailyStatistic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyStatistic, error)
	Create(ctx context.Context, stat *entity.DailyStatistic) error
	Update(ctx context.Context, stat *entity.DailyStatistic) error
	Delete(ctx context.Context, id uuid.UUID) error
}
