package repository

import (
	"context"

	"sdrops-service/internal/domain/entity"
)

// ActivityRepository defines the interface for the mutation audit log
type ActivityRepository interface {
	Record(ctx context.Context, activity *entity.Activity) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}
