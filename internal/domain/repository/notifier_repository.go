package repository

import (
	"context"

	"sdrops-service/internal/domain/entity"
)

// NotifierRepository pushes user-facing notifications to the webhook.
// Callers treat sends as fire-and-forget; a returned error is logged only.
type NotifierRepository interface {
	Notify(ctx context.Context, notification *entity.Notification) error
}
