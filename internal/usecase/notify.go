package usecase

import (
	"context"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
	"sdrops-service/pkg/logger"
	"sdrops-service/pkg/metrics"
)

// sendNotification pushes a webhook notification, logging failures
// rather than propagating them
func sendNotification(ctx context.Context, notifier repository.NotifierRepository, log logger.Logger, m *metrics.Metrics, title, description string, isError bool) {
	if notifier == nil {
		return
	}

	notification := &entity.Notification{
		Title:       title,
		Description: description,
		IsError:     isError,
	}
	if err := notifier.Notify(ctx, notification); err != nil {
		log.Error("Failed to send notification", "title", title, "error", err)
		return
	}
	if m != nil {
		m.NotificationsSent.Inc()
	}
}

// recordActivity writes one audit entry, logging failures rather than
// propagating them
func recordActivity(ctx context.Context, activityRepo repository.ActivityRepository, log logger.Logger, collection, action, recordID string, detail map[string]interface{}) {
	if activityRepo == nil {
		return
	}

	activity := &entity.Activity{
		Collection: collection,
		Action:     action,
		RecordID:   recordID,
		Detail:     detail,
	}
	if err := activityRepo.Record(ctx, activity); err != nil {
		log.Error("Failed to record activity", "collection", collection, "action", action, "error", err)
	}
}
