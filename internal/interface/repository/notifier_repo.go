package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
	"sdrops-service/pkg/logger"
)

// WebhookNotifierRepository pushes notifications to an external webhook
type WebhookNotifierRepository struct {
	logger     logger.Logger
	webhookURL string
	client     *http.Client
}

// NewWebhookNotifierRepository creates a new webhook notifier. When a
// token URL is configured the client authenticates with OAuth2 client
// credentials; otherwise requests go out unauthenticated.
func NewWebhookNotifierRepository(webhookURL, tokenURL, clientID, clientSecret string, logger logger.Logger) repository.NotifierRepository {
	client := &http.Client{Timeout: 10 * time.Second}

	if tokenURL != "" {
		conf := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}
		client = conf.Client(context.Background())
		client.Timeout = 10 * time.Second
	}

	return &WebhookNotifierRepository{
		logger:     logger,
		webhookURL: webhookURL,
		client:     client,
	}
}

// Notify sends a notification to the webhook. Sends are best effort:
// with no webhook configured the notification is only logged.
func (r *WebhookNotifierRepository) Notify(ctx context.Context, notification *entity.Notification) error {
	if r.webhookURL == "" {
		r.logger.Info("Notification",
			"title", notification.Title,
			"description", notification.Description,
			"isError", notification.IsError)
		return nil
	}

	jsonData, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("notification webhook returned status %d: %v", resp.StatusCode, errorBody)
	}

	r.logger.Debug("Notification sent", "title", notification.Title)

	return nil
}
