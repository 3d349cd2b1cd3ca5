// internal/domain/entity/notification.go
package entity

// Notification is the message shape pushed to the notification webhook
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsError     bool   `json:"isError,omitempty"`
}
