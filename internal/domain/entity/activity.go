// internal/domain/entity/activity.go
package entity

import (
	"time"
)

// Activity actions
const (
	ActionCreated  = "CREATED"
	ActionUpdated  = "UPDATED"
	ActionDeleted  = "DELETED"
	ActionImported = "IMPORTED"
)

// Activity is one audit entry describing a mutation against a collection
type Activity struct {
	ID         string                 `bson:"_id,omitempty"`
	Collection string                 `bson:"collection"`
	Action     string                 `bson:"action"`
	RecordID   string                 `bson:"recordId,omitempty"`
	Detail     map[string]interface{} `bson:"detail,omitempty"`
	OccurredAt time.Time              `bson:"occurredAt"`
}
