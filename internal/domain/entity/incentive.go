// internal/domain/entity/incentive.go
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Incentive represents a SPIFF bonus announced for a representative
type Incentive struct {
	ID              uuid.UUID       `json:"id"`
	Approved        bool            `json:"approved"`
	DateAnnounced   time.Time       `json:"dateAnnounced"`
	AnnouncedBy     string          `json:"announcedBy"`
	BdrName         string          `json:"bdrName"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Reason          string          `json:"reason"`
	AdditionalNotes string          `json:"additionalNotes"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
