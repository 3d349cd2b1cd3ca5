// internal/domain/entity/daily_statistic.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyStatistic holds one SDR's call activity counters for one day.
// Duplicate (sdr, date) rows are allowed; aggregates count them both.
type DailyStatistic struct {
	ID            uuid.UUID `json:"id"`
	SdrName       string    `json:"sdrName"`
	Date          time.Time `json:"date"`
	Calls         int       `json:"calls"`
	Connected     int       `json:"connected"`
	Emails        int       `json:"emails"`
	PotentialAppt int       `json:"potentialAppt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
