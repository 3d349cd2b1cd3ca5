// internal/domain/entity/appointment.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment status
const (
	StatusPending   = "pending"
	StatusConducted = "conducted"
	StatusNoShow    = "no_show"
)

// Appointment represents a prospect meeting booked by an SDR
type Appointment struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Title              string    `json:"title"`
	Email              string    `json:"email"`
	Company            string    `json:"company"`
	Number             string    `json:"number"`
	LinkedIn           string    `json:"linkedin"`
	Country            string    `json:"country"`
	ScheduledOn        time.Time `json:"scheduledOn"`  // booking date
	ScheduledFor       time.Time `json:"scheduledFor"` // meeting date
	Status             string    `json:"status"`
	Opportunity        bool      `json:"opportunity"`
	Notes              string    `json:"notes"`
	RescheduleComments string    `json:"rescheduleComments"`
	MeetingNotes       string    `json:"meetingNotes"`
	SdrName            string    `json:"sdrName"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Conducted reports whether the meeting took place
func (a *Appointment) Conducted() bool {
	return a.Status == StatusConducted
}

// NoShow reports whether the prospect failed to show up
func (a *Appointment) NoShow() bool {
	return a.Status == StatusNoShow
}

// Pending reports whether the meeting has not happened yet
func (a *Appointment) Pending() bool {
	return a.Status != StatusConducted && a.Status != StatusNoShow
}

// StatusFromFlags collapses the legacy conducted/no-show pair into a
// single status. Conducted wins when both are set.
func StatusFromFlags(conducted, noShow bool) string {
	switch {
	case conducted:
		return StatusConducted
	case noShow:
		return StatusNoShow
	default:
		return StatusPending
	}
}
