// internal/domain/entity/weekly_meeting.go
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WeeklyMeeting source tags
const (
	SourceManual      = "manual"
	SourceAppointment = "appointment"
)

// AppointmentIDPrefix marks meeting rows synthesized from appointments
const AppointmentIDPrefix = "appt-"

// WeeklyMeeting is one row of the weekly report. Manual rows are stored;
// appointment rows are synthesized at read time and cannot be edited.
type WeeklyMeeting struct {
	ID            string     `json:"id"`
	Source        string     `json:"source"`
	AppointmentID *uuid.UUID `json:"appointmentId,omitempty"`
	Week          string     `json:"week"`
	Month         string     `json:"month"`
	Year          string     `json:"year"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	CompanyName   string     `json:"companyName"`
	Title         string     `json:"title"`
	Email         string     `json:"email"`
	ContactNo     string     `json:"contactNo"`
	AssignedTo    string     `json:"assignedTo"`
	Location      string     `json:"location"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Editable reports whether the row may be updated or deleted
func (m *WeeklyMeeting) Editable() bool {
	return m.Source == SourceManual
}

var weekLabels = [5]string{
	"Week 1 (1-7th)",
	"Week 2 (8-14th)",
	"Week 3 (15-21st)",
	"Week 4 (22-28th)",
	"Week 5 (29-31st)",
}

// WeekBucket derives the week label from the day of month alone:
// days 1-7 fall in week 1, 8-14 in week 2 and so on, with day 29 and
// later in week 5. Actual weekday boundaries are ignored.
func WeekBucket(t time.Time) string {
	bucket := (t.Day()-1)/7 + 1
	if bucket > 5 {
		bucket = 5
	}
	return weekLabels[bucket-1]
}

// MeetingFromAppointment synthesizes a weekly report row from an
// appointment's scheduled-for date and prospect details.
func MeetingFromAppointment(a *Appointment) *WeeklyMeeting {
	id := a.ID
	return &WeeklyMeeting{
		ID:            AppointmentIDPrefix + a.ID.String(),
		Source:        SourceAppointment,
		AppointmentID: &id,
		Week:          WeekBucket(a.ScheduledFor),
		Month:         a.ScheduledFor.Month().String(),
		Year:          fmt.Sprintf("%d", a.ScheduledFor.Year()),
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		CompanyName:   a.Company,
		Title:         a.Title,
		Email:         a.Email,
		ContactNo:     a.Number,
		AssignedTo:    a.SdrName,
		Location:      a.Country,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
