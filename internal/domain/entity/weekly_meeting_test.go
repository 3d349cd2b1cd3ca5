package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestWeekBucket(t *testing.T) {
	assert.Equal(t, "Week 1 (1-7th)", WeekBucket(day(1)))
	assert.Equal(t, "Week 1 (1-7th)", WeekBucket(day(7)))
	assert.Equal(t, "Week 2 (8-14th)", WeekBucket(day(8)))
	assert.Equal(t, "Week 3 (15-21st)", WeekBucket(day(15)))
	assert.Equal(t, "Week 4 (22-28th)", WeekBucket(day(28)))
	assert.Equal(t, "Week 5 (29-31st)", WeekBucket(day(29)))
	assert.Equal(t, "Week 5 (29-31st)", WeekBucket(day(31)))
}

func TestMeetingFromAppointment(t *testing.T) {
	a := &Appointment{
		ID:           uuid.New(),
		FirstName:    "Jane",
		LastName:     "Doe",
		Title:        "VP Sales",
		Email:        "jane@acme.com",
		Company:      "Acme",
		Number:       "555-0100",
		Country:      "Germany",
		ScheduledFor: time.Date(2025, time.April, 16, 9, 0, 0, 0, time.UTC),
		SdrName:      "Alex",
	}

	m := MeetingFromAppointment(a)

	assert.Equal(t, AppointmentIDPrefix+a.ID.String(), m.ID)
	assert.Equal(t, SourceAppointment, m.Source)
	require.NotNil(t, m.AppointmentID)
	assert.Equal(t, a.ID, *m.AppointmentID)
	assert.Equal(t, "Week 3 (15-21st)", m.Week)
	assert.Equal(t, "April", m.Month)
	assert.Equal(t, "2025", m.Year)
	assert.Equal(t, "Acme", m.CompanyName)
	assert.Equal(t, "Alex", m.AssignedTo)
	assert.Equal(t, "Germany", m.Location)
	assert.Equal(t, "555-0100", m.ContactNo)
	assert.False(t, m.Editable())
}

func TestManualMeetingEditable(t *testing.T) {
	m := &WeeklyMeeting{Source: SourceManual}
	assert.True(t, m.Editable())
}
