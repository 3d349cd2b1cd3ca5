package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromFlags(t *testing.T) {
	assert.Equal(t, StatusConducted, StatusFromFlags(true, false))
	assert.Equal(t, StatusNoShow, StatusFromFlags(false, true))
	assert.Equal(t, StatusPending, StatusFromFlags(false, false))

	// conducted wins when both flags are set
	assert.Equal(t, StatusConducted, StatusFromFlags(true, true))
}

func TestDerivedStatusFlags(t *testing.T) {
	conducted := &Appointment{Status: StatusConducted}
	assert.True(t, conducted.Conducted())
	assert.False(t, conducted.NoShow())
	assert.False(t, conducted.Pending())

	noShow := &Appointment{Status: StatusNoShow}
	assert.False(t, noShow.Conducted())
	assert.True(t, noShow.NoShow())
	assert.False(t, noShow.Pending())

	pending := &Appointment{Status: StatusPending}
	assert.True(t, pending.Pending())

	// unknown status values are treated as pending
	unknown := &Appointment{Status: "rescheduled"}
	assert.True(t, unknown.Pending())
}
