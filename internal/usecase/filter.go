package usecase

import (
	"strings"

	"sdrops-service/internal/domain/entity"
)

// Status filter values
const (
	FilterAll       = "all"
	FilterConducted = "conducted"
	FilterNoShow    = "no-show"
	FilterPending   = "pending"
)

// AppointmentFilter narrows an appointment listing. Zero values and
// "all" match everything.
type AppointmentFilter struct {
	Search  string
	Status  string
	SdrName string
}

// FilterAppointments returns the subsequence matching all active
// predicates, preserving input order.
func FilterAppointments(appointments []*entity.Appointment, filter AppointmentFilter) []*entity.Appointment {
	var matched []*entity.Appointment
	for _, a := range appointments {
		if matchesSearch(a, filter.Search) && matchesStatus(a, filter.Status) && matchesSdr(a, filter.SdrName) {
			matched = append(matched, a)
		}
	}
	return matched
}

// matchesSearch is a case-insensitive substring match against the full
// prospect name, the company or the email
func matchesSearch(a *entity.Appointment, search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	fullName := strings.ToLower(a.FirstName + " " + a.LastName)
	return strings.Contains(fullName, term) ||
		strings.Contains(strings.ToLower(a.Company), term) ||
		strings.Contains(strings.ToLower(a.Email), term)
}

func matchesStatus(a *entity.Appointment, status string) bool {
	switch status {
	case "", FilterAll:
		return true
	case FilterConducted:
		return a.Conducted()
	case FilterNoShow:
		return a.NoShow()
	case FilterPending:
		return a.Pending()
	default:
		return false
	}
}

// matchesSdr requires exact string equality, no normalization
func matchesSdr(a *entity.Appointment, sdrName string) bool {
	return sdrName == "" || sdrName == FilterAll || a.SdrName == sdrName
}
