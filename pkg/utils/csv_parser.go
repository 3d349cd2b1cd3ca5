package utils

import (
	"strings"
	"time"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/pkg/logger"
)

// Expected CSV header names for appointment imports
const (
	HeaderFirstName          = "First Name"
	HeaderLastName           = "Last Name"
	HeaderTitle              = "Title"
	HeaderEmail              = "Email"
	HeaderCompany            = "Company"
	HeaderNumber             = "Number"
	HeaderLinkedIn           = "LinkedIn"
	HeaderCountry            = "Country"
	HeaderScheduledOn        = "Appointment Scheduled on"
	HeaderScheduledFor       = "Appointment Scheduled for"
	HeaderConducted          = "Conducted"
	HeaderOpportunity        = "Opportunity"
	HeaderNotes              = "Notes"
	HeaderRescheduleComments = "Reschedule Comments"
	HeaderMeetingNotes       = "Meeting Notes"
	HeaderSdrName            = "SDR Name"
)

// AppointmentCSVParser converts raw CSV text into appointment records.
// The format is deliberately naive: lines split on newline, fields split
// on comma, surrounding whitespace and literal double quotes stripped.
// Commas embedded inside quoted fields are NOT handled.
type AppointmentCSVParser struct {
	logger logger.Logger
}

// NewAppointmentCSVParser creates a new appointment CSV parser
func NewAppointmentCSVParser(logger logger.Logger) *AppointmentCSVParser {
	return &AppointmentCSVParser{
		logger: logger,
	}
}

// cleanToken strips surrounding whitespace and any literal double quotes
func cleanToken(token string) string {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.ReplaceAll(cleaned, "\"", "")
	return strings.TrimSpace(cleaned)
}

// Parse reads the first line as the header row and maps every following
// non-empty line to an appointment. Missing headers or missing trailing
// tokens resolve to defaults: empty string for text fields, the current
// time for the two dates and false for booleans. The no-show flag is
// never sourced from CSV; imported rows start pending unless conducted.
func (p *AppointmentCSVParser) Parse(raw string) []*entity.Appointment {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 {
		return nil
	}

	// Single pass over the header builds the name -> index mapping
	index := make(map[string]int)
	for i, name := range strings.Split(lines[0], ",") {
		index[cleanToken(name)] = i
	}

	var appointments []*entity.Appointment
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens := strings.Split(line, ",")
		field := func(header string) string {
			col, ok := index[header]
			if !ok || col >= len(tokens) {
				return ""
			}
			return cleanToken(tokens[col])
		}

		appointments = append(appointments, &entity.Appointment{
			FirstName:          field(HeaderFirstName),
			LastName:           field(HeaderLastName),
			Title:              field(HeaderTitle),
			Email:              field(HeaderEmail),
			Company:            field(HeaderCompany),
			Number:             field(HeaderNumber),
			LinkedIn:           field(HeaderLinkedIn),
			Country:            field(HeaderCountry),
			ScheduledOn:        parseDateOrNow(field(HeaderScheduledOn)),
			ScheduledFor:       parseDateOrNow(field(HeaderScheduledFor)),
			Status:             entity.StatusFromFlags(isTruthy(field(HeaderConducted)), false),
			Opportunity:        isTruthy(field(HeaderOpportunity)),
			Notes:              field(HeaderNotes),
			RescheduleComments: field(HeaderRescheduleComments),
			MeetingNotes:       field(HeaderMeetingNotes),
			SdrName:            field(HeaderSdrName),
		})
	}

	p.logger.Debug("Parsed CSV input", "rows", len(appointments))

	return appointments
}

// isTruthy accepts the case-insensitive tokens "true" and "yes";
// every other token, including empty, is false
func isTruthy(token string) bool {
	switch strings.ToLower(token) {
	case "true", "yes":
		return true
	default:
		return false
	}
}

// parseDateOrNow parses a date token, falling back to the current time
func parseDateOrNow(token string) time.Time {
	if token != "" {
		if t, err := time.Parse("2006-01-02", token); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, token); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
