package usecase

import "errors"

var (
	// ErrMissingRequiredFields is returned when presence validation fails
	ErrMissingRequiredFields = errors.New("required fields are missing")

	// ErrConfirmationRequired is returned when a delete is attempted
	// without the explicit confirmation step
	ErrConfirmationRequired = errors.New("delete requires confirmation")

	// ErrNotEditable is returned for mutations against meeting rows
	// synthesized from appointments
	ErrNotEditable = errors.New("appointment-derived meeting rows cannot be modified")

	// ErrExportNotConfigured is returned when no report exporter is wired
	ErrExportNotConfigured = errors.New("report export is not configured")
)
