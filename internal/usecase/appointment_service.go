package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
	"sdrops-service/pkg/logger"
	"sdrops-service/pkg/metrics"
	"sdrops-service/pkg/utils"
)

// AppointmentService orchestrates appointment CRUD, filtering, summary
// cards and CSV import
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	activityRepo    repository.ActivityRepository
	notifier        repository.NotifierRepository
	parser          *utils.AppointmentCSVParser
	metrics         *metrics.Metrics
	logger          logger.Logger
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	activityRepo repository.ActivityRepository,
	notifier repository.NotifierRepository,
	parser *utils.AppointmentCSVParser,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		activityRepo:    activityRepo,
		notifier:        notifier,
		parser:          parser,
		metrics:         metrics,
		logger:          logger,
	}
}

// List loads all appointments, newest first, and applies the filter
func (s *AppointmentService) List(ctx context.Context, filter AppointmentFilter) ([]*entity.Appointment, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load appointments", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error loading appointments", "Please try again.", true)
		return nil, err
	}

	return FilterAppointments(appointments, filter), nil
}

// Summary computes the overview card counts over all appointments
func (s *AppointmentService) Summary(ctx context.Context) (*AppointmentSummary, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load appointments", "error", err)
		return nil, err
	}

	return SummarizeAppointments(appointments), nil
}

// validateAppointment checks required fields are present. Only presence
// is checked; email format and the like are not verified.
func validateAppointment(a *entity.Appointment) error {
	if strings.TrimSpace(a.FirstName) == "" ||
		strings.TrimSpace(a.LastName) == "" ||
		strings.TrimSpace(a.SdrName) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

// Create validates and stores a new appointment
func (s *AppointmentService) Create(ctx context.Context, appointment *entity.Appointment) error {
	if err := validateAppointment(appointment); err != nil {
		return err
	}

	if appointment.Status == "" {
		appointment.Status = entity.StatusPending
	}
	now := time.Now().UTC()
	if appointment.ScheduledOn.IsZero() {
		appointment.ScheduledOn = now
	}
	if appointment.ScheduledFor.IsZero() {
		appointment.ScheduledFor = now
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		s.logger.Error("Failed to create appointment", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error saving appointment", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "appointments", entity.ActionCreated, appointment.ID.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Appointment added successfully", "", false)

	return nil
}

// Update validates and overwrites an existing appointment
func (s *AppointmentService) Update(ctx context.Context, appointment *entity.Appointment) error {
	if err := validateAppointment(appointment); err != nil {
		return err
	}
	if appointment.Status == "" {
		appointment.Status = entity.StatusPending
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		s.logger.Error("Failed to update appointment", "id", appointment.ID, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error saving appointment", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "appointments", entity.ActionUpdated, appointment.ID.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Appointment updated successfully", "", false)

	return nil
}

// Delete removes an appointment. The confirmed flag is the explicit
// second user action; without it nothing is deleted.
func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete appointment", "id", id, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error deleting appointment", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "appointments", entity.ActionDeleted, id.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Appointment deleted successfully", "", false)

	return nil
}

// Import parses raw CSV text and inserts every parsed row in a single
// batch. A failed insert commits nothing; there is no partial import
// and no retry. Returns the number of imported rows.
func (s *AppointmentService) Import(ctx context.Context, raw string) (int, error) {
	appointments := s.parser.Parse(raw)

	if err := s.appointmentRepo.CreateMany(ctx, appointments); err != nil {
		s.logger.Error("Failed to import appointments", "rows", len(appointments), "error", err)
		if s.metrics != nil {
			s.metrics.ImportsFailed.Inc()
		}
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error importing CSV", "No rows were imported.", true)
		return 0, err
	}

	count := len(appointments)
	if s.metrics != nil {
		s.metrics.RecordsImported.Add(float64(count))
	}
	recordActivity(ctx, s.activityRepo, s.logger, "appointments", entity.ActionImported, "", map[string]interface{}{"rows": count})
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "CSV imported successfully", fmt.Sprintf("Imported %d appointments", count), false)

	s.logger.Info("Imported appointments from CSV", "rows", count)

	return count, nil
}
