package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
	"sdrops-service/pkg/logger"
	"sdrops-service/pkg/metrics"
)

// MeetingService serves the weekly report: manually entered rows merged
// with rows synthesized from appointments. Only manual rows are mutable.
type MeetingService struct {
	meetingRepo     repository.WeeklyMeetingRepository
	appointmentRepo repository.AppointmentRepository
	activityRepo    repository.ActivityRepository
	notifier        repository.NotifierRepository
	exporter        repository.ReportExporter
	metrics         *metrics.Metrics
	logger          logger.Logger
}

// NewMeetingService creates a new weekly meeting service. The exporter
// may be nil when report export is not configured.
func NewMeetingService(
	meetingRepo repository.WeeklyMeetingRepository,
	appointmentRepo repository.AppointmentRepository,
	activityRepo repository.ActivityRepository,
	notifier repository.NotifierRepository,
	exporter repository.ReportExporter,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo:     meetingRepo,
		appointmentRepo: appointmentRepo,
		activityRepo:    activityRepo,
		notifier:        notifier,
		exporter:        exporter,
		metrics:         metrics,
		logger:          logger,
	}
}

// List merges manual rows with appointment-derived rows, optionally
// narrowed to one month and year ("January", "2025"). Manual rows come
// first, then derived rows in appointment listing order.
func (s *MeetingService) List(ctx context.Context, month, year string) ([]*entity.WeeklyMeeting, error) {
	manual, err := s.meetingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load weekly meetings", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error loading meetings", "Please try again.", true)
		return nil, err
	}

	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load appointments for weekly report", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error loading meetings", "Please try again.", true)
		return nil, err
	}

	meetings := make([]*entity.WeeklyMeeting, 0, len(manual)+len(appointments))
	meetings = append(meetings, manual...)
	for _, a := range appointments {
		meetings = append(meetings, entity.MeetingFromAppointment(a))
	}

	if month == "" && year == "" {
		return meetings, nil
	}

	var matched []*entity.WeeklyMeeting
	for _, m := range meetings {
		if (month == "" || m.Month == month) && (year == "" || m.Year == year) {
			matched = append(matched, m)
		}
	}

	return matched, nil
}

func validateMeeting(meeting *entity.WeeklyMeeting) error {
	if strings.TrimSpace(meeting.FirstName) == "" ||
		strings.TrimSpace(meeting.LastName) == "" ||
		strings.TrimSpace(meeting.CompanyName) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

// manualID rejects appointment-derived ids and parses the rest
func manualID(id string) (uuid.UUID, error) {
	if strings.HasPrefix(id, entity.AppointmentIDPrefix) {
		return uuid.Nil, ErrNotEditable
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid meeting id %q: %w", id, err)
	}
	return parsed, nil
}

// Create validates and stores a new manually entered meeting
func (s *MeetingService) Create(ctx context.Context, meeting *entity.WeeklyMeeting) error {
	if err := validateMeeting(meeting); err != nil {
		return err
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		s.logger.Error("Failed to create weekly meeting", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error saving meeting", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "weekly_meetings", entity.ActionCreated, meeting.ID, nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Meeting added successfully", "", false)

	return nil
}

// Update validates and overwrites a manually entered meeting.
// Appointment-derived rows are rejected.
func (s *MeetingService) Update(ctx context.Context, meeting *entity.WeeklyMeeting) error {
	if _, err := manualID(meeting.ID); err != nil {
		return err
	}
	if err := validateMeeting(meeting); err != nil {
		return err
	}

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		s.logger.Error("Failed to update weekly meeting", "id", meeting.ID, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error saving meeting", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "weekly_meetings", entity.ActionUpdated, meeting.ID, nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Meeting updated successfully", "", false)

	return nil
}

// Delete removes a manually entered meeting after explicit confirmation
func (s *MeetingService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	parsed, err := manualID(id)
	if err != nil {
		return err
	}

	if err := s.meetingRepo.Delete(ctx, parsed); err != nil {
		s.logger.Error("Failed to delete weekly meeting", "id", id, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error deleting meeting", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "weekly_meetings", entity.ActionDeleted, id, nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Meeting deleted successfully", "", false)

	return nil
}

// Export appends the month's weekly report rows to the configured sheet
func (s *MeetingService) Export(ctx context.Context, month, year string) (int, error) {
	if s.exporter == nil {
		return 0, ErrExportNotConfigured
	}

	meetings, err := s.List(ctx, month, year)
	if err != nil {
		return 0, err
	}

	if err := s.exporter.ExportWeekly(ctx, month, year, meetings); err != nil {
		s.logger.Error("Failed to export weekly report", "month", month, "year", year, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error exporting weekly report", "Please try again.", true)
		return 0, err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "weekly_meetings", entity.ActionUpdated, "", map[string]interface{}{
		"export": fmt.Sprintf("%s %s", month, year),
		"rows":   len(meetings),
	})
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Weekly report exported", fmt.Sprintf("Exported %d rows", len(meetings)), false)

	return len(meetings), nil
}
