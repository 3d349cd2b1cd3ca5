package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
	"sdrops-service/pkg/logger"
)

type fakeMeetingRepo struct {
	meetings []*entity.WeeklyMeeting
	writeErr error
}

func (f *fakeMeetingRepo) List(ctx context.Context) ([]*entity.WeeklyMeeting, error) {
	return f.meetings, nil
}

func (f *fakeMeetingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.WeeklyMeeting, error) {
	for _, m := range f.meetings {
		if m.ID == id.String() {
			return m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMeetingRepo) Create(ctx context.Context, meeting *entity.WeeklyMeeting) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	meeting.Source = entity.SourceManual
	f.meetings = append(f.meetings, meeting)
	return nil
}

func (f *fakeMeetingRepo) Update(ctx context.Context, meeting *entity.WeeklyMeeting) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for i, m := range f.meetings {
		if m.ID == meeting.ID {
			f.meetings[i] = meeting
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, m := range f.meetings {
		if m.ID == id.String() {
			f.meetings = append(f.meetings[:i], f.meetings[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeExporter struct {
	exported []*entity.WeeklyMeeting
}

func (f *fakeExporter) ExportWeekly(ctx context.Context, month, year string, meetings []*entity.WeeklyMeeting) error {
	f.exported = meetings
	return nil
}

func newMeetingService(meetingRepo *fakeMeetingRepo, appointmentRepo *fakeAppointmentRepo, exporter repository.ReportExporter) *MeetingService {
	return NewMeetingService(meetingRepo, appointmentRepo, nil, nil, exporter, nil, logger.NewNopLogger())
}

func TestMeetingListMergesManualAndDerived(t *testing.T) {
	manual := &entity.WeeklyMeeting{
		ID:     uuid.New().String(),
		Source: entity.SourceManual,
		Month:  "March",
		Year:   "2025",
	}
	appointment := &entity.Appointment{
		ID:           uuid.New(),
		FirstName:    "Jane",
		LastName:     "Doe",
		ScheduledFor: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	svc := newMeetingService(
		&fakeMeetingRepo{meetings: []*entity.WeeklyMeeting{manual}},
		&fakeAppointmentRepo{appointments: []*entity.Appointment{appointment}},
		nil,
	)

	meetings, err := svc.List(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, meetings, 2)

	// manual rows first, then appointment-derived rows
	assert.Equal(t, entity.SourceManual, meetings[0].Source)
	assert.Equal(t, entity.SourceAppointment, meetings[1].Source)
	assert.Equal(t, entity.AppointmentIDPrefix+appointment.ID.String(), meetings[1].ID)
}

func TestMeetingListFiltersByMonthAndYear(t *testing.T) {
	march := &entity.WeeklyMeeting{ID: uuid.New().String(), Source: entity.SourceManual, Month: "March", Year: "2025"}
	april := &entity.WeeklyMeeting{ID: uuid.New().String(), Source: entity.SourceManual, Month: "April", Year: "2025"}
	older := &entity.WeeklyMeeting{ID: uuid.New().String(), Source: entity.SourceManual, Month: "March", Year: "2024"}

	svc := newMeetingService(
		&fakeMeetingRepo{meetings: []*entity.WeeklyMeeting{march, april, older}},
		&fakeAppointmentRepo{},
		nil,
	)

	meetings, err := svc.List(context.Background(), "March", "2025")
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, march.ID, meetings[0].ID)

	meetings, err = svc.List(context.Background(), "March", "")
	require.NoError(t, err)
	assert.Len(t, meetings, 2)
}

func TestMeetingCreateValidatesRequiredFields(t *testing.T) {
	svc := newMeetingService(&fakeMeetingRepo{}, &fakeAppointmentRepo{}, nil)

	err := svc.Create(context.Background(), &entity.WeeklyMeeting{FirstName: "Jane"})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}

func TestMeetingUpdateRejectsDerivedRows(t *testing.T) {
	svc := newMeetingService(&fakeMeetingRepo{}, &fakeAppointmentRepo{}, nil)

	derived := &entity.WeeklyMeeting{
		ID:          entity.AppointmentIDPrefix + uuid.New().String(),
		FirstName:   "Jane",
		LastName:    "Doe",
		CompanyName: "Acme",
	}
	err := svc.Update(context.Background(), derived)
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestMeetingDeleteRejectsDerivedRows(t *testing.T) {
	svc := newMeetingService(&fakeMeetingRepo{}, &fakeAppointmentRepo{}, nil)

	err := svc.Delete(context.Background(), entity.AppointmentIDPrefix+uuid.New().String(), true)
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestMeetingDeleteRequiresConfirmation(t *testing.T) {
	id := uuid.New().String()
	repo := &fakeMeetingRepo{meetings: []*entity.WeeklyMeeting{{ID: id, Source: entity.SourceManual}}}
	svc := newMeetingService(repo, &fakeAppointmentRepo{}, nil)

	err := svc.Delete(context.Background(), id, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	require.NoError(t, svc.Delete(context.Background(), id, true))
	assert.Empty(t, repo.meetings)
}

func TestMeetingExportNotConfigured(t *testing.T) {
	svc := newMeetingService(&fakeMeetingRepo{}, &fakeAppointmentRepo{}, nil)

	_, err := svc.Export(context.Background(), "March", "2025")
	assert.ErrorIs(t, err, ErrExportNotConfigured)
}

func TestMeetingExport(t *testing.T) {
	manual := &entity.WeeklyMeeting{ID: uuid.New().String(), Source: entity.SourceManual, Month: "March", Year: "2025"}
	exporter := &fakeExporter{}
	svc := newMeetingService(
		&fakeMeetingRepo{meetings: []*entity.WeeklyMeeting{manual}},
		&fakeAppointmentRepo{},
		exporter,
	)

	count, err := svc.Export(context.Background(), "March", "2025")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, exporter.exported, 1)
}
