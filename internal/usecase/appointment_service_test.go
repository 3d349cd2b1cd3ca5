package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
	"sdrops-service/pkg/logger"
	"sdrops-service/pkg/utils"
)

type fakeAppointmentRepo struct {
	appointments []*entity.Appointment
	listErr      error
	writeErr     error
}

func (f *fakeAppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	return f.appointments, f.listErr
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	f.appointments = append(f.appointments, appointment)
	return nil
}

func (f *fakeAppointmentRepo) CreateMany(ctx context.Context, appointments []*entity.Appointment) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.appointments = append(f.appointments, appointments...)
	return nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for i, a := range f.appointments {
		if a.ID == appointment.ID {
			f.appointments[i] = appointment
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, a := range f.appointments {
		if a.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newAppointmentService(repo *fakeAppointmentRepo) *AppointmentService {
	log := logger.NewNopLogger()
	return NewAppointmentService(repo, nil, nil, utils.NewAppointmentCSVParser(log), nil, log)
}

func TestAppointmentCreateValidatesRequiredFields(t *testing.T) {
	svc := newAppointmentService(&fakeAppointmentRepo{})

	err := svc.Create(context.Background(), &entity.Appointment{FirstName: "Jane"})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)

	err = svc.Create(context.Background(), &entity.Appointment{FirstName: "  ", LastName: "Doe", SdrName: "Alex"})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}

func TestAppointmentCreateDefaults(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newAppointmentService(repo)

	appointment := &entity.Appointment{FirstName: "Jane", LastName: "Doe", SdrName: "Alex"}
	require.NoError(t, svc.Create(context.Background(), appointment))

	assert.Equal(t, entity.StatusPending, appointment.Status)
	assert.False(t, appointment.ScheduledOn.IsZero())
	assert.False(t, appointment.ScheduledFor.IsZero())
	assert.Len(t, repo.appointments, 1)
}

func TestAppointmentListAppliesFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
		{ID: uuid.New(), FirstName: "Jane", LastName: "Doe", SdrName: "Alex", Status: entity.StatusConducted},
		{ID: uuid.New(), FirstName: "John", LastName: "Smith", SdrName: "Sam", Status: entity.StatusPending},
	}}
	svc := newAppointmentService(repo)

	matched, err := svc.List(context.Background(), AppointmentFilter{SdrName: "Alex"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Jane", matched[0].FirstName)
}

func TestAppointmentDeleteRequiresConfirmation(t *testing.T) {
	id := uuid.New()
	repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{{ID: id}}}
	svc := newAppointmentService(repo)

	err := svc.Delete(context.Background(), id, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, repo.appointments, 1)

	require.NoError(t, svc.Delete(context.Background(), id, true))
	assert.Empty(t, repo.appointments)
}

func TestAppointmentDeleteMissing(t *testing.T) {
	svc := newAppointmentService(&fakeAppointmentRepo{})

	err := svc.Delete(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAppointmentImport(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newAppointmentService(repo)

	raw := "First Name,Last Name,SDR Name\nJane,Doe,Alex\nJohn,Smith,Sam\n"
	count, err := svc.Import(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, repo.appointments, 2)
}

func TestAppointmentImportFailureImportsNothing(t *testing.T) {
	repo := &fakeAppointmentRepo{writeErr: errors.New("insert failed")}
	svc := newAppointmentService(repo)

	raw := "First Name,Last Name,SDR Name\nJane,Doe,Alex\n"
	count, err := svc.Import(context.Background(), raw)
	assert.Error(t, err)
	assert.Zero(t, count)
	assert.Empty(t, repo.appointments)
}

func TestAppointmentSummary(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
		{Status: entity.StatusConducted, Company: "Acme", SdrName: "Alex"},
		{Status: entity.StatusPending, Company: "Globex", SdrName: "Alex"},
	}}
	svc := newAppointmentService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Conducted)
	assert.Equal(t, 1, summary.DistinctSdrs)
}
