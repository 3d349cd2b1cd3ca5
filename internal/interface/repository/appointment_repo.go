package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
)

// GormAppointmentRepository implements the AppointmentRepository interface
type GormAppointmentRepository struct {
	db *gorm.DB
}

// NewGormAppointmentRepository creates a new GORM appointment repository
func NewGormAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	db.AutoMigrate(&Appointments{})

	return &GormAppointmentRepository{
		db: db,
	}
}

// Appointments GORM model for database mapping
type Appointments struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	FirstName          string    `gorm:"column:first_name"`
	LastName           string    `gorm:"column:last_name"`
	Title              string    `gorm:"column:title"`
	Email              string    `gorm:"column:email"`
	Company            string    `gorm:"column:company"`
	Number             string    `gorm:"column:number"`
	LinkedIn           string    `gorm:"column:linkedin"`
	Country            string    `gorm:"column:country"`
	ScheduledOn        time.Time `gorm:"column:scheduled_on"`
	ScheduledFor       time.Time `gorm:"column:scheduled_for"`
	Status             string    `gorm:"column:status"`
	Opportunity        bool      `gorm:"column:opportunity"`
	Notes              string    `gorm:"column:notes"`
	RescheduleComments string    `gorm:"column:reschedule_comments"`
	MeetingNotes       string    `gorm:"column:meeting_notes"`
	SdrName            string    `gorm:"column:sdr_name"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name
func (Appointments) TableName() string {
	return "appointments"
}

func appointmentModel(a *entity.Appointment) Appointments {
	return Appointments{
		ID:                 a.ID.String(),
		FirstName:          a.FirstName,
		LastName:           a.LastName,
		Title:              a.Title,
		Email:              a.Email,
		Company:            a.Company,
		Number:             a.Number,
		LinkedIn:           a.LinkedIn,
		Country:            a.Country,
		ScheduledOn:        a.ScheduledOn,
		ScheduledFor:       a.ScheduledFor,
		Status:             a.Status,
		Opportunity:        a.Opportunity,
		Notes:              a.Notes,
		RescheduleComments: a.RescheduleComments,
		MeetingNotes:       a.MeetingNotes,
		SdrName:            a.SdrName,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func appointmentEntity(m *Appointments) *entity.Appointment {
	id, _ := uuid.Parse(m.ID)
	return &entity.Appointment{
		ID:                 id,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Title:              m.Title,
		Email:              m.Email,
		Company:            m.Company,
		Number:             m.Number,
		LinkedIn:           m.LinkedIn,
		Country:            m.Country,
		ScheduledOn:        m.ScheduledOn,
		ScheduledFor:       m.ScheduledFor,
		Status:             m.Status,
		Opportunity:        m.Opportunity,
		Notes:              m.Notes,
		RescheduleComments: m.RescheduleComments,
		MeetingNotes:       m.MeetingNotes,
		SdrName:            m.SdrName,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// List returns all appointments, most recently created first
func (r *GormAppointmentRepository) List(ctx context.Context) ([]*entity.Appointment, error) {
	var models []Appointments
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	var entities []*entity.Appointment
	for i := range models {
		entities = append(entities, appointmentEntity(&models[i]))
	}

	return entities, nil
}

// GetByID finds an appointment by id
func (r *GormAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var model Appointments
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}

	return appointmentEntity(&model), nil
}

// Create inserts a new appointment
func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}

	model := appointmentModel(appointment)
	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	appointment.CreatedAt = model.CreatedAt
	appointment.UpdatedAt = model.UpdatedAt

	return nil
}

// CreateMany inserts all rows in one batch. GORM runs the multi-row
// insert in a transaction, so a failure commits nothing.
func (r *GormAppointmentRepository) CreateMany(ctx context.Context, appointments []*entity.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}

	models := make([]Appointments, 0, len(appointments))
	for _, a := range appointments {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		models = append(models, appointmentModel(a))
	}

	result := r.db.WithContext(ctx).Create(&models)
	return result.Error
}

// Update overwrites an existing appointment row
func (r *GormAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	model := appointmentModel(appointment)
	result := r.db.WithContext(ctx).Model(&Appointments{}).
		Where("id = ?", model.ID).
		Select("*").Omit("id", "created_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes an appointment row
func (r *GormAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&Appointments{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
