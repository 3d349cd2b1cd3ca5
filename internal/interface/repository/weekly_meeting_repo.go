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

// GormWeeklyMeetingRepository implements the WeeklyMeetingRepository interface
type GormWeeklyMeetingRepository struct {
	db *gorm.DB
}

// NewGormWeeklyMeetingRepository creates a new GORM weekly meeting repository
func NewGormWeeklyMeetingRepository(db *gorm.DB) repository.WeeklyMeetingRepository {
	db.AutoMigrate(&WeeklyMeetings{})

	return &GormWeeklyMeetingRepository{
		db: db,
	}
}

// WeeklyMeetings GORM model for database mapping. Only manually entered
// rows are stored; appointment-derived rows are synthesized on read.
type WeeklyMeetings struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Week        string    `gorm:"column:week"`
	Month       string    `gorm:"column:month"`
	Year        string    `gorm:"column:year"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	CompanyName string    `gorm:"column:company_name"`
	Title       string    `gorm:"column:title"`
	Email       string    `gorm:"column:email"`
	ContactNo   string    `gorm:"column:contact_no"`
	AssignedTo  string    `gorm:"column:assigned_to"`
	Location    string    `gorm:"column:location"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name
func (WeeklyMeetings) TableName() string {
	return "weekly_meetings"
}

func meetingModel(m *entity.WeeklyMeeting) WeeklyMeetings {
	return WeeklyMeetings{
		ID:          m.ID,
		Week:        m.Week,
		Month:       m.Month,
		Year:        m.Year,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		CompanyName: m.CompanyName,
		Title:       m.Title,
		Email:       m.Email,
		ContactNo:   m.ContactNo,
		AssignedTo:  m.AssignedTo,
		Location:    m.Location,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func meetingEntity(m *WeeklyMeetings) *entity.WeeklyMeeting {
	return &entity.WeeklyMeeting{
		ID:          m.ID,
		Source:      entity.SourceManual,
		Week:        m.Week,
		Month:       m.Month,
		Year:        m.Year,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		CompanyName: m.CompanyName,
		Title:       m.Title,
		Email:       m.Email,
		ContactNo:   m.ContactNo,
		AssignedTo:  m.AssignedTo,
		Location:    m.Location,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// List returns all manually entered meetings, oldest first
func (r *GormWeeklyMeetingRepository) List(ctx context.Context) ([]*entity.WeeklyMeeting, error) {
	var models []WeeklyMeetings
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	var entities []*entity.WeeklyMeeting
	for i := range models {
		entities = append(entities, meetingEntity(&models[i]))
	}

	return entities, nil
}

// GetByID finds a manually entered meeting by id
func (r *GormWeeklyMeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WeeklyMeeting, error) {
	var model WeeklyMeetings
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}

	return meetingEntity(&model), nil
}

// Create inserts a new manually entered meeting
func (r *GormWeeklyMeetingRepository) Create(ctx context.Context, meeting *entity.WeeklyMeeting) error {
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	meeting.Source = entity.SourceManual

	model := meetingModel(meeting)
	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	meeting.CreatedAt = model.CreatedAt
	meeting.UpdatedAt = model.UpdatedAt

	return nil
}

// Update overwrites an existing manually entered meeting
func (r *GormWeeklyMeetingRepository) Update(ctx context.Context, meeting *entity.WeeklyMeeting) error {
	model := meetingModel(meeting)
	result := r.db.WithContext(ctx).Model(&WeeklyMeetings{}).
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

// Delete removes a manually entered meeting
func (r *GormWeeklyMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&WeeklyMeetings{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
