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

// GormDailyStatisticRepository implements the DailyStatisticRepository interface
type GormDailyStatisticRepository struct {
	db *gorm.DB
}

// NewGormDailyStatisticRepository creates a new GORM daily statistic repository
func NewGormDailyStatisticRepository(db *gorm.DB) repository.DailyStatisticRepository {
	db.AutoMigrate(&DailyStatistics{})

	return &GormDailyStatisticRepository{
		db: db,
	}
}

// DailyStatistics GORM model for database mapping.
// No unique constraint on (sdr_name, date): duplicate rows are allowed
// and simply both counted in aggregates.
type DailyStatistics struct {
	ID            string    `gorm:"column:id;primaryKey"`
	SdrName       string    `gorm:"column:sdr_name"`
	Date          time.Time `gorm:"column:date"`
	Calls         int       `gorm:"column:calls"`
	Connected     int       `gorm:"column:connected"`
	Emails        int       `gorm:"column:emails"`
	PotentialAppt int       `gorm:"column:potential_appt"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name
func (DailyStatistics) TableName() string {
	return "daily_statistics"
}

func statisticModel(s *entity.DailyStatistic) DailyStatistics {
	return DailyStatistics{
		ID:            s.ID.String(),
		SdrName:       s.SdrName,
		Date:          s.Date,
		Calls:         s.Calls,
		Connected:     s.Connected,
		Emails:        s.Emails,
		PotentialAppt: s.PotentialAppt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func statisticEntity(m *DailyStatistics) *entity.DailyStatistic {
	id, _ := uuid.Parse(m.ID)
	return &entity.DailyStatistic{
		ID:            id,
		SdrName:       m.SdrName,
		Date:          m.Date,
		Calls:         m.Calls,
		Connected:     m.Connected,
		Emails:        m.Emails,
		PotentialAppt: m.PotentialAppt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// List returns all daily statistics, most recent date first
func (r *GormDailyStatisticRepository) List(ctx context.Context) ([]*entity.DailyStatistic, error) {
	var models []DailyStatistics
	result := r.db.WithContext(ctx).Order("date DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	var entities []*entity.DailyStatistic
	for i := range models {
		entities = append(entities, statisticEntity(&models[i]))
	}

	return entities, nil
}

// GetByID finds a daily statistic by id
func (r *GormDailyStatisticRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyStatistic, error) {
	var model DailyStatistics
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}

	return statisticEntity(&model), nil
}

// Create inserts a new daily statistic row
func (r *GormDailyStatisticRepository) Create(ctx context.Context, stat *entity.DailyStatistic) error {
	if stat.ID == uuid.Nil {
		stat.ID = uuid.New()
	}

	model := statisticModel(stat)
	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	stat.CreatedAt = model.CreatedAt
	stat.UpdatedAt = model.UpdatedAt

	return nil
}

// Update overwrites an existing daily statistic row
func (r *GormDailyStatisticRepository) Update(ctx context.Context, stat *entity.DailyStatistic) error {
	model := statisticModel(stat)
	result := r.db.WithContext(ctx).Model(&DailyStatistics{}).
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

// Delete removes a daily statistic row
func (r *GormDailyStatisticRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&DailyStatistics{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
