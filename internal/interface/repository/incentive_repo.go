package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
)

// GormIncentiveRepository implements the IncentiveRepository interface
type GormIncentiveRepository struct {
	db *gorm.DB
}

// NewGormIncentiveRepository creates a new GORM incentive repository
func NewGormIncentiveRepository(db *gorm.DB) repository.IncentiveRepository {
	db.AutoMigrate(&Incentives{})

	return &GormIncentiveRepository{
		db: db,
	}
}

// Incentives GORM model for database mapping
type Incentives struct {
	ID              string          `gorm:"column:id;primaryKey"`
	Approved        bool            `gorm:"column:approved"`
	DateAnnounced   time.Time       `gorm:"column:date_announced"`
	AnnouncedBy     string          `gorm:"column:announced_by"`
	BdrName         string          `gorm:"column:bdr_name"`
	Amount          decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	Currency        string          `gorm:"column:currency"`
	Reason          string          `gorm:"column:reason"`
	AdditionalNotes string          `gorm:"column:additional_notes"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

// TableName overrides the default table name
func (Incentives) TableName() string {
	return "incentives"
}

func incentiveModel(s *entity.Incentive) Incentives {
	return Incentives{
		ID:              s.ID.String(),
		Approved:        s.Approved,
		DateAnnounced:   s.DateAnnounced,
		AnnouncedBy:     s.AnnouncedBy,
		BdrName:         s.BdrName,
		Amount:          s.Amount,
		Currency:        s.Currency,
		Reason:          s.Reason,
		AdditionalNotes: s.AdditionalNotes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func incentiveEntity(m *Incentives) *entity.Incentive {
	id, _ := uuid.Parse(m.ID)
	return &entity.Incentive{
		ID:              id,
		Approved:        m.Approved,
		DateAnnounced:   m.DateAnnounced,
		AnnouncedBy:     m.AnnouncedBy,
		BdrName:         m.BdrName,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Reason:          m.Reason,
		AdditionalNotes: m.AdditionalNotes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// List returns all incentives, most recently created first
func (r *GormIncentiveRepository) List(ctx context.Context) ([]*entity.Incentive, error) {
	var models []Incentives
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	var entities []*entity.Incentive
	for i := range models {
		entities = append(entities, incentiveEntity(&models[i]))
	}

	return entities, nil
}

// GetByID finds an incentive by id
func (r *GormIncentiveRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Incentive, error) {
	var model Incentives
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}

	return incentiveEntity(&model), nil
}

// Create inserts a new incentive
func (r *GormIncentiveRepository) Create(ctx context.Context, incentive *entity.Incentive) error {
	if incentive.ID == uuid.Nil {
		incentive.ID = uuid.New()
	}

	model := incentiveModel(incentive)
	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	incentive.CreatedAt = model.CreatedAt
	incentive.UpdatedAt = model.UpdatedAt

	return nil
}

// Update overwrites an existing incentive row
func (r *GormIncentiveRepository) Update(ctx context.Context, incentive *entity.Incentive) error {
	model := incentiveModel(incentive)
	result := r.db.WithContext(ctx).Model(&Incentives{}).
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

// Delete removes an incentive row
func (r *GormIncentiveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&Incentives{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
