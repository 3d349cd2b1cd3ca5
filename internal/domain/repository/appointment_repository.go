package repository

import (
	"context"

	"github.com/google/uuid"

	"sdrops-service/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment storage operations
type AppointmentRepository interface {
	List(ctx context.Context) ([]*entity.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Create(ctx context.Context, appointment *entity.Appointment) error
	// CreateMany inserts all rows in a single batch; either every row is
	// committed or none are.
	CreateMany(ctx context.Context, appointments []*entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
