package repository

import (
	"context"

	"github.com/google/uuid"

	"sdrops-service/internal/domain/entity"
)

// WeeklyMeetingRepository stores manually entered weekly report rows.
// Appointment-derived rows never pass through this interface.
type WeeklyMeetingRepository interface {
	List(ctx context.Context) ([]*entity.WeeklyMeeting, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WeeklyMeeting, error)
	Create(ctx context.Context, meeting *entity.WeeklyMeeting) error
	Update(ctx context.Context, meeting *entity.WeeklyMeeting) error
	Delete(ctx context.Context, id uuid.UUID) error
}
