package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
	"sdrops-service/pkg/logger"
	"sdrops-service/pkg/metrics"
)

// IncentiveService orchestrates SPIFF CRUD and summaries
type IncentiveService struct {
	incentiveRepo repository.IncentiveRepository
	activityRepo  repository.ActivityRepository
	notifier      repository.NotifierRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewIncentiveService creates a new incentive service
func NewIncentiveService(
	incentiveRepo repository.IncentiveRepository,
	activityRepo repository.ActivityRepository,
	notifier repository.NotifierRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *IncentiveService {
	return &IncentiveService{
		incentiveRepo: incentiveRepo,
		activityRepo:  activityRepo,
		notifier:      notifier,
		metrics:       metrics,
		logger:        logger,
	}
}

// List loads all incentives, most recently created first
func (s *IncentiveService) List(ctx context.Context) ([]*entity.Incentive, error) {
	incentives, err := s.incentiveRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load incentives", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error loading SPIFFs", "Please try again.", true)
		return nil, err
	}

	return incentives, nil
}

// Summary totals SPIFF amounts split by approval state
func (s *IncentiveService) Summary(ctx context.Context) (*IncentiveSummary, error) {
	incentives, err := s.incentiveRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load incentives", "error", err)
		return nil, err
	}

	return SummarizeIncentives(incentives), nil
}

func validateIncentive(incentive *entity.Incentive) error {
	if strings.TrimSpace(incentive.BdrName) == "" ||
		strings.TrimSpace(incentive.AnnouncedBy) == "" ||
		strings.TrimSpace(incentive.Reason) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

// Create validates and stores a new incentive
func (s *IncentiveService) Create(ctx context.Context, incentive *entity.Incentive) error {
	if err := validateIncentive(incentive); err != nil {
		return err
	}
	if incentive.Currency == "" {
		incentive.Currency = "USD"
	}

	if err := s.incentiveRepo.Create(ctx, incentive); err != nil {
		s.logger.Error("Failed to create incentive", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error saving SPIFF", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "incentives", entity.ActionCreated, incentive.ID.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "SPIFF added successfully", "", false)

	return nil
}

// Update validates and overwrites an existing incentive
func (s *IncentiveService) Update(ctx context.Context, incentive *entity.Incentive) error {
	if err := validateIncentive(incentive); err != nil {
		return err
	}

	if err := s.incentiveRepo.Update(ctx, incentive); err != nil {
		s.logger.Error("Failed to update incentive", "id", incentive.ID, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error saving SPIFF", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "incentives", entity.ActionUpdated, incentive.ID.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "SPIFF updated successfully", "", false)

	return nil
}

// Delete removes an incentive after explicit confirmation
func (s *IncentiveService) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := s.incentiveRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete incentive", "id", id, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error deleting SPIFF", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "incentives", entity.ActionDeleted, id.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "SPIFF deleted successfully", "", false)

	return nil
}
