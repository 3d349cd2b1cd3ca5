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

// StatisticService orchestrates daily statistic CRUD and summaries
type StatisticService struct {
	statisticRepo repository.DailyStatisticRepository
	activityRepo  repository.ActivityRepository
	notifier      repository.NotifierRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewStatisticService creates a new statistic service
func NewStatisticService(
	statisticRepo repository.DailyStatisticRepository,
	activityRepo repository.ActivityRepository,
	notifier repository.NotifierRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *StatisticService {
	return &StatisticService{
		statisticRepo: statisticRepo,
		activityRepo:  activityRepo,
		notifier:      notifier,
		metrics:       metrics,
		logger:        logger,
	}
}

// List loads all daily statistics, most recent date first
func (s *StatisticService) List(ctx context.Context) ([]*entity.DailyStatistic, error) {
	stats, err := s.statisticRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load daily statistics", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error loading statistics", "Please try again.", true)
		return nil, err
	}

	return stats, nil
}

// Summary computes overall totals, the connection rate and per-SDR rollups
func (s *StatisticService) Summary(ctx context.Context) (*StatsSummary, error) {
	stats, err := s.statisticRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load daily statistics", "error", err)
		return nil, err
	}

	return SummarizeStatistics(stats), nil
}

func validateStatistic(stat *entity.DailyStatistic) error {
	if strings.TrimSpace(stat.SdrName) == "" || stat.Date.IsZero() {
		return ErrMissingRequiredFields
	}
	return nil
}

// Create validates and stores a new daily statistic row. Duplicate
// (sdr, date) rows are allowed; both count in aggregates.
func (s *StatisticService) Create(ctx context.Context, stat *entity.DailyStatistic) error {
	if err := validateStatistic(stat); err != nil {
		return err
	}

	if err := s.statisticRepo.Create(ctx, stat); err != nil {
		s.logger.Error("Failed to create daily statistic", "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error saving statistics", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "daily_statistics", entity.ActionCreated, stat.ID.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Statistics added successfully", "", false)

	return nil
}

// Update validates and overwrites an existing daily statistic row
func (s *StatisticService) Update(ctx context.Context, stat *entity.DailyStatistic) error {
	if err := validateStatistic(stat); err != nil {
		return err
	}

	if err := s.statisticRepo.Update(ctx, stat); err != nil {
		s.logger.Error("Failed to update daily statistic", "id", stat.ID, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error saving statistics", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "daily_statistics", entity.ActionUpdated, stat.ID.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Statistics updated successfully", "", false)

	return nil
}

// Delete removes a daily statistic row after explicit confirmation
func (s *StatisticService) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := s.statisticRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete daily statistic", "id", id, "error", err)
		sendNotification(ctx, s.notifier, s.logger, s.metrics, "Error deleting statistics", "Please try again.", true)
		return err
	}

	recordActivity(ctx, s.activityRepo, s.logger, "daily_statistics", entity.ActionDeleted, id.String(), nil)
	sendNotification(ctx, s.notifier, s.logger, s.metrics, "Statistics deleted successfully", "", false)

	return nil
}
