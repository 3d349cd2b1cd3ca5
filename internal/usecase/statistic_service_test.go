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

type fakeStatisticRepo struct {
	stats []*entity.DailyStatistic
}

func (f *fakeStatisticRepo) List(ctx context.Context) ([]*entity.DailyStatistic, error) {
	return f.stats, nil
}

func (f *fakeStatisticRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyStatistic, error) {
	for _, s := range f.stats {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStatisticRepo) Create(ctx context.Context, stat *entity.DailyStatistic) error {
	if stat.ID == uuid.Nil {
		stat.ID = uuid.New()
	}
	f.stats = append(f.stats, stat)
	return nil
}

func (f *fakeStatisticRepo) Update(ctx context.Context, stat *entity.DailyStatistic) error {
	for i, s := range f.stats {
		if s.ID == stat.ID {
			f.stats[i] = stat
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStatisticRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, s := range f.stats {
		if s.ID == id {
			f.stats = append(f.stats[:i], f.stats[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newStatisticService(repo *fakeStatisticRepo) *StatisticService {
	return NewStatisticService(repo, nil, nil, nil, logger.NewNopLogger())
}

func TestStatisticCreateValidation(t *testing.T) {
	svc := newStatisticService(&fakeStatisticRepo{})

	err := svc.Create(context.Background(), &entity.DailyStatistic{Date: time.Now()})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)

	err = svc.Create(context.Background(), &entity.DailyStatistic{SdrName: "Alex"})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}

func TestStatisticAllowsDuplicateDays(t *testing.T) {
	repo := &fakeStatisticRepo{}
	svc := newStatisticService(repo)
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Create(context.Background(), &entity.DailyStatistic{SdrName: "Alex", Date: day, Calls: 10}))
	require.NoError(t, svc.Create(context.Background(), &entity.DailyStatistic{SdrName: "Alex", Date: day, Calls: 20}))
	assert.Len(t, repo.stats, 2)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, summary.TotalCalls)
	assert.Len(t, summary.BySdr, 1)
}

func TestStatisticDeleteRequiresConfirmation(t *testing.T) {
	id := uuid.New()
	repo := &fakeStatisticRepo{stats: []*entity.DailyStatistic{{ID: id, SdrName: "Alex", Date: time.Now()}}}
	svc := newStatisticService(repo)

	err := svc.Delete(context.Background(), id, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	require.NoError(t, svc.Delete(context.Background(), id, true))
	assert.Empty(t, repo.stats)
}
