package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/domain/repository"
	"sdrops-service/pkg/logger"
)

type fakeIncentiveRepo struct {
	incentives []*entity.Incentive
}

func (f *fakeIncentiveRepo) List(ctx context.Context) ([]*entity.Incentive, error) {
	return f.incentives, nil
}

func (f *fakeIncentiveRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Incentive, error) {
	for _, i := range f.incentives {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeIncentiveRepo) Create(ctx context.Context, incentive *entity.Incentive) error {
	if incentive.ID == uuid.Nil {
		incentive.ID = uuid.New()
	}
	f.incentives = append(f.incentives, incentive)
	return nil
}

func (f *fakeIncentiveRepo) Update(ctx context.Context, incentive *entity.Incentive) error {
	for i, existing := range f.incentives {
		if existing.ID == incentive.ID {
			f.incentives[i] = incentive
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeIncentiveRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range f.incentives {
		if existing.ID == id {
			f.incentives = append(f.incentives[:i], f.incentives[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newIncentiveService(repo *fakeIncentiveRepo) *IncentiveService {
	return NewIncentiveService(repo, nil, nil, nil, logger.NewNopLogger())
}

func TestIncentiveCreateValidation(t *testing.T) {
	svc := newIncentiveService(&fakeIncentiveRepo{})

	err := svc.Create(context.Background(), &entity.Incentive{BdrName: "Alex"})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)

	err = svc.Create(context.Background(), &entity.Incentive{BdrName: "Alex", AnnouncedBy: "Manager"})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}

func TestIncentiveCreateDefaultsCurrency(t *testing.T) {
	repo := &fakeIncentiveRepo{}
	svc := newIncentiveService(repo)

	incentive := &entity.Incentive{
		BdrName:     "Alex",
		AnnouncedBy: "Manager",
		Reason:      "Most meetings booked",
		Amount:      decimal.NewFromInt(250),
	}
	require.NoError(t, svc.Create(context.Background(), incentive))
	assert.Equal(t, "USD", incentive.Currency)
}

func TestIncentiveSummaryByApproval(t *testing.T) {
	repo := &fakeIncentiveRepo{incentives: []*entity.Incentive{
		{Approved: true, Amount: decimal.NewFromInt(100)},
		{Approved: false, Amount: decimal.NewFromInt(40)},
	}}
	svc := newIncentiveService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.TotalApproved.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.TotalPending.Equal(decimal.NewFromInt(40)))
}

func TestIncentiveDeleteRequiresConfirmation(t *testing.T) {
	id := uuid.New()
	repo := &fakeIncentiveRepo{incentives: []*entity.Incentive{{ID: id}}}
	svc := newIncentiveService(repo)

	err := svc.Delete(context.Background(), id, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	require.NoError(t, svc.Delete(context.Background(), id, true))
	assert.Empty(t, repo.incentives)
}
