package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

func newProfile(id, category string, rate float64) *domain.WorkerProfile {
	return &domain.WorkerProfile{
		Actor:       domain.Actor{ID: id, Role: domain.RoleWorker},
		Category:    category,
		BaseRate:    rate,
		IsAvailable: true,
	}
}

func TestAddAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newProfile("w1", "Plumber", 50)))
	assert.ErrorIs(t, repo.Add(ctx, newProfile("w1", "Cleaner", 40)), ErrDuplicateID)

	got, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Plumber", got.Category)

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestFindByCategoryInsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newProfile("w1", "Plumber", 50)))
	require.NoError(t, repo.Add(ctx, newProfile("w2", "Cleaner", 40)))
	require.NoError(t, repo.Add(ctx, newProfile("w3", "Plumber", 70)))

	plumbers, err := repo.FindByCategory(ctx, "Plumber")
	require.NoError(t, err)
	require.Len(t, plumbers, 2)
	assert.Equal(t, "w1", plumbers[0].ID)
	assert.Equal(t, "w3", plumbers[1].ID)

	none, err := repo.FindByCategory(ctx, "Electrician")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecordCompletedJob(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newProfile("w1", "Plumber", 50)))

	updated, err := repo.RecordCompletedJob(ctx, "w1", 50)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalJobs)
	assert.Equal(t, 50.0, updated.TotalEarnings)

	// нулевой заработок не меняет сумму, но работа засчитывается
	updated, err = repo.RecordCompletedJob(ctx, "w1", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TotalJobs)
	assert.Equal(t, 50.0, updated.TotalEarnings)

	_, err = repo.RecordCompletedJob(ctx, "ghost", 10)
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestReturnedProfileIsCopy(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newProfile("w1", "Plumber", 50)))

	got, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	got.BaseRate = 999

	again, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, again.BaseRate)
}
