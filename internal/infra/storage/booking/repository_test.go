package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CustomerID:    "u1",
		Category:      "Plumber",
		Description:   "Протекает кран на кухне",
		Status:        domain.StatusPending,
		ScheduledTime: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		PaymentMethod: domain.PaymentOnline,
		Cost:          domain.BaseBookingCost,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, pendingBooking("b1"))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.CustomerID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Nil(t, got.WorkerID)

	// повторный ID отклоняется
	_, err = repo.Create(ctx, pendingBooking("b1"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for _, id := range []string{"b3", "b1", "b2"} {
		_, err := repo.Create(ctx, pendingBooking(id))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b3", list[0].ID)
	assert.Equal(t, "b1", list[1].ID)
	assert.Equal(t, "b2", list[2].ID)
}

func TestAssign(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, pendingBooking("b1"))
	require.NoError(t, err)

	assigned, err := repo.Assign(ctx, "b1", "w1")
	require.NoError(t, err)
	require.NotNil(t, assigned.WorkerID)
	assert.Equal(t, "w1", *assigned.WorkerID)
	assert.Equal(t, domain.StatusAccepted, assigned.Status)

	// повторное назначение запрещено, не no-op
	_, err = repo.Assign(ctx, "b1", "w2")
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

	_, err = repo.Assign(ctx, "missing", "w1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Двойной accept двумя конкурирующими исполнителями: успешен ровно один,
// у бронирования ровно один исполнитель.
func TestAssignSingleAssignment(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, pendingBooking("b1"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, workerID := range []string{"w1", "w2"} {
		wg.Add(1)
		go func(i int, workerID string) {
			defer wg.Done()
			_, errs[i] = repo.Assign(ctx, "b1", workerID)
		}(i, workerID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyAssigned)
		}
	}
	assert.Equal(t, 1, succeeded)

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, got.WorkerID)
	assert.Equal(t, domain.StatusAccepted, got.Status)
}

func TestCancel(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, pendingBooking("b1"))
	require.NoError(t, err)

	cancelled, err := repo.Cancel(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	// CANCELLED терминален
	_, err = repo.Cancel(ctx, "b1")
	assert.ErrorIs(t, err, ErrNotPending)
	_, err = repo.Assign(ctx, "b1", "w1")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestUpdateStatusFollowsTransitionGraph(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, pendingBooking("b1"))
	require.NoError(t, err)

	// PENDING -> COMPLETED минуя ACCEPTED запрещен
	_, err = repo.UpdateStatus(ctx, "b1", domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = repo.Assign(ctx, "b1", "w1")
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "b1", domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
}

func TestSetRating(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, pendingBooking("b1"))
	require.NoError(t, err)

	// оценка незавершенного бронирования запрещена
	_, err = repo.SetRating(ctx, "b1", 5, "отлично")
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = repo.Assign(ctx, "b1", "w1")
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, "b1", domain.StatusCompleted)
	require.NoError(t, err)

	rated, err := repo.SetRating(ctx, "b1", 5, "отлично")
	require.NoError(t, err)
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 5.0, *rated.Rating)
	require.NotNil(t, rated.Review)

	// оценка устанавливается ровно один раз
	_, err = repo.SetRating(ctx, "b1", 4, "")
	assert.ErrorIs(t, err, ErrAlreadyRated)
}

func TestCloneIsolation(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, pendingBooking("b1"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	got.Status = domain.StatusCancelled
	got.CustomerID = "hacked"

	fresh, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, fresh.Status)
	assert.Equal(t, "u1", fresh.CustomerID)
}
