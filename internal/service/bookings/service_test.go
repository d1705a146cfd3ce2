package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/booking"
	workerRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/worker"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newBooking(id, customerID, category string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CustomerID:    customerID,
		Category:      category,
		Status:        domain.StatusPending,
		ScheduledTime: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		PaymentMethod: domain.PaymentOnline,
		Cost:          domain.BaseBookingCost,
	}
}

func setup(t *testing.T) (*Service, *bookingRepo.Repository, *workerRepo.Repository) {
	t.Helper()

	bookings := bookingRepo.NewRepository()
	workers := workerRepo.NewRepository()
	ctx := context.Background()

	require.NoError(t, workers.Add(ctx, &domain.WorkerProfile{
		Actor:    domain.Actor{ID: "w1", Name: "Robert Fixit", Role: domain.RoleWorker},
		Category: "Plumber",
		BaseRate: 50,
	}))

	for _, b := range []*domain.Booking{
		newBooking("b1", "u1", "Plumber"),
		newBooking("b2", "u2", "Plumber"),
		newBooking("b3", "u1", "Cleaner"),
	} {
		_, err := bookings.Create(ctx, b)
		require.NoError(t, err)
	}

	return NewService(bookings, workers, nopLogger{}), bookings, workers
}

func TestGetVisibleForCustomer(t *testing.T) {
	svc, _, _ := setup(t)

	resp, err := svc.GetVisible(context.Background(), domain.Actor{ID: "u1", Role: domain.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "b1", resp.Bookings[0].ID)
	assert.Equal(t, "b3", resp.Bookings[1].ID)
}

func TestGetVisibleForWorker(t *testing.T) {
	svc, bookings, _ := setup(t)
	ctx := context.Background()

	// b2 назначаем на другого исполнителя: из видимости w1 он исчезает
	_, err := bookings.Assign(ctx, "b2", "w999")
	require.NoError(t, err)

	resp, err := svc.GetVisible(ctx, domain.Actor{ID: "w1", Role: domain.RoleWorker})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b1", resp.Bookings[0].ID)

	// назначенное на w1 бронирование видно независимо от статуса
	_, err = bookings.Assign(ctx, "b1", "w1")
	require.NoError(t, err)

	resp, err = svc.GetVisible(ctx, domain.Actor{ID: "w1", Role: domain.RoleWorker})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b1", resp.Bookings[0].ID)
	assert.Equal(t, string(domain.StatusAccepted), resp.Bookings[0].Status)
}

func TestGetVisibleForAdminAndUnknownRole(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	resp, err := svc.GetVisible(ctx, domain.Actor{ID: "admin1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)

	_, err = svc.GetVisible(ctx, domain.Actor{ID: "x", Role: "GUEST"})
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = svc.GetVisible(ctx, domain.Actor{ID: "ghost", Role: domain.RoleWorker})
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestCancel(t *testing.T) {
	svc, bookings, _ := setup(t)
	ctx := context.Background()

	// не владелец
	_, err := svc.Cancel(ctx, "b1", &models.CancelBookingRequest{CustomerID: "u2"})
	assert.ErrorIs(t, err, ErrNotOwner)

	resp, err := svc.Cancel(ctx, "b1", &models.CancelBookingRequest{CustomerID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	// только PENDING
	_, err = bookings.Assign(ctx, "b2", "w1")
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, "b2", &models.CancelBookingRequest{CustomerID: "u2"})
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(ctx, "missing", &models.CancelBookingRequest{CustomerID: "u1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRate(t *testing.T) {
	svc, bookings, _ := setup(t)
	ctx := context.Background()

	// оценка незавершенного бронирования запрещена
	_, err := svc.Rate(ctx, "b1", &models.RateBookingRequest{CustomerID: "u1", Rating: 5})
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = bookings.Assign(ctx, "b1", "w1")
	require.NoError(t, err)
	_, err = bookings.UpdateStatus(ctx, "b1", domain.StatusCompleted)
	require.NoError(t, err)

	// оценка вне [1,5]
	_, err = svc.Rate(ctx, "b1", &models.RateBookingRequest{CustomerID: "u1", Rating: 5.5})
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = svc.Rate(ctx, "b1", &models.RateBookingRequest{CustomerID: "u1", Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	// не владелец
	_, err = svc.Rate(ctx, "b1", &models.RateBookingRequest{CustomerID: "u2", Rating: 5})
	assert.ErrorIs(t, err, ErrNotOwner)

	resp, err := svc.Rate(ctx, "b1", &models.RateBookingRequest{CustomerID: "u1", Rating: 5, Review: "отлично"})
	require.NoError(t, err)
	require.NotNil(t, resp.Rating)
	assert.Equal(t, 5.0, *resp.Rating)

	// повторная оценка запрещена
	_, err = svc.Rate(ctx, "b1", &models.RateBookingRequest{CustomerID: "u1", Rating: 4})
	assert.ErrorIs(t, err, ErrAlreadyRated)
}

func TestComplete(t *testing.T) {
	svc, bookings, workers := setup(t)
	ctx := context.Background()

	// завершить PENDING нельзя даже владельцу назначения
	_, err := svc.Complete(ctx, "b1", &models.CompleteBookingRequest{WorkerID: "w1"})
	assert.ErrorIs(t, err, ErrNotAssignee)

	_, err = bookings.Assign(ctx, "b1", "w1")
	require.NoError(t, err)

	// чужой исполнитель не может завершить
	_, err = svc.Complete(ctx, "b1", &models.CompleteBookingRequest{WorkerID: "w2"})
	assert.ErrorIs(t, err, ErrNotAssignee)

	resp, err := svc.Complete(ctx, "b1", &models.CompleteBookingRequest{WorkerID: "w1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)

	// счетчики исполнителя растут на стоимость бронирования
	profile, err := workers.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalJobs)
	assert.Equal(t, domain.BaseBookingCost, profile.TotalEarnings)

	// повторное завершение запрещено
	_, err = svc.Complete(ctx, "b1", &models.CompleteBookingRequest{WorkerID: "w1"})
	assert.ErrorIs(t, err, ErrCannotComplete)
}
