package accept_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/booking"
	workerRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/worker"
)

// UseCase use case принятия заявки исполнителем
type UseCase struct {
	bookingRepo BookingRegistry
	workerRepo  WorkerRegistry
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRegistry, workerRepo WorkerRegistry, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		workerRepo:  workerRepo,
		logger:      logger,
	}
}

// Execute принимает заявку: назначает исполнителя и переводит бронирование
// в статус ACCEPTED. Разрешено только исполнителю, чья категория совпадает
// с категорией бронирования, и только пока заявка PENDING и без исполнителя.
// Назначение выполняется реестром атомарно, поэтому из двух конкурирующих
// вызовов успешен ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcceptBooking: worker=%s, booking=%s", req.Actor.ID, req.BookingID)

	if req.Actor.ID == "" || req.BookingID == "" {
		return nil, fmt.Errorf("%w: actor id and booking id are required", ErrInvalidInput)
	}

	if !domain.HasCapability(req.Actor.Role, domain.CapAcceptMatchingJob) {
		uc.logger.Warn("AcceptBooking: role %s cannot accept bookings", req.Actor.Role)
		return nil, ErrNotPermitted
	}

	// Профиль исполнителя нужен для проверки совпадения категорий
	profile, err := uc.workerRepo.GetByID(ctx, req.Actor.ID)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			uc.logger.Warn("AcceptBooking: worker %s not registered", req.Actor.ID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("AcceptBooking: worker registry error: %v", err)
		return nil, fmt.Errorf("%w: worker registry error: %v", ErrInternal, err)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("AcceptBooking: booking %s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("AcceptBooking: booking registry error: %v", err)
		return nil, fmt.Errorf("%w: booking registry error: %v", ErrInternal, err)
	}

	// Категория бронирования неизменяема, поэтому проверка до назначения
	// не создает гонки: сам Assign повторно проверяет статус и назначение
	if booking.Category != profile.Category {
		uc.logger.Warn("AcceptBooking: category mismatch, worker=%s booking=%s",
			profile.Category, booking.Category)
		return nil, ErrCategoryMismatch
	}

	assigned, err := uc.bookingRepo.Assign(ctx, req.BookingID, req.Actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrAlreadyAssigned):
			uc.logger.Warn("AcceptBooking: booking %s already assigned", req.BookingID)
			return nil, ErrAlreadyAssigned
		case errors.Is(err, bookingRepo.ErrNotPending):
			uc.logger.Warn("AcceptBooking: booking %s is not pending", req.BookingID)
			return nil, ErrNotPending
		default:
			uc.logger.Error("AcceptBooking: failed to assign booking %s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to assign booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("AcceptBooking: booking=%s accepted by worker=%s", assigned.ID, req.Actor.ID)

	return &Response{
		ID:            assigned.ID,
		CustomerID:    assigned.CustomerID,
		WorkerID:      *assigned.WorkerID,
		Category:      assigned.Category,
		Description:   assigned.Description,
		Status:        string(assigned.Status),
		ScheduledTime: assigned.ScheduledTime,
		Cost:          assigned.Cost,
	}, nil
}
