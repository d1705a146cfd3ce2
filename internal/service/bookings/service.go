package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/booking"
	workerRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/worker"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями.
// Все операции принимают актора явным параметром: видимость и права
// на изменение выводятся из роли и идентичности, без глобального
// "текущего пользователя".
type Service struct {
	bookingRepo BookingRegistry
	workerRepo  WorkerRegistry
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRegistry, workerRepo WorkerRegistry, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		workerRepo:  workerRepo,
		logger:      logger,
	}
}

// GetVisible возвращает бронирования, видимые актору:
//   - заказчик видит только собственные бронирования;
//   - исполнитель видит назначенные на него, плюс неназначенные PENDING
//     своей категории;
//   - администратор видит все.
//
// Порядок всегда соответствует порядку вставки в реестр.
func (s *Service) GetVisible(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("GetVisible: actor=%s role=%s", actor.ID, actor.Role)

	all, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetVisible: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetVisible - repository error: %v", ErrInternal, err)
	}

	switch actor.Role {
	case domain.RoleAdmin:
		return models.FromDomainBookingList(all), nil

	case domain.RoleCustomer:
		var visible []*domain.Booking
		for _, b := range all {
			if b.CustomerID == actor.ID {
				visible = append(visible, b)
			}
		}
		return models.FromDomainBookingList(visible), nil

	case domain.RoleWorker:
		profile, err := s.workerRepo.GetByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, workerRepo.ErrWorkerNotFound) {
				s.logger.Warn("GetVisible: worker %s not registered", actor.ID)
				return nil, ErrWorkerNotFound
			}
			s.logger.Error("GetVisible: worker registry error: %v", err)
			return nil, fmt.Errorf("%w: GetVisible - worker registry error: %v", ErrInternal, err)
		}

		var visible []*domain.Booking
		for _, b := range all {
			assignedToMe := b.WorkerID != nil && *b.WorkerID == actor.ID
			openForMe := !b.IsAssigned() &&
				b.Category == profile.Category &&
				b.Status == domain.StatusPending
			if assignedToMe || openForMe {
				visible = append(visible, b)
			}
		}
		return models.FromDomainBookingList(visible), nil

	default:
		s.logger.Warn("GetVisible: unknown role %q for actor=%s", actor.Role, actor.ID)
		return nil, ErrUnknownRole
	}
}

// Cancel отменяет бронирование.
// Разрешено только владельцу и только пока бронирование в статусе PENDING.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: booking=%s customer=%s", bookingID, req.CustomerID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking %s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: customer=%s is not owner of booking=%s", req.CustomerID, bookingID)
		return nil, ErrNotOwner
	}
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrNotPending):
			return nil, ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for booking=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: booking=%s cancelled", bookingID)
	return models.FromDomainBooking(cancelled), nil
}

// Rate устанавливает оценку завершенного бронирования.
// Разрешено только владельцу, только для статуса COMPLETED и только один раз.
func (s *Service) Rate(ctx context.Context, bookingID string, req *models.RateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Rate: booking=%s customer=%s rating=%.1f", bookingID, req.CustomerID, req.Rating)

	if req.Rating < domain.MinBookingRating || req.Rating > domain.MaxBookingRating {
		s.logger.Warn("Rate: invalid rating %.1f for booking=%s", req.Rating, bookingID)
		return nil, ErrInvalidRating
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Rate: booking %s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Rate: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Rate - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != req.CustomerID {
		s.logger.Warn("Rate: customer=%s is not owner of booking=%s", req.CustomerID, bookingID)
		return nil, ErrNotOwner
	}

	rated, err := s.bookingRepo.SetRating(ctx, bookingID, req.Rating, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrNotCompleted):
			s.logger.Warn("Rate: booking=%s is not completed, status=%s", bookingID, booking.Status)
			return nil, ErrNotCompleted
		case errors.Is(err, bookingRepo.ErrAlreadyRated):
			s.logger.Warn("Rate: booking=%s already rated", bookingID)
			return nil, ErrAlreadyRated
		default:
			s.logger.Error("Rate: repository error for booking=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Rate - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Rate: booking=%s rated %.1f", bookingID, req.Rating)
	return models.FromDomainBooking(rated), nil
}

// Complete переводит бронирование из ACCEPTED в COMPLETED.
// Разрешено только назначенному исполнителю; заработок исполнителя
// увеличивается на стоимость бронирования, счетчик работ — на единицу.
func (s *Service) Complete(ctx context.Context, bookingID string, req *models.CompleteBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Complete: booking=%s worker=%s", bookingID, req.WorkerID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking %s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if booking.WorkerID == nil || *booking.WorkerID != req.WorkerID {
		s.logger.Warn("Complete: worker=%s is not assignee of booking=%s", req.WorkerID, bookingID)
		return nil, ErrNotAssignee
	}

	completed, err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrInvalidTransition):
			s.logger.Warn("Complete: booking=%s cannot be completed, status=%s", bookingID, booking.Status)
			return nil, ErrCannotComplete
		default:
			s.logger.Error("Complete: repository error for booking=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}
	}

	if _, err := s.workerRepo.RecordCompletedJob(ctx, req.WorkerID, completed.Cost); err != nil {
		// Статус уже переведен; рассинхронизация счетчиков только логируется
		s.logger.Error("Complete: failed to record job for worker=%s: %v", req.WorkerID, err)
	}

	s.logger.Info("Complete: booking=%s completed by worker=%s", bookingID, req.WorkerID)
	return models.FromDomainBooking(completed), nil
}
