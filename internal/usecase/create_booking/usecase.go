package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRegistry
	idGen       IDGenerator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRegistry, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		idGen:       &uuidGenerator{},
		logger:      logger,
	}
}

// Execute создает новое бронирование.
// Новое бронирование всегда получает свежий уникальный ID, статус PENDING
// и фиксированную базовую стоимость; исполнитель не назначен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, category=%s, date=%s, time=%s",
		req.Actor.ID, req.Category, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	scheduledTime, err := req.StartTime.OnDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to combine date and time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMissingTime, err)
	}

	booking := &domain.Booking{
		ID:            uc.idGen.NewID(),
		CustomerID:    req.Actor.ID,
		Category:      req.Category,
		Description:   req.Description,
		Status:        domain.StatusPending,
		ScheduledTime: scheduledTime,
		PaymentMethod: req.PaymentMethod,
		Cost:          domain.BaseBookingCost,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%s", created.ID)

	return &Response{
		ID:            created.ID,
		CustomerID:    created.CustomerID,
		Category:      created.Category,
		Description:   created.Description,
		Status:        string(created.Status),
		ScheduledTime: created.ScheduledTime,
		PaymentMethod: string(created.PaymentMethod),
		Cost:          created.Cost,
		CreatedAt:     created.CreatedAt,
		UpdatedAt:     created.UpdatedAt,
	}, nil
}

// uuidGenerator генератор идентификаторов для production
type uuidGenerator struct{}

// NewID возвращает новый уникальный идентификатор
func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}
