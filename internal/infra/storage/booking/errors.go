package booking

import (
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking.registry: %w: booking not found", domain.ErrNotFound)

	// ErrDuplicateID возвращается при попытке создать бронирование с занятым ID
	ErrDuplicateID = fmt.Errorf("booking.registry: %w: booking id already exists", domain.ErrInvalidInput)

	// ErrAlreadyAssigned возвращается, когда у бронирования уже есть исполнитель
	ErrAlreadyAssigned = fmt.Errorf("booking.registry: %w: booking already assigned", domain.ErrPreconditionFailed)

	// ErrNotPending возвращается при переходе, допустимом только из статуса PENDING
	ErrNotPending = fmt.Errorf("booking.registry: %w: booking is not pending", domain.ErrPreconditionFailed)

	// ErrNotCompleted возвращается при попытке оценить незавершенное бронирование
	ErrNotCompleted = fmt.Errorf("booking.registry: %w: booking is not completed", domain.ErrPreconditionFailed)

	// ErrAlreadyRated возвращается при повторной оценке бронирования
	ErrAlreadyRated = fmt.Errorf("booking.registry: %w: booking already rated", domain.ErrPreconditionFailed)

	// ErrInvalidTransition возвращается при недопустимом переходе статусов
	ErrInvalidTransition = fmt.Errorf("booking.registry: %w: invalid status transition", domain.ErrPreconditionFailed)
)
