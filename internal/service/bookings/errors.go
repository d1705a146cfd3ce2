package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("bookings: %w: booking not found", domain.ErrNotFound)

	// ErrWorkerNotFound возвращается, когда исполнитель не найден в реестре
	ErrWorkerNotFound = fmt.Errorf("bookings: %w: worker not found", domain.ErrNotFound)

	// ErrNotOwner возвращается, когда бронирование принадлежит другому заказчику
	ErrNotOwner = fmt.Errorf("bookings: %w: booking belongs to another customer", domain.ErrPreconditionFailed)

	// ErrNotAssignee возвращается, когда бронирование назначено другому исполнителю
	ErrNotAssignee = fmt.Errorf("bookings: %w: booking assigned to another worker", domain.ErrPreconditionFailed)

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить
	ErrCannotCancel = fmt.Errorf("bookings: %w: booking cannot be cancelled", domain.ErrPreconditionFailed)

	// ErrNotCompleted возвращается при попытке оценить незавершенное бронирование
	ErrNotCompleted = fmt.Errorf("bookings: %w: booking is not completed", domain.ErrPreconditionFailed)

	// ErrAlreadyRated возвращается при повторной оценке бронирования
	ErrAlreadyRated = fmt.Errorf("bookings: %w: booking already rated", domain.ErrPreconditionFailed)

	// ErrCannotComplete возвращается при недопустимом переходе в COMPLETED
	ErrCannotComplete = fmt.Errorf("bookings: %w: booking cannot be completed", domain.ErrPreconditionFailed)

	// ErrInvalidRating возвращается, когда оценка вне диапазона [1,5]
	ErrInvalidRating = fmt.Errorf("bookings: %w: rating must be between 1 and 5", domain.ErrInvalidInput)

	// ErrUnknownRole возвращается для актора с неизвестной ролью
	ErrUnknownRole = fmt.Errorf("bookings: %w: unknown actor role", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
