package accept_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("accept_booking: %w: booking not found", domain.ErrNotFound)

	// ErrWorkerNotFound возвращается, когда исполнитель не зарегистрирован
	ErrWorkerNotFound = fmt.Errorf("accept_booking: %w: worker not found", domain.ErrNotFound)

	// ErrNotPermitted возвращается, когда роль актора не дает права принимать заявки
	ErrNotPermitted = fmt.Errorf("accept_booking: %w: role cannot accept bookings", domain.ErrPreconditionFailed)

	// ErrCategoryMismatch возвращается, когда категория исполнителя
	// не совпадает с категорией бронирования
	ErrCategoryMismatch = fmt.Errorf("accept_booking: %w: worker category does not match booking", domain.ErrPreconditionFailed)

	// ErrAlreadyAssigned возвращается, когда у бронирования уже есть исполнитель.
	// Повторный accept после успеха — ошибка, а не no-op: назначение
	// происходит не более одного раза.
	ErrAlreadyAssigned = fmt.Errorf("accept_booking: %w: booking already assigned", domain.ErrPreconditionFailed)

	// ErrNotPending возвращается, когда бронирование уже не в статусе PENDING
	ErrNotPending = fmt.Errorf("accept_booking: %w: booking is not pending", domain.ErrPreconditionFailed)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("accept_booking: %w: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("accept_booking: internal error")
)
