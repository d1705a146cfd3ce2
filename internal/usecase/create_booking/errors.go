package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrNotPermitted возвращается, когда роль актора не дает права создавать бронирования
	ErrNotPermitted = fmt.Errorf("create_booking: %w: role cannot create bookings", domain.ErrPreconditionFailed)

	// ErrInvalidCategory возвращается для категории вне фиксированного набора
	ErrInvalidCategory = fmt.Errorf("create_booking: %w: unknown service category", domain.ErrInvalidInput)

	// ErrMissingDate возвращается, когда дата бронирования не задана
	ErrMissingDate = fmt.Errorf("create_booking: %w: booking date is required", domain.ErrInvalidInput)

	// ErrMissingTime возвращается, когда время бронирования не задано или некорректно
	ErrMissingTime = fmt.Errorf("create_booking: %w: booking time is required", domain.ErrInvalidInput)

	// ErrInvalidPayment возвращается для неизвестного способа оплаты
	ErrInvalidPayment = fmt.Errorf("create_booking: %w: unknown payment method", domain.ErrInvalidInput)

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: %w: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
