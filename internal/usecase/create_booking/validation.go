package create_booking

import (
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor.ID == "" {
		return fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	if !domain.HasCapability(req.Actor.Role, domain.CapCreateBooking) {
		return ErrNotPermitted
	}

	if !domain.IsValidCategory(req.Category) {
		return ErrInvalidCategory
	}

	// Запланированное время должно складываться из даты и времени;
	// отсутствие любой из составляющих — ошибка входных данных
	if req.Date.IsZero() {
		return ErrMissingDate
	}
	if req.StartTime.IsZero() {
		return ErrMissingTime
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingTime, err)
	}

	if !domain.IsValidPaymentMethod(req.PaymentMethod) {
		return ErrInvalidPayment
	}

	return nil
}
