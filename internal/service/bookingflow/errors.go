package bookingflow

import (
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrNotPermitted возвращается, когда роль актора не дает права создавать бронирования
	ErrNotPermitted = fmt.Errorf("bookingflow: %w: role cannot create bookings", domain.ErrPreconditionFailed)

	// ErrWrongStep возвращается, когда операция недоступна на текущем шаге
	ErrWrongStep = fmt.Errorf("bookingflow: %w: operation is not available at the current step", domain.ErrPreconditionFailed)

	// ErrCategoryNotSelected возвращается при попытке перейти к планированию без выбранной категории
	ErrCategoryNotSelected = fmt.Errorf("bookingflow: %w: category must be selected before advancing", domain.ErrPreconditionFailed)

	// ErrInvalidCategory возвращается при выборе категории вне фиксированного набора
	ErrInvalidCategory = fmt.Errorf("bookingflow: %w: unknown service category", domain.ErrInvalidInput)

	// ErrSuggestionPending возвращается, когда запрос рекомендации уже выполняется.
	// На один поток допускается не более одного незавершенного запроса.
	ErrSuggestionPending = fmt.Errorf("bookingflow: %w: a suggestion request is already in progress", domain.ErrPreconditionFailed)

	// ErrNoSuggestion возвращается при попытке применить рекомендацию, которой нет
	ErrNoSuggestion = fmt.Errorf("bookingflow: %w: no suggestion to apply", domain.ErrPreconditionFailed)

	// ErrSuggestionNotApplicable возвращается, когда рекомендованная категория
	// не входит в фиксированный набор (например, fallback "General")
	ErrSuggestionNotApplicable = fmt.Errorf("bookingflow: %w: suggested category cannot be applied", domain.ErrPreconditionFailed)

	// ErrInvalidTime возвращается при времени вне формата HH:MM
	ErrInvalidTime = fmt.Errorf("bookingflow: %w: time must be in HH:MM format", domain.ErrInvalidInput)

	// ErrInvalidPayment возвращается при неизвестном способе оплаты
	ErrInvalidPayment = fmt.Errorf("bookingflow: %w: unknown payment method", domain.ErrInvalidInput)

	// ErrScheduleIncomplete возвращается при подтверждении без даты, времени или способа оплаты
	ErrScheduleIncomplete = fmt.Errorf("bookingflow: %w: date, time and payment method must be set before confirming", domain.ErrPreconditionFailed)
)
