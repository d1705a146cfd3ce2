package booking_flow

import (
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookingflow"
	createBooking "github.com/m04kA/V4U-MarketplaceService/internal/usecase/create_booking"
)

// SetDescriptionRequest HTTP request model
type SetDescriptionRequest struct {
	Description string `json:"description"`
}

// SelectCategoryRequest HTTP request model.
// ApplySuggestion принимает ранее рекомендованную категорию,
// поле category в этом случае игнорируется.
type SelectCategoryRequest struct {
	Category        string `json:"category,omitempty"`
	ApplySuggestion bool   `json:"applySuggestion,omitempty"`
}

// SetScheduleRequest HTTP request model. Передаются только изменяемые поля.
type SetScheduleRequest struct {
	Date          *string `json:"date,omitempty"`      // YYYY-MM-DD
	StartTime     *string `json:"startTime,omitempty"` // HH:MM
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// FlowStateResponse HTTP response model состояния потока
type FlowStateResponse struct {
	Step              string `json:"step"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	SuggestedCategory string `json:"suggestedCategory"`
	SuggestedReason   string `json:"suggestedReason"`
	SuggestionPending bool   `json:"suggestionPending"`
	Date              string `json:"date"`      // YYYY-MM-DD, пустая строка если не задана
	StartTime         string `json:"startTime"` // HH:MM, пустая строка если не задано
	PaymentMethod     string `json:"paymentMethod"`
}

// FromFlowState конвертирует состояние потока в HTTP response
func FromFlowState(s bookingflow.State) *FlowStateResponse {
	date := ""
	if !s.Date.IsZero() {
		date = s.Date.Format(domain.DateFormat)
	}

	return &FlowStateResponse{
		Step:              string(s.Step),
		Description:       s.Description,
		Category:          s.Category,
		SuggestedCategory: s.SuggestedCategory,
		SuggestedReason:   s.SuggestedReason,
		SuggestionPending: s.SuggestionPending,
		Date:              date,
		StartTime:         s.StartTime.String(),
		PaymentMethod:     string(s.PaymentMethod),
	}
}

// ConfirmResponse HTTP response model подтвержденного бронирования
type ConfirmResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customerId"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	ScheduledTime string  `json:"scheduledTime"` // ISO 8601
	PaymentMethod string  `json:"paymentMethod"`
	Cost          float64 `json:"cost"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *ConfirmResponse {
	return &ConfirmResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		Category:      resp.Category,
		Description:   resp.Description,
		Status:        resp.Status,
		ScheduledTime: resp.ScheduledTime.Format(time.RFC3339),
		PaymentMethod: resp.PaymentMethod,
		Cost:          resp.Cost,
	}
}
