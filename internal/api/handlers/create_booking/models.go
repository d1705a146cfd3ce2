package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	createBooking "github.com/m04kA/V4U-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/V4U-MarketplaceService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Category      string `json:"category"`
	Description   string `json:"description"`
	Date          string `json:"date"`          // YYYY-MM-DD
	StartTime     string `json:"startTime"`     // HH:MM
	PaymentMethod string `json:"paymentMethod"` // ONLINE | COD
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
// с парсингом даты и времени
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid time string format: %w", err)
	}

	return &createBooking.Request{
		Actor:         actor,
		Category:      r.Category,
		Description:   r.Description,
		Date:          date,
		StartTime:     startTime,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	ScheduledTime string    `json:"scheduledTime"` // ISO 8601
	PaymentMethod string    `json:"paymentMethod"`
	Cost          float64   `json:"cost"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		Category:      resp.Category,
		Description:   resp.Description,
		Status:        resp.Status,
		ScheduledTime: resp.ScheduledTime.Format(time.RFC3339),
		PaymentMethod: resp.PaymentMethod,
		Cost:          resp.Cost,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
}
