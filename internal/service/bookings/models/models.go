package models

import (
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования владельцем
type CancelBookingRequest struct {
	CustomerID string `json:"customerId"`
}

// RateBookingRequest запрос на оценку завершенного бронирования
type RateBookingRequest struct {
	CustomerID string  `json:"customerId"`
	Rating     float64 `json:"rating"`
	Review     string  `json:"review,omitempty"`
}

// CompleteBookingRequest запрос исполнителя на завершение работы
type CompleteBookingRequest struct {
	WorkerID string `json:"workerId"`
}

// Response модели

// ProductUsageResponse использованный товар в составе бронирования
type ProductUsageResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string   `json:"id"`
	CustomerID    string   `json:"customerId"`
	WorkerID      *string  `json:"workerId,omitempty"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	ScheduledTime string   `json:"scheduledTime"` // ISO 8601
	PaymentMethod string   `json:"paymentMethod"`
	Cost          float64  `json:"cost"`
	Rating        *float64 `json:"rating,omitempty"`
	Review        *string  `json:"review,omitempty"`

	ProductsUsed []ProductUsageResponse `json:"productsUsed,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		WorkerID:      b.WorkerID,
		Category:      b.Category,
		Description:   b.Description,
		Status:        string(b.Status),
		ScheduledTime: b.ScheduledTime.Format(time.RFC3339),
		PaymentMethod: string(b.PaymentMethod),
		Cost:          b.Cost,
		Rating:        b.Rating,
		Review:        b.Review,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	for _, p := range b.ProductsUsed {
		resp.ProductsUsed = append(resp.ProductsUsed, ProductUsageResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Quantity:  p.Quantity,
		})
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if converted := FromDomainBooking(b); converted != nil {
			resp.Bookings = append(resp.Bookings, *converted)
		}
	}
	return resp
}
