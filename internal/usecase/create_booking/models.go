package create_booking

import (
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Актор передается явно: операция разрешена только заказчику,
// владельцем бронирования становится именно он.
type Request struct {
	Actor         domain.Actor         // Действующий актор (заказчик)
	Category      string               // Категория услуги из фиксированного набора
	Description   string               // Свободное описание проблемы
	Date          time.Time            // Дата бронирования (без времени)
	StartTime     types.TimeString     // Время начала (например, "09:00")
	PaymentMethod domain.PaymentMethod // Способ оплаты
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	CustomerID    string
	Category      string
	Description   string
	Status        string
	ScheduledTime time.Time
	PaymentMethod string
	Cost          float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
