package accept_booking

import (
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// Request модель запроса на принятие заявки исполнителем
type Request struct {
	Actor     domain.Actor // Действующий актор (исполнитель)
	BookingID string       // Идентификатор бронирования
}

// Response модель ответа с принятым бронированием
type Response struct {
	ID            string
	CustomerID    string
	WorkerID      string
	Category      string
	Description   string
	Status        string
	ScheduledTime time.Time
	Cost          float64
}
