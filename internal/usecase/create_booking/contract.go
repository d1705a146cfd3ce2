package create_booking

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// BookingRegistry интерфейс реестра бронирований
type BookingRegistry interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// IDGenerator генерирует уникальные идентификаторы бронирований
// (интерфейс для детерминированных тестов)
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
