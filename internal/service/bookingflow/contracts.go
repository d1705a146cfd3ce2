package bookingflow

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/service/recommendations"
	"github.com/m04kA/V4U-MarketplaceService/internal/usecase/create_booking"
)

// Suggester интерфейс сервиса рекомендаций категорий
type Suggester interface {
	Suggest(ctx context.Context, description string) recommendations.Suggestion
}

// BookingCreator интерфейс use case создания бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
