package get_bookings

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookings/models"
)

type BookingService interface {
	GetVisible(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
