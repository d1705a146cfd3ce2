package accept_booking

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// BookingRegistry интерфейс реестра бронирований
type BookingRegistry interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Assign(ctx context.Context, id string, workerID string) (*domain.Booking, error)
}

// WorkerRegistry интерфейс реестра исполнителей
type WorkerRegistry interface {
	GetByID(ctx context.Context, id string) (*domain.WorkerProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
