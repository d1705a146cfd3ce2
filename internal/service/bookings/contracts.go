package bookings

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// BookingRegistry интерфейс реестра бронирований
type BookingRegistry interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	SetRating(ctx context.Context, id string, rating float64, review string) (*domain.Booking, error)
}

// WorkerRegistry интерфейс реестра исполнителей
type WorkerRegistry interface {
	GetByID(ctx context.Context, id string) (*domain.WorkerProfile, error)
	RecordCompletedJob(ctx context.Context, id string, earnings float64) (*domain.WorkerProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
