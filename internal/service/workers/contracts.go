package workers

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// WorkerRegistry интерфейс реестра исполнителей
type WorkerRegistry interface {
	GetByID(ctx context.Context, id string) (*domain.WorkerProfile, error)
	List(ctx context.Context) ([]*domain.WorkerProfile, error)
	FindByCategory(ctx context.Context, category string) ([]*domain.WorkerProfile, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.WorkerProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
