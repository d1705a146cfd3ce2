package get_workers

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

type WorkerService interface {
	List(ctx context.Context) ([]*domain.WorkerProfile, error)
	FindByCategory(ctx context.Context, category string) ([]*domain.WorkerProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
