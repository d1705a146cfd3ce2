package update_worker_availability

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

type WorkerService interface {
	SetAvailability(ctx context.Context, workerID string, available bool) (*domain.WorkerProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
