package get_analytics

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/analytics"
)

type AnalyticsService interface {
	PlatformStats(ctx context.Context, actor domain.Actor) (*analytics.PlatformStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
