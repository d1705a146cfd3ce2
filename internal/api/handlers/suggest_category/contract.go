package suggest_category

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/service/recommendations"
)

type RecommendationService interface {
	Suggest(ctx context.Context, description string) recommendations.Suggestion
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
