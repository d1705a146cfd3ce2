package recommendations

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/integrations/recommender"
)

// SuggestionClient интерфейс клиента внешнего классификатора
type SuggestionClient interface {
	Suggest(ctx context.Context, description string) (*recommender.Suggestion, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
