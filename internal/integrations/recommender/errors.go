package recommender

import (
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrUnavailable возвращается при сетевой ошибке или недоступности провайдера
	ErrUnavailable = fmt.Errorf("recommender client: %w", domain.ErrExternalUnavailable)

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = fmt.Errorf("recommender client: %w: invalid response", domain.ErrExternalUnavailable)
)
