package recommendations

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// Suggestion рекомендация категории услуги по описанию проблемы
type Suggestion struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// Fallback детерминированный ответ при любой ошибке внешнего вызова
var Fallback = Suggestion{
	Category: domain.FallbackCategory,
	Reason:   domain.FallbackReason,
}

// Service сервис рекомендаций. Оборачивает внешний классификатор и
// переводит любую его ошибку в детерминированный fallback: вызов
// рекомендации никогда не прерывает процесс бронирования.
type Service struct {
	client SuggestionClient
	logger Logger
}

// NewService создает новый экземпляр сервиса рекомендаций
func NewService(client SuggestionClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Suggest возвращает рекомендованную категорию для описания проблемы.
// Ошибки не возвращаются: сетевые сбои, некорректные ответы и категории
// вне фиксированного набора приводят к fallback-значению.
// Пустое описание — ответственность вызывающего кода: он обязан
// не вызывать Suggest вовсе.
func (s *Service) Suggest(ctx context.Context, description string) Suggestion {
	result, err := s.client.Suggest(ctx, description)
	if err != nil {
		s.logger.Warn("Suggest: external classifier failed, using fallback: %v", err)
		return Fallback
	}

	if !domain.IsValidCategory(result.Category) {
		s.logger.Warn("Suggest: classifier returned unknown category %q, using fallback", result.Category)
		return Fallback
	}

	s.logger.Info("Suggest: category=%s", result.Category)
	return Suggestion{
		Category: result.Category,
		Reason:   result.Reason,
	}
}
