package suggest_category

import (
	"net/http"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyDescription   = "описание проблемы не должно быть пустым"
)

// SuggestRequest HTTP request model
type SuggestRequest struct {
	Description string `json:"description"`
}

// SuggestResponse HTTP response model
type SuggestResponse struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

type Handler struct {
	service RecommendationService
	logger  Logger
}

func NewHandler(service RecommendationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/recommendations
// Пустое описание не доходит до шлюза: вызывающая сторона обязана
// передать непустой текст.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recommendations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Description == "" {
		h.logger.Warn("POST /recommendations - Empty description")
		handlers.RespondBadRequest(w, msgEmptyDescription)
		return
	}

	suggestion := h.service.Suggest(r.Context(), req.Description)

	h.logger.Info("POST /recommendations - Suggestion: category=%s", suggestion.Category)
	handlers.RespondJSON(w, http.StatusOK, &SuggestResponse{
		Category: suggestion.Category,
		Reason:   suggestion.Reason,
	})
}
