package get_workers

import (
	"errors"
	"net/http"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/workers"
)

const (
	msgInvalidCategory = "неизвестная категория услуги"
)

type Handler struct {
	service WorkerService
	logger  Logger
}

func NewHandler(service WorkerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers?category=Plumber
// Без параметра category возвращает всех исполнителей.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var result *WorkerListResponse

	if category == "" {
		all, err := h.service.List(r.Context())
		if err != nil {
			h.logger.Error("GET /workers - Failed to list workers: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		result = FromDomainWorkers(all)
	} else {
		filtered, err := h.service.FindByCategory(r.Context(), category)
		if err != nil {
			switch {
			case errors.Is(err, workers.ErrInvalidCategory):
				h.logger.Warn("GET /workers - Invalid category: %s", category)
				handlers.RespondBadRequest(w, msgInvalidCategory)

			default:
				h.logger.Error("GET /workers - Failed to find workers: category=%s, error=%v", category, err)
				handlers.RespondInternalError(w)
			}
			return
		}
		result = FromDomainWorkers(filtered)
	}

	h.logger.Info("GET /workers - Listed %d workers: category=%q", len(result.Workers), category)
	handlers.RespondJSON(w, http.StatusOK, result)
}
