package update_worker_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/workers"
)

const (
	msgMissingActor       = "не удалось определить действующего пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotWorker          = "доступно только исполнителю"
	msgWorkerNotFound     = "исполнитель не зарегистрирован"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

// UpdateAvailabilityResponse HTTP response model
type UpdateAvailabilityResponse struct {
	ID          string `json:"id"`
	IsAvailable bool   `json:"isAvailable"`
}

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

// Handle PATCH /api/v1/workers/availability
// Исполнитель переключает доступность только своего профиля.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	if actor.Role != domain.RoleWorker {
		h.logger.Warn("PATCH /workers/availability - Not a worker: user_id=%s, role=%s", actor.ID, actor.Role)
		handlers.RespondForbidden(w, msgNotWorker)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /workers/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetAvailability(r.Context(), actor.ID, req.IsAvailable)
	if err != nil {
		switch {
		case errors.Is(err, workers.ErrWorkerNotFound):
			h.logger.Warn("PATCH /workers/availability - Worker not found: user_id=%s", actor.ID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("PATCH /workers/availability - Failed to update availability: user_id=%s, error=%v",
				actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /workers/availability - Availability updated: user_id=%s, available=%t",
		actor.ID, result.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, &UpdateAvailabilityResponse{
		ID:          result.ID,
		IsAvailable: result.IsAvailable,
	})
}
