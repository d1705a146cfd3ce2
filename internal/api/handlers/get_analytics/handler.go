package get_analytics

import (
	"errors"
	"net/http"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/analytics"
)

const (
	msgMissingActor = "не удалось определить действующего пользователя"
	msgAccessDenied = "аналитика доступна только администратору"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	result, err := h.service.PlatformStats(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrAccessDenied):
			h.logger.Warn("GET /admin/stats - Access denied: user_id=%s, role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /admin/stats - Failed to collect stats: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/stats - Stats collected: user_id=%s, total_bookings=%d",
		actor.ID, result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
