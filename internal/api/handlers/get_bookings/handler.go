package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookings"
)

const (
	msgMissingActor   = "не удалось определить действующего пользователя"
	msgUnknownRole    = "неизвестная роль пользователя"
	msgWorkerNotFound = "исполнитель не зарегистрирован"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Возвращает бронирования, видимые текущему актору: свои для заказчика,
// назначенные и подходящие ожидающие для исполнителя, все для администратора.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	result, err := h.service.GetVisible(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnknownRole):
			h.logger.Warn("GET /bookings - Unknown role: user_id=%s, role=%s", actor.ID, actor.Role)
			handlers.RespondBadRequest(w, msgUnknownRole)

		case errors.Is(err, bookings.ErrWorkerNotFound):
			h.logger.Warn("GET /bookings - Worker not found: user_id=%s", actor.ID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings: user_id=%s, role=%s",
		len(result.Bookings), actor.ID, actor.Role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
