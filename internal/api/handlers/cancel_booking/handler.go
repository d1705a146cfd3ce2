package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookings"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookings/models"
)

const (
	msgMissingActor = "не удалось определить действующего пользователя"
	msgNotFound     = "бронирование не найдено"
	msgForbidden    = "бронирование принадлежит другому заказчику"
	msgCannotCancel = "бронирование не может быть отменено"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	result, err := h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{
		CustomerID: actor.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotOwner):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s, user_id=%s",
				bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s, user_id=%s",
		bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
