package complete_booking

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
	msgMissingActor   = "не удалось определить действующего пользователя"
	msgNotFound       = "бронирование не найдено"
	msgNotAssignee    = "бронирование назначено другому исполнителю"
	msgCannotComplete = "завершить можно только принятое бронирование"
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

// Handle POST /api/v1/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	result, err := h.service.Complete(r.Context(), bookingID, &models.CompleteBookingRequest{
		WorkerID: actor.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/complete - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotAssignee):
			h.logger.Warn("POST /bookings/{id}/complete - Access denied: booking_id=%s, user_id=%s",
				bookingID, actor.ID)
			handlers.RespondForbidden(w, msgNotAssignee)

		case errors.Is(err, bookings.ErrCannotComplete):
			h.logger.Warn("POST /bookings/{id}/complete - Cannot complete: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotComplete)

		default:
			h.logger.Error("POST /bookings/{id}/complete - Failed to complete booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/complete - Booking completed: booking_id=%s, worker_id=%s",
		bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
