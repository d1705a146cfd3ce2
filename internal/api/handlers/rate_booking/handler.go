package rate_booking

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
	msgMissingActor       = "не удалось определить действующего пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "бронирование принадлежит другому заказчику"
	msgNotCompleted       = "оценить можно только завершенное бронирование"
	msgAlreadyRated       = "бронирование уже оценено"
	msgInvalidRating      = "оценка должна быть в диапазоне от 1 до 5"
)

// RateBookingRequest HTTP request model
type RateBookingRequest struct {
	Rating float64 `json:"rating"`
	Review *string `json:"review,omitempty"`
}

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

// Handle POST /api/v1/bookings/{bookingId}/rating
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	var req RateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/rating - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review := ""
	if req.Review != nil {
		review = *req.Review
	}

	result, err := h.service.Rate(r.Context(), bookingID, &models.RateBookingRequest{
		CustomerID: actor.ID,
		Rating:     req.Rating,
		Review:     review,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/rating - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotOwner):
			h.logger.Warn("POST /bookings/{id}/rating - Access denied: booking_id=%s, user_id=%s",
				bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrNotCompleted):
			h.logger.Warn("POST /bookings/{id}/rating - Not completed: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotCompleted)

		case errors.Is(err, bookings.ErrAlreadyRated):
			h.logger.Warn("POST /bookings/{id}/rating - Already rated: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyRated)

		case errors.Is(err, bookings.ErrInvalidRating):
			h.logger.Warn("POST /bookings/{id}/rating - Invalid rating: booking_id=%s, rating=%f",
				bookingID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		default:
			h.logger.Error("POST /bookings/{id}/rating - Failed to rate booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/rating - Booking rated: booking_id=%s, user_id=%s, rating=%f",
		bookingID, actor.ID, req.Rating)
	handlers.RespondJSON(w, http.StatusOK, result)
}
