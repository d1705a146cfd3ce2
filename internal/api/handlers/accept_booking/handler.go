package accept_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/api/middleware"
	acceptBooking "github.com/m04kA/V4U-MarketplaceService/internal/usecase/accept_booking"
)

const (
	msgMissingActor     = "не удалось определить действующего пользователя"
	msgBookingNotFound  = "бронирование не найдено"
	msgWorkerNotFound   = "исполнитель не зарегистрирован"
	msgNotPermitted     = "роль не позволяет принимать заявки"
	msgCategoryMismatch = "категория исполнителя не совпадает с категорией заявки"
	msgAlreadyAssigned  = "заявка уже принята другим исполнителем"
	msgNotPending       = "заявка уже не в статусе PENDING"
	msgInvalidInput     = "некорректные данные запроса"
)

// AcceptBookingResponse HTTP response model
type AcceptBookingResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customerId"`
	WorkerID      string  `json:"workerId"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	ScheduledTime string  `json:"scheduledTime"` // ISO 8601
	Cost          float64 `json:"cost"`
}

type Handler struct {
	useCase AcceptBookingUseCase
	logger  Logger
}

func NewHandler(useCase AcceptBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &acceptBooking.Request{
		Actor:     actor,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, acceptBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/accept - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, acceptBooking.ErrWorkerNotFound):
			h.logger.Warn("POST /bookings/{id}/accept - Worker not found: user_id=%s", actor.ID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, acceptBooking.ErrNotPermitted):
			h.logger.Warn("POST /bookings/{id}/accept - Not permitted: user_id=%s, role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgNotPermitted)

		case errors.Is(err, acceptBooking.ErrCategoryMismatch):
			h.logger.Warn("POST /bookings/{id}/accept - Category mismatch: booking_id=%s, user_id=%s",
				bookingID, actor.ID)
			handlers.RespondConflict(w, msgCategoryMismatch)

		case errors.Is(err, acceptBooking.ErrAlreadyAssigned):
			h.logger.Warn("POST /bookings/{id}/accept - Already assigned: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyAssigned)

		case errors.Is(err, acceptBooking.ErrNotPending):
			h.logger.Warn("POST /bookings/{id}/accept - Not pending: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, acceptBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/accept - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/accept - Failed to accept booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/accept - Booking accepted: booking_id=%s, worker_id=%s",
		result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, &AcceptBookingResponse{
		ID:            result.ID,
		CustomerID:    result.CustomerID,
		WorkerID:      result.WorkerID,
		Category:      result.Category,
		Description:   result.Description,
		Status:        result.Status,
		ScheduledTime: result.ScheduledTime.Format(time.RFC3339),
		Cost:          result.Cost,
	})
}
