package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/api/middleware"
	createBooking "github.com/m04kA/V4U-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/V4U-MarketplaceService/pkg/types"
)

const (
	msgMissingActor       = "не удалось определить действующего пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgNotPermitted       = "роль не позволяет создавать бронирования"
	msgInvalidCategory    = "неизвестная категория услуги"
	msgMissingDate        = "не указана дата бронирования"
	msgMissingTime        = "не указано время начала"
	msgInvalidPayment     = "неизвестный способ оплаты"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNotPermitted):
			h.logger.Warn("POST /bookings - Not permitted: user_id=%s, role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgNotPermitted)

		case errors.Is(err, createBooking.ErrInvalidCategory):
			h.logger.Warn("POST /bookings - Invalid category: %s", req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, createBooking.ErrMissingDate):
			h.logger.Warn("POST /bookings - Missing date: user_id=%s", actor.ID)
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, createBooking.ErrMissingTime):
			h.logger.Warn("POST /bookings - Missing time: user_id=%s", actor.ID)
			handlers.RespondBadRequest(w, msgMissingTime)

		case errors.Is(err, createBooking.ErrInvalidPayment):
			h.logger.Warn("POST /bookings - Invalid payment method: %s", req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s", result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
