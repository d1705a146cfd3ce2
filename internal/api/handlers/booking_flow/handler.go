package booking_flow

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookingflow"
	"github.com/m04kA/V4U-MarketplaceService/pkg/types"
)

const (
	msgMissingActor        = "не удалось определить действующего пользователя"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotPermitted        = "роль не позволяет создавать бронирования"
	msgWrongStep           = "операция недоступна на текущем шаге"
	msgCategoryNotSelected = "сначала выберите категорию услуги"
	msgInvalidCategory     = "неизвестная категория услуги"
	msgSuggestionPending   = "запрос рекомендации уже выполняется"
	msgNoSuggestion        = "нет рекомендации для применения"
	msgSuggestionNotUsable = "рекомендованную категорию нельзя применить"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgInvalidPayment      = "неизвестный способ оплаты"
	msgScheduleIncomplete  = "задайте дату, время и способ оплаты перед подтверждением"
)

type Handler struct {
	manager FlowManager
	logger  Logger
}

func NewHandler(manager FlowManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// respondFlowError единая трансляция ошибок потока в HTTP статусы
func (h *Handler) respondFlowError(w http.ResponseWriter, op string, actorID string, err error) {
	switch {
	case errors.Is(err, bookingflow.ErrNotPermitted):
		h.logger.Warn("%s - Not permitted: user_id=%s", op, actorID)
		handlers.RespondForbidden(w, msgNotPermitted)

	case errors.Is(err, bookingflow.ErrWrongStep):
		h.logger.Warn("%s - Wrong step: user_id=%s", op, actorID)
		handlers.RespondConflict(w, msgWrongStep)

	case errors.Is(err, bookingflow.ErrCategoryNotSelected):
		h.logger.Warn("%s - Category not selected: user_id=%s", op, actorID)
		handlers.RespondConflict(w, msgCategoryNotSelected)

	case errors.Is(err, bookingflow.ErrInvalidCategory):
		h.logger.Warn("%s - Invalid category: user_id=%s", op, actorID)
		handlers.RespondBadRequest(w, msgInvalidCategory)

	case errors.Is(err, bookingflow.ErrSuggestionPending):
		h.logger.Warn("%s - Suggestion already pending: user_id=%s", op, actorID)
		handlers.RespondConflict(w, msgSuggestionPending)

	case errors.Is(err, bookingflow.ErrNoSuggestion):
		h.logger.Warn("%s - No suggestion: user_id=%s", op, actorID)
		handlers.RespondConflict(w, msgNoSuggestion)

	case errors.Is(err, bookingflow.ErrSuggestionNotApplicable):
		h.logger.Warn("%s - Suggestion not applicable: user_id=%s", op, actorID)
		handlers.RespondConflict(w, msgSuggestionNotUsable)

	case errors.Is(err, bookingflow.ErrInvalidTime):
		h.logger.Warn("%s - Invalid time: user_id=%s", op, actorID)
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, bookingflow.ErrInvalidPayment):
		h.logger.Warn("%s - Invalid payment method: user_id=%s", op, actorID)
		handlers.RespondBadRequest(w, msgInvalidPayment)

	case errors.Is(err, bookingflow.ErrScheduleIncomplete):
		h.logger.Warn("%s - Schedule incomplete: user_id=%s", op, actorID)
		handlers.RespondConflict(w, msgScheduleIncomplete)

	default:
		h.logger.Error("%s - Flow operation failed: user_id=%s, error=%v", op, actorID, err)
		handlers.RespondInternalError(w)
	}
}

// HandleState GET /api/v1/flow
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	state, err := h.manager.State(actor)
	if err != nil {
		h.respondFlowError(w, "GET /flow", actor.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFlowState(state))
}

// HandleReset DELETE /api/v1/flow
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	state, err := h.manager.Reset(actor)
	if err != nil {
		h.respondFlowError(w, "DELETE /flow", actor.ID, err)
		return
	}

	h.logger.Info("DELETE /flow - Flow reset: user_id=%s", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromFlowState(state))
}

// HandleSetDescription PUT /api/v1/flow/description
func (h *Handler) HandleSetDescription(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req SetDescriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flow/description - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.manager.SetDescription(actor, req.Description)
	if err != nil {
		h.respondFlowError(w, "PUT /flow/description", actor.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFlowState(state))
}

// HandleSelectCategory PUT /api/v1/flow/category
// С applySuggestion=true принимает рекомендованную категорию,
// иначе выбирает переданную напрямую.
func (h *Handler) HandleSelectCategory(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req SelectCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flow/category - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var (
		state bookingflow.State
		err   error
	)
	if req.ApplySuggestion {
		state, err = h.manager.ApplySuggestion(actor)
	} else {
		state, err = h.manager.SelectCategory(actor, req.Category)
	}
	if err != nil {
		h.respondFlowError(w, "PUT /flow/category", actor.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFlowState(state))
}

// HandleSuggest POST /api/v1/flow/suggest
// Блокируется до ответа шлюза; при пустом описании шлюз не вызывается
// и состояние возвращается без изменений.
func (h *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	state, err := h.manager.RequestSuggestion(r.Context(), actor)
	if err != nil {
		h.respondFlowError(w, "POST /flow/suggest", actor.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFlowState(state))
}

// HandleAdvance POST /api/v1/flow/advance
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	state, err := h.manager.Advance(actor)
	if err != nil {
		h.respondFlowError(w, "POST /flow/advance", actor.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFlowState(state))
}

// HandleBack POST /api/v1/flow/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	state, err := h.manager.Back(actor)
	if err != nil {
		h.respondFlowError(w, "POST /flow/back", actor.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFlowState(state))
}

// HandleSetSchedule PUT /api/v1/flow/schedule
// Обновляет только переданные поля планирования.
func (h *Handler) HandleSetSchedule(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req SetScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flow/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var (
		state bookingflow.State
		err   error
	)

	if req.Date != nil {
		date, parseErr := time.Parse(domain.DateFormat, *req.Date)
		if parseErr != nil {
			h.logger.Warn("PUT /flow/schedule - Invalid date: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		state, err = h.manager.SetDate(actor, date)
		if err != nil {
			h.respondFlowError(w, "PUT /flow/schedule", actor.ID, err)
			return
		}
	}

	if req.StartTime != nil {
		state, err = h.manager.SetTime(actor, types.TimeString(*req.StartTime))
		if err != nil {
			h.respondFlowError(w, "PUT /flow/schedule", actor.ID, err)
			return
		}
	}

	if req.PaymentMethod != nil {
		state, err = h.manager.SetPayment(actor, domain.PaymentMethod(*req.PaymentMethod))
		if err != nil {
			h.respondFlowError(w, "PUT /flow/schedule", actor.ID, err)
			return
		}
	}

	if req.Date == nil && req.StartTime == nil && req.PaymentMethod == nil {
		state, err = h.manager.State(actor)
		if err != nil {
			h.respondFlowError(w, "PUT /flow/schedule", actor.ID, err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, FromFlowState(state))
}

// HandleConfirm POST /api/v1/flow/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	result, err := h.manager.Confirm(r.Context(), actor)
	if err != nil {
		h.respondFlowError(w, "POST /flow/confirm", actor.ID, err)
		return
	}

	h.logger.Info("POST /flow/confirm - Booking created from flow: booking_id=%s, user_id=%s",
		result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
