package bookingflow

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/V4U-MarketplaceService/pkg/types"
)

// Step шаг мастера создания бронирования
type Step string

const (
	// StepDescribingProblem начальный шаг: описание проблемы и выбор категории
	StepDescribingProblem Step = "DESCRIBING_PROBLEM"
	// StepSchedulingAndPayment шаг планирования: дата, время и способ оплаты
	StepSchedulingAndPayment Step = "SCHEDULING_AND_PAYMENT"
)

// State снимок состояния потока для отдачи наружу
type State struct {
	ActorID           string
	Step              Step
	Description       string
	Category          string
	SuggestedCategory string
	SuggestedReason   string
	SuggestionPending bool
	Date              time.Time
	StartTime         types.TimeString
	PaymentMethod     domain.PaymentMethod
}

// flowState внутреннее состояние единственного активного потока
type flowState struct {
	actorID           string
	step              Step
	description       string
	category          string
	suggestedCategory string
	suggestedReason   string
	suggestionPending bool
	date              time.Time
	startTime         types.TimeString
	paymentMethod     domain.PaymentMethod
}

// Manager управляет многошаговым потоком создания бронирования.
// В каждый момент существует ровно один активный поток; смена актора
// сбрасывает его на начальный шаг с пустыми полями.
type Manager struct {
	mu         sync.Mutex
	generation uint64 // счетчик поколений потока для корреляции ответов рекомендаций
	flow       flowState

	suggester Suggester
	creator   BookingCreator
	logger    Logger
}

// NewManager создает новый экземпляр менеджера потока
func NewManager(suggester Suggester, creator BookingCreator, logger Logger) *Manager {
	return &Manager{
		flow:      flowState{step: StepDescribingProblem},
		suggester: suggester,
		creator:   creator,
		logger:    logger,
	}
}

// ensureFlow гарантирует, что активный поток принадлежит актору.
// Поток, начатый под другой идентичностью, не имеет смысла для новой,
// поэтому смена актора сбрасывает шаг и все поля.
// Вызывается под m.mu.
func (m *Manager) ensureFlow(actor domain.Actor) {
	if m.flow.actorID == actor.ID {
		return
	}
	if m.flow.actorID != "" {
		m.logger.Info("Flow: actor changed %s -> %s, resetting", m.flow.actorID, actor.ID)
	}
	m.resetLocked(actor.ID)
}

// resetLocked сбрасывает поток к начальному состоянию. Инкремент поколения
// инвалидирует незавершенные запросы рекомендаций: их поздний ответ
// не будет применен к новому потоку. Вызывается под m.mu.
func (m *Manager) resetLocked(actorID string) {
	m.generation++
	m.flow = flowState{
		actorID: actorID,
		step:    StepDescribingProblem,
	}
}

// snapshotLocked строит снимок состояния. Вызывается под m.mu.
func (m *Manager) snapshotLocked() State {
	return State{
		ActorID:           m.flow.actorID,
		Step:              m.flow.step,
		Description:       m.flow.description,
		Category:          m.flow.category,
		SuggestedCategory: m.flow.suggestedCategory,
		SuggestedReason:   m.flow.suggestedReason,
		SuggestionPending: m.flow.suggestionPending,
		Date:              m.flow.date,
		StartTime:         m.flow.startTime,
		PaymentMethod:     m.flow.paymentMethod,
	}
}

func checkActor(actor domain.Actor) error {
	if !domain.HasCapability(actor.Role, domain.CapCreateBooking) {
		return ErrNotPermitted
	}
	return nil
}

// State возвращает текущее состояние потока для актора
func (m *Manager) State(actor domain.Actor) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	return m.snapshotLocked(), nil
}

// Reset сбрасывает поток актора к начальному шагу с пустыми полями
func (m *Manager) Reset(actor domain.Actor) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetLocked(actor.ID)
	return m.snapshotLocked(), nil
}

// SetDescription обновляет описание проблемы. Доступно только на начальном шаге.
func (m *Manager) SetDescription(actor domain.Actor, description string) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	if m.flow.step != StepDescribingProblem {
		return State{}, ErrWrongStep
	}

	m.flow.description = description
	return m.snapshotLocked(), nil
}

// SelectCategory выбирает категорию услуги напрямую из фиксированного набора.
// Обновление поля, а не переход между шагами.
func (m *Manager) SelectCategory(actor domain.Actor, category string) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}
	if !domain.IsValidCategory(category) {
		return State{}, ErrInvalidCategory
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	if m.flow.step != StepDescribingProblem {
		return State{}, ErrWrongStep
	}

	m.flow.category = category
	return m.snapshotLocked(), nil
}

// RequestSuggestion запрашивает у шлюза рекомендацию категории по описанию.
// Пустое описание — no-op: шлюз не вызывается. Пока запрос выполняется,
// состояние потока показывает SuggestionPending, повторный запрос запрещен.
// Рекомендация только обновляет подсказанную категорию и никогда не
// переводит поток на следующий шаг.
func (m *Manager) RequestSuggestion(ctx context.Context, actor domain.Actor) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}

	m.mu.Lock()

	m.ensureFlow(actor)
	if m.flow.step != StepDescribingProblem {
		m.mu.Unlock()
		return State{}, ErrWrongStep
	}
	if m.flow.suggestionPending {
		m.mu.Unlock()
		return State{}, ErrSuggestionPending
	}
	if m.flow.description == "" {
		snapshot := m.snapshotLocked()
		m.mu.Unlock()
		return snapshot, nil
	}

	description := m.flow.description
	token := m.generation
	m.flow.suggestionPending = true

	// Блокирующий вызов шлюза выполняется без удержания мьютекса,
	// чтобы чтение состояния оставалось доступным
	m.mu.Unlock()
	suggestion := m.suggester.Suggest(ctx, description)
	m.mu.Lock()
	defer m.mu.Unlock()

	// Поздний ответ для уже брошенного потока отбрасывается
	if m.generation != token {
		m.logger.Warn("Flow: dropping stale suggestion for generation %d (current %d)", token, m.generation)
		return m.snapshotLocked(), nil
	}

	m.flow.suggestionPending = false
	m.flow.suggestedCategory = suggestion.Category
	m.flow.suggestedReason = suggestion.Reason

	m.logger.Info("Flow: suggestion for actor=%s: category=%s", actor.ID, suggestion.Category)
	return m.snapshotLocked(), nil
}

// ApplySuggestion принимает рекомендованную категорию как выбранную.
// Fallback-категория вне фиксированного набора принята быть не может.
func (m *Manager) ApplySuggestion(actor domain.Actor) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	if m.flow.step != StepDescribingProblem {
		return State{}, ErrWrongStep
	}
	if m.flow.suggestedCategory == "" {
		return State{}, ErrNoSuggestion
	}
	if !domain.IsValidCategory(m.flow.suggestedCategory) {
		return State{}, ErrSuggestionNotApplicable
	}

	m.flow.category = m.flow.suggestedCategory
	return m.snapshotLocked(), nil
}

// Advance переводит поток с описания проблемы к планированию.
// Требует выбранной категории.
func (m *Manager) Advance(actor domain.Actor) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	if m.flow.step != StepDescribingProblem {
		return State{}, ErrWrongStep
	}
	if m.flow.category == "" {
		return State{}, ErrCategoryNotSelected
	}

	m.flow.step = StepSchedulingAndPayment
	return m.snapshotLocked(), nil
}

// Back возвращает поток к описанию проблемы, сохраняя все введенные поля
func (m *Manager) Back(actor domain.Actor) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	if m.flow.step != StepSchedulingAndPayment {
		return State{}, ErrWrongStep
	}

	m.flow.step = StepDescribingProblem
	return m.snapshotLocked(), nil
}

// SetDate задает дату бронирования. Доступно только на шаге планирования.
func (m *Manager) SetDate(actor domain.Actor, date time.Time) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	if m.flow.step != StepSchedulingAndPayment {
		return State{}, ErrWrongStep
	}

	m.flow.date = date
	return m.snapshotLocked(), nil
}

// SetTime задает время бронирования. Доступно только на шаге планирования.
func (m *Manager) SetTime(actor domain.Actor, startTime types.TimeString) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}
	if err := startTime.Validate(); err != nil {
		return State{}, ErrInvalidTime
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	if m.flow.step != StepSchedulingAndPayment {
		return State{}, ErrWrongStep
	}

	m.flow.startTime = startTime
	return m.snapshotLocked(), nil
}

// SetPayment задает способ оплаты. Доступно только на шаге планирования.
func (m *Manager) SetPayment(actor domain.Actor, paymentMethod domain.PaymentMethod) (State, error) {
	if err := checkActor(actor); err != nil {
		return State{}, err
	}
	if !domain.IsValidPaymentMethod(paymentMethod) {
		return State{}, ErrInvalidPayment
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureFlow(actor)
	if m.flow.step != StepSchedulingAndPayment {
		return State{}, ErrWrongStep
	}

	m.flow.paymentMethod = paymentMethod
	return m.snapshotLocked(), nil
}

// Confirm подтверждает бронирование: создает запись в реестре и сбрасывает
// поток к начальному состоянию. Требует заданных даты, времени и способа оплаты.
func (m *Manager) Confirm(ctx context.Context, actor domain.Actor) (*create_booking.Response, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}

	m.mu.Lock()

	m.ensureFlow(actor)
	if m.flow.step != StepSchedulingAndPayment {
		m.mu.Unlock()
		return nil, ErrWrongStep
	}
	if m.flow.date.IsZero() || m.flow.startTime.IsZero() || m.flow.paymentMethod == "" {
		m.mu.Unlock()
		return nil, ErrScheduleIncomplete
	}

	req := &create_booking.Request{
		Actor:         actor,
		Category:      m.flow.category,
		Description:   m.flow.description,
		Date:          m.flow.date,
		StartTime:     m.flow.startTime,
		PaymentMethod: m.flow.paymentMethod,
	}
	m.mu.Unlock()

	resp, err := m.creator.Execute(ctx, req)
	if err != nil {
		m.logger.Warn("Flow: confirm failed for actor=%s: %v", actor.ID, err)
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Поток мог смениться, пока создавалось бронирование; чужой поток не трогаем
	if m.flow.actorID == actor.ID {
		m.resetLocked(actor.ID)
	}

	m.logger.Info("Flow: booking %s confirmed by actor=%s", resp.ID, actor.ID)
	return resp, nil
}
