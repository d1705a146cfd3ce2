package bookingflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/booking"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/recommendations"
	createBooking "github.com/m04kA/V4U-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/V4U-MarketplaceService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// stubSuggester управляемый стаб шлюза рекомендаций
type stubSuggester struct {
	suggestion recommendations.Suggestion
	started    chan struct{} // закрывается при входе в Suggest
	release    chan struct{} // Suggest блокируется до закрытия
	calls      int
}

func (s *stubSuggester) Suggest(_ context.Context, _ string) recommendations.Suggestion {
	s.calls++
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.suggestion
}

func customer() domain.Actor {
	return domain.Actor{ID: "u1", Name: "John Doe", Role: domain.RoleCustomer}
}

func newManager(t *testing.T, suggester Suggester) (*Manager, *bookingRepo.Repository) {
	t.Helper()
	bookings := bookingRepo.NewRepository()
	creator := createBooking.NewUseCase(bookings, nopLogger{})
	return NewManager(suggester, creator, nopLogger{}), bookings
}

func fillDescribingStep(t *testing.T, m *Manager) {
	t.Helper()
	_, err := m.SetDescription(customer(), "Протекает кран на кухне")
	require.NoError(t, err)
	_, err = m.SelectCategory(customer(), "Plumber")
	require.NoError(t, err)
}

func TestAdvanceRequiresCategory(t *testing.T) {
	m, _ := newManager(t, &stubSuggester{})

	_, err := m.SetDescription(customer(), "что-то сломалось")
	require.NoError(t, err)

	_, err = m.Advance(customer())
	assert.ErrorIs(t, err, ErrCategoryNotSelected)

	_, err = m.SelectCategory(customer(), "Plumber")
	require.NoError(t, err)

	state, err := m.Advance(customer())
	require.NoError(t, err)
	assert.Equal(t, StepSchedulingAndPayment, state.Step)

	// операции первого шага недоступны на втором
	_, err = m.SetDescription(customer(), "другое описание")
	assert.ErrorIs(t, err, ErrWrongStep)
	_, err = m.Advance(customer())
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestBackPreservesFields(t *testing.T) {
	m, _ := newManager(t, &stubSuggester{})
	fillDescribingStep(t, m)

	_, err := m.Advance(customer())
	require.NoError(t, err)
	_, err = m.SetDate(customer(), time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = m.SetTime(customer(), types.TimeString("09:00"))
	require.NoError(t, err)

	state, err := m.Back(customer())
	require.NoError(t, err)
	assert.Equal(t, StepDescribingProblem, state.Step)

	// поля не теряются
	assert.Equal(t, "Протекает кран на кухне", state.Description)
	assert.Equal(t, "Plumber", state.Category)
	assert.Equal(t, "2024-01-10", state.Date.Format(domain.DateFormat))
	assert.Equal(t, "09:00", state.StartTime.String())
}

func TestSelectCategoryValidation(t *testing.T) {
	m, _ := newManager(t, &stubSuggester{})

	_, err := m.SelectCategory(customer(), "Gardener")
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// fallback категория не входит в фиксированный набор
	_, err = m.SelectCategory(customer(), domain.FallbackCategory)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestRequestSuggestionEmptyDescriptionIsNoop(t *testing.T) {
	stub := &stubSuggester{}
	m, _ := newManager(t, stub)

	state, err := m.RequestSuggestion(context.Background(), customer())
	require.NoError(t, err)

	// шлюз не вызывался, состояние без изменений
	assert.Equal(t, 0, stub.calls)
	assert.Empty(t, state.SuggestedCategory)
	assert.False(t, state.SuggestionPending)
}

func TestRequestSuggestionAndApply(t *testing.T) {
	stub := &stubSuggester{
		suggestion: recommendations.Suggestion{Category: "Plumber", Reason: "Похоже на сантехническую проблему"},
	}
	m, _ := newManager(t, stub)

	_, err := m.SetDescription(customer(), "Протекает кран на кухне")
	require.NoError(t, err)

	state, err := m.RequestSuggestion(context.Background(), customer())
	require.NoError(t, err)
	assert.Equal(t, "Plumber", state.SuggestedCategory)
	assert.False(t, state.SuggestionPending)

	// рекомендация не выбирает категорию сама
	assert.Empty(t, state.Category)
	assert.Equal(t, StepDescribingProblem, state.Step)

	state, err = m.ApplySuggestion(customer())
	require.NoError(t, err)
	assert.Equal(t, "Plumber", state.Category)
}

func TestFallbackSuggestionCannotBeApplied(t *testing.T) {
	stub := &stubSuggester{
		suggestion: recommendations.Fallback,
	}
	m, _ := newManager(t, stub)

	_, err := m.SetDescription(customer(), "абракадабра")
	require.NoError(t, err)

	state, err := m.RequestSuggestion(context.Background(), customer())
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackCategory, state.SuggestedCategory)
	assert.Equal(t, StepDescribingProblem, state.Step)

	// fallback вне фиксированного набора: принять нельзя, категория не перезаписана
	_, err = m.ApplySuggestion(customer())
	assert.ErrorIs(t, err, ErrSuggestionNotApplicable)

	current, err := m.State(customer())
	require.NoError(t, err)
	assert.Empty(t, current.Category)
}

func TestSuggestionPendingBlocksReinvocation(t *testing.T) {
	stub := &stubSuggester{
		suggestion: recommendations.Suggestion{Category: "Plumber", Reason: "ok"},
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	m, _ := newManager(t, stub)

	_, err := m.SetDescription(customer(), "Протекает кран")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.RequestSuggestion(context.Background(), customer())
	}()

	<-stub.started

	// пока запрос в полете, состояние показывает pending
	state, err := m.State(customer())
	require.NoError(t, err)
	assert.True(t, state.SuggestionPending)

	// повторный запрос запрещен
	_, err = m.RequestSuggestion(context.Background(), customer())
	assert.ErrorIs(t, err, ErrSuggestionPending)

	close(stub.release)
	<-done

	state, err = m.State(customer())
	require.NoError(t, err)
	assert.False(t, state.SuggestionPending)
	assert.Equal(t, "Plumber", state.SuggestedCategory)
}

// Поздний ответ для брошенного потока не применяется к новому
func TestStaleSuggestionIsDropped(t *testing.T) {
	stub := &stubSuggester{
		suggestion: recommendations.Suggestion{Category: "Plumber", Reason: "ok"},
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	m, _ := newManager(t, stub)

	_, err := m.SetDescription(customer(), "Протекает кран")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.RequestSuggestion(context.Background(), customer())
	}()

	<-stub.started

	// поток сбрасывается, пока запрос еще в полете
	_, err = m.Reset(customer())
	require.NoError(t, err)

	close(stub.release)
	<-done

	state, err := m.State(customer())
	require.NoError(t, err)
	assert.Empty(t, state.SuggestedCategory)
	assert.False(t, state.SuggestionPending)
}

func TestActorSwitchResetsFlow(t *testing.T) {
	m, _ := newManager(t, &stubSuggester{})
	fillDescribingStep(t, m)

	other := domain.Actor{ID: "u2", Role: domain.RoleCustomer}
	state, err := m.State(other)
	require.NoError(t, err)
	assert.Equal(t, StepDescribingProblem, state.Step)
	assert.Empty(t, state.Description)
	assert.Empty(t, state.Category)

	// роли без права создавать бронирования поток недоступен
	_, err = m.State(domain.Actor{ID: "w1", Role: domain.RoleWorker})
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestConfirm(t *testing.T) {
	m, bookings := newManager(t, &stubSuggester{})
	fillDescribingStep(t, m)

	_, err := m.Advance(customer())
	require.NoError(t, err)

	// без даты, времени и оплаты подтверждение запрещено
	_, err = m.Confirm(context.Background(), customer())
	assert.ErrorIs(t, err, ErrScheduleIncomplete)

	_, err = m.SetDate(customer(), time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = m.SetTime(customer(), types.TimeString("09:00"))
	require.NoError(t, err)
	_, err = m.SetPayment(customer(), domain.PaymentOnline)
	require.NoError(t, err)

	resp, err := m.Confirm(context.Background(), customer())
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.CustomerID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.BaseBookingCost, resp.Cost)

	stored, err := bookings.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plumber", stored.Category)
	assert.True(t, stored.ScheduledTime.Equal(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)))

	// после подтверждения поток сброшен к начальному состоянию
	state, err := m.State(customer())
	require.NoError(t, err)
	assert.Equal(t, StepDescribingProblem, state.Step)
	assert.Empty(t, state.Description)
	assert.Empty(t, state.Category)
	assert.True(t, state.Date.IsZero())
}
