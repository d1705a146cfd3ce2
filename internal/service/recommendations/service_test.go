package recommendations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/V4U-MarketplaceService/internal/integrations/recommender"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// stubClient управляемый стаб внешнего классификатора
type stubClient struct {
	result *recommender.Suggestion
	err    error
}

func (s *stubClient) Suggest(context.Context, string) (*recommender.Suggestion, error) {
	return s.result, s.err
}

func TestSuggestPassesValidCategory(t *testing.T) {
	svc := NewService(&stubClient{
		result: &recommender.Suggestion{Category: "Plumber", Reason: "Похоже на сантехническую проблему"},
	}, nopLogger{})

	got := svc.Suggest(context.Background(), "Протекает кран на кухне")
	assert.Equal(t, "Plumber", got.Category)
	assert.Equal(t, "Похоже на сантехническую проблему", got.Reason)
}

func TestSuggestFallsBackOnTransportError(t *testing.T) {
	svc := NewService(&stubClient{
		err: recommender.ErrUnavailable,
	}, nopLogger{})

	got := svc.Suggest(context.Background(), "Протекает кран")
	assert.Equal(t, Fallback, got)
}

func TestSuggestFallsBackOnMalformedResponse(t *testing.T) {
	svc := NewService(&stubClient{
		err: recommender.ErrInvalidResponse,
	}, nopLogger{})

	got := svc.Suggest(context.Background(), "Протекает кран")
	assert.Equal(t, Fallback, got)
}

func TestSuggestFallsBackOnUnknownCategory(t *testing.T) {
	// классификатор вернул категорию вне фиксированного набора
	svc := NewService(&stubClient{
		result: &recommender.Suggestion{Category: "Gardener", Reason: "garden problem"},
	}, nopLogger{})

	got := svc.Suggest(context.Background(), "Заросла трава")
	assert.Equal(t, Fallback, got)
}

func TestSuggestNeverReturnsAnError(t *testing.T) {
	// любой сбой переводится в fallback, не в ошибку
	svc := NewService(&stubClient{err: errors.New("boom")}, nopLogger{})

	got := svc.Suggest(context.Background(), "что-то сломалось")
	assert.Equal(t, "General", got.Category)
	assert.Equal(t, "Unable to process recommendation.", got.Reason)
}
