package booking_flow

import (
	"context"
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookingflow"
	createBooking "github.com/m04kA/V4U-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/V4U-MarketplaceService/pkg/types"
)

type FlowManager interface {
	State(actor domain.Actor) (bookingflow.State, error)
	Reset(actor domain.Actor) (bookingflow.State, error)
	SetDescription(actor domain.Actor, description string) (bookingflow.State, error)
	SelectCategory(actor domain.Actor, category string) (bookingflow.State, error)
	RequestSuggestion(ctx context.Context, actor domain.Actor) (bookingflow.State, error)
	ApplySuggestion(actor domain.Actor) (bookingflow.State, error)
	Advance(actor domain.Actor) (bookingflow.State, error)
	Back(actor domain.Actor) (bookingflow.State, error)
	SetDate(actor domain.Actor, date time.Time) (bookingflow.State, error)
	SetTime(actor domain.Actor, startTime types.TimeString) (bookingflow.State, error)
	SetPayment(actor domain.Actor, paymentMethod domain.PaymentMethod) (bookingflow.State, error)
	Confirm(ctx context.Context, actor domain.Actor) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
