package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusAccepted  BookingStatus = "ACCEPTED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// PaymentMethod represents how a booking will be paid
type PaymentMethod string

const (
	PaymentOnline         PaymentMethod = "ONLINE"
	PaymentCashOnDelivery PaymentMethod = "COD"
)

// IsValidPaymentMethod returns true if m is one of the known payment methods
func IsValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentOnline || m == PaymentCashOnDelivery
}

// AllowTransition описывает допустимые переходы жизненного цикла
// бронирования в виде направленного графа. Терминальные статусы
// (COMPLETED, CANCELLED) не имеют исходящих переходов.
var AllowTransition = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether from -> to is an allowed lifecycle transition
func CanTransition(from, to BookingStatus) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ProductUsage is a product consumed while fulfilling a booking
type ProductUsage struct {
	ProductID string
	Name      string
	Quantity  int
}

// Booking represents a single requested service engagement between
// a customer and (optionally) a worker
type Booking struct {
	ID          string
	CustomerID  string
	WorkerID    *string // nil until a worker accepts
	Category    string
	Description string
	Status      BookingStatus

	ScheduledTime time.Time
	PaymentMethod PaymentMethod
	Cost          float64

	// Устанавливаются один раз владельцем после завершения
	Rating *float64
	Review *string

	ProductsUsed []ProductUsage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAssigned returns true if a worker has been assigned
func (b *Booking) IsAssigned() bool {
	return b.WorkerID != nil
}

// IsTerminal returns true if the booking reached a terminal status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeAccepted returns true if the booking is still open for assignment
func (b *Booking) CanBeAccepted() bool {
	return b.Status == StatusPending && !b.IsAssigned()
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending
}

// CanBeRated returns true if the booking is completed and not yet rated
func (b *Booking) CanBeRated() bool {
	return b.Status == StatusCompleted && b.Rating == nil
}
