package domain

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusPending, StatusAccepted) {
		t.Fatalf("expected pending -> accepted allowed")
	}
	if !CanTransition(StatusPending, StatusCancelled) {
		t.Fatalf("expected pending -> cancelled allowed")
	}
	if !CanTransition(StatusAccepted, StatusCompleted) {
		t.Fatalf("expected accepted -> completed allowed")
	}

	// completion must pass through ACCEPTED
	if CanTransition(StatusPending, StatusCompleted) {
		t.Fatalf("expected pending -> completed not allowed")
	}

	// terminal statuses have no outgoing transitions
	for _, from := range []BookingStatus{StatusCompleted, StatusCancelled} {
		for _, to := range []BookingStatus{StatusPending, StatusAccepted, StatusCompleted, StatusCancelled} {
			if CanTransition(from, to) {
				t.Fatalf("expected %s -> %s not allowed", from, to)
			}
		}
	}
}

func TestBookingPredicates(t *testing.T) {
	workerID := "w1"
	pending := &Booking{ID: "b1", CustomerID: "u1", Status: StatusPending, ScheduledTime: time.Now()}
	accepted := &Booking{ID: "b2", CustomerID: "u1", WorkerID: &workerID, Status: StatusAccepted}
	completed := &Booking{ID: "b3", CustomerID: "u1", WorkerID: &workerID, Status: StatusCompleted}

	if pending.IsAssigned() {
		t.Fatalf("pending booking must not be assigned")
	}
	if !pending.CanBeAccepted() {
		t.Fatalf("unassigned pending booking must be acceptable")
	}
	if !pending.CanBeCancelled() {
		t.Fatalf("pending booking must be cancellable")
	}
	if pending.CanBeRated() {
		t.Fatalf("pending booking must not be ratable")
	}

	if accepted.CanBeAccepted() {
		t.Fatalf("accepted booking must not be acceptable again")
	}
	if accepted.CanBeCancelled() {
		t.Fatalf("accepted booking must not be cancellable")
	}
	if accepted.IsTerminal() {
		t.Fatalf("accepted booking is not terminal")
	}

	if !completed.IsTerminal() {
		t.Fatalf("completed booking is terminal")
	}
	if !completed.CanBeRated() {
		t.Fatalf("completed unrated booking must be ratable")
	}

	rating := 5.0
	completed.Rating = &rating
	if completed.CanBeRated() {
		t.Fatalf("rated booking must not be ratable again")
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	if !IsValidPaymentMethod(PaymentOnline) || !IsValidPaymentMethod(PaymentCashOnDelivery) {
		t.Fatalf("expected known payment methods to be valid")
	}
	if IsValidPaymentMethod("CARD") {
		t.Fatalf("expected unknown payment method to be invalid")
	}
}
