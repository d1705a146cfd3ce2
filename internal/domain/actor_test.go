package domain

import "testing"

func TestCapabilitiesAreDisjoint(t *testing.T) {
	seen := map[Capability]Role{}
	for _, role := range []Role{RoleCustomer, RoleWorker, RoleAdmin} {
		for _, c := range CapabilitiesFor(role) {
			if prev, ok := seen[c]; ok {
				t.Fatalf("capability %s granted to both %s and %s", c, prev, role)
			}
			seen[c] = role
		}
	}
}

func TestHasCapability(t *testing.T) {
	if !HasCapability(RoleCustomer, CapCreateBooking) {
		t.Fatalf("customer must be able to create bookings")
	}
	if HasCapability(RoleWorker, CapCreateBooking) {
		t.Fatalf("worker must not be able to create bookings")
	}
	if !HasCapability(RoleWorker, CapAcceptMatchingJob) {
		t.Fatalf("worker must be able to accept matching jobs")
	}
	if HasCapability(RoleAdmin, CapAcceptMatchingJob) {
		t.Fatalf("admin is read-only over the registries")
	}
	if !HasCapability(RoleAdmin, CapViewAnalytics) {
		t.Fatalf("admin must be able to view analytics")
	}
	if HasCapability("UNKNOWN", CapCreateBooking) {
		t.Fatalf("unknown role has no capabilities")
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range ServiceCategories {
		if !IsValidCategory(c.Name) {
			t.Fatalf("expected %s to be a valid category", c.Name)
		}
	}
	if IsValidCategory("General") {
		t.Fatalf("fallback category must not be in the fixed set")
	}
	if IsValidCategory("") {
		t.Fatalf("empty category must be invalid")
	}
}
