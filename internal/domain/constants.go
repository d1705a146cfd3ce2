package domain

// BaseBookingCost is the fixed base cost of every booking.
// Dynamic pricing is not modeled.
const BaseBookingCost = 50.0

// Rating bounds
const (
	MinBookingRating = 1.0
	MaxBookingRating = 5.0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// FallbackCategory and FallbackReason form the deterministic answer
// returned when the external classifier cannot be used
const (
	FallbackCategory = "General"
	FallbackReason   = "Unable to process recommendation."
)
