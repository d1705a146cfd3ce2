package domain

// Role discriminates the actor variants
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleWorker   Role = "WORKER"
	RoleAdmin    Role = "ADMIN"
)

// IsValidRole returns true if r is one of the known roles
func IsValidRole(r Role) bool {
	return r == RoleCustomer || r == RoleWorker || r == RoleAdmin
}

// Actor represents the identity performing an operation.
// Visibility and permitted mutations are derived from the role;
// the role is immutable after creation.
type Actor struct {
	ID       string
	Name     string
	Email    string
	Role     Role
	Location string
}

// WorkerProfile is the worker variant of an actor with
// category, pay and performance attributes
type WorkerProfile struct {
	Actor

	Category      string
	Experience    int
	BaseRate      float64
	ServiceArea   string
	IsAvailable   bool
	Rating        float64
	TotalJobs     int
	TotalEarnings float64
}

// Capability is a single permitted operation kind
type Capability string

const (
	CapCreateBooking    Capability = "create_booking"
	CapCancelOwnBooking Capability = "cancel_own_booking"
	CapRateOwnBooking   Capability = "rate_own_booking"
	CapBrowseCatalog    Capability = "browse_catalog"

	CapListMatchingJobs  Capability = "list_matching_jobs"
	CapAcceptMatchingJob Capability = "accept_matching_job"
	CapViewOwnEarnings   Capability = "view_own_earnings"

	CapViewAllBookings Capability = "view_all_bookings"
	CapViewAllWorkers  Capability = "view_all_workers"
	CapViewAnalytics   Capability = "view_analytics"
)

// capabilitiesByRole фиксированные, непересекающиеся наборы прав на роль
var capabilitiesByRole = map[Role][]Capability{
	RoleCustomer: {
		CapCreateBooking,
		CapCancelOwnBooking,
		CapRateOwnBooking,
		CapBrowseCatalog,
	},
	RoleWorker: {
		CapListMatchingJobs,
		CapAcceptMatchingJob,
		CapViewOwnEarnings,
	},
	RoleAdmin: {
		CapViewAllBookings,
		CapViewAllWorkers,
		CapViewAnalytics,
	},
}

// CapabilitiesFor returns the fixed capability set for a role.
// The returned slice must not be mutated by the caller.
func CapabilitiesFor(role Role) []Capability {
	return capabilitiesByRole[role]
}

// HasCapability reports whether the role grants the given capability
func HasCapability(role Role, capability Capability) bool {
	for _, c := range capabilitiesByRole[role] {
		if c == capability {
			return true
		}
	}
	return false
}
