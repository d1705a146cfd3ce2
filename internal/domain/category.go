package domain

// ServiceCategory represents a fixed service classification shared by
// bookings, worker profiles and catalog products
type ServiceCategory struct {
	ID          string
	Name        string
	Description string
}

// ServiceCategories фиксированный набор категорий услуг.
// Порядок стабильный и используется в аналитике как есть.
var ServiceCategories = []ServiceCategory{
	{ID: "plumbing", Name: "Plumber", Description: "Expert leak fixing and piping."},
	{ID: "cleaning", Name: "Cleaner", Description: "Home and office deep cleaning."},
	{ID: "carpentry", Name: "Carpenter", Description: "Furniture repair and woodwork."},
	{ID: "painting", Name: "Painter", Description: "Interior and exterior wall painting."},
	{ID: "auto", Name: "Auto-Repair", Description: "Vehicle maintenance and fixes."},
	{ID: "health", Name: "Healthcare", Description: "In-home nursing and checkups."},
}

// IsValidCategory returns true if name is one of the fixed category names
func IsValidCategory(name string) bool {
	for _, c := range ServiceCategories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// CategoryByID returns the category with the given id, if present
func CategoryByID(id string) (ServiceCategory, bool) {
	for _, c := range ServiceCategories {
		if c.ID == id {
			return c, true
		}
	}
	return ServiceCategory{}, false
}
