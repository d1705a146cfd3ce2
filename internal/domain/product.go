package domain

// Product catalog entry. Read-only reference data: products are seeded at
// startup and never created or mutated by the service.
type Product struct {
	ID         string
	Name       string
	Price      float64
	CategoryID string
	ImageURL   string
}
