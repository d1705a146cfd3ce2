package seed

import (
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/pkg/ptr"
)

// Демо-данные маркетплейса. Акторы и товары статичны на время жизни
// процесса; бронирования задают стартовое состояние реестра.

// Customer возвращает демо-заказчика
func Customer() domain.Actor {
	return domain.Actor{
		ID:       "u1",
		Name:     "John Doe",
		Email:    "john@example.com",
		Role:     domain.RoleCustomer,
		Location: "New York, Manhattan",
	}
}

// Admin возвращает демо-администратора
func Admin() domain.Actor {
	return domain.Actor{
		ID:    "admin1",
		Name:  "Admin",
		Email: "admin@v4u.com",
		Role:  domain.RoleAdmin,
	}
}

// Workers возвращает стартовый набор исполнителей
func Workers() []domain.WorkerProfile {
	return []domain.WorkerProfile{
		{
			Actor:         domain.Actor{ID: "w1", Name: "Robert Fixit", Email: "robert@v4u.com", Role: domain.RoleWorker},
			Category:      "Plumber",
			Experience:    8,
			BaseRate:      50,
			ServiceArea:   "Manhattan",
			IsAvailable:   true,
			Rating:        4.8,
			TotalJobs:     142,
			TotalEarnings: 8500,
		},
		{
			Actor:         domain.Actor{ID: "w2", Name: "Sarah Clean", Email: "sarah@v4u.com", Role: domain.RoleWorker},
			Category:      "Cleaner",
			Experience:    5,
			BaseRate:      40,
			ServiceArea:   "Brooklyn",
			IsAvailable:   true,
			Rating:        4.2,
			TotalJobs:     98,
			TotalEarnings: 4200,
		},
		{
			Actor:         domain.Actor{ID: "w3", Name: "Mike Hammer", Email: "mike@v4u.com", Role: domain.RoleWorker},
			Category:      "Carpenter",
			Experience:    12,
			BaseRate:      70,
			ServiceArea:   "Queens",
			IsAvailable:   true,
			Rating:        4.9,
			TotalJobs:     210,
			TotalEarnings: 15400,
		},
	}
}

// Bookings возвращает стартовый набор бронирований
func Bookings() []domain.Booking {
	return []domain.Booking{
		{
			ID:            "b1",
			CustomerID:    "u1",
			WorkerID:      ptr.Ptr("w1"),
			Category:      "Plumber",
			Description:   "Leaking kitchen tap needs urgent fixing.",
			Status:        domain.StatusCompleted,
			ScheduledTime: time.Date(2023, time.October, 25, 10, 0, 0, 0, time.UTC),
			PaymentMethod: domain.PaymentOnline,
			Cost:          60,
			Rating:        ptr.Ptr(5.0),
			Review:        ptr.Ptr("Excellent service, very professional."),
			ProductsUsed: []domain.ProductUsage{
				{ProductID: "p1", Name: "Industrial Pipe Sealant", Quantity: 1},
			},
		},
		{
			ID:            "b2",
			CustomerID:    "u1",
			Category:      "Cleaner",
			Description:   "Full house cleaning before moving out.",
			Status:        domain.StatusPending,
			ScheduledTime: time.Date(2023, time.November, 1, 9, 0, 0, 0, time.UTC),
			PaymentMethod: domain.PaymentCashOnDelivery,
			Cost:          40,
		},
	}
}

// Products возвращает каталог товаров
func Products() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Industrial Pipe Sealant", Price: 450, CategoryID: "plumbing", ImageURL: "https://picsum.photos/seed/pipe/200/200"},
		{ID: "p2", Name: "Eco-Friendly Cleaner", Price: 200, CategoryID: "cleaning", ImageURL: "https://picsum.photos/seed/clean/200/200"},
		{ID: "p3", Name: "Wood Varnish Premium", Price: 800, CategoryID: "carpentry", ImageURL: "https://picsum.photos/seed/wood/200/200"},
		{ID: "p4", Name: "Weather Guard Paint", Price: 1200, CategoryID: "painting", ImageURL: "https://picsum.photos/seed/paint/200/200"},
		{ID: "p5", Name: "Synthetic Engine Oil", Price: 1500, CategoryID: "auto", ImageURL: "https://picsum.photos/seed/oil/200/200"},
	}
}
