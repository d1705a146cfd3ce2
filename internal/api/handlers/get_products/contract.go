package get_products

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

type ProductCatalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByCategoryID(ctx context.Context, categoryID string) ([]domain.Product, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
