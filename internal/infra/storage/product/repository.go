package product

import (
	"context"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// Repository каталог товаров. Read-only справочник: наполняется один раз
// при создании и дальше не изменяется, поэтому блокировки не нужны.
type Repository struct {
	products []domain.Product
}

// NewRepository создает каталог с заданным набором товаров
func NewRepository(products []domain.Product) *Repository {
	items := make([]domain.Product, len(products))
	copy(items, products)
	return &Repository{products: items}
}

// List возвращает все товары каталога
func (r *Repository) List(_ context.Context) ([]domain.Product, error) {
	result := make([]domain.Product, len(r.products))
	copy(result, r.products)
	return result, nil
}

// FindByCategoryID возвращает товары указанной категории,
// сохраняя порядок каталога
func (r *Repository) FindByCategoryID(_ context.Context, categoryID string) ([]domain.Product, error) {
	var result []domain.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	return result, nil
}
