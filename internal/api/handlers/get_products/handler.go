package get_products

import (
	"net/http"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// ProductResponse HTTP response model позиции каталога
type ProductResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"categoryId"`
	ImageURL   string  `json:"imageUrl"`
}

// ProductListResponse ответ со списком товаров
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type Handler struct {
	catalog ProductCatalog
	logger  Logger
}

func NewHandler(catalog ProductCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/products?categoryId=plumbing
// Каталог только для чтения; без параметра возвращаются все товары.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("categoryId")

	var (
		products []domain.Product
		err      error
	)
	if categoryID == "" {
		products, err = h.catalog.List(r.Context())
	} else {
		products, err = h.catalog.FindByCategoryID(r.Context(), categoryID)
	}
	if err != nil {
		h.logger.Error("GET /products - Failed to list products: category_id=%q, error=%v", categoryID, err)
		handlers.RespondInternalError(w)
		return
	}

	result := &ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		result.Products = append(result.Products, ProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			CategoryID: p.CategoryID,
			ImageURL:   p.ImageURL,
		})
	}

	h.logger.Info("GET /products - Listed %d products: category_id=%q", len(result.Products), categoryID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
