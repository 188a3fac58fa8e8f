package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/internal/service"
	"github.com/sweetmoments/storefront/pkg/validator"
)

// CatalogHandler serves the product catalog endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates the catalog handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type createProductRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=100"`
	Description   string   `json:"description" validate:"max=500"`
	Category      string   `json:"category" validate:"required"`
	Price         int64    `json:"price" validate:"required,gt=0"`
	DiscountPrice *int64   `json:"discount_price" validate:"omitempty,gt=0"`
	Image         string   `json:"image" validate:"omitempty,url"`
	Weight        string   `json:"weight" validate:"max=50"`
	Ingredients   []string `json:"ingredients"`
	ShelfLife     string   `json:"shelf_life" validate:"max=50"`
	InStock       bool     `json:"in_stock"`
}

// ListProducts handles GET /products. The catalog never fails this endpoint;
// degraded sources fall back to the built-in assortment.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.ListProducts(r.Context()))
}

// GetProduct handles GET /products/{productID}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.ListCategories(r.Context()))
}

// CreateProduct handles POST /products. Requires an authenticated identity.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validator.Validate(&req); err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), domain.ProductDraft{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Image:         req.Image,
		Weight:        req.Weight,
		Ingredients:   req.Ingredients,
		ShelfLife:     req.ShelfLife,
		InStock:       req.InStock,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}
