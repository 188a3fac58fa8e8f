package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/internal/service"
	"github.com/sweetmoments/storefront/pkg/validator"
)

// CartHandler serves the cart endpoints.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler creates the cart handler.
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartView struct {
	SessionID  string            `json:"session_id"`
	Lines      []domain.CartLine `json:"lines"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
}

func newCartView(cart *domain.Cart) cartView {
	return cartView{
		SessionID:  cart.SessionID,
		Lines:      cart.Lines,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

type addCartItemRequest struct {
	Product domain.Product `json:"product" validate:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

// AddItem handles POST /cart/items. The client sends the full product
// snapshot; the cart does not consult the catalog.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validator.Validate(&req); err != nil {
		writeError(w, r, err)
		return
	}

	cart, err := h.carts.AddToCart(r.Context(), SessionFromContext(r.Context()), req.Product)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

// UpdateItem handles PUT /cart/items/{productID}.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(),
		SessionFromContext(r.Context()), chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

// RemoveItem handles DELETE /cart/items/{productID}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.RemoveFromCart(r.Context(),
		SessionFromContext(r.Context()), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.ClearCart(r.Context(), SessionFromContext(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(domain.NewCart(SessionFromContext(r.Context()))))
}
