package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/internal/service"
	"github.com/sweetmoments/storefront/pkg/validator"
)

// WishlistHandler serves the wishlist endpoints.
type WishlistHandler struct {
	wishlists *service.WishlistService
}

// NewWishlistHandler creates the wishlist handler.
func NewWishlistHandler(wishlists *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

type wishlistView struct {
	SessionID string           `json:"session_id"`
	Items     []domain.Product `json:"items"`
	Count     int              `json:"count"`
}

func newWishlistView(wl *domain.Wishlist) wishlistView {
	return wishlistView{
		SessionID: wl.SessionID,
		Items:     wl.Items,
		Count:     wl.Count(),
	}
}

type toggleWishlistRequest struct {
	Product domain.Product `json:"product" validate:"required"`
}

type toggleWishlistResponse struct {
	Wishlist wishlistView `json:"wishlist"`
	Added    bool         `json:"added"`
}

// Get handles GET /wishlist.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	wl, err := h.wishlists.GetWishlist(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newWishlistView(wl))
}

// Toggle handles POST /wishlist/toggle.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleWishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validator.Validate(&req); err != nil {
		writeError(w, r, err)
		return
	}

	wl, added, err := h.wishlists.Toggle(r.Context(), SessionFromContext(r.Context()), req.Product)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleWishlistResponse{
		Wishlist: newWishlistView(wl),
		Added:    added,
	})
}

// Contains handles GET /wishlist/{productID}.
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	ok, err := h.wishlists.Contains(r.Context(),
		SessionFromContext(r.Context()), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"in_wishlist": ok})
}
