package memory

import (
	"context"
	"sync"

	"github.com/sweetmoments/storefront/internal/domain"
)

// WishlistRepository keeps wishlists in process memory. It backs the
// storefront when Redis is unavailable; entries live only as long as the
// process.
type WishlistRepository struct {
	mu        sync.RWMutex
	wishlists map[string]*domain.Wishlist
}

// NewWishlistRepository creates an empty in-memory wishlist store.
func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{wishlists: make(map[string]*domain.Wishlist)}
}

// Get returns the wishlist for the session, empty when absent.
func (r *WishlistRepository) Get(_ context.Context, sessionID string) (*domain.Wishlist, error) {
	r.mu.RLock()
	wl, ok := r.wishlists[sessionID]
	r.mu.RUnlock()
	if !ok {
		return domain.NewWishlist(sessionID), nil
	}
	dup := &domain.Wishlist{SessionID: wl.SessionID, Items: make([]domain.Product, len(wl.Items))}
	copy(dup.Items, wl.Items)
	return dup, nil
}

// Save stores a copy of the wishlist under its session ID.
func (r *WishlistRepository) Save(_ context.Context, wl *domain.Wishlist) error {
	dup := &domain.Wishlist{SessionID: wl.SessionID, Items: make([]domain.Product, len(wl.Items))}
	copy(dup.Items, wl.Items)
	r.mu.Lock()
	r.wishlists[wl.SessionID] = dup
	r.mu.Unlock()
	return nil
}
