// Package memory provides in-process repositories. The cart is deliberately
// session-scoped and ephemeral; it does not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/sweetmoments/storefront/internal/domain"
)

// CartRepository keeps carts in a map guarded by a mutex. Carts returned to
// callers are deep copies, so concurrent readers never observe a mutation in
// progress.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewCartRepository creates an empty in-memory cart store.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domain.Cart)}
}

// Get returns the cart for the session, creating an empty one when absent.
func (r *CartRepository) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	cart, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if !ok {
		return domain.NewCart(sessionID), nil
	}
	return copyCart(cart), nil
}

// Save stores a deep copy of the cart under its session ID.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	r.carts[cart.SessionID] = copyCart(cart)
	r.mu.Unlock()
	return nil
}

// Delete removes the cart for the session. Deleting an absent cart is a no-op.
func (r *CartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.carts, sessionID)
	r.mu.Unlock()
	return nil
}

func copyCart(cart *domain.Cart) *domain.Cart {
	dup := *cart
	dup.Lines = make([]domain.CartLine, len(cart.Lines))
	copy(dup.Lines, cart.Lines)
	return &dup
}
