package repository

import (
	"context"

	"github.com/sweetmoments/storefront/internal/domain"
)

// CartRepository stores per-session carts.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// WishlistRepository persists per-session wishlists across restarts.
type WishlistRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Wishlist, error)
	Save(ctx context.Context, wishlist *domain.Wishlist) error
}

// CatalogRepository is a remote product source. Implementations may be
// unavailable; callers are expected to fall back to the built-in assortment.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
}
