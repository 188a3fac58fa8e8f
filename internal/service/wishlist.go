package service

import (
	"context"
	"log/slog"

	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/internal/event"
	"github.com/sweetmoments/storefront/internal/repository"
	apperrors "github.com/sweetmoments/storefront/pkg/errors"
)

// WishlistService manages per-session wishlists. Display reads fail soft: a
// broken store yields an empty wishlist. Writes are best effort: the toggled
// state is returned to the caller even when persisting it failed, so the
// session keeps a consistent view and only durability is lost. A toggle does
// refuse when the store cannot be read at all, since saving on top of an
// unreadable set would overwrite whatever is persisted there.
type WishlistService struct {
	repo   repository.WishlistRepository
	events *event.Producer
	logger *slog.Logger
}

// NewWishlistService creates the wishlist service.
func NewWishlistService(repo repository.WishlistRepository, events *event.Producer, logger *slog.Logger) *WishlistService {
	return &WishlistService{repo: repo, events: events, logger: logger}
}

// GetWishlist returns the session's wishlist, empty when the store has
// nothing usable for it.
func (s *WishlistService) GetWishlist(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	wishlist, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "wishlist store unavailable, serving empty wishlist",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return domain.NewWishlist(sessionID), nil
	}
	return wishlist, nil
}

// Toggle flips the product's membership in the session's wishlist and
// returns the wishlist afterwards, plus whether the product is now present.
func (s *WishlistService) Toggle(ctx context.Context, sessionID string, product domain.Product) (*domain.Wishlist, bool, error) {
	if sessionID == "" {
		return nil, false, apperrors.InvalidInput("session id is required")
	}
	if product.ID == "" {
		return nil, false, apperrors.InvalidInput("product id is required")
	}

	// Read the store directly rather than through GetWishlist: its empty
	// fallback is fine for display, but toggling on top of it would save an
	// almost-empty set over the persisted one.
	wishlist, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "wishlist store unreadable, refusing toggle",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return nil, false, apperrors.Unavailable("wishlist is temporarily unavailable")
	}
	added := wishlist.Toggle(product)

	if err := s.repo.Save(ctx, wishlist); err != nil {
		s.logger.WarnContext(ctx, "persisting wishlist failed",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
	}

	s.events.WishlistToggled(ctx, sessionID, product.ID, added)
	return wishlist, added, nil
}

// Contains reports whether the product is in the session's wishlist.
func (s *WishlistService) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	wishlist, err := s.GetWishlist(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productID), nil
}
