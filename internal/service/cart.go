package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/internal/event"
	"github.com/sweetmoments/storefront/internal/repository"
	apperrors "github.com/sweetmoments/storefront/pkg/errors"
)

// CartService manages per-session shopping carts. Totals are always derived
// from the lines at read time; no running counters are stored.
type CartService struct {
	repo   repository.CartRepository
	events *event.Producer
	logger *slog.Logger
}

// NewCartService creates the cart service.
func NewCartService(repo repository.CartRepository, events *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{repo: repo, events: events, logger: logger}
}

// GetCart returns the session's cart, empty when none exists yet.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	return s.repo.Get(ctx, sessionID)
}

// AddToCart adds one unit of the product to the session's cart. Adding a
// product already in the cart bumps its quantity by one.
func (s *CartService) AddToCart(ctx context.Context, sessionID string, product domain.Product) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if product.ID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	cart.Add(product)
	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("saving cart: %w", err)
	}

	s.events.CartUpdated(ctx, cart)
	return cart, nil
}

// UpdateQuantity sets the quantity of a cart line. Quantities below one
// remove the line. Updating a product that is not in the cart is a no-op and
// succeeds; the cart is returned as-is.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	if !cart.SetQuantity(productID, quantity) {
		return cart, nil
	}
	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("saving cart: %w", err)
	}

	s.events.CartUpdated(ctx, cart)
	return cart, nil
}

// RemoveFromCart deletes a cart line. Removing an absent product is a no-op
// and succeeds.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	if !cart.Remove(productID) {
		return cart, nil
	}
	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("saving cart: %w", err)
	}

	s.events.CartUpdated(ctx, cart)
	return cart, nil
}

// ClearCart empties the session's cart.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	s.events.CartCleared(ctx, sessionID)
	return nil
}
