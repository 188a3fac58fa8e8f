// Package redis implements repositories backed by Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sweetmoments/storefront/internal/domain"
)

const wishlistKeyPrefix = "sweet_moments_wishlist:"

// wishlistSchemaVersion guards the stored payload shape. A stored envelope
// with a different version is discarded rather than migrated.
const wishlistSchemaVersion = 1

type wishlistEnvelope struct {
	SchemaVersion int              `json:"schema_version"`
	Items         []domain.Product `json:"items"`
}

// WishlistRepository persists wishlists as JSON envelopes in Redis, one key
// per session. Unreadable or stale payloads degrade to an empty wishlist
// instead of surfacing an error.
type WishlistRepository struct {
	client *goredis.Client
	logger *slog.Logger
}

// NewWishlistRepository creates a Redis-backed wishlist store.
func NewWishlistRepository(client *goredis.Client, logger *slog.Logger) *WishlistRepository {
	return &WishlistRepository{client: client, logger: logger}
}

func wishlistKey(sessionID string) string {
	return wishlistKeyPrefix + sessionID
}

// Get loads the wishlist for the session. An absent key, corrupt payload, or
// schema mismatch yields an empty wishlist and no error.
func (r *WishlistRepository) Get(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	data, err := r.client.Get(ctx, wishlistKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.NewWishlist(sessionID), nil
		}
		return nil, fmt.Errorf("loading wishlist: %w", err)
	}

	var envelope wishlistEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		r.logger.WarnContext(ctx, "discarding unreadable wishlist payload",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return domain.NewWishlist(sessionID), nil
	}
	if envelope.SchemaVersion != wishlistSchemaVersion {
		r.logger.WarnContext(ctx, "discarding wishlist with unknown schema version",
			slog.String("session_id", sessionID),
			slog.Int("schema_version", envelope.SchemaVersion))
		return domain.NewWishlist(sessionID), nil
	}

	wishlist := domain.NewWishlist(sessionID)
	if envelope.Items != nil {
		wishlist.Items = envelope.Items
	}
	return wishlist, nil
}

// Save stores the wishlist under its session key. Wishlists have no TTL; they
// outlive the cart by design of the storefront.
func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	envelope := wishlistEnvelope{
		SchemaVersion: wishlistSchemaVersion,
		Items:         wishlist.Items,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encoding wishlist: %w", err)
	}
	if err := r.client.Set(ctx, wishlistKey(wishlist.SessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("storing wishlist: %w", err)
	}
	return nil
}
