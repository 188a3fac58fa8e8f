package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetmoments/storefront/internal/domain"
)

func newTestRepo(t *testing.T) (*WishlistRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWishlistRepository(client, logger), mr
}

func TestWishlistGetAbsent(t *testing.T) {
	repo, _ := newTestRepo(t)

	wl, err := repo.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", wl.SessionID)
	assert.Equal(t, 0, wl.Count())
}

func TestWishlistRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	wl := domain.NewWishlist("sess-1")
	discount := int64(399)
	wl.Toggle(domain.Product{
		ID:            "p1",
		Name:          "Motichoor Ladoo",
		Price:         450,
		DiscountPrice: &discount,
		Ingredients:   []string{"gram flour", "ghee", "sugar"},
		InStock:       true,
	})
	require.NoError(t, repo.Save(ctx, wl))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, 1, got.Count())
	assert.Equal(t, "Motichoor Ladoo", got.Items[0].Name)
	require.NotNil(t, got.Items[0].DiscountPrice)
	assert.Equal(t, int64(399), *got.Items[0].DiscountPrice)
}

func TestWishlistCorruptPayload(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Set("sweet_moments_wishlist:sess-1", "{not json")

	wl, err := repo.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, wl.Count())
}

func TestWishlistSchemaMismatch(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Set("sweet_moments_wishlist:sess-1", `{"schema_version":99,"items":[{"id":"p1"}]}`)

	wl, err := repo.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, wl.Count())
}

func TestWishlistSessionsAreIsolated(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := domain.NewWishlist("sess-a")
	a.Toggle(domain.Product{ID: "p1"})
	require.NoError(t, repo.Save(ctx, a))

	b, err := repo.Get(ctx, "sess-b")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Count())
}

func TestWishlistGetRedisDown(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "sess-1")
	assert.Error(t, err)
}
