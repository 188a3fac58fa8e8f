package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetmoments/storefront/internal/domain"
)

func TestCartRepositoryGetAbsent(t *testing.T) {
	repo := NewCartRepository()

	cart, err := repo.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", cart.SessionID)
	assert.Empty(t, cart.Lines)
}

func TestCartRepositorySaveAndGet(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	cart := domain.NewCart("sess-1")
	cart.Add(domain.Product{ID: "p1", Price: 450})
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "p1", got.Lines[0].ID)

	// Mutating the returned cart must not leak into the store.
	got.Add(domain.Product{ID: "p2"})
	again, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, again.Lines, 1)
}

func TestCartRepositoryDelete(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	cart := domain.NewCart("sess-1")
	cart.Add(domain.Product{ID: "p1"})
	require.NoError(t, repo.Save(ctx, cart))
	require.NoError(t, repo.Delete(ctx, "sess-1"))
	require.NoError(t, repo.Delete(ctx, "sess-1"))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}

func TestCartRepositoryConcurrentSessions(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%10))
			cart := domain.NewCart(id)
			cart.Add(domain.Product{ID: "p1", Price: 100})
			_ = repo.Save(ctx, cart)
			_, _ = repo.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	cart, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems())
}
