// Package service holds the storefront business logic.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/internal/event"
	"github.com/sweetmoments/storefront/internal/repository"
	apperrors "github.com/sweetmoments/storefront/pkg/errors"
	"github.com/sweetmoments/storefront/pkg/slug"
)

const (
	// localIDPrefix marks products that exist only in this process after a
	// failed catalog write.
	localIDPrefix = "local-"

	defaultRating       = 4.8
	localFallbackRating = 5.0
)

// CatalogService serves the product catalog. It layers three sources: the
// remote repository, products created during this process lifetime, and the
// built-in assortment used when the remote source is missing or failing.
type CatalogService struct {
	repo   repository.CatalogRepository
	events *event.Producer
	logger *slog.Logger

	mu    sync.RWMutex
	local []domain.Product
}

// NewCatalogService creates the catalog service. repo may be nil, in which
// case the service runs on the built-in assortment alone.
func NewCatalogService(repo repository.CatalogRepository, events *event.Producer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// ListProducts returns session-created products first, then the remote
// catalog, deduplicated by ID. Remote failures degrade to the built-in
// assortment; this method never returns an error to its callers' users.
func (s *CatalogService) ListProducts(ctx context.Context) []domain.Product {
	base := s.remoteOrSeedProducts(ctx)

	s.mu.RLock()
	local := make([]domain.Product, len(s.local))
	copy(local, s.local)
	s.mu.RUnlock()

	merged := make([]domain.Product, 0, len(local)+len(base))
	seen := make(map[string]struct{}, len(local)+len(base))
	for _, p := range local {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	for _, p := range base {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	return merged
}

// GetProduct looks a product up by ID across all layered sources.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	for _, p := range s.ListProducts(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("product", id)
}

// ListCategories returns the category list, falling back to the built-in set
// when the remote source is missing or failing.
func (s *CatalogService) ListCategories(ctx context.Context) []domain.Category {
	if s.repo == nil {
		return seedCategories()
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "remote catalog unavailable, serving built-in categories",
			slog.String("error", err.Error()))
		return seedCategories()
	}
	if len(categories) == 0 {
		return seedCategories()
	}
	return categories
}

// CreateProduct lists a new product. The server assigns the ID, slug, and
// initial social proof. When the remote write fails the product is kept
// in-process under a local ID and the call still succeeds; the storefront
// prefers a degraded listing over a lost one.
func (s *CatalogService) CreateProduct(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error) {
	if draft.Price <= 0 {
		return nil, apperrors.InvalidInput("price must be positive")
	}
	if draft.DiscountPrice != nil && *draft.DiscountPrice > draft.Price {
		return nil, apperrors.InvalidInput("discount price must not exceed the base price")
	}

	product := &domain.Product{
		ID:            uuid.New().String(),
		Name:          draft.Name,
		Slug:          slug.Generate(draft.Name),
		Description:   draft.Description,
		Category:      draft.Category,
		Price:         draft.Price,
		DiscountPrice: draft.DiscountPrice,
		Image:         draft.Image,
		Weight:        draft.Weight,
		Ingredients:   draft.Ingredients,
		ShelfLife:     draft.ShelfLife,
		InStock:       draft.InStock,
		Rating:        defaultRating,
	}

	if s.repo != nil {
		err := s.repo.CreateProduct(ctx, product)
		if err == nil {
			s.events.ProductCreated(ctx, product, false)
			return product, nil
		}
		s.logger.WarnContext(ctx, "remote catalog write failed, keeping product locally",
			slog.String("product", product.Name),
			slog.String("error", err.Error()))
	}

	product.ID = localIDPrefix + uuid.New().String()
	product.Rating = localFallbackRating

	s.mu.Lock()
	s.local = append([]domain.Product{*product}, s.local...)
	s.mu.Unlock()

	s.events.ProductCreated(ctx, product, true)
	return product, nil
}

func (s *CatalogService) remoteOrSeedProducts(ctx context.Context) []domain.Product {
	if s.repo == nil {
		return seedProducts()
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "remote catalog unavailable, serving built-in assortment",
			slog.String("error", err.Error()))
		return seedProducts()
	}
	if len(products) == 0 {
		return seedProducts()
	}
	return products
}
