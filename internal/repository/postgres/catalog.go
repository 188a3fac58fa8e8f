// Package postgres implements repositories backed by PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/pkg/database"
	apperrors "github.com/sweetmoments/storefront/pkg/errors"
)

const listProductsQuery = `
	SELECT id, name, slug, description, category, price, discount_price,
	       image, weight, ingredients, shelf_life, in_stock, featured,
	       bestseller, rating, reviews_count
	FROM products
	ORDER BY created_at DESC`

const listCategoriesQuery = `
	SELECT c.id, c.name, c.image, COUNT(p.id)
	FROM categories c
	LEFT JOIN products p ON p.category = c.id
	GROUP BY c.id, c.name, c.image
	ORDER BY c.name`

const insertProductQuery = `
	INSERT INTO products (
		id, name, slug, description, category, price, discount_price,
		image, weight, ingredients, shelf_life, in_stock, featured,
		bestseller, rating, reviews_count
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

// CatalogRepository reads and writes the product catalog in PostgreSQL.
type CatalogRepository struct {
	pool database.DBTX
}

// NewCatalogRepository creates a PostgreSQL-backed catalog source.
func NewCatalogRepository(pool database.DBTX) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListProducts returns every product in the catalog, newest first.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, listProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.Category,
			&p.Price, &p.DiscountPrice, &p.Image, &p.Weight,
			&p.Ingredients, &p.ShelfLife, &p.InStock, &p.Featured,
			&p.Bestseller, &p.Rating, &p.ReviewsCount,
		); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}

// ListCategories returns all categories with their live product counts.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, listCategoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

// CreateProduct inserts a fully populated product record.
func (r *CatalogRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	_, err := r.pool.Exec(ctx, insertProductQuery,
		p.ID, p.Name, p.Slug, p.Description, p.Category,
		p.Price, p.DiscountPrice, p.Image, p.Weight,
		p.Ingredients, p.ShelfLife, p.InStock, p.Featured,
		p.Bestseller, p.Rating, p.ReviewsCount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "id", p.ID)
		}
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
