// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductListFilter narrows public product listings.
type ProductListFilter struct {
	CategoryID *uuid.UUID
	Search     string // Free-text match over name and description.
}

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a product regardless of its shop's approval state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindPublicByID retrieves a product only if its shop is approved and
	// not rejected; anything else is ErrProductNotFound.
	FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListPublic retrieves products of approved, non-rejected shops.
	ListPublic(ctx context.Context, filter ProductListFilter) ([]*entity.Product, error)

	// ListByShop retrieves all products of one shop, newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically reduces stock by quantity, failing when the
	// remaining stock is insufficient. Issued inside the checkout
	// transaction to close the check-then-write race.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

// ErrInsufficientStock is returned by DecrementStock when the product has
// fewer units than requested.
var ErrInsufficientStock = errors.New("insufficient stock")

// CategoryRepository defines the operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListActiveWithCounts retrieves active categories with the derived
	// product count (in-stock products of approved shops); categories whose
	// count is zero are omitted. This is the shop-facing listing.
	ListActiveWithCounts(ctx context.Context) ([]*entity.Category, error)

	// ListAll retrieves every category for admin surfaces.
	ListAll(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error
}
