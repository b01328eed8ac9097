// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is returned when a vendor shop is not found.
var ErrShopNotFound = errors.New("vendor shop not found")

// ShopListFilter narrows shop listings.
type ShopListFilter struct {
	State    *entity.ShopState
	District string // Non-empty restricts to one district.
}

// ShopRepository defines the operations for vendor shop persistence.
type ShopRepository interface {
	// FindByID retrieves a shop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorShop, error)

	// FindByVendor retrieves the one shop owned by the given user.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) (*entity.VendorShop, error)

	// List retrieves shops matching the filter, newest first.
	List(ctx context.Context, filter ShopListFilter) ([]*entity.VendorShop, error)

	// Create persists a new shop.
	Create(ctx context.Context, shop *entity.VendorShop) error

	// Update modifies an existing shop, including its approval flags.
	Update(ctx context.Context, shop *entity.VendorShop) error

	// DeleteByVendor removes the shop owned by the given user, if any.
	// Used when a vendor's role changes away from vendor.
	DeleteByVendor(ctx context.Context, vendorID uuid.UUID) error
}
