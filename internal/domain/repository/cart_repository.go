// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for cart and wishlist persistence.
var (
	// ErrCartItemNotFound is returned when a cart item is not found for the
	// given customer. Another customer's item is indistinguishable from an
	// absent one.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrWishlistItemNotFound is returned when a wishlist item is not found
	// for the given customer.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	// ErrDuplicateWishlistEntry is returned when the (customer, product)
	// pair already exists; backed by a unique index.
	ErrDuplicateWishlistEntry = errors.New("wishlist entry already exists")
)

// CartRepository defines the operations for cart persistence. Every method is
// customer-scoped: there is no way to reach another customer's cart.
type CartRepository interface {
	// ListByCustomer retrieves the customer's cart with products preloaded.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CartItem, error)

	// FindForCustomer retrieves one cart item owned by the customer, with
	// the product preloaded for stock checks.
	FindForCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.CartItem, error)

	// FindByProduct retrieves the customer's cart item for a product, if any.
	FindByProduct(ctx context.Context, customerID, productID uuid.UUID) (*entity.CartItem, error)

	// Create persists a new cart item.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of a cart item.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteForCustomer removes one cart item owned by the customer.
	DeleteForCustomer(ctx context.Context, id, customerID uuid.UUID) error

	// ClearByCustomer removes every cart item of the customer.
	ClearByCustomer(ctx context.Context, customerID uuid.UUID) error
}

// WishlistRepository defines the operations for wishlist persistence.
type WishlistRepository interface {
	// ListByCustomer retrieves the customer's wishlist with products.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.WishlistItem, error)

	// Create persists a new wishlist item; a duplicate (customer, product)
	// pair yields ErrDuplicateWishlistEntry.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// DeleteForCustomer removes one wishlist item owned by the customer.
	DeleteForCustomer(ctx context.Context, id, customerID uuid.UUID) error
}
