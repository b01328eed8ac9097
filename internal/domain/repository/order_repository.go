// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found. Repositories also
// return it when the order exists but lies outside the caller's scope (wrong
// customer, no item of the vendor): absence and exclusion are deliberately
// indistinguishable so out-of-scope orders do not leak their existence.
var ErrOrderNotFound = errors.New("order not found")

// OrderListFilter narrows vendor order listings.
type OrderListFilter struct {
	Status *entity.OrderStatus
	// Search matches order id, customer name or customer email.
	Search string
}

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order with its item snapshots.
	Create(ctx context.Context, order *entity.Order) error

	// FindByIDForCustomer retrieves an order with items, owned by the
	// given customer.
	FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Order, error)

	// ListByCustomer retrieves a customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindContainingShop retrieves an order with items and customer,
	// only if at least one item belongs to the shop.
	FindContainingShop(ctx context.Context, id, shopID uuid.UUID) (*entity.Order, error)

	// ListContainingShop retrieves orders with at least one item of the
	// shop, newest first, matching the filter.
	ListContainingShop(ctx context.Context, shopID uuid.UUID, filter OrderListFilter) ([]*entity.Order, error)

	// UpdateStatus sets the fulfillment status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
