package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product in a customer's cart. Quantity is at least 1 and
// must not exceed the product's stock at mutation time; that check happens in
// the cart use case inside the same transaction as the write.
type CartItem struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ProductID  uuid.UUID
	Product    *Product // Preloaded for stock checks and cart DTOs.
	Quantity   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Subtotal is price x quantity for the current product price. Zero when the
// product is not loaded.
func (c *CartItem) Subtotal() float64 {
	if c.Product == nil {
		return 0
	}

	return c.Product.Price * float64(c.Quantity)
}

// WishlistItem marks one product a customer wants to keep an eye on.
// A (customer, product) pair appears at most once; the persistence layer
// backs this with a unique index.
type WishlistItem struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ProductID  uuid.UUID
	Product    *Product
	CreatedAt  time.Time
}
