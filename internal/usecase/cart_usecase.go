package usecase

import (
	"context"

	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CartAddInput adds a product to the customer's cart.
type CartAddInput struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CartUpdateInput changes the quantity of an existing cart line.
type CartUpdateInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartOutput is the customer's cart with its running total.
type CartOutput struct {
	Items []*entity.CartItem
	Total float64
}

// CartUsecase manages a customer's cart. Adding a product that is already
// in the cart merges into the existing line, and every quantity is checked
// against the product's current stock.
type CartUsecase interface {
	List(ctx context.Context, identity *authz.Identity) (*CartOutput, error)
	Add(ctx context.Context, identity *authz.Identity, input *CartAddInput) (*entity.CartItem, error)
	UpdateQuantity(ctx context.Context, identity *authz.Identity, itemID uuid.UUID, input *CartUpdateInput) (*entity.CartItem, error)
	Remove(ctx context.Context, identity *authz.Identity, itemID uuid.UUID) error
	Clear(ctx context.Context, identity *authz.Identity) error
}

// WishlistAddInput adds a product to the customer's wishlist.
type WishlistAddInput struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

// WishlistUsecase manages a customer's wishlist. A product can appear at
// most once per customer.
type WishlistUsecase interface {
	List(ctx context.Context, identity *authz.Identity) ([]*entity.WishlistItem, error)
	Add(ctx context.Context, identity *authz.Identity, input *WishlistAddInput) (*entity.WishlistItem, error)
	Remove(ctx context.Context, identity *authz.Identity, itemID uuid.UUID) error
}
