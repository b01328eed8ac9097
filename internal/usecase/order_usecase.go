package usecase

import (
	"context"

	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput creates an order from the customer's current cart.
type CheckoutInput struct {
	ShippingAddress entity.ShippingAddress `json:"shippingAddress" validate:"required"`
}

// OrderDetail pairs an order with its decoded shipping address.
type OrderDetail struct {
	Order           *entity.Order
	ShippingAddress *entity.ShippingAddress
}

// CustomerOrderUsecase is the customer's order surface. Checkout snapshots
// product name and price into the order lines, decrements stock and clears
// the cart in a single transaction.
type CustomerOrderUsecase interface {
	Checkout(ctx context.Context, identity *authz.Identity, input *CheckoutInput) (*entity.Order, error)
	List(ctx context.Context, identity *authz.Identity) ([]*entity.Order, error)
	Get(ctx context.Context, identity *authz.Identity, orderID uuid.UUID) (*OrderDetail, error)
}

// VendorOrderListInput filters the vendor order listing.
type VendorOrderListInput struct {
	Status string `query:"status"`
	Search string `query:"search"`
}

// VendorOrderUsecase projects orders onto a single vendor's shop: only
// that shop's lines and their subtotal are visible, and an order with no
// line from the shop does not exist from the vendor's point of view.
type VendorOrderUsecase interface {
	List(ctx context.Context, identity *authz.Identity, input *VendorOrderListInput) ([]*entity.VendorOrderView, error)
	UpdateStatus(ctx context.Context, identity *authz.Identity, orderID uuid.UUID, status string) (*entity.VendorOrderView, error)
}
