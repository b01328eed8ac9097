package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfillment status of an order. The canonical
// form is uppercase; clients see the lowercase form via External(). Both
// conversions live here so no route does its own casing.
type OrderStatus string

const (
	// OrderStatusPending is the initial status of every order.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusProcessing means a vendor started working on the order.
	OrderStatusProcessing OrderStatus = "PROCESSING"
	// OrderStatusShipped means the order left the vendor.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusDelivered means the order reached the customer.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled means the order was cancelled.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// String returns the canonical (uppercase) representation.
func (s OrderStatus) String() string {
	return string(s)
}

// External returns the lowercase form used on every client-facing surface.
func (s OrderStatus) External() string {
	return strings.ToLower(string(s))
}

// IsValid checks membership in the status enum.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseOrderStatus normalizes a client-supplied status string. Returns false
// for anything outside the enum. Note that the lifecycle deliberately has no
// transition graph: any valid status may follow any other (see
// OrderUsecase.UpdateStatus); only enum membership is enforced here.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", false
	}

	return status, true
}

// Order is a customer's purchase. One order may span products of several
// vendors; vendor-facing reads always go through VendorView.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Customer   *User // Preloaded for vendor order search surfaces.
	Status     OrderStatus
	// ShippingAddressRaw holds the serialized JSON address exactly as stored.
	ShippingAddressRaw string
	District           string
	Items              []*OrderItem
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderItem is an immutable snapshot of price and quantity for one product
// within an order. ShopID is denormalized from the product at order time so
// vendor scoping never depends on the product row still existing.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ShopID      uuid.UUID
	ProductName string  // Snapshot name at order time.
	Price       float64 // Snapshot unit price at order time.
	Quantity    int
}

// Subtotal is the line total for this item.
func (i *OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Total sums price x quantity over all items in the order.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}

	return total
}

// ItemsForShop returns only the items belonging to the given shop.
func (o *Order) ItemsForShop(shopID uuid.UUID) []*OrderItem {
	items := make([]*OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		if item.ShopID == shopID {
			items = append(items, item)
		}
	}

	return items
}

// ContainsShop reports whether at least one item belongs to the given shop.
// This is the ownership test behind every vendor-facing order operation.
func (o *Order) ContainsShop(shopID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.ShopID == shopID {
			return true
		}
	}

	return false
}

// VendorOrderView is the projection of an order onto a single vendor: only
// that vendor's items and the total over that slice. The full order total is
// never exposed through this type.
type VendorOrderView struct {
	OrderID       uuid.UUID
	Status        OrderStatus
	CustomerName  string
	CustomerEmail string
	District      string
	Items         []*OrderItem
	VendorTotal   float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VendorView builds the vendor-scoped projection of the order. Returns false
// when the order contains no item of the shop, which callers must surface as
// not-found rather than forbidden to avoid leaking the order's existence.
func (o *Order) VendorView(shopID uuid.UUID) (*VendorOrderView, bool) {
	items := o.ItemsForShop(shopID)
	if len(items) == 0 {
		return nil, false
	}

	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	view := &VendorOrderView{
		OrderID:     o.ID,
		Status:      o.Status,
		District:    o.District,
		Items:       items,
		VendorTotal: total,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.Customer != nil {
		view.CustomerName = o.Customer.FullName()
		view.CustomerEmail = o.Customer.Email
	}

	return view, true
}
