package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopState is the derived approval state of a vendor shop.
type ShopState string

const (
	// ShopStatePending means the shop is awaiting review.
	ShopStatePending ShopState = "pending"
	// ShopStateApproved means the shop passed review and its products are public.
	ShopStateApproved ShopState = "approved"
	// ShopStateRejected means the shop failed review.
	ShopStateRejected ShopState = "rejected"
)

// VendorShop is a vendor's storefront, owned by exactly one user with the
// vendor role. Approval is a pair of flags rather than a single enum column;
// the invariant is that IsApproved and IsRejected are never both true.
type VendorShop struct {
	ID          uuid.UUID
	VendorID    uuid.UUID // Owning user; unique across shops.
	Name        string
	Description string
	District    string
	IsApproved  bool
	IsRejected  bool
	RejectedAt  *time.Time
	RejectedBy  *uuid.UUID // Admin who rejected the shop.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// State derives the lifecycle state from the approval flags.
func (s *VendorShop) State() ShopState {
	switch {
	case s.IsRejected:
		return ShopStateRejected
	case s.IsApproved:
		return ShopStateApproved
	default:
		return ShopStatePending
	}
}

// IsPubliclyVisible reports whether the shop's products may appear in
// customer-facing listings.
func (s *VendorShop) IsPubliclyVisible() bool {
	return s.IsApproved && !s.IsRejected
}

// Approve moves the shop to the approved state. Re-approving after a
// rejection is legal; rejection bookkeeping is cleared.
func (s *VendorShop) Approve() {
	s.IsApproved = true
	s.IsRejected = false
	s.RejectedAt = nil
	s.RejectedBy = nil
}

// Reject moves the shop to the rejected state, clearing any prior approval
// and stamping who rejected it and when.
func (s *VendorShop) Reject(actorID uuid.UUID, at time.Time) {
	s.IsApproved = false
	s.IsRejected = true
	s.RejectedAt = &at
	s.RejectedBy = &actorID
}

// NewPlaceholderShop builds the default shop created when a user gains the
// vendor role without registering a storefront explicitly.
func NewPlaceholderShop(vendorID uuid.UUID, district string) *VendorShop {
	return &VendorShop{
		VendorID:    vendorID,
		Name:        "Unnamed Shop",
		Description: "This vendor has not set up their shop yet.",
		District:    district,
	}
}
