// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorLifecycleUsecase owns the legal transitions of a vendor shop's
// approval state and the coupling between a user's role and shop existence.
// All three operations are admin or regional-admin gated; regional admins
// are confined to shops and users of their own district, and an
// out-of-district target is reported as not found, never as forbidden.
type VendorLifecycleUsecase interface {
	// ApproveShop moves a shop to the approved state. Approving an already
	// approved shop is a conflict, not a silent success.
	ApproveShop(ctx context.Context, identity *authz.Identity, shopID uuid.UUID) (*entity.VendorShop, error)

	// RejectShop moves a shop to the rejected state, stamping who rejected
	// it and when. Rejecting an already rejected shop is a conflict.
	RejectShop(ctx context.Context, identity *authz.Identity, shopID uuid.UUID) (*entity.VendorShop, error)

	// ChangeRole sets a user's role and keeps the role<->shop invariant in
	// one transaction: gaining the vendor role creates a placeholder shop,
	// losing it deletes the shop. Actors can never change their own role.
	ChangeRole(ctx context.Context, identity *authz.Identity, targetUserID uuid.UUID, newRole string) (*entity.User, error)
}

// --- Admin directory DTOs ---

// AdminUserListInput filters the admin user listing.
type AdminUserListInput struct {
	Role string `query:"role"`
}

// AdminShopListInput filters the admin shop listing.
type AdminShopListInput struct {
	State string `query:"status"` // pending | approved | rejected
}

// CategoryInput carries category fields for create and update.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// AdminUsecase covers the read surfaces and taxonomy management shared by
// admins and regional admins; district scoping comes from the identity.
type AdminUsecase interface {
	ListUsers(ctx context.Context, identity *authz.Identity, input *AdminUserListInput) ([]*entity.User, error)
	ListShops(ctx context.Context, identity *authz.Identity, input *AdminShopListInput) ([]*entity.VendorShop, error)
	ListCategories(ctx context.Context, identity *authz.Identity) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, identity *authz.Identity, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, identity *authz.Identity, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)
}
