package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminRoles is the requirement shared by the lifecycle operations: platform
// admins act globally, regional admins within their district.
var adminRoles = authz.Requirement{
	Roles: entity.Roles{entity.RoleAdmin, entity.RoleRegionalAdmin},
}

// lifecycleService implements the VendorLifecycleUsecase interface.
type lifecycleService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewLifecycleService is the constructor for lifecycleService.
func NewLifecycleService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.VendorLifecycleUsecase {
	return &lifecycleService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *lifecycleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// findScopedShop loads a shop and applies district scoping. A shop outside a
// regional admin's district is reported as not found, never as forbidden, so
// its existence does not leak across districts.
func findScopedShop(ctx context.Context, shopRepo repository.ShopRepository, identity *authz.Identity, shopID uuid.UUID) (*entity.VendorShop, error) {
	shop, err := shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	if district := authz.ScopeDistrict(identity); district != "" && shop.District != district {
		return nil, errors.Wrap(domainerrors.ErrShopNotFound, "shop outside district")
	}

	return shop, nil
}

// requireScopedAdmin checks the role gate, demanding a district only from
// regional admins.
func requireScopedAdmin(identity *authz.Identity) error {
	req := adminRoles
	if identity != nil && identity.Role == entity.RoleRegionalAdmin {
		req.NeedsDistrict = true
	}

	return authz.Authorize(identity, req)
}

// ApproveShop moves a shop to the approved state.
func (srv *lifecycleService) ApproveShop(ctx context.Context, identity *authz.Identity, shopID uuid.UUID) (*entity.VendorShop, error) {
	srv.log(ctx).Info("Approving shop", slog.Any("shop_id", shopID))

	if err := requireScopedAdmin(identity); err != nil {
		return nil, err
	}

	var shop *entity.VendorShop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		found, err := findScopedShop(ctx, shopRepo, identity, shopID)
		if err != nil {
			return err
		}

		if found.State() == entity.ShopStateApproved {
			return errors.Wrap(domainerrors.ErrShopAlreadyApproved, "no-op approval")
		}

		found.Approve()
		if err := shopRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}
		shop = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to approve shop", slog.Any("error", err), slog.Any("shop_id", shopID))

		return nil, errors.Wrap(err, "failed to approve shop")
	}
	srv.log(ctx).Info("Shop approved", slog.Any("shop_id", shopID))

	return shop, nil
}

// RejectShop moves a shop to the rejected state, recording the actor.
func (srv *lifecycleService) RejectShop(ctx context.Context, identity *authz.Identity, shopID uuid.UUID) (*entity.VendorShop, error) {
	srv.log(ctx).Info("Rejecting shop", slog.Any("shop_id", shopID))

	if err := requireScopedAdmin(identity); err != nil {
		return nil, err
	}

	var shop *entity.VendorShop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		found, err := findScopedShop(ctx, shopRepo, identity, shopID)
		if err != nil {
			return err
		}

		if found.State() == entity.ShopStateRejected {
			return errors.Wrap(domainerrors.ErrShopAlreadyRejected, "no-op rejection")
		}

		found.Reject(identity.UserID, time.Now())
		if err := shopRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}
		shop = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to reject shop", slog.Any("error", err), slog.Any("shop_id", shopID))

		return nil, errors.Wrap(err, "failed to reject shop")
	}
	srv.log(ctx).Info("Shop rejected", slog.Any("shop_id", shopID))

	return shop, nil
}

// ChangeRole sets a user's role and keeps shop existence in lockstep with the
// vendor role, all in one transaction.
func (srv *lifecycleService) ChangeRole(ctx context.Context, identity *authz.Identity, targetUserID uuid.UUID, newRole string) (*entity.User, error) {
	srv.log(ctx).Info("Changing user role", slog.Any("target_id", targetUserID), slog.String("new_role", newRole))

	req := adminRoles
	if identity != nil && identity.Role == entity.RoleRegionalAdmin {
		req.NeedsDistrict = true
	}
	if err := authz.AuthorizeRoleChange(identity, targetUserID, req); err != nil {
		return nil, err
	}

	role, ok := entity.ParseRole(newRole)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		shopRepo := repoFactory.ShopRepo()

		found, err := userRepo.FindByID(ctx, targetUserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "target not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// Regional admins only manage users of their own district.
		if district := authz.ScopeDistrict(identity); district != "" && found.District != district {
			return errors.Wrap(domainerrors.ErrUserNotFound, "target outside district")
		}

		wasVendor := found.Role == entity.RoleVendor
		found.Role = role

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		// Keep the invariant: a user has a shop exactly while they hold the
		// vendor role.
		switch {
		case role == entity.RoleVendor && !wasVendor:
			shop := entity.NewPlaceholderShop(found.ID, found.District)
			if err := shopRepo.Create(ctx, shop); err != nil {
				return errors.Wrap(err, "failed to create placeholder shop")
			}
			found.Shop = shop
		case role != entity.RoleVendor && wasVendor:
			if err := shopRepo.DeleteByVendor(ctx, found.ID); err != nil {
				return errors.Wrap(err, "failed to delete shop")
			}
			found.Shop = nil
		}

		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to change role", slog.Any("error", err), slog.Any("target_id", targetUserID))

		return nil, errors.Wrap(err, "failed to change role")
	}
	srv.log(ctx).Info("Role changed", slog.Any("target_id", targetUserID), slog.String("role", role.String()))

	return user, nil
}
