package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers retrieves users, optionally filtered by role, confined to the
// caller's district for regional admins.
func (srv *adminService) ListUsers(ctx context.Context, identity *authz.Identity, input *usecase.AdminUserListInput) ([]*entity.User, error) {
	srv.log(ctx).Debug("Listing users", slog.String("role_filter", input.Role))

	if err := requireScopedAdmin(identity); err != nil {
		return nil, err
	}

	filter := repository.UserListFilter{District: authz.ScopeDistrict(identity)}
	if input.Role != "" {
		role, ok := entity.ParseRole(input.Role)
		if !ok {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role filter")
		}
		filter.Role = &role
	}

	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListShops retrieves shops, optionally filtered by state, confined to the
// caller's district for regional admins.
func (srv *adminService) ListShops(ctx context.Context, identity *authz.Identity, input *usecase.AdminShopListInput) ([]*entity.VendorShop, error) {
	srv.log(ctx).Debug("Listing shops", slog.String("state_filter", input.State))

	if err := requireScopedAdmin(identity); err != nil {
		return nil, err
	}

	filter := repository.ShopListFilter{District: authz.ScopeDistrict(identity)}
	switch input.State {
	case "":
	case string(entity.ShopStatePending), string(entity.ShopStateApproved), string(entity.ShopStateRejected):
		state := entity.ShopState(input.State)
		filter.State = &state
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown shop state filter")
	}

	var shops []*entity.VendorShop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ShopRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list shops")
		}
		shops = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list shops", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// ListCategories retrieves every category, active or not, for admin surfaces.
func (srv *adminService) ListCategories(ctx context.Context, identity *authz.Identity) ([]*entity.Category, error) {
	srv.log(ctx).Debug("Listing categories for admin")

	if err := requireScopedAdmin(identity); err != nil {
		return nil, err
	}

	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory adds a taxonomy entry. Platform admins only; the taxonomy is
// global, so district-scoped admins cannot shape it.
func (srv *adminService) CreateCategory(ctx context.Context, identity *authz.Identity, input *usecase.CategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Creating category", slog.String("name", input.Name))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleAdmin)); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CategoryRepo().Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create category", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// UpdateCategory edits a taxonomy entry. Platform admins only.
func (srv *adminService) UpdateCategory(ctx context.Context, identity *authz.Identity, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Updating category", slog.Any("category_id", categoryID))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleAdmin)); err != nil {
		return nil, err
	}

	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		found, err := categoryRepo.FindByID(ctx, categoryID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		found.Name = input.Name
		found.Description = input.Description
		if input.IsActive != nil {
			found.IsActive = *input.IsActive
		}

		if err := categoryRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		category = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update category", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}
