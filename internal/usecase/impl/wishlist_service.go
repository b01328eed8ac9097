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

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves the caller's wishlist with products preloaded.
func (srv *wishlistService) List(ctx context.Context, identity *authz.Identity) ([]*entity.WishlistItem, error) {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return nil, err
	}

	var items []*entity.WishlistItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.WishlistRepo().ListByCustomer(ctx, identity.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to list wishlist")
		}
		items = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list wishlist", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return items, nil
}

// Add puts a product on the wishlist. A product already on the list is a
// conflict, surfaced as 400 by the error taxonomy.
func (srv *wishlistService) Add(ctx context.Context, identity *authz.Identity, input *usecase.WishlistAddInput) (*entity.WishlistItem, error) {
	srv.log(ctx).Debug("Adding to wishlist", slog.String("product_id", input.ProductID))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid product id")
	}

	var item *entity.WishlistItem

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindPublicByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not visible")
			}

			return errors.Wrap(err, "failed to find product")
		}

		created := &entity.WishlistItem{
			CustomerID: identity.UserID,
			ProductID:  productID,
		}
		if err := repoFactory.WishlistRepo().Create(ctx, created); err != nil {
			if errors.Is(err, repository.ErrDuplicateWishlistEntry) {
				return errors.Wrap(domainerrors.ErrWishlistDuplicate, "already wishlisted")
			}

			return errors.Wrap(err, "failed to create wishlist item")
		}
		created.Product = product
		item = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to add to wishlist", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add to wishlist")
	}

	return item, nil
}

// Remove deletes one wishlist entry.
func (srv *wishlistService) Remove(ctx context.Context, identity *authz.Identity, itemID uuid.UUID) error {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.WishlistRepo().DeleteForCustomer(ctx, itemID, identity.UserID); err != nil {
			if errors.Is(err, repository.ErrWishlistItemNotFound) {
				return errors.Wrap(domainerrors.ErrWishlistItemNotFound, "wishlist item not found")
			}

			return errors.Wrap(err, "failed to delete wishlist item")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to remove wishlist item")
	}

	return nil
}
