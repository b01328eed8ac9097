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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves the caller's cart with its running total.
func (srv *cartService) List(ctx context.Context, identity *authz.Identity) (*usecase.CartOutput, error) {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return nil, err
	}

	output := &usecase.CartOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, err := repoFactory.CartRepo().ListByCustomer(ctx, identity.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart")
		}

		output.Items = items
		for _, item := range items {
			output.Total += item.Subtotal()
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list cart", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cart")
	}

	return output, nil
}

// Add puts a product into the cart. Adding a product already in the cart
// merges into the existing line; the combined quantity is checked against
// stock inside the same transaction as the write.
func (srv *cartService) Add(ctx context.Context, identity *authz.Identity, input *usecase.CartAddInput) (*entity.CartItem, error) {
	srv.log(ctx).Debug("Adding to cart", slog.String("product_id", input.ProductID), slog.Int("quantity", input.Quantity))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid product id")
	}

	var item *entity.CartItem

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// Only publicly visible products can enter a cart.
		product, err := repoFactory.ProductRepo().FindPublicByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not purchasable")
			}

			return errors.Wrap(err, "failed to find product")
		}

		existing, err := cartRepo.FindByProduct(ctx, identity.UserID, productID)
		switch {
		case err == nil:
			quantity := existing.Quantity + input.Quantity
			if quantity > product.StockCount {
				return errors.Wrap(domainerrors.ErrInsufficientStock, "merged quantity exceeds stock")
			}
			if err := cartRepo.UpdateQuantity(ctx, existing.ID, quantity); err != nil {
				return errors.Wrap(err, "failed to update cart item")
			}
			existing.Quantity = quantity
			existing.Product = product
			item = existing

			return nil
		case errors.Is(err, repository.ErrCartItemNotFound):
			// Fresh line below.
		default:
			return errors.Wrap(err, "failed to find cart item")
		}

		if input.Quantity > product.StockCount {
			return errors.Wrap(domainerrors.ErrInsufficientStock, "quantity exceeds stock")
		}

		created := &entity.CartItem{
			CustomerID: identity.UserID,
			ProductID:  productID,
			Quantity:   input.Quantity,
		}
		if err := cartRepo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create cart item")
		}
		created.Product = product
		item = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to add to cart", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add to cart")
	}

	return item, nil
}

// UpdateQuantity sets the quantity of a cart line, checked against stock.
func (srv *cartService) UpdateQuantity(ctx context.Context, identity *authz.Identity, itemID uuid.UUID, input *usecase.CartUpdateInput) (*entity.CartItem, error) {
	srv.log(ctx).Debug("Updating cart quantity", slog.Any("item_id", itemID), slog.Int("quantity", input.Quantity))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return nil, err
	}

	var item *entity.CartItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		found, err := cartRepo.FindForCustomer(ctx, itemID, identity.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
			}

			return errors.Wrap(err, "failed to find cart item")
		}

		if found.Product != nil && input.Quantity > found.Product.StockCount {
			return errors.Wrap(domainerrors.ErrInsufficientStock, "quantity exceeds stock")
		}

		if err := cartRepo.UpdateQuantity(ctx, found.ID, input.Quantity); err != nil {
			return errors.Wrap(err, "failed to update cart item")
		}
		found.Quantity = input.Quantity
		item = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update cart quantity", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update cart quantity")
	}

	return item, nil
}

// Remove deletes one cart line.
func (srv *cartService) Remove(ctx context.Context, identity *authz.Identity, itemID uuid.UUID) error {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartRepo().DeleteForCustomer(ctx, itemID, identity.UserID); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
			}

			return errors.Wrap(err, "failed to delete cart item")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// Clear empties the caller's cart. Clearing an empty cart succeeds.
func (srv *cartService) Clear(ctx context.Context, identity *authz.Identity) error {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartRepo().ClearByCustomer(ctx, identity.UserID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
