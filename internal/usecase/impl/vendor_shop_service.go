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

// vendorShopService implements the VendorShopUsecase interface.
type vendorShopService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewVendorShopService is the constructor for vendorShopService.
func NewVendorShopService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.VendorShopUsecase {
	return &vendorShopService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *vendorShopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ownShop resolves the caller's shop. Every vendor operation starts here, so
// ownership is established once and cannot be bypassed by a crafted ID.
func ownShop(ctx context.Context, shopRepo repository.ShopRepository, identity *authz.Identity) (*entity.VendorShop, error) {
	shop, err := shopRepo.FindByVendor(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "vendor has no shop")
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// GetShop retrieves the caller's own shop in any approval state.
func (srv *vendorShopService) GetShop(ctx context.Context, identity *authz.Identity) (*entity.VendorShop, error) {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleVendor)); err != nil {
		return nil, err
	}

	var shop *entity.VendorShop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := ownShop(ctx, repoFactory.ShopRepo(), identity)
		if err != nil {
			return err
		}
		shop = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get shop")
	}

	return shop, nil
}

// UpdateShop edits the caller's shop details. Approval flags are untouched;
// only the lifecycle operations change them.
func (srv *vendorShopService) UpdateShop(ctx context.Context, identity *authz.Identity, input *usecase.ShopUpdateInput) (*entity.VendorShop, error) {
	srv.log(ctx).Info("Updating shop", slog.Any("vendor_id", identityUserID(identity)))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleVendor)); err != nil {
		return nil, err
	}

	var shop *entity.VendorShop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		found, err := ownShop(ctx, shopRepo, identity)
		if err != nil {
			return err
		}

		found.Name = input.Name
		found.Description = input.Description
		found.District = input.District

		if err := shopRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}
		shop = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update shop", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update shop")
	}

	return shop, nil
}

// ListProducts retrieves all of the caller's products, regardless of stock or
// shop approval state.
func (srv *vendorShopService) ListProducts(ctx context.Context, identity *authz.Identity) ([]*entity.Product, error) {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleVendor)); err != nil {
		return nil, err
	}

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := ownShop(ctx, repoFactory.ShopRepo(), identity)
		if err != nil {
			return err
		}

		found, err := repoFactory.ProductRepo().ListByShop(ctx, shop.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list vendor products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// applyProductInput copies the editable fields onto the product, resolving
// the category link when one is given.
func applyProductInput(ctx context.Context, categoryRepo repository.CategoryRepository, product *entity.Product, input *usecase.ProductInput) error {
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.StockCount = input.StockCount
	product.Images = input.Images
	product.CategoryID = nil

	if input.CategoryID == "" {
		return nil
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid category id")
	}
	if _, err := categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return errors.Wrap(err, "failed to find category")
	}
	product.CategoryID = &categoryID

	return nil
}

// CreateProduct adds a product to the caller's shop.
func (srv *vendorShopService) CreateProduct(ctx context.Context, identity *authz.Identity, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleVendor)); err != nil {
		return nil, err
	}

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := ownShop(ctx, repoFactory.ShopRepo(), identity)
		if err != nil {
			return err
		}

		created := &entity.Product{ShopID: shop.ID}
		if err := applyProductInput(ctx, repoFactory.CategoryRepo(), created, input); err != nil {
			return err
		}

		if err := repoFactory.ProductRepo().Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create product")
		}
		product = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct edits one of the caller's products. A product of another shop
// is reported as not found.
func (srv *vendorShopService) UpdateProduct(ctx context.Context, identity *authz.Identity, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("product_id", productID))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleVendor)); err != nil {
		return nil, err
	}

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		shop, err := ownShop(ctx, repoFactory.ShopRepo(), identity)
		if err != nil {
			return err
		}

		found, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		if found.ShopID != shop.ID {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product of another shop")
		}

		if err := applyProductInput(ctx, repoFactory.CategoryRepo(), found, input); err != nil {
			return err
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes one of the caller's products.
func (srv *vendorShopService) DeleteProduct(ctx context.Context, identity *authz.Identity, productID uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("product_id", productID))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleVendor)); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		shop, err := ownShop(ctx, repoFactory.ShopRepo(), identity)
		if err != nil {
			return err
		}

		found, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		if found.ShopID != shop.ID {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product of another shop")
		}

		if err := productRepo.Delete(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// identityUserID is a nil-safe accessor for logging.
func identityUserID(identity *authz.Identity) uuid.UUID {
	if identity == nil {
		return uuid.Nil
	}

	return identity.UserID
}
