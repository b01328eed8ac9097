package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the public CatalogUsecase interface. It reads
// through plain repositories rather than the transaction manager: storefront
// reads are single statements and may be served by a replica.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves the storefront product listing. Only products of
// approved shops appear; the repository enforces the visibility join.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ProductListInput) ([]*entity.Product, error) {
	srv.log(ctx).Debug("Listing public products",
		slog.String("category_id", input.CategoryID), slog.String("search", input.Search))

	filter := repository.ProductListFilter{Search: input.Search}
	if input.CategoryID != "" {
		categoryID, err := uuid.Parse(input.CategoryID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid category id")
		}
		filter.CategoryID = &categoryID
	}

	products, err := srv.productRepo.ListPublic(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list public products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves one publicly visible product. Products of pending or
// rejected shops are reported as not found.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	srv.log(ctx).Debug("Getting public product", slog.Any("product_id", productID))

	product, err := srv.productRepo.FindPublicByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not visible")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// ListCategories retrieves the storefront category listing: active categories
// with at least one in-stock product of an approved shop, with that count.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	srv.log(ctx).Debug("Listing public categories")

	categories, err := srv.categoryRepo.ListActiveWithCounts(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list public categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
