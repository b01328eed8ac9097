package postgres

import (
	"context"
	"encoding/json"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// visibleShopCondition restricts a products query to approved, non-rejected
// shops. Every public read goes through it.
const visibleShopCondition = "shop_id IN (SELECT id FROM vendor_shops WHERE is_approved AND NOT is_rejected)"

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a product regardless of its shop's approval state.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindPublicByID retrieves a product only if its shop is publicly visible.
// Storefront reads may be served by a read replica.
func (repo *productRepository) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where(visibleShopCondition).
		First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find public product")
	}

	return toProductDomain(&productM), nil
}

// ListPublic retrieves products of approved, non-rejected shops.
func (repo *productRepository) ListPublic(ctx context.Context, filter repository.ProductListFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ProductModel{}).
		Where(visibleShopCondition).
		Order("created_at DESC")

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var productMs []*model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list public products")
	}

	return toProductDomains(productMs), nil
}

// ListByShop retrieves all products of one shop, newest first.
func (repo *productRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by shop")
	}

	return toProductDomains(productMs), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("owning shop does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "category", "category_id", "stock_count", "images").
		Updates(productM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// DecrementStock atomically reduces stock, guarded by the remaining count in
// the same statement so concurrent checkouts cannot oversell.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock_count >= ?", id, quantity).
		UpdateColumn("stock_count", gorm.Expr("stock_count - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	var images []string
	if len(data.Images) > 0 {
		// A malformed images column degrades to an empty slice; it is
		// cosmetic data and must not fail the read.
		_ = json.Unmarshal(data.Images, &images)
	}

	return &entity.Product{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		CategoryID:  data.CategoryID,
		StockCount:  data.StockCount,
		Images:      images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	if data == nil {
		return nil, nil
	}

	images, err := json.Marshal(data.Images)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode product images")
	}

	return &model.ProductModel{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		CategoryID:  data.CategoryID,
		StockCount:  data.StockCount,
		Images:      images,
	}, nil
}
