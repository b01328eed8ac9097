package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wishlistRepository implements the domain's WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// ListByCustomer retrieves the customer's wishlist with products.
func (repo *wishlistRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemMs []*model.WishlistItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items")
	}

	items := make([]*entity.WishlistItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toWishlistItemDomain(itemM))
	}

	return items, nil
}

// Create persists a new wishlist item. The unique (customer, product) index
// reports duplicates as a domain error.
func (repo *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistItemModel{
		CustomerID: item.CustomerID,
		ProductID:  item.ProductID,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWishlistEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// DeleteForCustomer removes one wishlist item owned by the customer.
func (repo *wishlistRepository) DeleteForCustomer(ctx context.Context, id, customerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

// toWishlistItemDomain converts a GORM WishlistItemModel to a domain entity.
func toWishlistItemDomain(data *model.WishlistItemModel) *entity.WishlistItem {
	if data == nil {
		return nil
	}

	return &entity.WishlistItem{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		ProductID:  data.ProductID,
		Product:    toProductDomain(data.Product),
		CreatedAt:  data.CreatedAt,
	}
}
