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

// cartRepository implements the domain's CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// ListByCustomer retrieves the customer's cart with products preloaded.
func (repo *cartRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CartItem, error) {
	var itemMs []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// FindForCustomer retrieves one cart item owned by the customer.
func (repo *cartRepository) FindForCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		First(&itemM, "id = ? AND customer_id = ?", id, customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// FindByProduct retrieves the customer's cart item for a product, if any.
func (repo *cartRepository) FindByProduct(ctx context.Context, customerID, productID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		First(&itemM, "customer_id = ? AND product_id = ?", customerID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by product")
	}

	return toCartItemDomain(&itemM), nil
}

// Create persists a new cart item.
func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		CustomerID: item.CustomerID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateQuantity sets the quantity of a cart item.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart quantity")
	}

	return nil
}

// DeleteForCustomer removes one cart item owned by the customer.
func (repo *cartRepository) DeleteForCustomer(ctx context.Context, id, customerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearByCustomer removes every cart item of the customer.
func (repo *cartRepository) ClearByCustomer(ctx context.Context, customerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		ProductID:  data.ProductID,
		Product:    toProductDomain(data.Product),
		Quantity:   data.Quantity,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
