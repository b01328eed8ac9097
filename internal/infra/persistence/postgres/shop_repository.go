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

// shopRepository implements the domain's ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorShop, error) {
	var shopM model.VendorShopModel
	if err := repo.db.WithContext(ctx).First(&shopM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindByVendor retrieves the one shop owned by the given user.
func (repo *shopRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) (*entity.VendorShop, error) {
	var shopM model.VendorShopModel
	if err := repo.db.WithContext(ctx).First(&shopM, "vendor_id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by vendor")
	}

	return toShopDomain(&shopM), nil
}

// List retrieves shops matching the filter, newest first. The state filter
// translates the derived state back to the flag pair.
func (repo *shopRepository) List(ctx context.Context, filter repository.ShopListFilter) ([]*entity.VendorShop, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.VendorShopModel{}).
		Order("created_at DESC")

	if filter.District != "" {
		query = query.Where("district = ?", filter.District)
	}
	if filter.State != nil {
		switch *filter.State {
		case entity.ShopStateApproved:
			query = query.Where("is_approved AND NOT is_rejected")
		case entity.ShopStateRejected:
			query = query.Where("is_rejected")
		case entity.ShopStatePending:
			query = query.Where("NOT is_approved AND NOT is_rejected")
		}
	}

	var shopMs []*model.VendorShopModel
	if err := query.Find(&shopMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.VendorShop, 0, len(shopMs))
	for _, shopM := range shopMs {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.VendorShop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		// The unique index on vendor_id backs the one-shop-per-vendor rule.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("vendor already has a shop")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owning vendor does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// Update modifies an existing shop, including its approval flags.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.VendorShop) error {
	shopM := fromShopDomain(shop)

	err := repo.db.WithContext(ctx).
		Model(&model.VendorShopModel{}).
		Where("id = ?", shop.ID).
		Select("name", "description", "district", "is_approved", "is_rejected", "rejected_at", "rejected_by").
		Updates(shopM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	return nil
}

// DeleteByVendor removes the shop owned by the given user, if any.
func (repo *shopRepository) DeleteByVendor(ctx context.Context, vendorID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Delete(&model.VendorShopModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shop")
	}

	return nil
}

// --- Mapper Functions ---

// toShopDomain converts a GORM VendorShopModel to a domain VendorShop entity.
func toShopDomain(data *model.VendorShopModel) *entity.VendorShop {
	if data == nil {
		return nil
	}

	return &entity.VendorShop{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Name:        data.Name,
		Description: data.Description,
		District:    data.District,
		IsApproved:  data.IsApproved,
		IsRejected:  data.IsRejected,
		RejectedAt:  data.RejectedAt,
		RejectedBy:  data.RejectedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromShopDomain converts a domain VendorShop entity to a GORM VendorShopModel.
func fromShopDomain(data *entity.VendorShop) *model.VendorShopModel {
	if data == nil {
		return nil
	}

	return &model.VendorShopModel{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Name:        data.Name,
		Description: data.Description,
		District:    data.District,
		IsApproved:  data.IsApproved,
		IsRejected:  data.IsRejected,
		RejectedAt:  data.RejectedAt,
		RejectedBy:  data.RejectedBy,
	}
}
