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
	"gorm.io/plugin/dbresolver"
)

// categoryRepository implements the domain's CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).First(&categoryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// ListActiveWithCounts retrieves active categories with the derived product
// count: in-stock products of approved shops. Empty categories are omitted.
func (repo *categoryRepository) ListActiveWithCounts(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.CategoryModel{}).
		Select("categories.*, COUNT(products.id) AS product_count").
		Joins("JOIN products ON products.category_id = categories.id AND products.stock_count > 0").
		Where("categories.is_active").
		Where("products." + visibleShopCondition).
		Group("categories.id").
		Order("categories.name ASC").
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories with counts")
	}

	return toCategoryDomains(categoryMs), nil
}

// ListAll retrieves every category for admin surfaces.
func (repo *categoryRepository) ListAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomains(categoryMs), nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("category name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Update modifies an existing category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Select("name", "description", "is_active").
		Updates(categoryM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("category name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		IsActive:     data.IsActive,
		ProductCount: data.ProductCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCategoryDomains(data []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for _, categoryM := range data {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IsActive:    data.IsActive,
	}
}
