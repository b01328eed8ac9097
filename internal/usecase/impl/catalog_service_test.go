package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceUnderTest(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return service, productRepo, categoryRepo
}

func TestCatalogService_ListProducts_CategoryFilter(t *testing.T) {
	service, productRepo, _ := newCatalogServiceUnderTest(t)

	ctx := context.Background()
	categoryID := uuid.New()

	productRepo.EXPECT().
		ListPublic(ctx, repository.ProductListFilter{CategoryID: &categoryID, Search: "tea"}).
		Return([]*entity.Product{{Name: "Oolong Tea"}}, nil)

	products, err := service.ListProducts(ctx, &usecase.ProductListInput{
		CategoryID: categoryID.String(),
		Search:     "tea",
	})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_ListProducts_BadCategoryID(t *testing.T) {
	service, _, _ := newCatalogServiceUnderTest(t)

	_, err := service.ListProducts(context.Background(), &usecase.ProductListInput{CategoryID: "not-a-uuid"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_GetProduct_HiddenReadsAsNotFound(t *testing.T) {
	service, productRepo, _ := newCatalogServiceUnderTest(t)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := service.GetProduct(ctx, productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListCategories_ActiveWithCounts(t *testing.T) {
	service, _, categoryRepo := newCatalogServiceUnderTest(t)

	ctx := context.Background()

	categoryRepo.EXPECT().ListActiveWithCounts(ctx).Return([]*entity.Category{
		{Name: "Tea", IsActive: true, ProductCount: 4},
	}, nil)

	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 4, categories[0].ProductCount)
}
