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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVendorShopService_GetShop_NoShop(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewVendorShopService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(nil, repository.ErrShopNotFound)

	_, err := service.GetShop(ctx, identity)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestVendorShopService_UpdateShop_LeavesApprovalAlone(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewVendorShopService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	shop := &entity.VendorShop{
		ID:         uuid.New(),
		VendorID:   identity.UserID,
		Name:       "Old Name",
		IsApproved: true,
	}

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(shop, nil)
	shopRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.VendorShop")).
		RunAndReturn(func(_ context.Context, updated *entity.VendorShop) error {
			assert.Equal(t, "New Name", updated.Name)
			assert.True(t, updated.IsApproved)
			return nil
		})

	updated, err := service.UpdateShop(ctx, identity, &usecase.ShopUpdateInput{
		Name:     "New Name",
		District: "east",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStateApproved, updated.State())
	assert.Equal(t, "east", updated.District)
}

func TestVendorShopService_CreateProduct_Success(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	service := NewVendorShopService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	shopID := uuid.New()
	categoryID := uuid.New()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: shopID}, nil)
	categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID, Name: "Tea"}, nil)
	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = uuid.New()
			return nil
		})

	product, err := service.CreateProduct(ctx, identity, &usecase.ProductInput{
		Name:       "Oolong Tea",
		Price:      12.5,
		StockCount: 10,
		CategoryID: categoryID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, shopID, product.ShopID)
	require.NotNil(t, product.CategoryID)
	assert.Equal(t, categoryID, *product.CategoryID)
}

func TestVendorShopService_CreateProduct_UnknownCategory(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	service := NewVendorShopService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	categoryID := uuid.New()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: uuid.New()}, nil)
	categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := service.CreateProduct(ctx, identity, &usecase.ProductInput{
		Name:       "Oolong Tea",
		CategoryID: categoryID.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestVendorShopService_CreateProduct_BadCategoryID(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().CategoryRepo().Return(mockRepo.NewMockCategoryRepository(t))
	service := NewVendorShopService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: uuid.New()}, nil)

	_, err := service.CreateProduct(ctx, identity, &usecase.ProductInput{
		Name:       "Oolong Tea",
		CategoryID: "not-a-uuid",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorShopService_UpdateProduct_ForeignProductReadsAsNotFound(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewVendorShopService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	productID := uuid.New()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: uuid.New()}, nil)
	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, ShopID: uuid.New()}, nil)

	_, err := service.UpdateProduct(ctx, identity, productID, &usecase.ProductInput{Name: "Renamed"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestVendorShopService_DeleteProduct_Success(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewVendorShopService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	shopID := uuid.New()
	productID := uuid.New()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: shopID}, nil)
	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, ShopID: shopID}, nil)
	productRepo.EXPECT().Delete(ctx, productID).Return(nil)

	assert.NoError(t, service.DeleteProduct(ctx, identity, productID))
}

func TestVendorShopService_NonVendor(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewVendorShopService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.GetShop(context.Background(), customerIdentity())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
