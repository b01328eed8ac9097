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

func TestWishlistService_Add_Success(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WishlistRepo().Return(wishlistRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewWishlistService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Clay Teapot"}

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(product, nil)
	wishlistRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WishlistItem")).
		RunAndReturn(func(_ context.Context, item *entity.WishlistItem) error {
			item.ID = uuid.New()
			return nil
		})

	item, err := service.Add(ctx, identity, &usecase.WishlistAddInput{ProductID: productID.String()})
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, item.CustomerID)
	assert.Equal(t, product, item.Product)
}

func TestWishlistService_Add_Duplicate(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WishlistRepo().Return(wishlistRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewWishlistService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	wishlistRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.WishlistItem")).Return(repository.ErrDuplicateWishlistEntry)

	_, err := service.Add(ctx, customerIdentity(), &usecase.WishlistAddInput{ProductID: productID.String()})
	assert.ErrorIs(t, err, domainerrors.ErrWishlistDuplicate)
}

func TestWishlistService_Add_HiddenProduct(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewWishlistService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := service.Add(ctx, customerIdentity(), &usecase.WishlistAddInput{ProductID: productID.String()})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_Remove_NotFound(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WishlistRepo().Return(wishlistRepo)
	service := NewWishlistService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	itemID := uuid.New()

	wishlistRepo.EXPECT().DeleteForCustomer(ctx, itemID, identity.UserID).Return(repository.ErrWishlistItemNotFound)

	err := service.Remove(ctx, identity, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistItemNotFound)
}

func TestWishlistService_List_NonCustomer(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewWishlistService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.List(context.Background(), adminIdentity())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
