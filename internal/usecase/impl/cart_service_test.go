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

func TestCartService_Add_FreshLine(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Oolong Tea", Price: 12.5, StockCount: 10}

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(product, nil)
	cartRepo.EXPECT().FindByProduct(ctx, identity.UserID, productID).Return(nil, repository.ErrCartItemNotFound)
	cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CartItem")).
		RunAndReturn(func(_ context.Context, item *entity.CartItem) error {
			item.ID = uuid.New()
			return nil
		})

	item, err := service.Add(ctx, identity, &usecase.CartAddInput{ProductID: productID.String(), Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, product, item.Product)
	assert.Equal(t, identity.UserID, item.CustomerID)
}

func TestCartService_Add_MergesExistingLine(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	productID := uuid.New()
	itemID := uuid.New()
	product := &entity.Product{ID: productID, StockCount: 10}

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(product, nil)
	cartRepo.EXPECT().FindByProduct(ctx, identity.UserID, productID).Return(&entity.CartItem{
		ID:         itemID,
		CustomerID: identity.UserID,
		ProductID:  productID,
		Quantity:   4,
	}, nil)
	cartRepo.EXPECT().UpdateQuantity(ctx, itemID, 7).Return(nil)

	item, err := service.Add(ctx, identity, &usecase.CartAddInput{ProductID: productID.String(), Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, itemID, item.ID)
	assert.Equal(t, 7, item.Quantity)
}

func TestCartService_Add_MergedQuantityExceedsStock(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	productID := uuid.New()

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(&entity.Product{ID: productID, StockCount: 5}, nil)
	cartRepo.EXPECT().FindByProduct(ctx, identity.UserID, productID).Return(&entity.CartItem{
		ID:       uuid.New(),
		Quantity: 4,
	}, nil)

	_, err := service.Add(ctx, identity, &usecase.CartAddInput{ProductID: productID.String(), Quantity: 2})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCartService_Add_FreshQuantityExceedsStock(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	productID := uuid.New()

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(&entity.Product{ID: productID, StockCount: 1}, nil)
	cartRepo.EXPECT().FindByProduct(ctx, identity.UserID, productID).Return(nil, repository.ErrCartItemNotFound)

	_, err := service.Add(ctx, identity, &usecase.CartAddInput{ProductID: productID.String(), Quantity: 2})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCartService_Add_HiddenProduct(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(mockRepo.NewMockCartRepository(t))
	factory.EXPECT().ProductRepo().Return(productRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindPublicByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := service.Add(ctx, customerIdentity(), &usecase.CartAddInput{ProductID: productID.String(), Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_Add_InvalidProductID(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.Add(context.Background(), customerIdentity(), &usecase.CartAddInput{ProductID: "not-a-uuid", Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_Add_NonCustomer(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.Add(context.Background(), vendorIdentity(), &usecase.CartAddInput{ProductID: uuid.NewString(), Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCartService_UpdateQuantity_ChecksStock(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	itemID := uuid.New()

	cartRepo.EXPECT().FindForCustomer(ctx, itemID, identity.UserID).Return(&entity.CartItem{
		ID:       itemID,
		Quantity: 2,
		Product:  &entity.Product{StockCount: 3},
	}, nil)

	_, err := service.UpdateQuantity(ctx, identity, itemID, &usecase.CartUpdateInput{Quantity: 4})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	itemID := uuid.New()

	cartRepo.EXPECT().FindForCustomer(ctx, itemID, identity.UserID).Return(&entity.CartItem{
		ID:       itemID,
		Quantity: 2,
		Product:  &entity.Product{StockCount: 9},
	}, nil)
	cartRepo.EXPECT().UpdateQuantity(ctx, itemID, 5).Return(nil)

	item, err := service.UpdateQuantity(ctx, identity, itemID, &usecase.CartUpdateInput{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestCartService_Remove_NotFound(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	itemID := uuid.New()

	cartRepo.EXPECT().DeleteForCustomer(ctx, itemID, identity.UserID).Return(repository.ErrCartItemNotFound)

	err := service.Remove(ctx, identity, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_Clear_EmptyCartSucceeds(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()

	cartRepo.EXPECT().ClearByCustomer(ctx, identity.UserID).Return(nil)

	assert.NoError(t, service.Clear(ctx, identity))
}

func TestCartService_List_SumsSubtotals(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	service := NewCartService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()

	cartRepo.EXPECT().ListByCustomer(ctx, identity.UserID).Return([]*entity.CartItem{
		{Quantity: 2, Product: &entity.Product{Price: 10}},
		{Quantity: 1, Product: &entity.Product{Price: 3.5}},
	}, nil)

	output, err := service.List(ctx, identity)
	require.NoError(t, err)
	assert.Len(t, output.Items, 2)
	assert.InDelta(t, 23.5, output.Total, 0.001)
}
