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

func testShippingAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		Line1:      "12 Harbor Road",
		City:       "Kaohsiung",
		District:   "south",
		PostalCode: "80145",
	}
}

func TestCustomerOrderService_Checkout_SnapshotsCartLines(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewCustomerOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	teaID, potID := uuid.New(), uuid.New()
	teaShop, potShop := uuid.New(), uuid.New()

	cartRepo.EXPECT().ListByCustomer(ctx, identity.UserID).Return([]*entity.CartItem{
		{ProductID: teaID, Quantity: 2, Product: &entity.Product{ID: teaID, ShopID: teaShop, Name: "Oolong Tea", Price: 12.5}},
		{ProductID: potID, Quantity: 1, Product: &entity.Product{ID: potID, ShopID: potShop, Name: "Clay Teapot", Price: 40}},
	}, nil)
	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = uuid.New()
			require.Len(t, order.Items, 2)
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			assert.Equal(t, "south", order.District)
			assert.Equal(t, teaShop, order.Items[0].ShopID)
			assert.Equal(t, "Oolong Tea", order.Items[0].ProductName)
			assert.InDelta(t, 12.5, order.Items[0].Price, 0.001)
			return nil
		})
	productRepo.EXPECT().DecrementStock(ctx, teaID, 2).Return(nil)
	productRepo.EXPECT().DecrementStock(ctx, potID, 1).Return(nil)
	cartRepo.EXPECT().ClearByCustomer(ctx, identity.UserID).Return(nil)

	order, err := service.Checkout(ctx, identity, &usecase.CheckoutInput{ShippingAddress: testShippingAddress()})
	require.NoError(t, err)
	assert.InDelta(t, 65, order.Total(), 0.001)
	assert.Contains(t, order.ShippingAddressRaw, "Kaohsiung")
}

func TestCustomerOrderService_Checkout_EmptyCart(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(mockRepo.NewMockProductRepository(t))
	service := NewCustomerOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()

	cartRepo.EXPECT().ListByCustomer(ctx, identity.UserID).Return(nil, nil)

	_, err := service.Checkout(ctx, identity, &usecase.CheckoutInput{ShippingAddress: testShippingAddress()})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCustomerOrderService_Checkout_StockChangedSinceCart(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewCustomerOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	productID := uuid.New()

	cartRepo.EXPECT().ListByCustomer(ctx, identity.UserID).Return([]*entity.CartItem{
		{ProductID: productID, Quantity: 5, Product: &entity.Product{ID: productID, Name: "Oolong Tea"}},
	}, nil)
	orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	productRepo.EXPECT().DecrementStock(ctx, productID, 5).Return(repository.ErrInsufficientStock)

	_, err := service.Checkout(ctx, identity, &usecase.CheckoutInput{ShippingAddress: testShippingAddress()})
	assert.ErrorContains(t, err, "Oolong Tea")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
}

func TestCustomerOrderService_Get_DecodesAddress(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewCustomerOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	orderID := uuid.New()
	addr := testShippingAddress()
	raw, err := addr.Serialize()
	require.NoError(t, err)

	orderRepo.EXPECT().FindByIDForCustomer(ctx, orderID, identity.UserID).Return(&entity.Order{
		ID:                 orderID,
		CustomerID:         identity.UserID,
		ShippingAddressRaw: raw,
	}, nil)

	detail, err := service.Get(ctx, identity, orderID)
	require.NoError(t, err)
	assert.Equal(t, "Kaohsiung", detail.ShippingAddress.City)
}

func TestCustomerOrderService_Get_SomeoneElsesOrder(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewCustomerOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	orderID := uuid.New()

	orderRepo.EXPECT().FindByIDForCustomer(ctx, orderID, identity.UserID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.Get(ctx, identity, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCustomerOrderService_Get_MalformedStoredAddress(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewCustomerOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	orderID := uuid.New()

	orderRepo.EXPECT().FindByIDForCustomer(ctx, orderID, identity.UserID).Return(&entity.Order{
		ID:                 orderID,
		ShippingAddressRaw: "{not json",
	}, nil)

	_, err := service.Get(ctx, identity, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressParseFailed)
}
