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

func TestVendorOrderService_List_ProjectsOwnItemsOnly(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewVendorOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	shopID := uuid.New()
	otherShopID := uuid.New()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: shopID, VendorID: identity.UserID}, nil)
	orderRepo.EXPECT().
		ListContainingShop(ctx, shopID, repository.OrderListFilter{}).
		Return([]*entity.Order{
			{
				ID:     uuid.New(),
				Status: entity.OrderStatusPending,
				Items: []*entity.OrderItem{
					{ShopID: shopID, ProductName: "Oolong Tea", Price: 12.5, Quantity: 2},
					{ShopID: otherShopID, ProductName: "Incense", Price: 99, Quantity: 1},
				},
			},
		}, nil)

	views, err := service.List(ctx, identity, &usecase.VendorOrderListInput{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 1)
	assert.Equal(t, "Oolong Tea", views[0].Items[0].ProductName)
	assert.InDelta(t, 25, views[0].VendorTotal, 0.001)
}

func TestVendorOrderService_List_StatusFilter(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewVendorOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	shopID := uuid.New()
	shipped := entity.OrderStatusShipped

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: shopID}, nil)
	orderRepo.EXPECT().
		ListContainingShop(ctx, shopID, repository.OrderListFilter{Status: &shipped}).
		Return(nil, nil)

	views, err := service.List(ctx, identity, &usecase.VendorOrderListInput{Status: "shipped"})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestVendorOrderService_List_UnknownStatusFilter(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewVendorOrderService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.List(context.Background(), vendorIdentity(), &usecase.VendorOrderListInput{Status: "teleported"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestVendorOrderService_List_NoShop(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewVendorOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(nil, repository.ErrShopNotFound)

	_, err := service.List(ctx, identity, &usecase.VendorOrderListInput{})
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestVendorOrderService_UpdateStatus_Success(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewVendorOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	shopID := uuid.New()
	orderID := uuid.New()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: shopID}, nil)
	orderRepo.EXPECT().FindContainingShop(ctx, orderID, shopID).Return(&entity.Order{
		ID:     orderID,
		Status: entity.OrderStatusPending,
		Items:  []*entity.OrderItem{{ShopID: shopID, Price: 10, Quantity: 1}},
	}, nil)
	orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusShipped).Return(nil)

	view, err := service.UpdateStatus(ctx, identity, orderID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, view.Status)
	assert.Equal(t, orderID, view.OrderID)
}

func TestVendorOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewVendorOrderService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.UpdateStatus(context.Background(), vendorIdentity(), uuid.New(), "misplaced")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestVendorOrderService_UpdateStatus_ForeignOrderReadsAsNotFound(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	service := NewVendorOrderService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()
	shopID := uuid.New()
	orderID := uuid.New()

	shopRepo.EXPECT().FindByVendor(ctx, identity.UserID).Return(&entity.VendorShop{ID: shopID}, nil)
	orderRepo.EXPECT().FindContainingShop(ctx, orderID, shopID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.UpdateStatus(ctx, identity, orderID, "processing")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestVendorOrderService_NonVendor(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewVendorOrderService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.List(context.Background(), customerIdentity(), &usecase.VendorOrderListInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = service.UpdateStatus(context.Background(), nil, uuid.New(), "shipped")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

