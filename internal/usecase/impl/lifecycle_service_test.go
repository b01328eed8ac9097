package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLifecycleService_ApproveShop_PendingShop(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	shopID := uuid.New()
	pending := &entity.VendorShop{ID: shopID, VendorID: uuid.New(), District: "north"}

	shopRepo.EXPECT().FindByID(ctx, shopID).Return(pending, nil)
	shopRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.VendorShop")).Return(nil)

	shop, err := service.ApproveShop(ctx, adminIdentity(), shopID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStateApproved, shop.State())
}

func TestLifecycleService_ApproveShop_RejectedShopReapproved(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	shopID := uuid.New()
	rejectedBy := uuid.New()
	rejected := &entity.VendorShop{ID: shopID, IsRejected: true, RejectedBy: &rejectedBy}

	shopRepo.EXPECT().FindByID(ctx, shopID).Return(rejected, nil)
	shopRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.VendorShop")).Return(nil)

	shop, err := service.ApproveShop(ctx, adminIdentity(), shopID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStateApproved, shop.State())
	assert.Nil(t, shop.RejectedBy)
	assert.Nil(t, shop.RejectedAt)
}

func TestLifecycleService_ApproveShop_AlreadyApproved(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	shopID := uuid.New()
	approved := &entity.VendorShop{ID: shopID, IsApproved: true}

	shopRepo.EXPECT().FindByID(ctx, shopID).Return(approved, nil)

	_, err := service.ApproveShop(ctx, adminIdentity(), shopID)
	assert.ErrorIs(t, err, domainerrors.ErrShopAlreadyApproved)
}

func TestLifecycleService_RejectShop_StampsActor(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	shopID := uuid.New()
	admin := adminIdentity()
	approved := &entity.VendorShop{ID: shopID, IsApproved: true}

	shopRepo.EXPECT().FindByID(ctx, shopID).Return(approved, nil)
	shopRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.VendorShop")).Return(nil)

	shop, err := service.RejectShop(ctx, admin, shopID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStateRejected, shop.State())
	require.NotNil(t, shop.RejectedBy)
	assert.Equal(t, admin.UserID, *shop.RejectedBy)
	assert.NotNil(t, shop.RejectedAt)
	assert.False(t, shop.IsApproved)
}

func TestLifecycleService_RejectShop_AlreadyRejected(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	shopID := uuid.New()
	rejected := &entity.VendorShop{ID: shopID, IsRejected: true}

	shopRepo.EXPECT().FindByID(ctx, shopID).Return(rejected, nil)

	_, err := service.RejectShop(ctx, adminIdentity(), shopID)
	assert.ErrorIs(t, err, domainerrors.ErrShopAlreadyRejected)
}

func TestLifecycleService_ApproveShop_NonAdminForbidden(t *testing.T) {
	service := NewLifecycleService(mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	_, err := service.ApproveShop(context.Background(), customerIdentity(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestLifecycleService_ApproveShop_Unauthenticated(t *testing.T) {
	service := NewLifecycleService(mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	_, err := service.ApproveShop(context.Background(), nil, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestLifecycleService_ApproveShop_RegionalAdminWithoutDistrict(t *testing.T) {
	service := NewLifecycleService(mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	_, err := service.ApproveShop(context.Background(), regionalIdentity(""), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNoDistrictAssigned)
}

func TestLifecycleService_ApproveShop_OutOfDistrictReadsAsNotFound(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	shopID := uuid.New()
	southern := &entity.VendorShop{ID: shopID, District: "south"}

	shopRepo.EXPECT().FindByID(ctx, shopID).Return(southern, nil)

	_, err := service.ApproveShop(ctx, regionalIdentity("north"), shopID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestLifecycleService_ChangeRole_SelfChangeBlocked(t *testing.T) {
	service := NewLifecycleService(mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	admin := adminIdentity()
	_, err := service.ChangeRole(context.Background(), admin, admin.UserID, "customer")
	assert.ErrorIs(t, err, domainerrors.ErrSelfRoleChange)
}

func TestLifecycleService_ChangeRole_UnknownRole(t *testing.T) {
	service := NewLifecycleService(mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	_, err := service.ChangeRole(context.Background(), adminIdentity(), uuid.New(), "superuser")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLifecycleService_ChangeRole_PromotionToVendorCreatesShop(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	targetID := uuid.New()
	target := &entity.User{ID: targetID, Role: entity.RoleCustomer, District: "north"}

	userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	shopRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VendorShop")).
		RunAndReturn(func(_ context.Context, shop *entity.VendorShop) error {
			assert.Equal(t, targetID, shop.VendorID)
			assert.Equal(t, "north", shop.District)
			assert.Equal(t, entity.ShopStatePending, shop.State())
			return nil
		})

	user, err := service.ChangeRole(ctx, adminIdentity(), targetID, "vendor")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, user.Role)
	require.NotNil(t, user.Shop)
}

func TestLifecycleService_ChangeRole_DemotionFromVendorDeletesShop(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	targetID := uuid.New()
	target := &entity.User{
		ID:   targetID,
		Role: entity.RoleVendor,
		Shop: &entity.VendorShop{ID: uuid.New(), VendorID: targetID},
	}

	userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	shopRepo.EXPECT().DeleteByVendor(ctx, targetID).Return(nil)

	user, err := service.ChangeRole(ctx, adminIdentity(), targetID, "customer")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Nil(t, user.Shop)
}

func TestLifecycleService_ChangeRole_VendorToVendorKeepsShop(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().ShopRepo().Return(mockRepo.NewMockShopRepository(t))
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	targetID := uuid.New()
	shop := &entity.VendorShop{ID: uuid.New(), VendorID: targetID}
	target := &entity.User{ID: targetID, Role: entity.RoleVendor, Shop: shop}

	userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := service.ChangeRole(ctx, adminIdentity(), targetID, "vendor")
	require.NoError(t, err)
	assert.Same(t, shop, user.Shop)
}

func TestLifecycleService_ChangeRole_RegionalAdminOutOfDistrictTarget(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().ShopRepo().Return(mockRepo.NewMockShopRepository(t))
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	targetID := uuid.New()
	target := &entity.User{ID: targetID, Role: entity.RoleCustomer, District: "south"}

	userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)

	_, err := service.ChangeRole(ctx, regionalIdentity("north"), targetID, "vendor")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLifecycleService_ChangeRole_TargetNotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().ShopRepo().Return(mockRepo.NewMockShopRepository(t))
	service := NewLifecycleService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	targetID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)

	_, err := service.ChangeRole(ctx, adminIdentity(), targetID, "admin")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
