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

func TestAdminService_ListUsers_RegionalScopedToDistrict(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	vendorRole := entity.RoleVendor

	userRepo.EXPECT().
		List(ctx, repository.UserListFilter{District: "west", Role: &vendorRole}).
		Return([]*entity.User{{ID: uuid.New(), District: "west"}}, nil)

	users, err := service.ListUsers(ctx, regionalIdentity("west"), &usecase.AdminUserListInput{Role: "vendor"})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAdminService_ListUsers_PlatformAdminUnscoped(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()

	userRepo.EXPECT().List(ctx, repository.UserListFilter{}).Return(nil, nil)

	_, err := service.ListUsers(ctx, adminIdentity(), &usecase.AdminUserListInput{})
	require.NoError(t, err)
}

func TestAdminService_ListUsers_UnknownRoleFilter(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.ListUsers(context.Background(), adminIdentity(), &usecase.AdminUserListInput{Role: "superuser"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_ListShops_StateFilter(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	pending := entity.ShopStatePending

	shopRepo.EXPECT().
		List(ctx, repository.ShopListFilter{District: "west", State: &pending}).
		Return(nil, nil)

	_, err := service.ListShops(ctx, regionalIdentity("west"), &usecase.AdminShopListInput{State: "pending"})
	require.NoError(t, err)
}

func TestAdminService_ListShops_UnknownStateFilter(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.ListShops(context.Background(), adminIdentity(), &usecase.AdminShopListInput{State: "limbo"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_ListUsers_NonAdmin(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.ListUsers(context.Background(), vendorIdentity(), &usecase.AdminUserListInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_CreateCategory_RegionalForbidden(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.CreateCategory(context.Background(), regionalIdentity("west"), &usecase.CategoryInput{Name: "Tea"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_CreateCategory_DefaultsToActive(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()

	categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		RunAndReturn(func(_ context.Context, category *entity.Category) error {
			category.ID = uuid.New()
			return nil
		})

	category, err := service.CreateCategory(ctx, adminIdentity(), &usecase.CategoryInput{Name: "Tea"})
	require.NoError(t, err)
	assert.True(t, category.IsActive)
}

func TestAdminService_UpdateCategory_Deactivate(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()
	inactive := false

	categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{
		ID:       categoryID,
		Name:     "Tea",
		IsActive: true,
	}, nil)
	categoryRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := service.UpdateCategory(ctx, adminIdentity(), categoryID, &usecase.CategoryInput{
		Name:     "Loose Leaf Tea",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Loose Leaf Tea", category.Name)
	assert.False(t, category.IsActive)
}

func TestAdminService_UpdateCategory_NotFound(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()

	categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := service.UpdateCategory(ctx, adminIdentity(), categoryID, &usecase.CategoryInput{Name: "Tea"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestAdminService_ListCategories_IncludesInactive(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	service := NewAdminService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()

	categoryRepo.EXPECT().ListAll(ctx).Return([]*entity.Category{
		{Name: "Tea", IsActive: true},
		{Name: "Retired", IsActive: false},
	}, nil)

	categories, err := service.ListCategories(ctx, regionalIdentity("west"))
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
