package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Get_AnyAuthenticatedRole(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	service := NewProfileService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := vendorIdentity()

	userRepo.EXPECT().FindByID(ctx, identity.UserID).Return(&entity.User{
		ID:    identity.UserID,
		Email: identity.Email,
		Role:  entity.RoleVendor,
	}, nil)

	user, err := service.Get(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, user.ID)
}

func TestProfileService_Get_Unauthenticated(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewProfileService(newTestTxManager(t, factory), newDiscardLogger())

	_, err := service.Get(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProfileService_Update_NilFieldsLeftUntouched(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	service := NewProfileService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()
	first := "Nina"

	userRepo.EXPECT().FindByID(ctx, identity.UserID).Return(&entity.User{
		ID:        identity.UserID,
		FirstName: "Old",
		LastName:  "Chu",
	}, nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "Nina", user.FirstName)
			assert.Equal(t, "Chu", user.LastName)
			return nil
		})

	user, err := service.Update(ctx, identity, &usecase.ProfileUpdateInput{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Nina", user.FirstName)
	assert.Equal(t, "Chu", user.LastName)
}

func TestProfileService_Update_UserGone(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	service := NewProfileService(newTestTxManager(t, factory), newDiscardLogger())

	ctx := context.Background()
	identity := customerIdentity()

	userRepo.EXPECT().FindByID(ctx, identity.UserID).Return(nil, repository.ErrUserNotFound)

	_, err := service.Update(ctx, identity, &usecase.ProfileUpdateInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
