package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	domainservice "bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceUnderTest(t *testing.T, factory repository.RepositoryFactory, maxSessions int) (usecase.AuthUsecase, *mockSvc.MockTokenService, *mockSvc.MockPasswordHasher) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	service := NewAuthService(newTestTxManager(t, factory), tokenSvc, hasher, newTestConfig(maxSessions), newDiscardLogger())

	return service, tokenSvc, hasher
}

func TestAuthService_RegisterCustomer_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, _, hasher := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()

	hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	hasher.EXPECT().Hash("Str0ngPass!").Return("hashed", nil)
	userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()
			return nil
		})
	authRepo.EXPECT().
		CreateCredential(ctx, mock.AnythingOfType("*entity.Credential")).
		RunAndReturn(func(_ context.Context, cred *entity.Credential) error {
			assert.Equal(t, "hashed", cred.PasswordHash)
			return nil
		})

	output, err := service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Email:     "  New@Example.com ",
		Password:  "Str0ngPass!",
		FirstName: "Nina",
		LastName:  "Chu",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Nil(t, output.User.Shop)
}

func TestAuthService_RegisterVendor_CreatesPendingShop(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	service, _, hasher := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()

	hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	hasher.EXPECT().Hash("Str0ngPass!").Return("hashed", nil)
	userRepo.EXPECT().FindByEmail(ctx, "stall@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()
			return nil
		})
	authRepo.EXPECT().CreateCredential(ctx, mock.AnythingOfType("*entity.Credential")).Return(nil)
	shopRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VendorShop")).
		RunAndReturn(func(_ context.Context, shop *entity.VendorShop) error {
			assert.Equal(t, "Night Market Stall", shop.Name)
			assert.Equal(t, entity.ShopStatePending, shop.State())
			return nil
		})

	output, err := service.RegisterVendor(ctx, &usecase.RegisterVendorInput{
		Email:     "stall@example.com",
		Password:  "Str0ngPass!",
		FirstName: "Mei",
		LastName:  "Lin",
		ShopName:  "Night Market Stall",
		District:  "north",
	})
	require.NoError(t, err)
	require.NotNil(t, output.User.Shop)
	assert.Equal(t, output.User.ID, output.User.Shop.VendorID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(mockRepo.NewMockAuthRepository(t))
	service, _, hasher := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()

	hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	hasher.EXPECT().Hash("Str0ngPass!").Return("hashed", nil)
	userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Email:    "taken@example.com",
		Password: "Str0ngPass!",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, _, hasher := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	_, unknownErr := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	userRepo.EXPECT().FindByEmail(ctx, "real@example.com").Return(&entity.User{ID: userID, Email: "real@example.com"}, nil)
	authRepo.EXPECT().FindCredentialByUser(ctx, userID).Return(&entity.Credential{UserID: userID, PasswordHash: "hash"}, nil)
	hasher.EXPECT().Check("wrong", "hash").Return(false)
	_, wrongErr := service.Login(ctx, &usecase.LoginInput{Email: "real@example.com", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_StoresHashedRefreshToken(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, tokenSvc, hasher := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "real@example.com", Role: entity.RoleCustomer}

	userRepo.EXPECT().FindByEmail(ctx, "real@example.com").Return(user, nil)
	authRepo.EXPECT().FindCredentialByUser(ctx, userID).Return(&entity.Credential{UserID: userID, PasswordHash: "hash"}, nil)
	hasher.EXPECT().Check("right", "hash").Return(true)
	tokenSvc.EXPECT().GenerateTokens(userID, "real@example.com", "customer", "").Return("access", "refresh", nil)
	tokenSvc.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	authRepo.EXPECT().CountRefreshTokensByUser(ctx, userID).Return(0, nil)
	authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(_ context.Context, token *entity.RefreshToken) error {
			assert.NotEqual(t, "refresh", token.TokenHash)
			assert.Len(t, token.TokenHash, 64)
			return nil
		})

	output, err := service.Login(ctx, &usecase.LoginInput{Email: "real@example.com", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestAuthService_Login_SessionCapEvictsOldest(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, tokenSvc, hasher := newAuthServiceUnderTest(t, factory, 3)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "busy@example.com", Role: entity.RoleCustomer}

	userRepo.EXPECT().FindByEmail(ctx, "busy@example.com").Return(user, nil)
	authRepo.EXPECT().FindCredentialByUser(ctx, userID).Return(&entity.Credential{UserID: userID, PasswordHash: "hash"}, nil)
	hasher.EXPECT().Check("right", "hash").Return(true)
	tokenSvc.EXPECT().GenerateTokens(userID, "busy@example.com", "customer", "").Return("access", "refresh", nil)
	tokenSvc.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	authRepo.EXPECT().CountRefreshTokensByUser(ctx, userID).Return(3, nil)
	authRepo.EXPECT().DeleteOldestRefreshToken(ctx, userID).Return(nil)
	authRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "busy@example.com", Password: "right"})
	require.NoError(t, err)
}

func TestAuthService_Refresh_RotatesTokenWithCurrentRole(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, tokenSvc, _ := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()
	userID := uuid.New()
	presentedHash := hashToken("old-refresh")
	// The stored record says customer, the user record says vendor. The new
	// token pair must carry the current role.
	user := &entity.User{ID: userID, Email: "real@example.com", Role: entity.RoleVendor, District: "north"}

	tokenSvc.EXPECT().ValidateRefreshToken("old-refresh").Return(&domainservice.Claims{UserID: userID}, nil)
	authRepo.EXPECT().FindRefreshTokenByHash(ctx, presentedHash).Return(&entity.RefreshToken{
		UserID:    userID,
		TokenHash: presentedHash,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	authRepo.EXPECT().DeleteRefreshTokenByHash(ctx, presentedHash).Return(nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	tokenSvc.EXPECT().GenerateTokens(userID, "real@example.com", "vendor", "north").Return("new-access", "new-refresh", nil)
	tokenSvc.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	authRepo.EXPECT().CountRefreshTokensByUser(ctx, userID).Return(1, nil)
	authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(_ context.Context, token *entity.RefreshToken) error {
			assert.Equal(t, hashToken("new-refresh"), token.TokenHash)
			return nil
		})

	output, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, tokenSvc, _ := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateRefreshToken("stale").Return(&domainservice.Claims{UserID: userID}, nil)
	authRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("stale")).Return(&entity.RefreshToken{
		UserID:    userID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	_, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_UnknownSession(t *testing.T) {
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, tokenSvc, _ := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()

	tokenSvc.EXPECT().ValidateRefreshToken("revoked").Return(&domainservice.Claims{UserID: uuid.New()}, nil)
	authRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("revoked")).Return(nil, repository.ErrTokenNotFound)

	_, err := service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "revoked"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, _, _ := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()

	authRepo.EXPECT().DeleteRefreshTokenByHash(ctx, hashToken("gone")).Return(repository.ErrTokenNotFound)

	assert.NoError(t, service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone"}))
}

func TestAuthService_RequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(mockRepo.NewMockAuthRepository(t))
	service, _, _ := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	assert.NoError(t, service.RequestPasswordReset(ctx, &usecase.PasswordResetRequestInput{Email: "ghost@example.com"}))
}

func TestAuthService_RequestPasswordReset_StoresHashedToken(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, _, _ := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByEmail(ctx, "real@example.com").Return(&entity.User{ID: userID}, nil)
	authRepo.EXPECT().
		CreatePasswordResetToken(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
		RunAndReturn(func(_ context.Context, token *entity.PasswordResetToken) error {
			assert.Equal(t, userID, token.UserID)
			assert.Len(t, token.TokenHash, 64)
			return nil
		})

	require.NoError(t, service.RequestPasswordReset(ctx, &usecase.PasswordResetRequestInput{Email: "real@example.com"}))
}

func TestAuthService_ConfirmPasswordReset_RevokesSessions(t *testing.T) {
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, _, hasher := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()

	hasher.EXPECT().ValidatePasswordStrength("N3wPass!word").Return(nil)
	hasher.EXPECT().Hash("N3wPass!word").Return("new-hash", nil)
	authRepo.EXPECT().FindPasswordResetTokenByHash(ctx, hashToken("raw-token")).Return(&entity.PasswordResetToken{
		ID:        tokenID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	authRepo.EXPECT().FindCredentialByUser(ctx, userID).Return(&entity.Credential{UserID: userID, PasswordHash: "old-hash"}, nil)
	authRepo.EXPECT().
		UpdateCredential(ctx, mock.AnythingOfType("*entity.Credential")).
		RunAndReturn(func(_ context.Context, cred *entity.Credential) error {
			assert.Equal(t, "new-hash", cred.PasswordHash)
			return nil
		})
	authRepo.EXPECT().MarkPasswordResetTokenUsed(ctx, tokenID).Return(nil)
	authRepo.EXPECT().DeleteRefreshTokensByUser(ctx, userID).Return(nil)

	require.NoError(t, service.ConfirmPasswordReset(ctx, &usecase.PasswordResetConfirmInput{
		Token:       "raw-token",
		NewPassword: "N3wPass!word",
	}))
}

func TestAuthService_ConfirmPasswordReset_UsedToken(t *testing.T) {
	authRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AuthRepo().Return(authRepo)
	service, _, hasher := newAuthServiceUnderTest(t, factory, 0)

	ctx := context.Background()
	usedAt := time.Now().Add(-time.Minute)

	hasher.EXPECT().ValidatePasswordStrength("N3wPass!word").Return(nil)
	hasher.EXPECT().Hash("N3wPass!word").Return("new-hash", nil)
	authRepo.EXPECT().FindPasswordResetTokenByHash(ctx, hashToken("spent")).Return(&entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
		UsedAt:    &usedAt,
	}, nil)

	err := service.ConfirmPasswordReset(ctx, &usecase.PasswordResetConfirmInput{
		Token:       "spent",
		NewPassword: "N3wPass!word",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}
