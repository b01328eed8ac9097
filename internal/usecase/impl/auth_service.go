// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	tokenService   service.TokenService
	passwordHasher service.PasswordHasher
	cfg            *config.Config
	logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	passwordHasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:      txManager,
		tokenService:   tokenService,
		passwordHasher: passwordHasher,
		cfg:            cfg,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashToken derives the storage form of a raw token. Only hashes ever reach
// the database, so a leaked table cannot be replayed as sessions.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// newResetToken generates a random single-use reset token.
func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate reset token")
	}

	return hex.EncodeToString(buf), nil
}

// RegisterCustomer creates a customer account with its credential.
func (srv *authService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering customer", slog.String("email", input.Email))

	user := &entity.User{
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      entity.RoleCustomer,
	}

	if err := srv.register(ctx, user, input.Password, nil); err != nil {
		srv.log(ctx).Error("Failed to register customer", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register customer")
	}

	return &usecase.RegisterOutput{User: user}, nil
}

// RegisterVendor creates a vendor account together with its pending shop.
func (srv *authService) RegisterVendor(ctx context.Context, input *usecase.RegisterVendorInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering vendor", slog.String("email", input.Email))

	user := &entity.User{
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      entity.RoleVendor,
	}
	shop := &entity.VendorShop{
		Name:        input.ShopName,
		Description: input.ShopDescription,
		District:    input.District,
	}

	if err := srv.register(ctx, user, input.Password, shop); err != nil {
		srv.log(ctx).Error("Failed to register vendor", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register vendor")
	}
	user.Shop = shop

	return &usecase.RegisterOutput{User: user}, nil
}

// register creates the user, credential and optional shop in one transaction.
func (srv *authService) register(ctx context.Context, user *entity.User, password string, shop *entity.VendorShop) error {
	if err := srv.passwordHasher.ValidatePasswordStrength(password); err != nil {
		return err
	}

	passwordHash, err := srv.passwordHasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		// 1. Reject duplicate emails up front for a clean error; the unique
		// index still closes the race.
		if _, err := userRepo.FindByEmail(ctx, user.Email); err == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email taken")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		// 2. Create the user
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		// 3. Create the credential
		cred := &entity.Credential{
			UserID:       user.ID,
			PasswordHash: passwordHash,
		}
		if err := authRepo.CreateCredential(ctx, cred); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		// 4. Create the shop for vendors
		if shop != nil {
			shop.VendorID = user.ID
			if err := repoFactory.ShopRepo().Create(ctx, shop); err != nil {
				return errors.Wrap(err, "failed to create vendor shop")
			}
		}

		return nil
	})
}

// Login verifies credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Logging in", slog.String("email", input.Email))

	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		// Unknown email and wrong password are deliberately the same error.
		user, err := userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find user")
		}

		cred, err := authRepo.FindCredentialByUser(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "no credential")
			}

			return errors.Wrap(err, "failed to find credential")
		}

		if !srv.passwordHasher.Check(input.Password, cred.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		tokens, err := srv.openSession(ctx, authRepo, user)
		if err != nil {
			return err
		}
		output = tokens

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to login")
	}

	return output, nil
}

// openSession issues a token pair and stores the hashed refresh token,
// evicting the oldest session when the cap is reached.
func (srv *authService) openSession(ctx context.Context, authRepo repository.AuthRepository, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(
		user.ID, user.Email, user.Role.String(), user.District,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	count, err := authRepo.CountRefreshTokensByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sessions")
	}
	if srv.cfg.Auth.MaxActiveSessions > 0 && count >= int64(srv.cfg.Auth.MaxActiveSessions) {
		if err := authRepo.DeleteOldestRefreshToken(ctx, user.ID); err != nil {
			return nil, errors.Wrap(err, "failed to evict oldest session")
		}
	}

	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := authRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh rotates a refresh token: the presented token is consumed and a new
// pair is issued with the user's current role and district.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Refreshing session")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var output *usecase.LoginOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		hash := hashToken(input.RefreshToken)

		record, err := authRepo.FindRefreshTokenByHash(ctx, hash)
		if err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session not found")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if time.Now().After(record.ExpiresAt) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session expired")
		}

		if err := authRepo.DeleteRefreshTokenByHash(ctx, hash); err != nil {
			return errors.Wrap(err, "failed to consume refresh token")
		}

		// Role and district come from the current user record, so a role
		// change takes effect on the next refresh at the latest.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user gone")
			}

			return errors.Wrap(err, "failed to find user")
		}

		tokens, err := srv.openSession(ctx, authRepo, user)
		if err != nil {
			return err
		}
		output = tokens

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return output, nil
}

// Logout ends the session behind the presented refresh token. Logging out an
// already ended session succeeds.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Logging out")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		if err := authRepo.DeleteRefreshTokenByHash(ctx, hashToken(input.RefreshToken)); err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	return nil
}

// RequestPasswordReset issues a hashed, time-limited reset token. An unknown
// email creates nothing and returns no error, so callers cannot probe which
// addresses exist.
func (srv *authService) RequestPasswordReset(ctx context.Context, input *usecase.PasswordResetRequestInput) error {
	srv.log(ctx).Info("Password reset requested")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		user, err := userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find user")
		}

		rawToken, err := newResetToken()
		if err != nil {
			return err
		}

		record := &entity.PasswordResetToken{
			UserID:    user.ID,
			TokenHash: hashToken(rawToken),
			ExpiresAt: time.Now().Add(srv.cfg.Auth.ResetTokenTTL),
		}
		if err := authRepo.CreatePasswordResetToken(ctx, record); err != nil {
			return errors.Wrap(err, "failed to store reset token")
		}

		// No mailer is wired; the raw token is only surfaced in debug logs
		// for local testing.
		srv.log(ctx).Debug("Password reset token issued", slog.String("token", rawToken))

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to request password reset", slog.Any("error", err))

		return errors.Wrap(err, "failed to request password reset")
	}

	return nil
}

// ConfirmPasswordReset redeems a reset token, replaces the credential and
// revokes every open session of the user.
func (srv *authService) ConfirmPasswordReset(ctx context.Context, input *usecase.PasswordResetConfirmInput) error {
	srv.log(ctx).Info("Confirming password reset")

	if err := srv.passwordHasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	passwordHash, err := srv.passwordHasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		record, err := authRepo.FindPasswordResetTokenByHash(ctx, hashToken(input.Token))
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "token not found")
			}

			return errors.Wrap(err, "failed to find reset token")
		}
		if !record.IsUsable(time.Now()) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "token expired or used")
		}

		cred, err := authRepo.FindCredentialByUser(ctx, record.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find credential")
		}
		cred.PasswordHash = passwordHash
		if err := authRepo.UpdateCredential(ctx, cred); err != nil {
			return errors.Wrap(err, "failed to update credential")
		}

		if err := authRepo.MarkPasswordResetTokenUsed(ctx, record.ID); err != nil {
			return errors.Wrap(err, "failed to mark reset token used")
		}

		if err := authRepo.DeleteRefreshTokensByUser(ctx, record.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Password reset confirmation failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to confirm password reset")
	}

	return nil
}
