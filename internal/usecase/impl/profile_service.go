package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get retrieves the caller's own record, shop included for vendors.
func (srv *profileService) Get(ctx context.Context, identity *authz.Identity) (*entity.User, error) {
	if err := authz.Authorize(identity, authz.Requirement{}); err != nil {
		return nil, err
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, identity.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user gone")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to get profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// Update edits the caller's name fields. Role and district are out of reach
// here; they only move through the lifecycle operations.
func (srv *profileService) Update(ctx context.Context, identity *authz.Identity, input *usecase.ProfileUpdateInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("user_id", identityUserID(identity)))

	if err := authz.Authorize(identity, authz.Requirement{}); err != nil {
		return nil, err
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, identity.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user gone")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.FirstName != nil {
			found.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			found.LastName = *input.LastName
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}
