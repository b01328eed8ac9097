package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the domain's AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateCredential persists the password hash for a new user.
func (repo *authRepository) CreateCredential(ctx context.Context, cred *entity.Credential) error {
	credM := &model.CredentialModel{
		UserID:       cred.UserID,
		PasswordHash: cred.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user already has a credential")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	cred.ID = credM.ID
	cred.CreatedAt = credM.CreatedAt
	cred.UpdatedAt = credM.UpdatedAt

	return nil
}

// FindCredentialByUser retrieves the credential of a user.
func (repo *authRepository) FindCredentialByUser(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credM model.CredentialModel
	if err := repo.db.WithContext(ctx).First(&credM, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return &entity.Credential{
		ID:           credM.ID,
		UserID:       credM.UserID,
		PasswordHash: credM.PasswordHash,
		CreatedAt:    credM.CreatedAt,
		UpdatedAt:    credM.UpdatedAt,
	}, nil
}

// UpdateCredential replaces a user's password hash.
func (repo *authRepository) UpdateCredential(ctx context.Context, cred *entity.Credential) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", cred.ID).
		Update("password_hash", cred.PasswordHash).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update credential")
	}

	return nil
}

// CreateRefreshToken persists a new refresh token, representing a user session.
func (repo *authRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := &model.RefreshTokenModel{
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindRefreshTokenByHash retrieves a refresh token record by its stored hash.
func (repo *authRepository) FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).First(&tokenM, "token_hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return &entity.RefreshToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		ExpiresAt: tokenM.ExpiresAt,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending a session.
func (repo *authRepository) DeleteRefreshTokenByHash(ctx context.Context, hash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// CountRefreshTokensByUser counts the user's live sessions.
func (repo *authRepository) CountRefreshTokensByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count refresh tokens")
	}

	return count, nil
}

// DeleteOldestRefreshToken evicts the user's oldest session.
func (repo *authRepository) DeleteOldestRefreshToken(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = (?)", repo.db.
			Model(&model.RefreshTokenModel{}).
			Select("id").
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Limit(1),
		).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete oldest refresh token")
	}

	return nil
}

// DeleteRefreshTokensByUser revokes every session of a user.
func (repo *authRepository) DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh tokens")
	}

	return nil
}

// CreatePasswordResetToken persists a new (hashed) reset token.
func (repo *authRepository) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := &model.PasswordResetTokenModel{
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindPasswordResetTokenByHash retrieves a reset token by its hash.
func (repo *authRepository) FindPasswordResetTokenByHash(ctx context.Context, hash string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	if err := repo.db.WithContext(ctx).First(&tokenM, "token_hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return &entity.PasswordResetToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		ExpiresAt: tokenM.ExpiresAt,
		UsedAt:    tokenM.UsedAt,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// MarkPasswordResetTokenUsed stamps a reset token as redeemed.
func (repo *authRepository) MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("id = ?", id).
		Update("used_at", gorm.Expr("NOW()")).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark reset token used")
	}

	return nil
}
