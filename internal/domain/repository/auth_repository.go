// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrCredentialNotFound is returned when a user has no stored credential.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrTokenNotFound is returned when a refresh token is not found.
	ErrTokenNotFound = errors.New("refresh token not found")
	// ErrResetTokenNotFound is returned when a password reset token is not found.
	ErrResetTokenNotFound = errors.New("password reset token not found")
)

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateCredential persists the password hash for a new user.
	CreateCredential(ctx context.Context, cred *entity.Credential) error

	// FindCredentialByUser retrieves the credential of a user.
	FindCredentialByUser(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)

	// UpdateCredential replaces a user's password hash.
	UpdateCredential(ctx context.Context, cred *entity.Credential) error

	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, hash string) error

	// CountRefreshTokensByUser counts the user's live sessions.
	CountRefreshTokensByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteOldestRefreshToken evicts the user's oldest session, used to
	// enforce the configured session cap.
	DeleteOldestRefreshToken(ctx context.Context, userID uuid.UUID) error

	// DeleteRefreshTokensByUser revokes every session of a user, e.g. after
	// a password reset.
	DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error

	// CreatePasswordResetToken persists a new (hashed) reset token.
	CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error

	// FindPasswordResetTokenByHash retrieves a reset token by its hash.
	FindPasswordResetTokenByHash(ctx context.Context, hash string) (*entity.PasswordResetToken, error)

	// MarkPasswordResetTokenUsed stamps a reset token as redeemed.
	MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error
}
