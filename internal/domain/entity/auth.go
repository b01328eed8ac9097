package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential stores the login secret for a user. Email+password is the only
// provider; the hash is bcrypt.
type Credential struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without
// requiring credentials. Only a SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// PasswordResetToken is a single-use, hashed token mailed to a user who asked
// for a password reset. Requests for unknown emails create nothing but the
// API response is indistinguishable, to prevent account enumeration.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the token can still redeem a reset.
func (t *PasswordResetToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
