// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface
// using bcrypt, with the cost and strength policy taken from configuration.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:   cost,
		policy: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext against the configured
// policy. The failing requirement is reported in the error details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if h.policy == nil {
		return nil
	}

	if len(password) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password too short")
	}
	// bcrypt only hashes the first 72 bytes; longer inputs are rejected
	// instead of silently truncated.
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case h.policy.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("uppercase letter required")
	case h.policy.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("lowercase letter required")
	case h.policy.RequireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithDetails("number required")
	case h.policy.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("special character required")
	}

	return nil
}
