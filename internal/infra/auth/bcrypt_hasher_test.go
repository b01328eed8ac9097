package auth

import (
	"strings"
	"testing"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	return &bcryptHasher{
		cost: 4, // MinCost keeps the test fast.
		policy: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Str0ngPass!")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngPass!", hash)

	assert.True(t, hasher.Check("Str0ngPass!", hash))
	assert.False(t, hasher.Check("WrongPass1!", hash))
	assert.False(t, hasher.Check("Str0ngPass!", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_Hash_Salted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Str0ngPass!")
	require.NoError(t, err)
	second, err := hasher.Hash("Str0ngPass!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		details  string
	}{
		{"valid", "Str0ngPass!", ""},
		{"too short", "S0r!t", "password too short"},
		{"too long", "Aa1!" + strings.Repeat("x", 80), "password too long"},
		{"missing uppercase", "weak0pass!", "uppercase letter required"},
		{"missing lowercase", "WEAK0PASS!", "lowercase letter required"},
		{"missing number", "WeakPassword!", "number required"},
		{"missing special", "WeakPassword0", "special character required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.details == "" {
				assert.NoError(t, err)
				return
			}

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestBcryptHasher_NoPolicyAcceptsAnything(t *testing.T) {
	hasher := &bcryptHasher{cost: 4}

	assert.NoError(t, hasher.ValidatePasswordStrength("x"))
}
