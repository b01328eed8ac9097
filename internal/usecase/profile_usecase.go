package usecase

import (
	"context"

	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
)

// ProfileUpdateInput carries the editable profile fields. Nil pointers
// leave the current value untouched.
type ProfileUpdateInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// ProfileUsecase exposes the authenticated user's own record. Role and
// district are read-only here; only the lifecycle operations change them.
type ProfileUsecase interface {
	Get(ctx context.Context, identity *authz.Identity) (*entity.User, error)
	Update(ctx context.Context, identity *authz.Identity, input *ProfileUpdateInput) (*entity.User, error)
}
