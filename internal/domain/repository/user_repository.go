// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserListFilter narrows user listings. A zero value lists everyone.
type UserListFilter struct {
	Role     *entity.Role
	District string // Non-empty restricts to one district (regional admins).
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, preloading the
	// vendor shop when one exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (lowercased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves users matching the filter, newest first.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage. The vendor
	// shop association is not written here; shop existence changes go
	// through ShopRepository inside the same transaction.
	Update(ctx context.Context, user *entity.User) error
}
