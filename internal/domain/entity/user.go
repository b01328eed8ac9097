// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It carries exactly one Role; when the role is "vendor" the Shop pointer
// holds the one-to-one storefront, otherwise it is nil. Keeping the role and
// the shop on the same aggregate makes the role<->shop invariant visible to
// every use case that touches either side.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's login identifier, stored lowercased.
	FirstName string
	LastName  string
	Role      Role
	District  string      // Geographic scoping unit; empty unless assigned.
	Shop      *VendorShop // Non-nil iff Role == RoleVendor.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used in order search and DTOs.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// IsVendor reports whether the user currently holds the vendor role.
func (u *User) IsVendor() bool {
	return u.Role == RoleVendor
}
