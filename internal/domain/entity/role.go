// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a user can have in the system.
// A user holds exactly one role at a time; the canonical form is lowercase
// and any case normalization happens here, at the edge, not per-route.
type Role string

const (
	// RoleCustomer indicates a regular shopper.
	RoleCustomer Role = "customer"
	// RoleVendor indicates a vendor with a storefront.
	RoleVendor Role = "vendor"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleRegionalAdmin indicates an administrator scoped to one district.
	RoleRegionalAdmin Role = "regional_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin, RoleRegionalAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a client-supplied role string to its canonical form.
// Returns false when the input names no known role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", false
	}

	return role, true
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
