package entity_test

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := entity.ParseRole("Vendor")
	assert.True(t, ok)
	assert.Equal(t, entity.RoleVendor, role)

	role, ok = entity.ParseRole(" regional_admin ")
	assert.True(t, ok)
	assert.Equal(t, entity.RoleRegionalAdmin, role)

	_, ok = entity.ParseRole("superuser")
	assert.False(t, ok)

	_, ok = entity.ParseRole("")
	assert.False(t, ok)
}

func TestRoles_Contains(t *testing.T) {
	roles := entity.Roles{entity.RoleAdmin, entity.RoleRegionalAdmin}

	assert.True(t, roles.Contains(entity.RoleAdmin))
	assert.False(t, roles.Contains(entity.RoleCustomer))
	assert.False(t, entity.Roles{}.Contains(entity.RoleAdmin))
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Nina Chu", (&entity.User{FirstName: "Nina", LastName: "Chu"}).FullName())
	assert.Equal(t, "Nina", (&entity.User{FirstName: "Nina"}).FullName())
	assert.Equal(t, "Chu", (&entity.User{LastName: "Chu"}).FullName())
}
