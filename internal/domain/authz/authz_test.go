package authz_test

import (
	"testing"

	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func identityWith(role entity.Role, district string) *authz.Identity {
	return &authz.Identity{
		UserID:   uuid.New(),
		Email:    "caller@example.com",
		Role:     role,
		District: district,
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		identity *authz.Identity
		req      authz.Requirement
		wantErr  error
	}{
		{
			name:     "nil identity is unauthenticated",
			identity: nil,
			req:      authz.RequireRole(entity.RoleCustomer),
			wantErr:  domainerrors.ErrUnauthenticated,
		},
		{
			name:     "role mismatch is forbidden",
			identity: identityWith(entity.RoleCustomer, ""),
			req:      authz.RequireRole(entity.RoleVendor),
			wantErr:  domainerrors.ErrForbidden,
		},
		{
			name:     "matching role passes",
			identity: identityWith(entity.RoleVendor, ""),
			req:      authz.RequireRole(entity.RoleVendor),
		},
		{
			name:     "any of several roles passes",
			identity: identityWith(entity.RoleRegionalAdmin, "west"),
			req:      authz.RequireRole(entity.RoleAdmin, entity.RoleRegionalAdmin),
		},
		{
			name:     "empty requirement admits any authenticated caller",
			identity: identityWith(entity.RoleCustomer, ""),
			req:      authz.Requirement{},
		},
		{
			name:     "regional admin without district is a config error",
			identity: identityWith(entity.RoleRegionalAdmin, ""),
			req:      authz.RequireRegionalAdmin(),
			wantErr:  domainerrors.ErrNoDistrictAssigned,
		},
		{
			name:     "regional admin with district passes the scoped requirement",
			identity: identityWith(entity.RoleRegionalAdmin, "west"),
			req:      authz.RequireRegionalAdmin(),
		},
		{
			name:     "role check runs before the district check",
			identity: identityWith(entity.RoleCustomer, ""),
			req:      authz.RequireRegionalAdmin(),
			wantErr:  domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.Authorize(tt.identity, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeRoleChange_SelfBlocked(t *testing.T) {
	identity := identityWith(entity.RoleAdmin, "")

	err := authz.AuthorizeRoleChange(identity, identity.UserID, authz.RequireRole(entity.RoleAdmin))
	assert.ErrorIs(t, err, domainerrors.ErrSelfRoleChange)

	err = authz.AuthorizeRoleChange(identity, uuid.New(), authz.RequireRole(entity.RoleAdmin))
	assert.NoError(t, err)
}

func TestAuthorizeRoleChange_RoleCheckedFirst(t *testing.T) {
	identity := identityWith(entity.RoleCustomer, "")

	// Even a self-targeted call fails on the role, not the self block.
	err := authz.AuthorizeRoleChange(identity, identity.UserID, authz.RequireRole(entity.RoleAdmin))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestScopeDistrict(t *testing.T) {
	assert.Equal(t, "west", authz.ScopeDistrict(identityWith(entity.RoleRegionalAdmin, "west")))
	assert.Empty(t, authz.ScopeDistrict(identityWith(entity.RoleAdmin, "west")))
	assert.Empty(t, authz.ScopeDistrict(nil))
}
