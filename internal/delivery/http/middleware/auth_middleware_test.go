package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_ResolvesIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
		UserID:   userID,
		Email:    "vendor@example.com",
		Role:     "vendor",
		District: "west",
	}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext("Bearer good-token")

	var seenID uuid.UUID
	err := m.Authenticate(func(c echo.Context) error {
		identity := deliverycontext.GetIdentity(c)
		require.NotNil(t, identity)
		seenID = identity.UserID
		assert.Equal(t, entity.RoleVendor, identity.Role)
		assert.Equal(t, "west", identity.District)

		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, userID, seenID)
}

func TestAuthMiddleware_Authenticate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(tokenSvc *mockSvc.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{
			name:   "rejected token",
			header: "Bearer bad-token",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("bad-token").Return(nil, errors.New("expired"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			err := m.Authenticate(okHandler)(newAuthTestContext(tt.header))
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	gate := m.RequireRole(entity.RoleAdmin, entity.RoleRegionalAdmin)

	c := newAuthTestContext("")
	deliverycontext.SetIdentity(c, &authz.Identity{UserID: uuid.New(), Role: entity.RoleAdmin})
	assert.NoError(t, gate(okHandler)(c))

	c = newAuthTestContext("")
	deliverycontext.SetIdentity(c, &authz.Identity{UserID: uuid.New(), Role: entity.RoleCustomer})
	assert.ErrorIs(t, gate(okHandler)(c), domainerrors.ErrForbidden)

	// No identity on the request at all.
	assert.ErrorIs(t, gate(okHandler)(newAuthTestContext("")), domainerrors.ErrUnauthenticated)
}
