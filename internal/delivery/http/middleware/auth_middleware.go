package middleware

import (
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the Bearer access token into an identity and
// enforces role gates at the route-group level. Failures return domain
// errors so the shared error handler shapes the reply.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and places the resolved identity
// on the request. Role and district come from the token claims; no user
// lookup happens per request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid or expired access token")
		}

		deliverycontext.SetIdentity(c, &authz.Identity{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Role:     entity.Role(claims.Role),
			District: claims.District,
		})

		return next(c)
	}
}

// RequireRole gates a route group on the caller's role. Use cases still run
// their own authorization; this only short-circuits the obvious mismatches
// before any handler work.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	requirement := authz.RequireRole(roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authz.Authorize(deliverycontext.GetIdentity(c), requirement); err != nil {
				return err
			}

			return next(c)
		}
	}
}
