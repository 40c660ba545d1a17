package middleware

import (
	"strings"

	deliveryctx "dealroom/internal/delivery/context"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/service"
	"dealroom/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests by verifying the bearer token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the principal on the
// request context. Authorization decisions stay in the usecase layer; this
// middleware only establishes identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrMissingCredentials
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header must use the Bearer scheme")
		}

		principal, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		deliveryctx.SetPrincipal(c, principal)

		return next(c)
	}
}
