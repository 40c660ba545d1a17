// Package context carries request-scoped values between middleware and
// handlers without stringly-typed lookups at the call sites.
package context

import (
	"dealroom/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated principal.
const KeyPrincipal ContextKey = "principal"

// GetPrincipal extracts the authenticated principal from echo.Context.
// The second return is false on routes that skipped authentication.
func GetPrincipal(c echo.Context) (*service.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*service.Principal)
	return principal, ok
}

// SetPrincipal stores the authenticated principal in echo.Context.
func SetPrincipal(c echo.Context, principal *service.Principal) {
	c.Set(string(KeyPrincipal), principal)
}
