package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// Guard fixes the stage order of the request pipeline: authentication always
// runs before the role gate, and routes obtain both from one place. A route
// declared through Guard cannot accidentally skip authentication or reorder
// the stages; per-resource ownership stays with the services, which resolve
// it after these two stages have passed.
type Guard struct {
	authenticate echo.MiddlewareFunc
}

func NewGuard(authenticate echo.MiddlewareFunc) *Guard {
	return &Guard{authenticate: authenticate}
}

// Public attaches the identity (or anonymous) without gating. Used for
// routes that are open but still ownership-aware, like the storefront.
func (g *Guard) Public() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.authenticate}
}

// Roles builds the authenticate → role-gate chain for the given set.
func (g *Guard) Roles(allowed ...domain.Role) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.authenticate, RequireRole(allowed...)}
}

// Authenticated admits any logged-in principal regardless of role.
func (g *Guard) Authenticated() []echo.MiddlewareFunc {
	return g.Roles(domain.RoleUser, domain.RoleStyler, domain.RolePartner, domain.RoleAdmin)
}
