package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/api/metrics"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// RequireRole enforces role-based access. Anonymous callers get 401, an
// authenticated caller whose role is outside the allowed set gets 403. The
// decision itself lives in domain.RoleAllowed; this middleware only maps it
// onto HTTP.
func RequireRole(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity.IsAnonymous() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if !domain.RoleAllowed(identity, allowed...) {
				metrics.AccessDeniedTotal.WithLabelValues("role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}
