package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/api/middleware"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// caller returns the identity attached by the Authenticate middleware.
// Routes registered without the middleware see the anonymous identity, which
// the core's predicates treat as no access except public reads.
func caller(c echo.Context) domain.Identity {
	return middleware.IdentityFrom(c)
}
