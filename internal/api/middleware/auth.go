package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// identityKey is the echo context key the Identity is stored under.
const identityKey = "identity"

// IdentityFrom returns the Identity attached by Authenticate, or the
// anonymous identity when the middleware has not run.
func IdentityFrom(c echo.Context) domain.Identity {
	identity, _ := c.Get(identityKey).(domain.Identity)
	return identity
}

// Authenticate resolves the caller's identity and attaches it to the request
// context. It never rejects by itself: a missing, malformed or invalid
// bearer token leaves the request anonymous, and downstream gates decide.
// A verified token referencing a vanished account is treated the same way —
// stale credentials are not trusted.
//
// The only error path is a store failure while loading the account, which
// surfaces as a server error rather than a silent anonymous downgrade.
func Authenticate(codec ports.TokenCodec, accounts ports.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(identityKey, domain.Anonymous)

			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			identity, err := codec.Verify(parts[1])
			if err != nil {
				return next(c)
			}

			if _, err := accounts.FindByID(c.Request().Context(), identity.AccountID); err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					return next(c)
				}
				return err
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}
