package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

func invokeRequireRole(t *testing.T, identity domain.Identity, allowed ...domain.Role) (int, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, identity)

	handler := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return rec.Code, err
}

func TestRequireRole_AllowedRolePasses(t *testing.T) {
	identity := domain.Identity{AccountID: "acc_1", Role: domain.RoleStyler, Approved: true}
	code, err := invokeRequireRole(t, identity, domain.RoleStyler, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRequireRole_AnonymousGets401(t *testing.T) {
	_, err := invokeRequireRole(t, domain.Anonymous, domain.RoleUser)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestRequireRole_WrongRoleGets403(t *testing.T) {
	identity := domain.Identity{AccountID: "acc_2", Role: domain.RoleUser, Approved: true}
	code, err := invokeRequireRole(t, identity, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRequireRole_AnonymousDeniedEvenForEmptySet(t *testing.T) {
	_, err := invokeRequireRole(t, domain.Anonymous)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRole_AdminNotImplicitlyAllowed(t *testing.T) {
	// Admin passes role checks only when listed, never by virtue of the role.
	identity := domain.Identity{AccountID: "root", Role: domain.RoleAdmin, Approved: true}
	code, err := invokeRequireRole(t, identity, domain.RolePartner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}
