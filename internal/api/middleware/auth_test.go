package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/service"
)

type stubAccounts struct {
	byID map[string]*domain.Account
}

func (s *stubAccounts) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	return a, nil
}

func (s *stubAccounts) FindByEmail(_ context.Context, _ string) (*domain.Account, error) {
	return nil, domain.ErrAccountNotFound
}

func (s *stubAccounts) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

func (s *stubAccounts) ListPending(_ context.Context) ([]*domain.Account, error) {
	return nil, nil
}

func (s *stubAccounts) SetApproved(_ context.Context, id string) (*domain.Account, error) {
	return s.byID[id], nil
}

func runAuthenticate(t *testing.T, accounts *stubAccounts, authorization string) domain.Identity {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	codec := service.NewTokenCodec("secret", time.Hour)
	var got domain.Identity
	mw := Authenticate(codec, accounts)
	handler := mw(func(c echo.Context) error {
		got = IdentityFrom(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return got
}

func TestAuthenticate_ValidToken(t *testing.T) {
	account := &domain.Account{ID: "acc_1", Role: domain.RolePartner, Approved: true}
	accounts := &stubAccounts{byID: map[string]*domain.Account{"acc_1": account}}

	codec := service.NewTokenCodec("secret", time.Hour)
	token, err := codec.Issue(account)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity := runAuthenticate(t, accounts, "Bearer "+token)
	if identity.IsAnonymous() {
		t.Fatalf("expected authenticated identity")
	}
	if identity.AccountID != "acc_1" || identity.Role != domain.RolePartner {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthenticate_MissingHeaderIsAnonymous(t *testing.T) {
	identity := runAuthenticate(t, &stubAccounts{byID: map[string]*domain.Account{}}, "")
	if !identity.IsAnonymous() {
		t.Fatalf("expected anonymous, got %+v", identity)
	}
}

func TestAuthenticate_GarbageTokenIsAnonymous(t *testing.T) {
	accounts := &stubAccounts{byID: map[string]*domain.Account{}}

	for _, header := range []string{"Bearer not-a-token", "Token abc", "Bearer"} {
		identity := runAuthenticate(t, accounts, header)
		if !identity.IsAnonymous() {
			t.Fatalf("header %q: expected anonymous, got %+v", header, identity)
		}
	}
}

func TestAuthenticate_VanishedAccountIsAnonymous(t *testing.T) {
	// Token verifies but the account no longer exists: the stale token must
	// not yield an identity.
	codec := service.NewTokenCodec("secret", time.Hour)
	token, err := codec.Issue(&domain.Account{ID: "gone", Role: domain.RoleUser, Approved: true})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity := runAuthenticate(t, &stubAccounts{byID: map[string]*domain.Account{}}, "Bearer "+token)
	if !identity.IsAnonymous() {
		t.Fatalf("expected anonymous for vanished account, got %+v", identity)
	}
}
