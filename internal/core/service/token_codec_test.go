package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", 0)
	account := &domain.Account{ID: "acc_1", Role: domain.RolePartner, Approved: true}

	token, err := codec.Issue(account)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.AccountID != "acc_1" {
		t.Fatalf("account id mismatch: %s", identity.AccountID)
	}
	if identity.Role != domain.RolePartner {
		t.Fatalf("role mismatch: %s", identity.Role)
	}
	if !identity.Approved {
		t.Fatalf("approved flag lost")
	}
}

func TestTokenCodec_ValidUntilExpiry(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec("secret", 0)
	codec.now = func() time.Time { return issued }

	token, err := codec.Issue(&domain.Account{ID: "acc_1", Role: domain.RoleUser, Approved: true})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Just before the 7-day expiry the token still verifies.
	codec.now = func() time.Time { return issued.Add(7*24*time.Hour - time.Second) }
	if _, err := codec.Verify(token); err != nil {
		t.Fatalf("verify before expiry: %v", err)
	}

	// At and after expiry it is Invalid.
	codec.now = func() time.Time { return issued.Add(7*24*time.Hour + time.Second) }
	if _, err := codec.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenCodec_UniformFailure(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	other := NewTokenCodec("other-secret", time.Hour)

	misSigned, err := other.Issue(&domain.Account{ID: "acc_1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Malformed, truncated and mis-signed input all yield the same error and
	// an anonymous identity.
	for _, input := range []string{"", "not-a-token", "a.b.c", misSigned} {
		identity, err := codec.Verify(input)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("input %q: expected ErrInvalidToken, got %v", input, err)
		}
		if !identity.IsAnonymous() {
			t.Fatalf("input %q: expected anonymous identity, got %+v", input, identity)
		}
	}
}
