package ports

import (
	"context"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// TokenCodec issues and verifies the signed bearer tokens that carry an
// identity between requests.
type TokenCodec interface {
	Issue(account *domain.Account) (string, error)
	// Verify returns domain.ErrInvalidToken for malformed, mis-signed and
	// expired input alike; callers cannot distinguish the failure mode.
	Verify(token string) (domain.Identity, error)
}

// AuthService implements registration, login and the admin approval flow.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	// Login returns a signed token and the account, domain.ErrInvalidCredentials
	// for unknown email or wrong password, or domain.ErrPendingApproval for a
	// correct login on an unapproved styler/partner account.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Profile(ctx context.Context, caller domain.Identity) (*domain.Account, error)
	PendingAccounts(ctx context.Context) ([]*domain.Account, error)
	// Approve flips the target's approval flag. The role gate for admin has
	// already run by the time this is called.
	Approve(ctx context.Context, targetID string) (*domain.Account, error)
}
