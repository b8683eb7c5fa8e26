package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// AuthService implements registration, login and the admin approval flow.
type AuthService struct {
	accounts ports.AccountRepository
	codec    ports.TokenCodec
	log      zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, codec ports.TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, codec: codec, log: log}
}

// Register creates an account. Styler and partner accounts start unapproved
// and cannot log in until an admin approves them; user accounts are usable
// immediately. Admin accounts cannot be created here.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if !input.Role.CanSelfRegister() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		Role:         input.Role,
		Approved:     !input.Role.RequiresApproval(),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", created.ID).
		Str("role", string(created.Role)).
		Bool("approved", created.Approved).
		Msg("account registered")

	return created, nil
}

// Login applies the credential check and the approval gate, in that order
// after the account lookup. Unknown email and wrong password are merged into
// ErrInvalidCredentials so the endpoint does not leak which emails exist;
// ErrPendingApproval stays distinct on purpose.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	account, err := s.accounts.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Approval is enforced at issuance only; tokens already in the wild stay
	// valid until expiry.
	if account.Role.RequiresApproval() && !account.Approved {
		return "", nil, domain.ErrPendingApproval
	}

	token, err := s.codec.Issue(account)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login")
	return token, account, nil
}

// Profile returns the caller's own account record.
func (s *AuthService) Profile(ctx context.Context, caller domain.Identity) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, caller.AccountID)
}

// PendingAccounts lists styler/partner accounts still awaiting approval.
func (s *AuthService) PendingAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.ListPending(ctx)
}

// Approve transitions the target account from pending to approved. The
// transition is one-way and idempotent; targets whose role never needs
// approval are rejected.
func (s *AuthService) Approve(ctx context.Context, targetID string) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !account.Role.RequiresApproval() {
		return nil, domain.ErrInvalidApprovalTarget
	}
	if account.Approved {
		return account, nil
	}

	approved, err := s.accounts.SetApproved(ctx, targetID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", approved.ID).Str("role", string(approved.Role)).Msg("account approved")
	return approved, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
