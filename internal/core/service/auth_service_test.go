package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneAccount(account)
	copy.ID = "acc_" + strconv.Itoa(r.nextID)
	r.accounts[copy.ID] = cloneAccount(copy)
	return copy, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) ListPending(_ context.Context) ([]*domain.Account, error) {
	var pending []*domain.Account
	for _, a := range r.accounts {
		if a.Role.RequiresApproval() && !a.Approved {
			pending = append(pending, cloneAccount(a))
		}
	}
	return pending, nil
}

func (r *stubAccountRepo) SetApproved(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Approved = true
	return cloneAccount(a), nil
}

func newTestAuthService(repo ports.AccountRepository) *AuthService {
	return NewAuthService(repo, NewTokenCodec("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register_HashesAndApproves(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "Alice@Example.com", Password: "s3cret", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalised: %s", user.Email)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
	if !user.Approved {
		t.Fatalf("user role must be auto-approved")
	}

	partner, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Shop", Email: "shop@example.com", Password: "pw", Role: domain.RolePartner,
	})
	if err != nil {
		t.Fatalf("register partner: %v", err)
	}
	if partner.Approved {
		t.Fatalf("partner must start unapproved")
	}
}

func TestAuthService_Register_RejectsAdminRole(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Eve", Email: "eve@example.com", Password: "pw", Role: domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	in := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pw", Role: domain.RoleUser}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Password: "pw", Role: domain.RoleUser,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, account, err := svc.Login(context.Background(), "Carol@Example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if account == nil || account.Email != "carol@example.com" {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestAuthService_Login_BadCredentialsUniform(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpw", Role: domain.RoleUser,
	})

	// Wrong password and unknown email are indistinguishable.
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ApprovalFlow(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	partner, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Shop", Email: "shop@example.com", Password: "pw", Role: domain.RolePartner,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unapproved partner: correct credentials still refuse issuance, with the
	// approval-specific error rather than bad-credentials.
	if _, _, err := svc.Login(context.Background(), "shop@example.com", "pw"); !errors.Is(err, domain.ErrPendingApproval) {
		t.Fatalf("expected ErrPendingApproval, got %v", err)
	}

	pending, err := svc.PendingAccounts(context.Background())
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != partner.ID {
		t.Fatalf("unexpected pending list: %+v", pending)
	}

	approved, err := svc.Approve(context.Background(), partner.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !approved.Approved {
		t.Fatalf("account not approved")
	}

	token, _, err := svc.Login(context.Background(), "shop@example.com", "pw")
	if err != nil {
		t.Fatalf("login after approval: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token after approval")
	}

	// Re-approval is a no-op, not an error.
	if _, err := svc.Approve(context.Background(), partner.ID); err != nil {
		t.Fatalf("re-approve: %v", err)
	}
}

func TestAuthService_Approve_InvalidTarget(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Uma", Email: "uma@example.com", Password: "pw", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Approve(context.Background(), user.ID); !errors.Is(err, domain.ErrInvalidApprovalTarget) {
		t.Fatalf("expected ErrInvalidApprovalTarget, got %v", err)
	}
	if _, err := svc.Approve(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
