package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

type stubPaymentRepo struct {
	payments map[string]*domain.Payment
	nextID   int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func clonePayment(p *domain.Payment) *domain.Payment {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	r.nextID++
	copy := clonePayment(payment)
	copy.ID = "pay_" + strconv.Itoa(r.nextID)
	r.payments[copy.ID] = clonePayment(copy)
	return copy, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id string) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return clonePayment(p), nil
}

func (r *stubPaymentRepo) Update(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if _, ok := r.payments[payment.ID]; !ok {
		return nil, domain.ErrPaymentNotFound
	}
	r.payments[payment.ID] = clonePayment(payment)
	return clonePayment(payment), nil
}

func (r *stubPaymentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.payments[id]; !ok {
		return domain.ErrPaymentNotFound
	}
	delete(r.payments, id)
	return nil
}

func (r *stubPaymentRepo) List(_ context.Context, scope domain.Scope, f ports.PaymentFilter, page ports.PageRequest) ([]*domain.Payment, int64, error) {
	var matched []*domain.Payment
	for _, p := range r.payments {
		if !scope.Unrestricted && p.OwnerID != scope.OwnerID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		matched = append(matched, clonePayment(p))
	}
	return matched, int64(len(matched)), nil
}

func TestPaymentService_CreateDefaults(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(), zerolog.Nop())
	user := domain.Identity{AccountID: "u1", Role: domain.RoleUser, Approved: true}

	payment, err := svc.Create(context.Background(), user, ports.CreatePaymentInput{Amount: 49.99, Method: domain.MethodStripe})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if payment.Status != domain.PaymentPending {
		t.Fatalf("expected pending status, got %q", payment.Status)
	}
	if payment.Currency != "USD" {
		t.Fatalf("expected USD default, got %q", payment.Currency)
	}
	if payment.OwnerID != "u1" || payment.Visibility != domain.VisibilityPrivate {
		t.Fatalf("unexpected ownership: %+v", payment.Ownership)
	}
}

func TestPaymentService_UpdateOnlyReconciliationFields(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(), zerolog.Nop())
	user := domain.Identity{AccountID: "u1", Role: domain.RoleUser, Approved: true}

	payment, err := svc.Create(context.Background(), user, ports.CreatePaymentInput{Amount: 20, Method: domain.MethodCard})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := domain.PaymentCompleted
	updated, err := svc.Update(context.Background(), user, payment.ID, ports.UpdatePaymentInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.PaymentCompleted {
		t.Fatalf("expected completed, got %q", updated.Status)
	}
	if updated.Amount != 20 || updated.Method != domain.MethodCard {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
}

func TestPaymentService_CrossAccountDenied(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(), zerolog.Nop())
	owner := domain.Identity{AccountID: "u1", Role: domain.RoleUser, Approved: true}
	other := domain.Identity{AccountID: "u2", Role: domain.RoleUser, Approved: true}
	admin := domain.Identity{AccountID: "root", Role: domain.RoleAdmin, Approved: true}

	payment, err := svc.Create(context.Background(), owner, ports.CreatePaymentInput{Amount: 10, Method: domain.MethodPaypal})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), other, payment.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for other account, got %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, payment.ID); err != nil {
		t.Fatalf("admin read should pass: %v", err)
	}
}

func TestPaymentService_ListScopedToOwner(t *testing.T) {
	repo := newStubPaymentRepo()
	svc := NewPaymentService(repo, zerolog.Nop())
	u1 := domain.Identity{AccountID: "u1", Role: domain.RoleUser, Approved: true}
	u2 := domain.Identity{AccountID: "u2", Role: domain.RoleUser, Approved: true}
	admin := domain.Identity{AccountID: "root", Role: domain.RoleAdmin, Approved: true}

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), u1, ports.CreatePaymentInput{Amount: 5, Method: domain.MethodCard}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), u2, ports.CreatePaymentInput{Amount: 5, Method: domain.MethodCard}); err != nil {
		t.Fatalf("create: %v", err)
	}

	page, err := svc.List(context.Background(), u1, ports.PaymentFilter{}, ports.PageRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Meta.Total != 2 {
		t.Fatalf("expected 2 for owner, got %d", page.Meta.Total)
	}

	page, err = svc.List(context.Background(), admin, ports.PaymentFilter{}, ports.PageRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Meta.Total != 3 {
		t.Fatalf("expected 3 for admin, got %d", page.Meta.Total)
	}
}
