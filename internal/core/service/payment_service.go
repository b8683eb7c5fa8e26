package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// PaymentService records and reconciles payment references. Charging itself
// happens in an external processor; only identifiers and amounts live here.
type PaymentService struct {
	repo ports.PaymentRepository
	log  zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, log: log}
}

func (s *PaymentService) Create(ctx context.Context, creator domain.Identity, input ports.CreatePaymentInput) (*domain.Payment, error) {
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	method := input.Method
	if method == "" {
		method = domain.MethodCard
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		Amount:      input.Amount,
		Currency:    currency,
		Method:      method,
		Status:      domain.PaymentPending,
		Description: input.Description,
		Ownership: domain.Ownership{
			OwnerID:    creator.AccountID,
			OwnerType:  creator.Role,
			Visibility: domain.VisibilityPrivate,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("payment_id", created.ID).
		Str("owner_id", creator.AccountID).
		Float64("amount", created.Amount).
		Msg("payment recorded")
	return created, nil
}

func (s *PaymentService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller, payment.Ownership, domain.IntentRead) {
		return nil, domain.ErrForbidden
	}
	return payment, nil
}

// Update touches the reconciliation fields only; amount, currency and method
// are immutable once recorded.
func (s *PaymentService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdatePaymentInput) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller, payment.Ownership, domain.IntentWrite) {
		return nil, domain.ErrForbidden
	}

	if input.Status != nil {
		payment.Status = *input.Status
	}
	if input.Description != nil {
		payment.Description = *input.Description
	}
	payment.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, payment)
}

func (s *PaymentService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccess(caller, payment.Ownership, domain.IntentWrite) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *PaymentService) List(ctx context.Context, caller domain.Identity, filter ports.PaymentFilter, page ports.PageRequest) (*ports.PaymentPage, error) {
	page = normalizePage(page)
	items, total, err := s.repo.List(ctx, domain.ListScope(caller), filter, page)
	if err != nil {
		return nil, err
	}
	return &ports.PaymentPage{Items: items, Meta: pageMeta(total, page)}, nil
}
