package ports

import (
	"context"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	Status  domain.PaymentStatus
	Method  domain.PaymentMethod
	OwnerID string
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope domain.Scope, filter PaymentFilter, page PageRequest) ([]*domain.Payment, int64, error)
}

// CreatePaymentInput records a charge initiated with the external processor.
// The core never talks to the processor itself; it stores the reference.
type CreatePaymentInput struct {
	Amount      float64
	Currency    string
	Method      domain.PaymentMethod
	Description string
}

// UpdatePaymentInput covers the reconciliation fields only. Amount, currency
// and method are immutable once recorded.
type UpdatePaymentInput struct {
	Status      *domain.PaymentStatus
	Description *string
}

// PaymentPage is one page of payment listings.
type PaymentPage struct {
	Items []*domain.Payment
	Meta  PageMeta
}

// PaymentService defines use-case operations for payments.
type PaymentService interface {
	Create(ctx context.Context, creator domain.Identity, input CreatePaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.Payment, error)
	Update(ctx context.Context, caller domain.Identity, id string, input UpdatePaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
	List(ctx context.Context, caller domain.Identity, filter PaymentFilter, page PageRequest) (*PaymentPage, error)
}
