package ports

import (
	"context"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// FindByEmail performs a case-insensitive lookup (emails are stored
	// lowercased).
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// ListPending returns unapproved accounts whose role requires approval.
	ListPending(ctx context.Context) ([]*domain.Account, error)
	// SetApproved flips the approval flag to true. The transition is one-way;
	// there is no corresponding un-approve operation.
	SetApproved(ctx context.Context, id string) (*domain.Account, error)
}
