package ports

import (
	"context"
	"time"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// OccasionFilter narrows occasion listings.
type OccasionFilter struct {
	Type     domain.OccasionType
	DateFrom time.Time
	DateTo   time.Time
	OwnerID  string
}

// OccasionRepository defines persistence operations for occasions.
type OccasionRepository interface {
	Create(ctx context.Context, occasion *domain.Occasion) (*domain.Occasion, error)
	FindByID(ctx context.Context, id string) (*domain.Occasion, error)
	Update(ctx context.Context, occasion *domain.Occasion) (*domain.Occasion, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope domain.Scope, filter OccasionFilter, page PageRequest) ([]*domain.Occasion, int64, error)
}

// CreateOccasionInput is the payload for planning an occasion.
type CreateOccasionInput struct {
	Title     string
	Type      domain.OccasionType
	Location  domain.Location
	Date      time.Time
	StartTime string
	EndTime   string
	DressCode string
	ClothIDs  []string
	Notes     string
}

// UpdateOccasionInput holds the mutable fields; nil/zero means unchanged.
type UpdateOccasionInput struct {
	Title     *string
	Type      *domain.OccasionType
	Location  *domain.Location
	Date      *time.Time
	StartTime *string
	EndTime   *string
	DressCode *string
	ClothIDs  []string
	Notes     *string
}

// OccasionPage is one page of occasion listings.
type OccasionPage struct {
	Items []*domain.Occasion
	Meta  PageMeta
}

// OccasionService defines use-case operations for occasions.
type OccasionService interface {
	Create(ctx context.Context, creator domain.Identity, input CreateOccasionInput) (*domain.Occasion, error)
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.Occasion, error)
	Update(ctx context.Context, caller domain.Identity, id string, input UpdateOccasionInput) (*domain.Occasion, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
	List(ctx context.Context, caller domain.Identity, filter OccasionFilter, page PageRequest) (*OccasionPage, error)
}
