package ports

import (
	"context"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// ClothFilter carries the optional query filters for cloth listings.
// Visibility scoping is NOT part of the filter; it comes from the
// domain.Scope derived from the caller's identity.
type ClothFilter struct {
	Search   string // partial match on name, color or category
	Category string
	Color    string
	MinPrice *float64
	MaxPrice *float64
	// OwnerID narrows the listing to one owner ("mine" views). It restricts
	// the result set further, never widens the caller's scope.
	OwnerID string
	// OwnerType restricts by the owning role (e.g. partner catalog only).
	OwnerType domain.Role
}

// ClothRepository defines persistence operations for partner clothes.
type ClothRepository interface {
	Create(ctx context.Context, cloth *domain.Cloth) (*domain.Cloth, error)
	FindByID(ctx context.Context, id string) (*domain.Cloth, error)
	Update(ctx context.Context, cloth *domain.Cloth) (*domain.Cloth, error)
	Delete(ctx context.Context, id string) error
	// List returns one page plus the total count, both computed over the
	// intersection of scope and filter.
	List(ctx context.Context, scope domain.Scope, filter ClothFilter, page PageRequest) ([]*domain.Cloth, int64, error)
}

// CreateClothInput is the payload for creating a catalog item. Ownership
// fields are absent on purpose: the service derives them from the creator.
type CreateClothInput struct {
	Name       string
	Image      string
	Color      string
	Category   string
	Price      float64
	Visibility domain.Visibility // defaults to public when empty
}

// UpdateClothInput holds the mutable fields; nil means "leave unchanged".
// Owner id and owner type are immutable and deliberately not here.
type UpdateClothInput struct {
	Name       *string
	Image      *string
	Color      *string
	Category   *string
	Price      *float64
	Visibility *domain.Visibility
}

// ClothPage is one page of cloth listings.
type ClothPage struct {
	Items []*domain.Cloth
	Meta  PageMeta
}

// ClothService defines use-case operations for the partner catalog.
type ClothService interface {
	Create(ctx context.Context, creator domain.Identity, input CreateClothInput) (*domain.Cloth, error)
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.Cloth, error)
	Update(ctx context.Context, caller domain.Identity, id string, input UpdateClothInput) (*domain.Cloth, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
	// List is the general scoped listing: public items plus the caller's own,
	// or everything for admins.
	List(ctx context.Context, caller domain.Identity, filter ClothFilter, page PageRequest) (*ClothPage, error)
	// ListPublic serves the anonymous storefront: public partner items only.
	ListPublic(ctx context.Context, filter ClothFilter, page PageRequest) (*ClothPage, error)
	// ListMine returns every item owned by the caller, private included.
	ListMine(ctx context.Context, caller domain.Identity, filter ClothFilter, page PageRequest) (*ClothPage, error)
	// Suggestions serves stylers browsing the public partner catalog.
	Suggestions(ctx context.Context, caller domain.Identity, filter ClothFilter, page PageRequest) (*ClothPage, error)
}
