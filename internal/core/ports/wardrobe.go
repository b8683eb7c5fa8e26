package ports

import (
	"context"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// WardrobeFilter narrows wardrobe listings.
type WardrobeFilter struct {
	Category domain.WardrobeCategory
	Season   string
	// Archived filters on the archive flag when non-nil.
	Archived *bool
	OwnerID  string
}

// WardrobeRepository defines persistence operations for wardrobe items.
type WardrobeRepository interface {
	Create(ctx context.Context, item *domain.WardrobeItem) (*domain.WardrobeItem, error)
	FindByID(ctx context.Context, id string) (*domain.WardrobeItem, error)
	Update(ctx context.Context, item *domain.WardrobeItem) (*domain.WardrobeItem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope domain.Scope, filter WardrobeFilter, page PageRequest) ([]*domain.WardrobeItem, int64, error)
}

// CreateWardrobeItemInput is the payload for adding a garment to a styler's
// wardrobe. Items are always private; there is no visibility choice.
type CreateWardrobeItemInput struct {
	ItemName     string
	Images       []string
	Category     domain.WardrobeCategory
	Brand        string
	Colors       []string
	Material     string
	Size         string
	Seasons      []string
	OccasionTags []string
}

// UpdateWardrobeItemInput holds the mutable fields; nil means unchanged.
type UpdateWardrobeItemInput struct {
	ItemName     *string
	Images       []string
	Category     *domain.WardrobeCategory
	Brand        *string
	Colors       []string
	Material     *string
	Size         *string
	Seasons      []string
	OccasionTags []string
	Wearable     *bool
	Archived     *bool
}

// WardrobePage is one page of wardrobe listings.
type WardrobePage struct {
	Items []*domain.WardrobeItem
	Meta  PageMeta
}

// WardrobeService defines use-case operations for styler wardrobes.
type WardrobeService interface {
	Create(ctx context.Context, creator domain.Identity, input CreateWardrobeItemInput) (*domain.WardrobeItem, error)
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.WardrobeItem, error)
	Update(ctx context.Context, caller domain.Identity, id string, input UpdateWardrobeItemInput) (*domain.WardrobeItem, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
	List(ctx context.Context, caller domain.Identity, filter WardrobeFilter, page PageRequest) (*WardrobePage, error)
}
