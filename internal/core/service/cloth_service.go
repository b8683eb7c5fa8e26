package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// ClothService implements the partner catalog use cases. Role gating happens
// in the middleware pipeline; this service owns the per-resource ownership
// decisions and the derivation of ownership fields at creation time.
type ClothService struct {
	repo ports.ClothRepository
	log  zerolog.Logger
}

func NewClothService(repo ports.ClothRepository, log zerolog.Logger) *ClothService {
	return &ClothService{repo: repo, log: log}
}

// Create stores a new catalog item. Owner id and owner type come from the
// creator's identity, never from the request body, so owner_type always
// matches the creator's role.
func (s *ClothService) Create(ctx context.Context, creator domain.Identity, input ports.CreateClothInput) (*domain.Cloth, error) {
	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}

	now := time.Now().UTC()
	cloth := &domain.Cloth{
		Name:     input.Name,
		Image:    input.Image,
		Color:    input.Color,
		Category: input.Category,
		Price:    input.Price,
		Ownership: domain.Ownership{
			OwnerID:    creator.AccountID,
			OwnerType:  creator.Role,
			Visibility: visibility,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, cloth)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("cloth_id", created.ID).Str("owner_id", creator.AccountID).Msg("cloth created")
	return created, nil
}

// Get fetches the item first and resolves access on the loaded record:
// public items are open to anyone, private ones to owner-or-admin.
func (s *ClothService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Cloth, error) {
	cloth, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller, cloth.Ownership, domain.IntentRead) {
		return nil, domain.ErrForbidden
	}
	return cloth, nil
}

// Update mutates the item after the ownership check. Ownership fields other
// than visibility are not touchable through the input type.
func (s *ClothService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdateClothInput) (*domain.Cloth, error) {
	cloth, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller, cloth.Ownership, domain.IntentWrite) {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		cloth.Name = *input.Name
	}
	if input.Image != nil {
		cloth.Image = *input.Image
	}
	if input.Color != nil {
		cloth.Color = *input.Color
	}
	if input.Category != nil {
		cloth.Category = *input.Category
	}
	if input.Price != nil {
		cloth.Price = *input.Price
	}
	if input.Visibility != nil {
		cloth.Visibility = *input.Visibility
	}
	cloth.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, cloth)
}

func (s *ClothService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	cloth, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccess(caller, cloth.Ownership, domain.IntentWrite) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("cloth_id", id).Str("caller_id", caller.AccountID).Msg("cloth deleted")
	return nil
}

// List is the general scoped listing: the caller sees public items plus
// their own; admins see everything. The scope is applied inside the query so
// totals match the visible set.
func (s *ClothService) List(ctx context.Context, caller domain.Identity, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	return s.list(ctx, domain.ListScope(caller), filter, page)
}

// ListPublic serves the storefront without authentication: public partner
// items only.
func (s *ClothService) ListPublic(ctx context.Context, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	filter.OwnerType = domain.RolePartner
	return s.list(ctx, domain.ListScope(domain.Anonymous), filter, page)
}

// ListMine returns everything the caller owns, private items included.
func (s *ClothService) ListMine(ctx context.Context, caller domain.Identity, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	filter.OwnerID = caller.AccountID
	return s.list(ctx, domain.ListScope(caller), filter, page)
}

// Suggestions is the styler browsing view over the public partner catalog.
// The route guard has already required the styler role.
func (s *ClothService) Suggestions(ctx context.Context, caller domain.Identity, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	filter.OwnerType = domain.RolePartner
	return s.list(ctx, domain.ListScope(domain.Anonymous), filter, page)
}

func (s *ClothService) list(ctx context.Context, scope domain.Scope, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	page = normalizePage(page)
	items, total, err := s.repo.List(ctx, scope, filter, page)
	if err != nil {
		return nil, err
	}
	return &ports.ClothPage{Items: items, Meta: pageMeta(total, page)}, nil
}
