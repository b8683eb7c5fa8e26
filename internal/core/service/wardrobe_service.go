package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// WardrobeService implements styler wardrobe use cases. Wardrobe items are
// always private; only the owner and admins ever see them.
type WardrobeService struct {
	repo ports.WardrobeRepository
	log  zerolog.Logger
}

func NewWardrobeService(repo ports.WardrobeRepository, log zerolog.Logger) *WardrobeService {
	return &WardrobeService{repo: repo, log: log}
}

func (s *WardrobeService) Create(ctx context.Context, creator domain.Identity, input ports.CreateWardrobeItemInput) (*domain.WardrobeItem, error) {
	seasons := input.Seasons
	if len(seasons) == 0 {
		seasons = []string{"all"}
	}

	now := time.Now().UTC()
	item := &domain.WardrobeItem{
		ItemName:     input.ItemName,
		Images:       input.Images,
		Category:     input.Category,
		Brand:        input.Brand,
		Colors:       input.Colors,
		Material:     input.Material,
		Size:         input.Size,
		Seasons:      seasons,
		OccasionTags: input.OccasionTags,
		Wearable:     true,
		Ownership: domain.Ownership{
			OwnerID:    creator.AccountID,
			OwnerType:  domain.RoleStyler,
			Visibility: domain.VisibilityPrivate,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("item_id", created.ID).Str("owner_id", creator.AccountID).Msg("wardrobe item created")
	return created, nil
}

func (s *WardrobeService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.WardrobeItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller, item.Ownership, domain.IntentRead) {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func (s *WardrobeService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdateWardrobeItemInput) (*domain.WardrobeItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller, item.Ownership, domain.IntentWrite) {
		return nil, domain.ErrForbidden
	}

	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.Images != nil {
		item.Images = input.Images
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Brand != nil {
		item.Brand = *input.Brand
	}
	if input.Colors != nil {
		item.Colors = input.Colors
	}
	if input.Material != nil {
		item.Material = *input.Material
	}
	if input.Size != nil {
		item.Size = *input.Size
	}
	if input.Seasons != nil {
		item.Seasons = input.Seasons
	}
	if input.OccasionTags != nil {
		item.OccasionTags = input.OccasionTags
	}
	if input.Wearable != nil {
		item.Wearable = *input.Wearable
	}
	if input.Archived != nil {
		item.Archived = *input.Archived
	}
	item.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, item)
}

func (s *WardrobeService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccess(caller, item.Ownership, domain.IntentWrite) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// List never widens beyond the caller's scope: stylers get their own items,
// admins everything. There is no public wardrobe view.
func (s *WardrobeService) List(ctx context.Context, caller domain.Identity, filter ports.WardrobeFilter, page ports.PageRequest) (*ports.WardrobePage, error) {
	page = normalizePage(page)
	items, total, err := s.repo.List(ctx, domain.ListScope(caller), filter, page)
	if err != nil {
		return nil, err
	}
	return &ports.WardrobePage{Items: items, Meta: pageMeta(total, page)}, nil
}
