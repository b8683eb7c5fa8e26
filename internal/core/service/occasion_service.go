package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// OccasionService implements occasion planning use cases. Occasions are
// private to the account that created them.
type OccasionService struct {
	repo ports.OccasionRepository
	log  zerolog.Logger
}

func NewOccasionService(repo ports.OccasionRepository, log zerolog.Logger) *OccasionService {
	return &OccasionService{repo: repo, log: log}
}

func (s *OccasionService) Create(ctx context.Context, creator domain.Identity, input ports.CreateOccasionInput) (*domain.Occasion, error) {
	occasionType := input.Type
	if occasionType == "" {
		occasionType = domain.OccasionOther
	}

	now := time.Now().UTC()
	occasion := &domain.Occasion{
		Title:     input.Title,
		Type:      occasionType,
		Location:  input.Location,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		DressCode: input.DressCode,
		ClothIDs:  input.ClothIDs,
		Notes:     input.Notes,
		Ownership: domain.Ownership{
			OwnerID:    creator.AccountID,
			OwnerType:  creator.Role,
			Visibility: domain.VisibilityPrivate,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, occasion)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("occasion_id", created.ID).Str("owner_id", creator.AccountID).Msg("occasion created")
	return created, nil
}

func (s *OccasionService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Occasion, error) {
	occasion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller, occasion.Ownership, domain.IntentRead) {
		return nil, domain.ErrForbidden
	}
	return occasion, nil
}

func (s *OccasionService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdateOccasionInput) (*domain.Occasion, error) {
	occasion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller, occasion.Ownership, domain.IntentWrite) {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		occasion.Title = *input.Title
	}
	if input.Type != nil {
		occasion.Type = *input.Type
	}
	if input.Location != nil {
		occasion.Location = *input.Location
	}
	if input.Date != nil {
		occasion.Date = *input.Date
	}
	if input.StartTime != nil {
		occasion.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		occasion.EndTime = *input.EndTime
	}
	if input.DressCode != nil {
		occasion.DressCode = *input.DressCode
	}
	if input.ClothIDs != nil {
		occasion.ClothIDs = input.ClothIDs
	}
	if input.Notes != nil {
		occasion.Notes = *input.Notes
	}
	occasion.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, occasion)
}

func (s *OccasionService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	occasion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccess(caller, occasion.Ownership, domain.IntentWrite) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *OccasionService) List(ctx context.Context, caller domain.Identity, filter ports.OccasionFilter, page ports.PageRequest) (*ports.OccasionPage, error) {
	page = normalizePage(page)
	items, total, err := s.repo.List(ctx, domain.ListScope(caller), filter, page)
	if err != nil {
		return nil, err
	}
	return &ports.OccasionPage{Items: items, Meta: pageMeta(total, page)}, nil
}
