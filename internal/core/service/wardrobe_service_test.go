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

type stubWardrobeRepo struct {
	items  map[string]*domain.WardrobeItem
	nextID int
}

func newStubWardrobeRepo() *stubWardrobeRepo {
	return &stubWardrobeRepo{items: make(map[string]*domain.WardrobeItem)}
}

func cloneItem(i *domain.WardrobeItem) *domain.WardrobeItem {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

func (r *stubWardrobeRepo) Create(_ context.Context, item *domain.WardrobeItem) (*domain.WardrobeItem, error) {
	r.nextID++
	copy := cloneItem(item)
	copy.ID = "item_" + strconv.Itoa(r.nextID)
	r.items[copy.ID] = cloneItem(copy)
	return copy, nil
}

func (r *stubWardrobeRepo) FindByID(_ context.Context, id string) (*domain.WardrobeItem, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, domain.ErrWardrobeItemNotFound
	}
	return cloneItem(i), nil
}

func (r *stubWardrobeRepo) Update(_ context.Context, item *domain.WardrobeItem) (*domain.WardrobeItem, error) {
	if _, ok := r.items[item.ID]; !ok {
		return nil, domain.ErrWardrobeItemNotFound
	}
	r.items[item.ID] = cloneItem(item)
	return cloneItem(item), nil
}

func (r *stubWardrobeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrWardrobeItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubWardrobeRepo) List(_ context.Context, scope domain.Scope, f ports.WardrobeFilter, page ports.PageRequest) ([]*domain.WardrobeItem, int64, error) {
	var matched []*domain.WardrobeItem
	for _, i := range r.items {
		if !scope.Unrestricted && i.OwnerID != scope.OwnerID {
			continue
		}
		if f.Category != "" && i.Category != f.Category {
			continue
		}
		matched = append(matched, cloneItem(i))
	}
	return matched, int64(len(matched)), nil
}

func TestWardrobeService_AlwaysPrivate(t *testing.T) {
	svc := NewWardrobeService(newStubWardrobeRepo(), zerolog.Nop())
	styler := domain.Identity{AccountID: "s1", Role: domain.RoleStyler, Approved: true}

	item, err := svc.Create(context.Background(), styler, ports.CreateWardrobeItemInput{
		ItemName: "Silk blouse", Images: []string{"a.jpg"}, Category: domain.CategoryTop,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Visibility != domain.VisibilityPrivate {
		t.Fatalf("wardrobe item not private: %s", item.Visibility)
	}
	if item.OwnerType != domain.RoleStyler || item.OwnerID != "s1" {
		t.Fatalf("unexpected ownership: %+v", item.Ownership)
	}
	if len(item.Seasons) != 1 || item.Seasons[0] != "all" {
		t.Fatalf("expected default seasons [all], got %v", item.Seasons)
	}
}

func TestWardrobeService_CrossRolePrivateAccess(t *testing.T) {
	// A styler's private item is invisible to a partner with a different
	// account, but readable by an admin.
	svc := NewWardrobeService(newStubWardrobeRepo(), zerolog.Nop())
	ctx := context.Background()

	styler := domain.Identity{AccountID: "s1", Role: domain.RoleStyler, Approved: true}
	partner := domain.Identity{AccountID: "p1", Role: domain.RolePartner, Approved: true}
	admin := domain.Identity{AccountID: "a1", Role: domain.RoleAdmin, Approved: true}

	item, err := svc.Create(ctx, styler, ports.CreateWardrobeItemInput{
		ItemName: "Archive dress", Images: []string{"d.jpg"}, Category: domain.CategoryDress,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, partner, item.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("partner read of styler item: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(ctx, admin, item.ID); err != nil {
		t.Fatalf("admin read: %v", err)
	}
	if _, err := svc.Get(ctx, styler, item.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
}

func TestWardrobeService_ListScopedToOwner(t *testing.T) {
	svc := NewWardrobeService(newStubWardrobeRepo(), zerolog.Nop())
	ctx := context.Background()

	s1 := domain.Identity{AccountID: "s1", Role: domain.RoleStyler, Approved: true}
	s2 := domain.Identity{AccountID: "s2", Role: domain.RoleStyler, Approved: true}
	admin := domain.Identity{AccountID: "a1", Role: domain.RoleAdmin, Approved: true}

	_, _ = svc.Create(ctx, s1, ports.CreateWardrobeItemInput{ItemName: "A", Images: []string{"a"}, Category: domain.CategoryTop})
	_, _ = svc.Create(ctx, s2, ports.CreateWardrobeItemInput{ItemName: "B", Images: []string{"b"}, Category: domain.CategoryTop})

	own, err := svc.List(ctx, s1, ports.WardrobeFilter{}, ports.PageRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if own.Meta.Total != 1 || own.Items[0].OwnerID != "s1" {
		t.Fatalf("unexpected scoped list: %+v", own.Meta)
	}

	all, err := svc.List(ctx, admin, ports.WardrobeFilter{}, ports.PageRequest{})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if all.Meta.Total != 2 {
		t.Fatalf("admin total = %d, want 2", all.Meta.Total)
	}
}
