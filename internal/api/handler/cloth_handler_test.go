package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

type stubClothService struct {
	createFn     func(ctx context.Context, creator domain.Identity, input ports.CreateClothInput) (*domain.Cloth, error)
	getFn        func(ctx context.Context, caller domain.Identity, id string) (*domain.Cloth, error)
	listPublicFn func(ctx context.Context, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error)
}

func (s *stubClothService) Create(ctx context.Context, creator domain.Identity, input ports.CreateClothInput) (*domain.Cloth, error) {
	return s.createFn(ctx, creator, input)
}

func (s *stubClothService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Cloth, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubClothService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdateClothInput) (*domain.Cloth, error) {
	return nil, domain.ErrClothNotFound
}

func (s *stubClothService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	return domain.ErrClothNotFound
}

func (s *stubClothService) List(ctx context.Context, caller domain.Identity, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	return &ports.ClothPage{}, nil
}

func (s *stubClothService) ListPublic(ctx context.Context, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	return s.listPublicFn(ctx, filter, page)
}

func (s *stubClothService) ListMine(ctx context.Context, caller domain.Identity, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	return &ports.ClothPage{}, nil
}

func (s *stubClothService) Suggestions(ctx context.Context, caller domain.Identity, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
	return &ports.ClothPage{}, nil
}

func TestClothHandler_Create_Success(t *testing.T) {
	stub := &stubClothService{
		createFn: func(ctx context.Context, creator domain.Identity, input ports.CreateClothInput) (*domain.Cloth, error) {
			if input.Visibility != domain.VisibilityPrivate {
				t.Fatalf("expected private visibility, got %q", input.Visibility)
			}
			return &domain.Cloth{ID: "cloth_1", Name: input.Name, Price: input.Price}, nil
		},
	}
	h := NewClothHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/clothes",
		`{"name":"Linen Blazer","image":"https://cdn.example.com/blazer.jpg","color":"beige","category":"outerwear","price":129.9,"visibility":"private"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestClothHandler_Create_RejectsInvalidVisibility(t *testing.T) {
	h := NewClothHandler(&stubClothService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/clothes",
		`{"name":"Blazer","image":"https://cdn.example.com/b.jpg","color":"beige","category":"outerwear","price":10,"visibility":"hidden"}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestClothHandler_Get_PropagatesForbidden(t *testing.T) {
	stub := &stubClothService{
		getFn: func(ctx context.Context, caller domain.Identity, id string) (*domain.Cloth, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewClothHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/clothes/cloth_1", "")
	c.SetParamNames("id")
	c.SetParamValues("cloth_1")

	if err := h.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestClothHandler_ListPublic_ForwardsFilter(t *testing.T) {
	var got ports.ClothFilter
	stub := &stubClothService{
		listPublicFn: func(ctx context.Context, filter ports.ClothFilter, page ports.PageRequest) (*ports.ClothPage, error) {
			got = filter
			if page.Page != 2 || page.Limit != 5 {
				t.Fatalf("unexpected page request: %+v", page)
			}
			return &ports.ClothPage{Meta: ports.PageMeta{Page: 2, Limit: 5, Pages: 1}}, nil
		},
	}
	h := NewClothHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/clothes/public?category=outerwear&min_price=50&page=2&limit=5", "")

	if err := h.ListPublic(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Category != "outerwear" || got.MinPrice == nil || *got.MinPrice != 50 {
		t.Fatalf("unexpected filter: %+v", got)
	}
}
