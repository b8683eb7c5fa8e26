package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPageRequest_ParsesQuery(t *testing.T) {
	c := queryContext(t, "page=3&limit=25&sort=price:asc,created_at:desc")

	page := pageRequest(c)
	if page.Page != 3 || page.Limit != 25 {
		t.Fatalf("unexpected paging: %+v", page)
	}
	if len(page.Sort) != 2 {
		t.Fatalf("expected 2 sort fields, got %d", len(page.Sort))
	}
	if page.Sort[0].Field != "price" || page.Sort[0].Desc {
		t.Fatalf("unexpected first sort: %+v", page.Sort[0])
	}
	if page.Sort[1].Field != "created_at" || !page.Sort[1].Desc {
		t.Fatalf("unexpected second sort: %+v", page.Sort[1])
	}
}

func TestPageRequest_DefaultsAndGarbage(t *testing.T) {
	c := queryContext(t, "page=abc&sort=:desc,")

	page := pageRequest(c)
	if page.Page != 0 || page.Limit != 0 {
		t.Fatalf("expected zero values for the service to normalise, got %+v", page)
	}
	if len(page.Sort) != 0 {
		t.Fatalf("expected no sort fields, got %+v", page.Sort)
	}
}

func TestFloatParam(t *testing.T) {
	c := queryContext(t, "min_price=19.5&max_price=oops")

	if v := floatParam(c, "min_price"); v == nil || *v != 19.5 {
		t.Fatalf("expected 19.5, got %v", v)
	}
	if v := floatParam(c, "max_price"); v != nil {
		t.Fatalf("expected nil for malformed value, got %v", *v)
	}
	if v := floatParam(c, "absent"); v != nil {
		t.Fatalf("expected nil for absent value, got %v", *v)
	}
}
