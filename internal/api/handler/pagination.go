package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// pageRequest parses the ?page, ?limit and ?sort query parameters.
// Sort uses "field:dir" syntax, comma-separated: ?sort=price:asc,created_at:desc.
// Out-of-range values are left to the service layer to normalise.
func pageRequest(c echo.Context) ports.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return ports.PageRequest{
		Page:  page,
		Limit: limit,
		Sort:  parseSort(c.QueryParam("sort")),
	}
}

func parseSort(raw string) []ports.SortField {
	if raw == "" {
		return nil
	}

	var fields []ports.SortField
	for _, part := range strings.Split(raw, ",") {
		name, dir, _ := strings.Cut(strings.TrimSpace(part), ":")
		if name == "" {
			continue
		}
		fields = append(fields, ports.SortField{
			Field: name,
			Desc:  strings.EqualFold(dir, "desc"),
		})
	}
	return fields
}

// floatParam parses an optional float query parameter; nil when absent or
// malformed.
func floatParam(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// boolParam parses an optional boolean query parameter; nil when absent or
// malformed.
func boolParam(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
