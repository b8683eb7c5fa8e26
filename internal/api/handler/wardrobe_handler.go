package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// WardrobeHandler handles HTTP requests for styler wardrobes.
type WardrobeHandler struct {
	service ports.WardrobeService
}

func NewWardrobeHandler(service ports.WardrobeService) *WardrobeHandler {
	return &WardrobeHandler{service: service}
}

type createWardrobeItemRequest struct {
	ItemName     string   `json:"item_name" validate:"required"`
	Images       []string `json:"images"    validate:"omitempty,dive,url"`
	Category     string   `json:"category"  validate:"required,oneof=top bottom dress outerwear shoes accessory other"`
	Brand        string   `json:"brand"`
	Colors       []string `json:"colors"`
	Material     string   `json:"material"`
	Size         string   `json:"size"`
	Seasons      []string `json:"seasons"   validate:"omitempty,dive,oneof=spring summer autumn winter all"`
	OccasionTags []string `json:"occasion_tags"`
}

type updateWardrobeItemRequest struct {
	ItemName     *string  `json:"item_name"`
	Images       []string `json:"images"   validate:"omitempty,dive,url"`
	Category     *string  `json:"category" validate:"omitempty,oneof=top bottom dress outerwear shoes accessory other"`
	Brand        *string  `json:"brand"`
	Colors       []string `json:"colors"`
	Material     *string  `json:"material"`
	Size         *string  `json:"size"`
	Seasons      []string `json:"seasons"  validate:"omitempty,dive,oneof=spring summer autumn winter all"`
	OccasionTags []string `json:"occasion_tags"`
	Wearable     *bool    `json:"wearable"`
	Archived     *bool    `json:"archived"`
}

type listWardrobeResponse struct {
	Data []*domain.WardrobeItem `json:"data"`
	Meta ports.PageMeta         `json:"meta"`
}

func wardrobeFilter(c echo.Context) ports.WardrobeFilter {
	return ports.WardrobeFilter{
		Category: domain.WardrobeCategory(c.QueryParam("category")),
		Season:   c.QueryParam("season"),
		Archived: boolParam(c, "archived"),
	}
}

// Create adds a garment to the calling styler's wardrobe.
//
// @Summary      Add a wardrobe item
// @Tags         wardrobe
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWardrobeItemRequest  true  "Item details"
// @Success      201   {object}  domain.WardrobeItem
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/wardrobe [post]
func (h *WardrobeHandler) Create(c echo.Context) error {
	var req createWardrobeItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), caller(c), ports.CreateWardrobeItemInput{
		ItemName:     req.ItemName,
		Images:       req.Images,
		Category:     domain.WardrobeCategory(req.Category),
		Brand:        req.Brand,
		Colors:       req.Colors,
		Material:     req.Material,
		Size:         req.Size,
		Seasons:      req.Seasons,
		OccasionTags: req.OccasionTags,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}

// Get returns one wardrobe item; only the owner or an admin may see it.
//
// @Summary      Get a wardrobe item
// @Tags         wardrobe
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  domain.WardrobeItem
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/wardrobe/{id} [get]
func (h *WardrobeHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), caller(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Update modifies an owned wardrobe item.
//
// @Summary      Update a wardrobe item
// @Tags         wardrobe
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Item id"
// @Param        body  body      updateWardrobeItemRequest  true  "Fields to change"
// @Success      200   {object}  domain.WardrobeItem
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/wardrobe/{id} [put]
func (h *WardrobeHandler) Update(c echo.Context) error {
	var req updateWardrobeItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateWardrobeItemInput{
		ItemName:     req.ItemName,
		Images:       req.Images,
		Brand:        req.Brand,
		Colors:       req.Colors,
		Material:     req.Material,
		Size:         req.Size,
		Seasons:      req.Seasons,
		OccasionTags: req.OccasionTags,
		Wearable:     req.Wearable,
		Archived:     req.Archived,
	}
	if req.Category != nil {
		cat := domain.WardrobeCategory(*req.Category)
		input.Category = &cat
	}

	item, err := h.service.Update(c.Request().Context(), caller(c), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes an owned wardrobe item.
//
// @Summary      Delete a wardrobe item
// @Tags         wardrobe
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/wardrobe/{id} [delete]
func (h *WardrobeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), caller(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns the caller's wardrobe, or all wardrobes for admins.
//
// @Summary      List wardrobe items
// @Tags         wardrobe
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  listWardrobeResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/wardrobe [get]
func (h *WardrobeHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), caller(c), wardrobeFilter(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listWardrobeResponse{Data: page.Items, Meta: page.Meta})
}
