package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// ClothHandler handles HTTP requests for the partner catalog.
type ClothHandler struct {
	service ports.ClothService
}

func NewClothHandler(service ports.ClothService) *ClothHandler {
	return &ClothHandler{service: service}
}

type createClothRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Image      string  `json:"image"      validate:"required,url"`
	Color      string  `json:"color"      validate:"required"`
	Category   string  `json:"category"   validate:"required"`
	Price      float64 `json:"price"      validate:"required,gt=0"`
	Visibility string  `json:"visibility" validate:"omitempty,oneof=public private"`
}

type updateClothRequest struct {
	Name       *string  `json:"name"`
	Image      *string  `json:"image"      validate:"omitempty,url"`
	Color      *string  `json:"color"`
	Category   *string  `json:"category"`
	Price      *float64 `json:"price"      validate:"omitempty,gt=0"`
	Visibility *string  `json:"visibility" validate:"omitempty,oneof=public private"`
}

type listClothesResponse struct {
	Data []*domain.Cloth `json:"data"`
	Meta ports.PageMeta  `json:"meta"`
}

func clothFilter(c echo.Context) ports.ClothFilter {
	return ports.ClothFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Color:    c.QueryParam("color"),
		MinPrice: floatParam(c, "min_price"),
		MaxPrice: floatParam(c, "max_price"),
	}
}

// Create adds a catalog item owned by the calling partner.
//
// @Summary      Create a catalog item
// @Tags         clothes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClothRequest  true  "Item details"
// @Success      201   {object}  domain.Cloth
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/clothes [post]
func (h *ClothHandler) Create(c echo.Context) error {
	var req createClothRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cloth, err := h.service.Create(c.Request().Context(), caller(c), ports.CreateClothInput{
		Name:       req.Name,
		Image:      req.Image,
		Color:      req.Color,
		Category:   req.Category,
		Price:      req.Price,
		Visibility: domain.Visibility(req.Visibility),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, cloth)
}

// Get returns one catalog item, subject to visibility and ownership.
//
// @Summary      Get a catalog item
// @Tags         clothes
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  domain.Cloth
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clothes/{id} [get]
func (h *ClothHandler) Get(c echo.Context) error {
	cloth, err := h.service.Get(c.Request().Context(), caller(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cloth)
}

// Update modifies an owned catalog item.
//
// @Summary      Update a catalog item
// @Tags         clothes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Item id"
// @Param        body  body      updateClothRequest  true  "Fields to change"
// @Success      200   {object}  domain.Cloth
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/clothes/{id} [put]
func (h *ClothHandler) Update(c echo.Context) error {
	var req updateClothRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateClothInput{
		Name:     req.Name,
		Image:    req.Image,
		Color:    req.Color,
		Category: req.Category,
		Price:    req.Price,
	}
	if req.Visibility != nil {
		v := domain.Visibility(*req.Visibility)
		input.Visibility = &v
	}

	cloth, err := h.service.Update(c.Request().Context(), caller(c), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cloth)
}

// Delete removes an owned catalog item.
//
// @Summary      Delete a catalog item
// @Tags         clothes
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clothes/{id} [delete]
func (h *ClothHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), caller(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns the catalog visible to the caller: public items plus their
// own, or everything for admins.
//
// @Summary      List catalog items
// @Tags         clothes
// @Produce      json
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Param        sort   query     string  false  "Sort, e.g. price:asc"
// @Success      200    {object}  listClothesResponse
// @Router       /api/clothes [get]
func (h *ClothHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), caller(c), clothFilter(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listClothesResponse{Data: page.Items, Meta: page.Meta})
}

// ListPublic serves the anonymous storefront.
//
// @Summary      List public catalog items
// @Tags         clothes
// @Produce      json
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  listClothesResponse
// @Router       /api/clothes/public [get]
func (h *ClothHandler) ListPublic(c echo.Context) error {
	page, err := h.service.ListPublic(c.Request().Context(), clothFilter(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listClothesResponse{Data: page.Items, Meta: page.Meta})
}

// ListMine returns the caller's own items, private included.
//
// @Summary      List own catalog items
// @Tags         clothes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listClothesResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/clothes/mine [get]
func (h *ClothHandler) ListMine(c echo.Context) error {
	page, err := h.service.ListMine(c.Request().Context(), caller(c), clothFilter(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listClothesResponse{Data: page.Items, Meta: page.Meta})
}

// Suggestions serves stylers browsing the public partner catalog.
//
// @Summary      Catalog suggestions for stylers
// @Tags         clothes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listClothesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/clothes/suggestions [get]
func (h *ClothHandler) Suggestions(c echo.Context) error {
	page, err := h.service.Suggestions(c.Request().Context(), caller(c), clothFilter(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listClothesResponse{Data: page.Items, Meta: page.Meta})
}
