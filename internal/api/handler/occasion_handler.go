package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// OccasionHandler handles HTTP requests for planned occasions.
type OccasionHandler struct {
	service ports.OccasionService
}

func NewOccasionHandler(service ports.OccasionService) *OccasionHandler {
	return &OccasionHandler{service: service}
}

type locationRequest struct {
	Venue   string  `json:"venue"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type createOccasionRequest struct {
	Title     string          `json:"title"      validate:"required"`
	Type      string          `json:"type"       validate:"required,oneof=wedding party meeting casual formal festival other"`
	Location  locationRequest `json:"location"`
	Date      time.Time       `json:"date"       validate:"required"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	DressCode string          `json:"dress_code"`
	ClothIDs  []string        `json:"cloth_ids"`
	Notes     string          `json:"notes"`
}

type updateOccasionRequest struct {
	Title     *string          `json:"title"`
	Type      *string          `json:"type" validate:"omitempty,oneof=wedding party meeting casual formal festival other"`
	Location  *locationRequest `json:"location"`
	Date      *time.Time       `json:"date"`
	StartTime *string          `json:"start_time"`
	EndTime   *string          `json:"end_time"`
	DressCode *string          `json:"dress_code"`
	ClothIDs  []string         `json:"cloth_ids"`
	Notes     *string          `json:"notes"`
}

type listOccasionsResponse struct {
	Data []*domain.Occasion `json:"data"`
	Meta ports.PageMeta     `json:"meta"`
}

func toLocation(req locationRequest) domain.Location {
	return domain.Location{
		Venue:   req.Venue,
		City:    req.City,
		Country: req.Country,
		Lat:     req.Lat,
		Lng:     req.Lng,
	}
}

func occasionFilter(c echo.Context) ports.OccasionFilter {
	filter := ports.OccasionFilter{
		Type: domain.OccasionType(c.QueryParam("type")),
	}
	if from, err := time.Parse(time.RFC3339, c.QueryParam("date_from")); err == nil {
		filter.DateFrom = from
	}
	if to, err := time.Parse(time.RFC3339, c.QueryParam("date_to")); err == nil {
		filter.DateTo = to
	}
	return filter
}

// Create plans a new occasion for the caller.
//
// @Summary      Plan an occasion
// @Tags         occasions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOccasionRequest  true  "Occasion details"
// @Success      201   {object}  domain.Occasion
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/occasions [post]
func (h *OccasionHandler) Create(c echo.Context) error {
	var req createOccasionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	occasion, err := h.service.Create(c.Request().Context(), caller(c), ports.CreateOccasionInput{
		Title:     req.Title,
		Type:      domain.OccasionType(req.Type),
		Location:  toLocation(req.Location),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		DressCode: req.DressCode,
		ClothIDs:  req.ClothIDs,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, occasion)
}

// Get returns one occasion; only the owner or an admin may see it.
//
// @Summary      Get an occasion
// @Tags         occasions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Occasion id"
// @Success      200  {object}  domain.Occasion
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/occasions/{id} [get]
func (h *OccasionHandler) Get(c echo.Context) error {
	occasion, err := h.service.Get(c.Request().Context(), caller(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, occasion)
}

// Update modifies an owned occasion.
//
// @Summary      Update an occasion
// @Tags         occasions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Occasion id"
// @Param        body  body      updateOccasionRequest  true  "Fields to change"
// @Success      200   {object}  domain.Occasion
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/occasions/{id} [put]
func (h *OccasionHandler) Update(c echo.Context) error {
	var req updateOccasionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateOccasionInput{
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		DressCode: req.DressCode,
		ClothIDs:  req.ClothIDs,
		Notes:     req.Notes,
	}
	if req.Type != nil {
		t := domain.OccasionType(*req.Type)
		input.Type = &t
	}
	if req.Location != nil {
		loc := toLocation(*req.Location)
		input.Location = &loc
	}

	occasion, err := h.service.Update(c.Request().Context(), caller(c), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, occasion)
}

// Delete removes an owned occasion.
//
// @Summary      Delete an occasion
// @Tags         occasions
// @Security     BearerAuth
// @Param        id  path  string  true  "Occasion id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/occasions/{id} [delete]
func (h *OccasionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), caller(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns the caller's occasions, or everything for admins.
//
// @Summary      List occasions
// @Tags         occasions
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  listOccasionsResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/occasions [get]
func (h *OccasionHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), caller(c), occasionFilter(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOccasionsResponse{Data: page.Items, Meta: page.Meta})
}
