package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/api/metrics"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// WeatherHandler serves cached weather snapshots for outfit planning.
type WeatherHandler struct {
	service ports.WeatherService
}

func NewWeatherHandler(service ports.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

type putWeatherRequest struct {
	Provider     string  `json:"provider"      validate:"required"`
	TemperatureC float64 `json:"temperature_c"`
	Condition    string  `json:"condition"     validate:"required"`
	Humidity     int     `json:"humidity"      validate:"min=0,max=100"`
	WindSpeed    float64 `json:"wind_speed"    validate:"min=0"`
}

// Get returns the cached report for a location.
//
// @Summary      Cached weather for a location
// @Tags         weather
// @Produce      json
// @Param        location  path      string  true  "Location name"
// @Success      200       {object}  domain.WeatherReport
// @Failure      404       {object}  errorResponse
// @Router       /api/weather/{location} [get]
func (h *WeatherHandler) Get(c echo.Context) error {
	report, err := h.service.Get(c.Request().Context(), c.Param("location"))
	if err != nil {
		if errors.Is(err, domain.ErrWeatherNotFound) {
			metrics.WeatherCacheTotal.WithLabelValues("miss").Inc()
		}
		return err
	}

	metrics.WeatherCacheTotal.WithLabelValues("hit").Inc()
	return c.JSON(http.StatusOK, report)
}

// Put stores a fresh report fetched from an external provider.
//
// @Summary      Store a weather report
// @Tags         weather
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        location  path      string             true  "Location name"
// @Param        body      body      putWeatherRequest  true  "Weather report"
// @Success      200       {object}  domain.WeatherReport
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Router       /api/weather/{location} [put]
func (h *WeatherHandler) Put(c echo.Context) error {
	var req putWeatherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report := &domain.WeatherReport{
		Location:     c.Param("location"),
		Provider:     req.Provider,
		TemperatureC: req.TemperatureC,
		Condition:    req.Condition,
		Humidity:     req.Humidity,
		WindSpeed:    req.WindSpeed,
		FetchedAt:    time.Now().UTC(),
	}
	if err := h.service.Put(c.Request().Context(), report); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}
