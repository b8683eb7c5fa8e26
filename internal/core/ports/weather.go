package ports

import (
	"context"
	"time"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// WeatherCache stores weather reports per location with a TTL.
type WeatherCache interface {
	// Get returns domain.ErrWeatherNotFound when nothing is cached.
	Get(ctx context.Context, location string) (*domain.WeatherReport, error)
	Set(ctx context.Context, report *domain.WeatherReport, ttl time.Duration) error
}

// WeatherService serves cached weather to outfit planning.
type WeatherService interface {
	Get(ctx context.Context, location string) (*domain.WeatherReport, error)
	Put(ctx context.Context, report *domain.WeatherReport) error
}
