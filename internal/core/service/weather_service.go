package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

const defaultWeatherTTL = 30 * time.Minute

// WeatherService serves cached weather snapshots. The provider that produces
// them is an external collaborator pushing reports in; nothing here calls out.
type WeatherService struct {
	cache ports.WeatherCache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewWeatherService(cache ports.WeatherCache, ttl time.Duration, log zerolog.Logger) *WeatherService {
	if ttl <= 0 {
		ttl = defaultWeatherTTL
	}
	return &WeatherService{cache: cache, ttl: ttl, log: log}
}

func (s *WeatherService) Get(ctx context.Context, location string) (*domain.WeatherReport, error) {
	return s.cache.Get(ctx, normalizeLocation(location))
}

func (s *WeatherService) Put(ctx context.Context, report *domain.WeatherReport) error {
	report.Location = normalizeLocation(report.Location)
	if report.FetchedAt.IsZero() {
		report.FetchedAt = time.Now().UTC()
	}

	if err := s.cache.Set(ctx, report, s.ttl); err != nil {
		return err
	}
	s.log.Debug().Str("location", report.Location).Msg("weather report cached")
	return nil
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
