package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

type stubWeatherCache struct {
	reports map[string]*domain.WeatherReport
	lastTTL time.Duration
}

func newStubWeatherCache() *stubWeatherCache {
	return &stubWeatherCache{reports: make(map[string]*domain.WeatherReport)}
}

func (c *stubWeatherCache) Get(_ context.Context, location string) (*domain.WeatherReport, error) {
	r, ok := c.reports[location]
	if !ok {
		return nil, domain.ErrWeatherNotFound
	}
	return r, nil
}

func (c *stubWeatherCache) Set(_ context.Context, report *domain.WeatherReport, ttl time.Duration) error {
	c.reports[report.Location] = report
	c.lastTTL = ttl
	return nil
}

func TestWeatherService_NormalizesLocation(t *testing.T) {
	cache := newStubWeatherCache()
	svc := NewWeatherService(cache, time.Minute, zerolog.Nop())

	err := svc.Put(context.Background(), &domain.WeatherReport{
		Location:  "  Lisbon ",
		Provider:  "openweather",
		Condition: "clear",
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	report, err := svc.Get(context.Background(), "LISBON")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if report.Location != "lisbon" {
		t.Fatalf("expected normalised location, got %q", report.Location)
	}
	if report.FetchedAt.IsZero() {
		t.Fatalf("expected FetchedAt to be stamped")
	}
}

func TestWeatherService_MissIsNotFound(t *testing.T) {
	svc := NewWeatherService(newStubWeatherCache(), time.Minute, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "nowhere"); err != domain.ErrWeatherNotFound {
		t.Fatalf("expected weather not found, got %v", err)
	}
}

func TestWeatherService_TTLDefault(t *testing.T) {
	cache := newStubWeatherCache()
	svc := NewWeatherService(cache, 0, zerolog.Nop())

	if err := svc.Put(context.Background(), &domain.WeatherReport{Location: "oslo", Condition: "snow"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if cache.lastTTL != defaultWeatherTTL {
		t.Fatalf("expected default ttl, got %s", cache.lastTTL)
	}
}
