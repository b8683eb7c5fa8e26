package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// WeatherCache stores weather reports in Redis with a per-key TTL.
// Key format: weather:<location>
type WeatherCache struct {
	client *redis.Client
}

// NewWeatherCache creates a WeatherCache wrapping the given Redis client.
func NewWeatherCache(client *redis.Client) *WeatherCache {
	return &WeatherCache{client: client}
}

// Get returns the cached report for a location, or
// domain.ErrWeatherNotFound when nothing is cached (or it has expired).
func (w *WeatherCache) Get(ctx context.Context, location string) (*domain.WeatherReport, error) {
	raw, err := w.client.Get(ctx, w.key(location)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrWeatherNotFound
		}
		return nil, fmt.Errorf("weather get: %w", err)
	}

	var report domain.WeatherReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("weather decode: %w", err)
	}
	return &report, nil
}

// Set stores a report under its location. Redis expires the key on its own
// after ttl; there is no manual invalidation.
func (w *WeatherCache) Set(ctx context.Context, report *domain.WeatherReport, ttl time.Duration) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("weather encode: %w", err)
	}
	return w.client.Set(ctx, w.key(report.Location), raw, ttl).Err()
}

func (w *WeatherCache) key(location string) string {
	return "weather:" + location
}
