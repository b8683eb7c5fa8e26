package domain

import "time"

// WeatherReport is a cached snapshot of conditions for one location. The
// provider integration lives outside this service; reports are pushed in and
// expire from the cache on their own.
type WeatherReport struct {
	Location     string    `json:"location"`
	Provider     string    `json:"provider"`
	TemperatureC float64   `json:"temperature_c"`
	Condition    string    `json:"condition"`
	Humidity     int       `json:"humidity"`
	WindSpeed    float64   `json:"wind_speed"`
	FetchedAt    time.Time `json:"fetched_at"`
}
