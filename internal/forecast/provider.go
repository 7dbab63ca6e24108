package forecast

import "context"

// Provider abstracts the upstream forecast API (Open-Meteo).
type Provider interface {
	Name() string

	// FetchDaily returns the daily series (temperature extremes, weather
	// code, sunshine duration) for the coordinate, with the provider's
	// timezone resolved automatically.
	FetchDaily(ctx context.Context, coord Coordinate) (DailySeries, error)

	// FetchHourlyPressure returns the hourly mean-sea-level pressure series
	// for the coordinate.
	FetchHourlyPressure(ctx context.Context, coord Coordinate) (HourlySeries, error)
}
