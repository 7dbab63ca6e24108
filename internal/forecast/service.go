package forecast

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// forecastDays is the fixed length of the 7-day forecast view.
const forecastDays = 7

// Service builds the two derived views on top of a Provider. It holds no
// state between requests.
type Service struct {
	provider Provider
	log      *zap.SugaredLogger
}

// NewService creates a new Service.
func NewService(provider Provider, log *zap.SugaredLogger) *Service {
	return &Service{
		provider: provider,
		log:      log,
	}
}

// SevenDayForecast fetches the daily series and maps its first seven
// entries positionally into DailyForecast values. Short or incomplete
// upstream data returns a structured error instead of reading out of
// bounds.
func (s *Service) SevenDayForecast(ctx context.Context, coord Coordinate) ([]DailyForecast, error) {
	daily, err := s.provider.FetchDaily(ctx, coord)
	if err != nil {
		s.log.Warnw("daily fetch failed", "provider", s.provider.Name(), "lat", coord.Lat, "lon", coord.Lon, "error", err)
		return nil, err
	}

	if err := validateDaily(daily); err != nil {
		return nil, err
	}
	if shortest(daily) < forecastDays {
		return nil, fmt.Errorf("%w: upstream returned fewer than %d daily entries", ErrProcessing, forecastDays)
	}

	days := make([]DailyForecast, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		days = append(days, DailyForecast{
			Date:           daily.Time[i],
			WeatherCode:    daily.WeatherCode[i],
			TempMin:        daily.TempMin[i],
			TempMax:        daily.TempMax[i],
			SolarEnergyKWh: EstimateSolarEnergy(daily.SunshineSeconds[i]),
		})
	}
	return days, nil
}

// WeeklySummary fetches the daily and hourly series concurrently, waits for
// both, then aggregates them. The two upstream calls have no ordering
// dependency; both must complete before aggregation.
func (s *Service) WeeklySummary(ctx context.Context, coord Coordinate) (WeeklySummary, error) {
	var (
		wg        sync.WaitGroup
		daily     DailySeries
		hourly    HourlySeries
		dailyErr  error
		hourlyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		daily, dailyErr = s.provider.FetchDaily(ctx, coord)
	}()
	go func() {
		defer wg.Done()
		hourly, hourlyErr = s.provider.FetchHourlyPressure(ctx, coord)
	}()
	wg.Wait()

	if dailyErr != nil {
		s.log.Warnw("daily fetch failed", "provider", s.provider.Name(), "lat", coord.Lat, "lon", coord.Lon, "error", dailyErr)
		return WeeklySummary{}, dailyErr
	}
	if hourlyErr != nil {
		s.log.Warnw("hourly fetch failed", "provider", s.provider.Name(), "lat", coord.Lat, "lon", coord.Lon, "error", hourlyErr)
		return WeeklySummary{}, hourlyErr
	}

	if err := validateDaily(daily); err != nil {
		return WeeklySummary{}, err
	}
	if hourly.Time == nil || hourly.PressureMSL == nil {
		return WeeklySummary{}, ErrMissingHourly
	}

	summary, err := Summarize(daily, hourly)
	if err != nil {
		s.log.Errorw("summary aggregation failed", "lat", coord.Lat, "lon", coord.Lon, "error", err)
		return WeeklySummary{}, fmt.Errorf("%w: %v", ErrProcessing, err)
	}
	return summary, nil
}

// validateDaily checks that every required daily field was present in the
// upstream payload.
func validateDaily(d DailySeries) error {
	if d.Time == nil || d.TempMin == nil || d.TempMax == nil || d.SunshineSeconds == nil || d.WeatherCode == nil {
		return ErrMissingDaily
	}
	return nil
}

// shortest returns the length of the shortest daily array.
func shortest(d DailySeries) int {
	n := len(d.Time)
	for _, l := range []int{len(d.WeatherCode), len(d.TempMin), len(d.TempMax), len(d.SunshineSeconds)} {
		if l < n {
			n = l
		}
	}
	return n
}
