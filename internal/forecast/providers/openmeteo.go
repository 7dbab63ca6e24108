package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/GerardAdamiak/WeatherAppBackend/internal/forecast"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// dailyFields is the field list requested for the daily series.
const dailyFields = "temperature_2m_max,temperature_2m_min,weathercode,sunshine_duration"

// hourlyFields is the field list requested for the hourly series.
const hourlyFields = "pressure_msl"

// OpenMeteoProvider implements the forecast.Provider interface for
// Open-Meteo. No API key is required. Each call is a single attempt through
// a circuit breaker; there are no retries.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a provider using the given HTTP client,
// which must carry the outbound timeout. An empty baseURL selects the
// public endpoint.
func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchDaily requests the daily temperature extremes, weather code and
// sunshine duration with the timezone resolved from the coordinates.
func (p *OpenMeteoProvider) FetchDaily(ctx context.Context, coord forecast.Coordinate) (forecast.DailySeries, error) {
	values := baseQuery(coord)
	values.Set("daily", dailyFields)

	var payload struct {
		Daily struct {
			Time            []string  `json:"time"`
			TempMax         []float64 `json:"temperature_2m_max"`
			TempMin         []float64 `json:"temperature_2m_min"`
			WeatherCode     []int     `json:"weathercode"`
			SunshineSeconds []float64 `json:"sunshine_duration"`
		} `json:"daily"`
	}
	if err := p.getJSON(ctx, values, &payload); err != nil {
		return forecast.DailySeries{}, err
	}

	return forecast.DailySeries{
		Time:            payload.Daily.Time,
		WeatherCode:     payload.Daily.WeatherCode,
		TempMin:         payload.Daily.TempMin,
		TempMax:         payload.Daily.TempMax,
		SunshineSeconds: payload.Daily.SunshineSeconds,
	}, nil
}

// FetchHourlyPressure requests the hourly mean-sea-level pressure series.
func (p *OpenMeteoProvider) FetchHourlyPressure(ctx context.Context, coord forecast.Coordinate) (forecast.HourlySeries, error) {
	values := baseQuery(coord)
	values.Set("hourly", hourlyFields)

	var payload struct {
		Hourly struct {
			Time        []string  `json:"time"`
			PressureMSL []float64 `json:"pressure_msl"`
		} `json:"hourly"`
	}
	if err := p.getJSON(ctx, values, &payload); err != nil {
		return forecast.HourlySeries{}, err
	}

	return forecast.HourlySeries{
		Time:        payload.Hourly.Time,
		PressureMSL: payload.Hourly.PressureMSL,
	}, nil
}

// Ping checks upstream reachability with a minimal forecast request. Used
// by the health monitor, not by the request pipelines.
func (p *OpenMeteoProvider) Ping(ctx context.Context) error {
	values := baseQuery(forecast.Coordinate{})
	var payload struct{}
	return p.getJSON(ctx, values, &payload)
}

func baseQuery(coord forecast.Coordinate) url.Values {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	values.Set("timezone", "auto")
	return values
}

// getJSON performs one GET through the circuit breaker and decodes the
// body into out. Transport failures, timeouts, non-2xx statuses, decode
// failures and an open circuit all surface as forecast.ErrUpstream.
func (p *OpenMeteoProvider) getJSON(ctx context.Context, values url.Values, out interface{}) error {
	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", forecast.ErrUpstream, err)
	}

	result, err := p.circuit.Execute(func() (interface{}, error) {
		resp, execErr := p.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", forecast.ErrUpstream, err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", forecast.ErrUpstream, err)
	}
	return nil
}
