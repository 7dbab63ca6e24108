package forecast

// Coordinate identifies the location a forecast is requested for.
// Latitude and longitude outside their valid ranges are rejected before
// any upstream call is made.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// DailyForecast is one day of the 7-day forecast view, including the
// estimated solar yield for that day's sunshine duration.
type DailyForecast struct {
	Date           string  `json:"date"`
	WeatherCode    int     `json:"weather_code"`
	TempMin        float64 `json:"temp_min"`
	TempMax        float64 `json:"temp_max"`
	SolarEnergyKWh float64 `json:"solar_energy_kwh"`
}

// WeeklySummary is the aggregate view derived from the daily series and
// the hourly pressure series.
type WeeklySummary struct {
	AvgPressure      float64 `json:"avg_pressure"`
	AvgSunshineHours float64 `json:"avg_sunshine_hours"`
	MinTemp          float64 `json:"min_temp"`
	MaxTemp          float64 `json:"max_temp"`
	WeeklySummary    string  `json:"weekly_summary"`
}

// Precipitation classifications used in WeeklySummary.WeeklySummary.
const (
	SummaryWithPrecipitation    = "with precipitation"
	SummaryWithoutPrecipitation = "without precipitation"
)

// DailySeries holds the per-day arrays returned by the upstream provider.
// All slices are positionally aligned with Time. A nil slice means the
// field was absent from the upstream payload.
type DailySeries struct {
	Time            []string
	WeatherCode     []int
	TempMin         []float64
	TempMax         []float64
	SunshineSeconds []float64
}

// HourlySeries holds hourly mean-sea-level pressure samples, positionally
// aligned with Time.
type HourlySeries struct {
	Time        []string
	PressureMSL []float64
}
