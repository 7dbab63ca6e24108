package forecast

import (
	"errors"
	"sort"
	"strings"
)

const (
	// summaryDays caps how many per-date pressure means contribute to the
	// weekly average.
	summaryDays = 7

	// Weather codes in [rainCodeMin, rainCodeMax] count as precipitation.
	rainCodeMin = 51
	rainCodeMax = 98

	// rainDayThreshold is the number of precipitation days at which the
	// week is classified as "with precipitation".
	rainDayThreshold = 4
)

// Summarize reduces the daily series and the hourly pressure series into a
// WeeklySummary. Temperature extremes, sunshine average and the
// precipitation classification run over the full daily series; the
// pressure average runs over the first summaryDays distinct calendar dates
// (or fewer, if upstream returned fewer).
func Summarize(daily DailySeries, hourly HourlySeries) (WeeklySummary, error) {
	if len(daily.TempMin) == 0 || len(daily.TempMax) == 0 || len(daily.SunshineSeconds) == 0 {
		return WeeklySummary{}, errors.New("empty daily series")
	}

	minTemp := daily.TempMin[0]
	for _, t := range daily.TempMin[1:] {
		if t < minTemp {
			minTemp = t
		}
	}

	maxTemp := daily.TempMax[0]
	for _, t := range daily.TempMax[1:] {
		if t > maxTemp {
			maxTemp = t
		}
	}

	var sunshineHours float64
	for _, sec := range daily.SunshineSeconds {
		sunshineHours += sec / 3600
	}
	avgSunshine := round2(sunshineHours / float64(len(daily.SunshineSeconds)))

	avgPressure, err := averageDailyPressure(hourly)
	if err != nil {
		return WeeklySummary{}, err
	}

	rainDays := 0
	for _, code := range daily.WeatherCode {
		if code >= rainCodeMin && code <= rainCodeMax {
			rainDays++
		}
	}
	classification := SummaryWithoutPrecipitation
	if rainDays >= rainDayThreshold {
		classification = SummaryWithPrecipitation
	}

	return WeeklySummary{
		AvgPressure:      avgPressure,
		AvgSunshineHours: avgSunshine,
		MinTemp:          minTemp,
		MaxTemp:          maxTemp,
		WeeklySummary:    classification,
	}, nil
}

// averageDailyPressure groups hourly samples by the date portion of their
// timestamps, averages each date, then averages the first summaryDays
// per-date means in ascending date order.
func averageDailyPressure(hourly HourlySeries) (float64, error) {
	n := len(hourly.Time)
	if len(hourly.PressureMSL) < n {
		n = len(hourly.PressureMSL)
	}

	byDate := make(map[string][]float64)
	for i := 0; i < n; i++ {
		date, _, _ := strings.Cut(hourly.Time[i], "T")
		byDate[date] = append(byDate[date], hourly.PressureMSL[i])
	}
	if len(byDate) == 0 {
		return 0, errors.New("no hourly pressure samples")
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > summaryDays {
		dates = dates[:summaryDays]
	}

	var sumOfMeans float64
	for _, date := range dates {
		samples := byDate[date]
		var sum float64
		for _, p := range samples {
			sum += p
		}
		sumOfMeans += sum / float64(len(samples))
	}

	return round2(sumOfMeans / float64(len(dates))), nil
}
