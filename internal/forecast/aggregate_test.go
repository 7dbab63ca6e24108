package forecast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sevenDaySeries builds a daily series of 7 entries with fixed values.
func sevenDaySeries(codes []int) DailySeries {
	d := DailySeries{
		WeatherCode: codes,
	}
	for i := 0; i < 7; i++ {
		d.Time = append(d.Time, fmt.Sprintf("2024-05-%02d", i+1))
		d.TempMin = append(d.TempMin, 10+float64(i))
		d.TempMax = append(d.TempMax, 20+float64(i))
		d.SunshineSeconds = append(d.SunshineSeconds, 3600)
	}
	return d
}

// hourlyPressure builds two readings per day for the given per-day means.
func hourlyPressure(dayMeans []float64) HourlySeries {
	var h HourlySeries
	for i, mean := range dayMeans {
		date := fmt.Sprintf("2024-05-%02d", i+1)
		h.Time = append(h.Time, date+"T06:00", date+"T18:00")
		h.PressureMSL = append(h.PressureMSL, mean-1, mean+1)
	}
	return h
}

func TestSummarizeTemperatureAndSunshine(t *testing.T) {
	daily := sevenDaySeries([]int{0, 0, 0, 0, 0, 0, 0})
	hourly := hourlyPressure([]float64{1000, 1000, 1000, 1000, 1000, 1000, 1000})

	got, err := Summarize(daily, hourly)
	require.NoError(t, err)

	assert.Equal(t, 10.0, got.MinTemp)
	assert.Equal(t, 26.0, got.MaxTemp)
	assert.Equal(t, 1.0, got.AvgSunshineHours)
	assert.Equal(t, 1000.0, got.AvgPressure)
}

func TestSummarizePressureMeanOfDailyMeans(t *testing.T) {
	daily := sevenDaySeries([]int{0, 0, 0, 0, 0, 0, 0})
	// Per-day means 1001..1007 -> weekly mean 1004.
	hourly := hourlyPressure([]float64{1001, 1002, 1003, 1004, 1005, 1006, 1007})

	got, err := Summarize(daily, hourly)
	require.NoError(t, err)
	assert.Equal(t, 1004.0, got.AvgPressure)
}

func TestSummarizePressureTakesFirstSevenDates(t *testing.T) {
	daily := sevenDaySeries([]int{0, 0, 0, 0, 0, 0, 0})
	// An eighth date with an extreme mean must not contribute.
	hourly := hourlyPressure([]float64{1000, 1000, 1000, 1000, 1000, 1000, 1000, 9000})

	got, err := Summarize(daily, hourly)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.AvgPressure)
}

func TestSummarizePressureFewerThanSevenDates(t *testing.T) {
	daily := sevenDaySeries([]int{0, 0, 0, 0, 0, 0, 0})
	// Two distinct dates: divide by the actual count, not 7.
	hourly := hourlyPressure([]float64{1000, 1010})

	got, err := Summarize(daily, hourly)
	require.NoError(t, err)
	assert.Equal(t, 1005.0, got.AvgPressure)
}

func TestSummarizePressureZipsShorterArray(t *testing.T) {
	daily := sevenDaySeries([]int{0, 0, 0, 0, 0, 0, 0})
	hourly := hourlyPressure([]float64{1000, 1020})
	// Extra timestamps without matching readings are ignored.
	hourly.Time = append(hourly.Time, "2024-05-03T06:00", "2024-05-03T18:00")

	got, err := Summarize(daily, hourly)
	require.NoError(t, err)
	assert.Equal(t, 1010.0, got.AvgPressure)
}

func TestSummarizePrecipitationClassification(t *testing.T) {
	hourly := hourlyPressure([]float64{1000, 1000, 1000, 1000, 1000, 1000, 1000})

	cases := []struct {
		name  string
		codes []int
		want  string
	}{
		{"three rain days", []int{61, 61, 61, 0, 0, 0, 0}, SummaryWithoutPrecipitation},
		{"four rain days", []int{61, 61, 61, 61, 0, 0, 0}, SummaryWithPrecipitation},
		{"code 50 below rain range", []int{50, 50, 50, 50, 0, 0, 0}, SummaryWithoutPrecipitation},
		{"code 51 lower bound", []int{51, 51, 51, 51, 0, 0, 0}, SummaryWithPrecipitation},
		{"code 98 upper bound", []int{98, 98, 98, 98, 0, 0, 0}, SummaryWithPrecipitation},
		{"code 99 above rain range", []int{99, 99, 99, 99, 0, 0, 0}, SummaryWithoutPrecipitation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Summarize(sevenDaySeries(tc.codes), hourly)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.WeeklySummary)
		})
	}
}

func TestSummarizeSunshineRounding(t *testing.T) {
	daily := sevenDaySeries([]int{0, 0, 0, 0, 0, 0, 0})
	// 5000 s/day = 1.3889 h/day -> 1.39 after rounding.
	for i := range daily.SunshineSeconds {
		daily.SunshineSeconds[i] = 5000
	}
	hourly := hourlyPressure([]float64{1000, 1000, 1000, 1000, 1000, 1000, 1000})

	got, err := Summarize(daily, hourly)
	require.NoError(t, err)
	assert.Equal(t, 1.39, got.AvgSunshineHours)
}

func TestSummarizeEmptySeries(t *testing.T) {
	hourly := hourlyPressure([]float64{1000})

	_, err := Summarize(DailySeries{}, hourly)
	assert.Error(t, err)

	_, err = Summarize(sevenDaySeries([]int{0, 0, 0, 0, 0, 0, 0}), HourlySeries{})
	assert.Error(t, err)
}
