package forecast

import "math"

// Fixed installation parameters for the solar yield estimate.
const (
	panelPowerKW     = 2.5
	systemEfficiency = 0.2
)

// EstimateSolarEnergy converts a day's sunshine duration in seconds into an
// estimated yield in kilowatt-hours, rounded to two decimals. Input is not
// bounds-checked; negative or oversized durations pass through the
// arithmetic unchanged.
func EstimateSolarEnergy(sunshineSeconds float64) float64 {
	return round2(panelPowerKW * (sunshineSeconds / 3600) * systemEfficiency)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
