package forecast

import "errors"

var (
	// ErrUpstream is returned when the upstream provider cannot be reached
	// or answers with a non-2xx status. Handlers map it to 503.
	ErrUpstream = errors.New("external API error")

	// ErrMissingDaily is returned when the upstream daily payload lacks one
	// of the required fields.
	ErrMissingDaily = errors.New("missing required daily data")

	// ErrMissingHourly is returned when the upstream hourly payload lacks
	// the pressure or time series.
	ErrMissingHourly = errors.New("missing hourly pressure data")

	// ErrProcessing covers any other failure while transforming upstream
	// data into a response.
	ErrProcessing = errors.New("error processing data")
)
