package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/GerardAdamiak/WeatherAppBackend/internal/forecast"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forecast.Service) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API is running",
		})
	})

	app.Get("/forecast", func(c *fiber.Ctx) error {
		coord, err := parseCoordinateQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid coordinates")
		}

		days, err := service.SevenDayForecast(c.Context(), coord)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(days)
	})

	app.Get("/summary", func(c *fiber.Ctx) error {
		coord, err := parseCoordinateQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid coordinates")
		}

		summary, err := service.WeeklySummary(c.Context(), coord)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(summary)
	})
}

// parseCoordinateQuery extracts and validates lat/lon. Validation happens
// before any upstream call; failure means a 400 with no network traffic.
func parseCoordinateQuery(c *fiber.Ctx) (forecast.Coordinate, error) {
	var coord forecast.Coordinate

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return coord, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return coord, err
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return coord, err
	}

	coord.Lat = lat
	coord.Lon = lon
	if err := validate.Struct(coord); err != nil {
		return coord, err
	}

	return coord, nil
}

// mapServiceError converts the service error taxonomy into HTTP statuses:
// upstream failures are 503, everything else is a controlled 500.
func mapServiceError(err error) *fiber.Error {
	switch {
	case errors.Is(err, forecast.ErrUpstream):
		return fiber.NewError(fiber.StatusServiceUnavailable, forecast.ErrUpstream.Error())
	case errors.Is(err, forecast.ErrMissingDaily):
		return fiber.NewError(fiber.StatusInternalServerError, forecast.ErrMissingDaily.Error())
	case errors.Is(err, forecast.ErrMissingHourly):
		return fiber.NewError(fiber.StatusInternalServerError, forecast.ErrMissingHourly.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, forecast.ErrProcessing.Error())
	}
}
