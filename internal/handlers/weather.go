package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/soratabi/travel-assistant-backend/internal/services"
	"github.com/soratabi/travel-assistant-backend/utils"
)

// Geolocation settings the browser client uses before calling this endpoint
// with lat/lon: bounded wait, any cached fix accepted, high accuracy off.
const (
	GeolocationTimeout      = 30 * time.Second
	GeolocationMaximumAge   = time.Duration(1<<63 - 1)
	GeolocationHighAccuracy = false
)

func (h *Handler) Weather(c *fiber.Ctx) error {
	q := services.WeatherQuery{
		City: c.Query("city"),
		Lat:  c.Query("lat"),
		Lon:  c.Query("lon"),
	}

	snap, mock, err := h.weather.Fetch(c.Context(), q)
	if err != nil {
		if errors.Is(err, services.ErrMissingLocation) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please provide either a city name or coordinates (lat, lon)")
		}
		return utils.ErrorDetailResponse(c, fiber.StatusInternalServerError, "Failed to fetch weather data", err.Error())
	}

	if mock {
		return c.JSON(fiber.Map{
			"error": "Weather API key not configured. Please add WEATHER_API_KEY to your .env file",
			"mock":  true,
			"data":  snap,
		})
	}

	return c.JSON(snap)
}
