package httpapi

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Ishan3842/weather-dashboard/internal/store"
	"github.com/Ishan3842/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"cities": service.Cities(),
		})
	})

	v1.Post("/cities", func(c *fiber.Ctx) error {
		var req addCityRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// Blank and duplicate names are silently ignored; the fetch for
		// an accepted city completes in the background.
		added := service.AddCity(req.Name)

		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"added":  added,
			"cities": service.Cities(),
		})
	})

	v1.Delete("/cities/:name", func(c *fiber.Ctx) error {
		name, err := pathCity(c)
		if err != nil {
			return err
		}

		service.RemoveCity(name)
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(service.View())
	})

	v1.Get("/weather/:name", func(c *fiber.Ctx) error {
		snapshot, err := snapshotFor(c, service)
		if err != nil {
			return err
		}
		return c.JSON(snapshot)
	})

	v1.Get("/weather/:name/daily", func(c *fiber.Ctx) error {
		snapshot, err := snapshotFor(c, service)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"days": weather.GroupByDay(snapshot.Forecast),
		})
	})

	v1.Get("/weather/:name/chart", func(c *fiber.Ctx) error {
		snapshot, err := snapshotFor(c, service)
		if err != nil {
			return err
		}
		return c.JSON(weather.ToChartSeries(snapshot.Forecast))
	})
}

// addCityRequest is the POST /cities payload.
type addCityRequest struct {
	Name string `json:"name" validate:"required"`
}

// pathCity extracts the city name from the path. Names may contain
// spaces ("New York"), so the segment is percent-decoded.
func pathCity(c *fiber.Ctx) (string, error) {
	raw := c.Params("name")
	if raw == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "city name is required")
	}
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid city name")
	}
	return name, nil
}

func snapshotFor(c *fiber.Ctx, service *weather.Service) (weather.CitySnapshot, error) {
	name, err := pathCity(c)
	if err != nil {
		return weather.CitySnapshot{}, err
	}

	snapshot, err := service.GetSnapshot(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return weather.CitySnapshot{}, fiber.NewError(fiber.StatusNotFound, "no weather data for requested city")
		}
		return weather.CitySnapshot{}, fiber.NewError(fiber.StatusInternalServerError, "failed to read weather data")
	}

	return snapshot, nil
}
