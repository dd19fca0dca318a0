package httpapi

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-forecast/internal/cities"
	"github.com/i474232898/weather-forecast/internal/store"
	"github.com/i474232898/weather-forecast/internal/weather"
)

var validate = validator.New()

// ForecastService is the subset of weather.Service the handlers need.
type ForecastService interface {
	GetForecast(ctx context.Context, params weather.ForecastParams) (weather.Forecast, error)
	Refresh(params weather.ForecastParams) (weather.Ticket, error)
	State(cityKey string) (weather.RequestState, error)
	Tracked() []string
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service ForecastService) {
	v1 := app.Group("/api/v1")

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(cities.All())
	})

	v1.Get("/cities/:key", func(c *fiber.Ctx) error {
		w, err := cities.Lookup(c.Params("key"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "unknown city")
		}
		return c.JSON(w)
	})

	v1.Get("/forecasts", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"tracked": service.Tracked()})
	})

	v1.Get("/forecasts/:cityKey", func(c *fiber.Ctx) error {
		params, err := parseForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.GetForecast(c.UserContext(), params)
		if err != nil {
			return forecastError(err)
		}
		return c.JSON(forecast)
	})

	v1.Get("/forecasts/:cityKey/summary", func(c *fiber.Ctx) error {
		params, err := parseForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.GetForecast(c.UserContext(), params)
		if err != nil {
			return forecastError(err)
		}
		return c.JSON(fiber.Map{
			"cityKey":  params.CityKey,
			"days":     params.Days,
			"headline": forecast.Headline.Text,
			"severity": forecast.Headline.Severity,
			"summary":  weather.Summarize(forecast),
		})
	})

	v1.Post("/forecasts/:cityKey/refresh", func(c *fiber.Ctx) error {
		params, err := parseForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ticket, err := service.Refresh(params)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"cityKey": params.CityKey,
			"days":    params.Days,
			"ticket":  ticket,
		})
	})

	v1.Get("/forecasts/:cityKey/state", func(c *fiber.Ctx) error {
		st, err := service.State(c.Params("cityKey"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no forecast request for city key")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read forecast state")
		}
		return c.JSON(newStateResponse(st))
	})
}

// forecastQuery holds the path and query parameters of a forecast request.
type forecastQuery struct {
	CityKey string `validate:"required"`
	Days    int    `validate:"required,oneof=1 5 10 15"`
}

func parseForecastQuery(c *fiber.Ctx) (weather.ForecastParams, error) {
	q := forecastQuery{
		CityKey: c.Params("cityKey"),
		Days:    int(weather.Horizon5Days),
	}
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return weather.ForecastParams{}, errors.New("days must be an integer")
		}
		q.Days = n
	}

	if err := validate.Struct(q); err != nil {
		return weather.ForecastParams{}, err
	}

	days, err := weather.ParseHorizon(q.Days)
	if err != nil {
		return weather.ForecastParams{}, err
	}
	return weather.ForecastParams{CityKey: q.CityKey, Days: days}, nil
}

func forecastError(err error) error {
	switch {
	case errors.Is(err, weather.ErrInvalidHorizon), errors.Is(err, weather.ErrMissingCityKey):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrDecode):
		return fiber.NewError(fiber.StatusBadGateway, "forecast provider returned an unexpected payload")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fiber.NewError(fiber.StatusGatewayTimeout, "forecast request cancelled")
	case errors.Is(err, weather.ErrTransport):
		return fiber.NewError(fiber.StatusBadGateway, "failed to reach forecast provider")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch forecast")
	}
}

// stateResponse is the JSON view of a weather.RequestState.
type stateResponse struct {
	weather.RequestState
	Error string `json:"error,omitempty"`
}

func newStateResponse(st weather.RequestState) stateResponse {
	resp := stateResponse{RequestState: st}
	if st.Err != nil {
		resp.Error = st.Err.Error()
	}
	return resp
}

// ErrorHandler renders every error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}
