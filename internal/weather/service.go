package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrMissingCityKey is returned when a forecast is requested without a location key.
var ErrMissingCityKey = errors.New("city key is required")

// Service exposes forecast lookups and the per-city request hooks.
type Service struct {
	client   Forecaster
	registry Registry
}

// NewService creates a new Service.
func NewService(client Forecaster, registry Registry) *Service {
	return &Service{
		client:   client,
		registry: registry,
	}
}

// GetForecast issues a single synchronous client call.
func (s *Service) GetForecast(ctx context.Context, params ForecastParams) (Forecast, error) {
	if err := validateParams(params); err != nil {
		return Forecast{}, err
	}

	log.Printf("DEBUG: GetForecast called for %s for %d days", params.CityKey, params.Days)
	return s.client.GetForecast(ctx, params.CityKey, params.Days)
}

// Refresh triggers the tracked Request for params.CityKey, creating it on first use.
// The call runs in the background; its outcome is read back through State.
func (s *Service) Refresh(params ForecastParams) (Ticket, error) {
	if err := validateParams(params); err != nil {
		return Ticket{}, err
	}

	cityKey := params.CityKey
	req := s.registry.LoadOrCreate(cityKey, func() *Request {
		return NewRequest(s.client, RequestOptions{
			OnSuccess: func(f Forecast) {
				log.Printf("INFO: forecast refreshed for %s (%d days)", cityKey, len(f.DailyForecasts))
			},
			OnError: func(err error) {
				log.Printf("ERROR: forecast refresh failed for %s: %v", cityKey, err)
			},
		})
	})

	// Background context: the refresh must outlive the caller that triggered it.
	return req.Trigger(context.Background(), params), nil
}

// State returns the state of the tracked Request for cityKey.
func (s *Service) State(cityKey string) (RequestState, error) {
	req, err := s.registry.Get(cityKey)
	if err != nil {
		return RequestState{}, err
	}
	return req.State(), nil
}

// Tracked returns the city keys that have a Request.
func (s *Service) Tracked() []string {
	return s.registry.Keys()
}

func validateParams(params ForecastParams) error {
	if strings.TrimSpace(params.CityKey) == "" {
		return ErrMissingCityKey
	}
	if !params.Days.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidHorizon, params.Days)
	}
	return nil
}
