package weather

import (
	"context"
)

// Forecaster abstracts the forecast data source (the AccuWeather-style daily forecast API).
type Forecaster interface {
	GetForecast(ctx context.Context, cityKey string, days Horizon) (Forecast, error)
}

// Registry is the contract the in-memory request registry must satisfy.
// It holds one Request per city key for the lifetime of the process.
type Registry interface {
	LoadOrCreate(cityKey string, create func() *Request) *Request
	Get(cityKey string) (*Request, error)
	Keys() []string
}
