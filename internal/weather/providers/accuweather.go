package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// ClientConfig is the explicit configuration of an AccuWeatherProvider.
type ClientConfig struct {
	// BaseURL is the provider root, with or without a trailing slash.
	BaseURL string
	APIKey  string
	// HTTPClient is used as-is; nil means a client with no timeout override.
	HTTPClient *http.Client
	// BreakerEnabled routes calls through a circuit breaker. Calls are never retried.
	BreakerEnabled bool
}

// AccuWeatherProvider implements weather.Forecaster for the daily forecasts API.
type AccuWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

var _ weather.Forecaster = (*AccuWeatherProvider)(nil)

func NewAccuWeatherProvider(cfg ClientConfig) *AccuWeatherProvider {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	p := &AccuWeatherProvider{
		name:    "accuweather",
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpCfg: HTTPClientConfig{
			Client:  client,
			Breaker: cfg.BreakerEnabled,
		},
	}
	if p.httpCfg.Breaker {
		p.circuit = newCircuitBreaker(p.name)
	}
	return p
}

// ForecastURL builds the daily forecast URL. cityKey and the API key are inserted verbatim.
func (p *AccuWeatherProvider) ForecastURL(cityKey string, days weather.Horizon) string {
	return fmt.Sprintf("%s/forecasts/v1/daily/%s/%s?apikey=%s", p.baseURL, days.PathSegment(), cityKey, p.apiKey)
}

// GetForecast issues one GET for cityKey and decodes the body into a Forecast.
func (p *AccuWeatherProvider) GetForecast(ctx context.Context, cityKey string, days weather.Horizon) (weather.Forecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.ForecastURL(cityKey, days), nil)
	if err != nil {
		return weather.Forecast{}, &weather.TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := doRequest(p.httpCfg.Client, p.circuit, req)
	if err != nil {
		return weather.Forecast{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Forecast{}, &weather.TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return decodeForecast(body, days)
}
