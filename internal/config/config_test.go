package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/i474232898/weather-forecast/internal/weather"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WEATHER_API_URL", "WEATHER_API_KEY", "WEATHER_HTTP_TIMEOUT", "WEATHER_BREAKER_ENABLED",
		"FETCH_INTERVAL", "WEATHER_REFRESH_DAYS", "WEATHER_TRACKED_CITY_KEYS", "PORT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("expected default API URL, got %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 0 {
		t.Fatalf("expected no timeout override, got %v", cfg.HTTPTimeout)
	}
	if cfg.BreakerEnabled {
		t.Fatal("breaker must be off by default")
	}
	if cfg.FetchInterval != 15*time.Minute {
		t.Fatalf("expected 15m interval, got %v", cfg.FetchInterval)
	}
	if cfg.RefreshDays != weather.Horizon5Days {
		t.Fatalf("expected 5-day horizon, got %d", cfg.RefreshDays)
	}
	if len(cfg.TrackedCityKeys) != 0 {
		t.Fatalf("expected no tracked keys, got %v", cfg.TrackedCityKeys)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_API_URL", "http://localhost:9000/")
	t.Setenv("WEATHER_API_KEY", "abc")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "3s")
	t.Setenv("WEATHER_BREAKER_ENABLED", "true")
	t.Setenv("WEATHER_REFRESH_DAYS", "15")
	t.Setenv("WEATHER_TRACKED_CITY_KEYS", " 308526, ,307297 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "http://localhost:9000/" || cfg.APIKey != "abc" {
		t.Fatalf("unexpected endpoint %q/%q", cfg.APIURL, cfg.APIKey)
	}
	if cfg.HTTPTimeout != 3*time.Second || !cfg.BreakerEnabled {
		t.Fatalf("unexpected client settings: %+v", cfg)
	}
	if cfg.RefreshDays != weather.Horizon15Days {
		t.Fatalf("expected 15-day horizon, got %d", cfg.RefreshDays)
	}
	if want := []string{"308526", "307297"}; !reflect.DeepEqual(cfg.TrackedCityKeys, want) {
		t.Fatalf("expected %v, got %v", want, cfg.TrackedCityKeys)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"WEATHER_API_URL", "not a url"},
		{"WEATHER_REFRESH_DAYS", "7"},
		{"WEATHER_REFRESH_DAYS", "abc"},
		{"FETCH_INTERVAL", "soon"},
		{"WEATHER_HTTP_TIMEOUT", "10"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
