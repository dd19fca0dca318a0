package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-forecast/internal/weather"
)

const defaultAPIURL = "https://dataservice.accuweather.com/"

type AppConfig struct {
	// Forecast provider endpoint and credentials.
	APIURL string
	APIKey string

	// HTTPTimeout bounds outbound calls; 0 keeps the transport default.
	HTTPTimeout time.Duration

	// BreakerEnabled wraps provider calls in a circuit breaker.
	BreakerEnabled bool

	// TrackedCityKeys are refreshed in the background every FetchInterval.
	TrackedCityKeys []string
	RefreshDays     weather.Horizon
	FetchInterval   time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.APIURL = getenvDefault("WEATHER_API_URL", defaultAPIURL)
	if u, err := url.Parse(cfg.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid WEATHER_API_URL %q", cfg.APIURL)
	}
	cfg.APIKey = os.Getenv("WEATHER_API_KEY")
	if cfg.APIKey == "" {
		log.Printf("INFO: WEATHER_API_KEY is not set; provider calls will be rejected upstream")
	}

	timeout, err := time.ParseDuration(getenvDefault("WEATHER_HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.BreakerEnabled = getenvBool("WEATHER_BREAKER_ENABLED", false)

	// Scheduler interval: default 15 minutes.
	interval, err := time.ParseDuration(getenvDefault("FETCH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	rawDays, err := getenvInt("WEATHER_REFRESH_DAYS", int(weather.Horizon5Days))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_REFRESH_DAYS: %w", err)
	}
	days, err := weather.ParseHorizon(rawDays)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_REFRESH_DAYS: %w", err)
	}
	cfg.RefreshDays = days

	cfg.TrackedCityKeys = splitList(os.Getenv("WEATHER_TRACKED_CITY_KEYS"))
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
