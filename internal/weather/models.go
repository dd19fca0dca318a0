package weather

import (
	"errors"
	"fmt"
)

// Horizon is the number of forecast days requested from the provider.
type Horizon int

const (
	Horizon1Day   Horizon = 1
	Horizon5Days  Horizon = 5
	Horizon10Days Horizon = 10
	Horizon15Days Horizon = 15
)

// ErrInvalidHorizon is returned when a day count is not one of the supported horizons.
var ErrInvalidHorizon = errors.New("invalid forecast horizon")

// Horizons lists the supported horizons in ascending order.
func Horizons() []Horizon {
	return []Horizon{Horizon1Day, Horizon5Days, Horizon10Days, Horizon15Days}
}

// ParseHorizon converts an untyped day count into a Horizon.
func ParseHorizon(days int) (Horizon, error) {
	h := Horizon(days)
	if !h.Valid() {
		return 0, fmt.Errorf("%w: %d (supported: 1, 5, 10, 15)", ErrInvalidHorizon, days)
	}
	return h, nil
}

// Valid reports whether h is one of the supported horizons.
func (h Horizon) Valid() bool {
	switch h {
	case Horizon1Day, Horizon5Days, Horizon10Days, Horizon15Days:
		return true
	}
	return false
}

// PathSegment returns the provider path segment for h, e.g. "5day".
func (h Horizon) PathSegment() string {
	return fmt.Sprintf("%dday", int(h))
}

// Temperature is a single provider temperature reading.
type Temperature struct {
	Value    float64 `json:"Value"`
	Unit     string  `json:"Unit"`     // display unit, e.g. "C"
	UnitType int     `json:"UnitType"` // provider-internal unit code
}

// TemperatureRange is the daily minimum and maximum.
// Minimum.Value <= Maximum.Value is guaranteed by the provider, not checked here.
type TemperatureRange struct {
	Minimum Temperature `json:"Minimum"`
	Maximum Temperature `json:"Maximum"`
}

// WeatherCondition describes the day or night part of a forecast.
type WeatherCondition struct {
	Icon             int    `json:"Icon"`
	IconPhrase       string `json:"IconPhrase"`
	HasPrecipitation bool   `json:"HasPrecipitation"`
}

// DailyForecast is one day of a Forecast.
// Date and EpochDate encode the same instant.
type DailyForecast struct {
	Date        string           `json:"Date"`
	EpochDate   int64            `json:"EpochDate"` // seconds since epoch
	Temperature TemperatureRange `json:"Temperature"`
	Day         WeatherCondition `json:"Day"`
	Night       WeatherCondition `json:"Night"`
	Sources     []string         `json:"Sources"`
	MobileLink  string           `json:"MobileLink"`
	Link        string           `json:"Link"`
}

// Headline is a provider advisory, separate from the per-day entries.
type Headline struct {
	EffectiveDate      string `json:"EffectiveDate"`
	EffectiveEpochDate int64  `json:"EffectiveEpochDate"`
	Severity           int    `json:"Severity"`
	Text               string `json:"Text"`
	Category           string `json:"Category"`
	EndDate            string `json:"EndDate"`
	EndEpochDate       int64  `json:"EndEpochDate"`
	MobileLink         string `json:"MobileLink"`
	Link               string `json:"Link"`
}

// Forecast is the provider response for one location and horizon.
// DailyForecasts holds exactly one entry per requested day.
type Forecast struct {
	Headline       Headline        `json:"Headline"`
	DailyForecasts []DailyForecast `json:"DailyForecasts"`
}

// ForecastParams identifies a single forecast query.
type ForecastParams struct {
	CityKey string  `json:"cityKey"`
	Days    Horizon `json:"days"`
}
