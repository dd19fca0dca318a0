package weather

import (
	"strings"
	"time"

	"github.com/i474232898/weather-forecast/internal/common"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// DaySummary is a flattened, display-oriented view of one DailyForecast.
type DaySummary struct {
	Date           time.Time `json:"date"` // always UTC
	Minimum        float64   `json:"minimum"`
	Maximum        float64   `json:"maximum"`
	Unit           string    `json:"unit"`
	DayCondition   Condition `json:"dayCondition"`
	NightCondition Condition `json:"nightCondition"`
	Precipitation  bool      `json:"precipitation"`
}

// Summarize builds one DaySummary per daily entry, in provider order.
// The forecast itself is left untouched.
func Summarize(f Forecast) []DaySummary {
	out := make([]DaySummary, 0, len(f.DailyForecasts))
	for _, d := range f.DailyForecasts {
		out = append(out, DaySummary{
			Date:           time.Unix(d.EpochDate, 0).UTC(),
			Minimum:        d.Temperature.Minimum.Value,
			Maximum:        d.Temperature.Maximum.Value,
			Unit:           d.Temperature.Maximum.Unit,
			DayCondition:   d.Day.Condition(),
			NightCondition: d.Night.Condition(),
			Precipitation:  d.Day.HasPrecipitation || d.Night.HasPrecipitation,
		})
	}
	return out
}

// Condition maps the provider phrase (falling back to the icon code) to a Condition.
func (w WeatherCondition) Condition() Condition {
	if c := conditionFromPhrase(w.IconPhrase); c != ConditionUnknown {
		return c
	}
	return conditionFromIcon(w.Icon)
}

func conditionFromPhrase(phrase string) Condition {
	p := strings.TrimSpace(phrase)
	switch {
	case p == "":
		return ConditionUnknown
	case common.ContainsAnyFold(p, "t-storm", "thunder", "storm"):
		return ConditionStorm
	case common.ContainsAnyFold(p, "snow", "flurries", "sleet", "ice"):
		return ConditionSnow
	case common.ContainsAnyFold(p, "rain", "shower", "drizzle"):
		return ConditionRain
	case common.ContainsAnyFold(p, "fog", "mist", "haz"):
		return ConditionMist
	case common.ContainsAnyFold(p, "cloud", "dreary", "overcast"):
		return ConditionCloudy
	case common.ContainsAnyFold(p, "sun", "clear", "moonlight"):
		return ConditionClear
	default:
		return ConditionUnknown
	}
}

// Icon codes follow the provider's published icon table.
func conditionFromIcon(icon int) Condition {
	switch {
	case icon >= 1 && icon <= 5, icon >= 33 && icon <= 37:
		return ConditionClear
	case icon >= 6 && icon <= 8, icon == 38:
		return ConditionCloudy
	case icon == 11:
		return ConditionMist
	case icon >= 12 && icon <= 14, icon == 18, icon == 39, icon == 40:
		return ConditionRain
	case icon >= 15 && icon <= 17, icon == 41, icon == 42:
		return ConditionStorm
	case icon >= 19 && icon <= 26, icon == 29, icon == 43, icon == 44:
		return ConditionSnow
	default:
		return ConditionUnknown
	}
}
