package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-forecast/internal/weather"
)

var validate = validator.New()

// The wire model mirrors weather.Forecast with pointer fields so that an absent
// field can be told apart from a zero value. "required" on a pointer means "present".

type wireTemperature struct {
	Value    *float64 `json:"Value" validate:"required"`
	Unit     *string  `json:"Unit" validate:"required"`
	UnitType *int     `json:"UnitType" validate:"required"`
}

type wireTemperatureRange struct {
	Minimum *wireTemperature `json:"Minimum" validate:"required"`
	Maximum *wireTemperature `json:"Maximum" validate:"required"`
}

type wireCondition struct {
	Icon             *int    `json:"Icon" validate:"required"`
	IconPhrase       *string `json:"IconPhrase" validate:"required"`
	HasPrecipitation *bool   `json:"HasPrecipitation" validate:"required"`
}

type wireDailyForecast struct {
	Date        *string               `json:"Date" validate:"required"`
	EpochDate   *int64                `json:"EpochDate" validate:"required"`
	Temperature *wireTemperatureRange `json:"Temperature" validate:"required"`
	Day         *wireCondition        `json:"Day" validate:"required"`
	Night       *wireCondition        `json:"Night" validate:"required"`
	Sources     []string              `json:"Sources"`
	MobileLink  string                `json:"MobileLink"`
	Link        string                `json:"Link"`
}

// EndDate and EndEpochDate are null (or empty) for open-ended advisories.
type wireHeadline struct {
	EffectiveDate      *string `json:"EffectiveDate" validate:"required"`
	EffectiveEpochDate *int64  `json:"EffectiveEpochDate" validate:"required"`
	Severity           *int    `json:"Severity" validate:"required"`
	Text               *string `json:"Text" validate:"required"`
	Category           string  `json:"Category"`
	EndDate            *string `json:"EndDate"`
	EndEpochDate       *int64  `json:"EndEpochDate"`
	MobileLink         string  `json:"MobileLink"`
	Link               string  `json:"Link"`
}

type wireForecast struct {
	Headline       *wireHeadline       `json:"Headline" validate:"required"`
	DailyForecasts []wireDailyForecast `json:"DailyForecasts" validate:"required,dive"`
}

// decodeForecast converts an untrusted body into a Forecast for the given horizon.
// Every failure is a *weather.DecodeError.
func decodeForecast(body []byte, days weather.Horizon) (weather.Forecast, error) {
	var w wireForecast
	if err := json.Unmarshal(body, &w); err != nil {
		return weather.Forecast{}, &weather.DecodeError{Err: err}
	}

	if err := validate.Struct(w); err != nil {
		return weather.Forecast{}, validationDecodeError(err)
	}

	if len(w.DailyForecasts) != int(days) {
		return weather.Forecast{}, &weather.DecodeError{
			Field: "DailyForecasts",
			Err:   fmt.Errorf("expected %d entries, got %d", days, len(w.DailyForecasts)),
		}
	}

	if err := checkInstant("Headline.EffectiveDate", *w.Headline.EffectiveDate, *w.Headline.EffectiveEpochDate); err != nil {
		return weather.Forecast{}, err
	}
	if w.Headline.EndDate != nil && *w.Headline.EndDate != "" && w.Headline.EndEpochDate != nil {
		if err := checkInstant("Headline.EndDate", *w.Headline.EndDate, *w.Headline.EndEpochDate); err != nil {
			return weather.Forecast{}, err
		}
	}

	forecast := weather.Forecast{
		Headline:       w.Headline.toModel(),
		DailyForecasts: make([]weather.DailyForecast, 0, len(w.DailyForecasts)),
	}
	for i, d := range w.DailyForecasts {
		if err := checkInstant(fmt.Sprintf("DailyForecasts[%d].Date", i), *d.Date, *d.EpochDate); err != nil {
			return weather.Forecast{}, err
		}
		forecast.DailyForecasts = append(forecast.DailyForecasts, d.toModel())
	}

	return forecast, nil
}

// checkInstant verifies that a calendar date and an epoch-seconds value agree.
func checkInstant(field, date string, epoch int64) error {
	ts, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return &weather.DecodeError{Field: field, Err: err}
	}
	if ts.Unix() != epoch {
		return &weather.DecodeError{
			Field: field,
			Err:   fmt.Errorf("%s does not match epoch %d", date, epoch),
		}
	}
	return nil
}

func validationDecodeError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Namespace()
		// Drop the "wireForecast." root.
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return &weather.DecodeError{
			Field: field,
			Err:   fmt.Errorf("failed on %q validation", fe.Tag()),
		}
	}
	return &weather.DecodeError{Err: err}
}

func (h *wireHeadline) toModel() weather.Headline {
	out := weather.Headline{
		EffectiveDate:      *h.EffectiveDate,
		EffectiveEpochDate: *h.EffectiveEpochDate,
		Severity:           *h.Severity,
		Text:               *h.Text,
		Category:           h.Category,
		MobileLink:         h.MobileLink,
		Link:               h.Link,
	}
	if h.EndDate != nil {
		out.EndDate = *h.EndDate
	}
	if h.EndEpochDate != nil {
		out.EndEpochDate = *h.EndEpochDate
	}
	return out
}

func (d wireDailyForecast) toModel() weather.DailyForecast {
	return weather.DailyForecast{
		Date:      *d.Date,
		EpochDate: *d.EpochDate,
		Temperature: weather.TemperatureRange{
			Minimum: d.Temperature.Minimum.toModel(),
			Maximum: d.Temperature.Maximum.toModel(),
		},
		Day:        d.Day.toModel(),
		Night:      d.Night.toModel(),
		Sources:    d.Sources,
		MobileLink: d.MobileLink,
		Link:       d.Link,
	}
}

func (t *wireTemperature) toModel() weather.Temperature {
	return weather.Temperature{
		Value:    *t.Value,
		Unit:     *t.Unit,
		UnitType: *t.UnitType,
	}
}

func (c *wireCondition) toModel() weather.WeatherCondition {
	return weather.WeatherCondition{
		Icon:             *c.Icon,
		IconPhrase:       *c.IconPhrase,
		HasPrecipitation: *c.HasPrecipitation,
	}
}
