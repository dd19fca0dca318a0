// Package cities holds the fixed weather table shown by the city picker.
// It is a read-only dataset and is not connected to the live forecast path.
package cities

import (
	"errors"
)

// ErrUnknownCity is returned for keys outside the table.
var ErrUnknownCity = errors.New("unknown city")

// Icon names the pictogram used to render a condition.
type Icon string

const (
	IconSunny Icon = "sunny"
	IconCloud Icon = "cloud"
	IconGrain Icon = "grain"
)

// Weather is a precomputed weather record for one city.
type Weather struct {
	Key         string  `json:"key"`
	City        string  `json:"city"`
	Temperature float64 `json:"temperatureC"`
	Condition   string  `json:"condition"`
	Humidity    float64 `json:"humidityPercent"`
	WindSpeed   float64 `json:"windSpeedKmh"`
	Visibility  float64 `json:"visibilityKm"`
	FeelsLike   float64 `json:"feelsLikeC"`
	Description string  `json:"description"`
	Icon        Icon    `json:"icon"`
	IconColor   string  `json:"iconColor"`
}

// order is the picker order.
var order = []string{"madrid", "barcelona", "sevilla", "bilbao", "valencia"}

var table = map[string]Weather{
	"madrid": {
		Key:         "madrid",
		City:        "Madrid",
		Temperature: 22,
		Condition:   "Soleado",
		Humidity:    45,
		WindSpeed:   12,
		Visibility:  10,
		FeelsLike:   24,
		Description: "Un día hermoso y soleado en la capital",
		Icon:        IconSunny,
		IconColor:   "#FFA726",
	},
	"barcelona": {
		Key:         "barcelona",
		City:        "Barcelona",
		Temperature: 19,
		Condition:   "Parcialmente nublado",
		Humidity:    65,
		WindSpeed:   15,
		Visibility:  8,
		FeelsLike:   21,
		Description: "Algunas nubes pero agradable junto al mar",
		Icon:        IconCloud,
		IconColor:   "#90A4AE",
	},
	"sevilla": {
		Key:         "sevilla",
		City:        "Sevilla",
		Temperature: 28,
		Condition:   "Muy soleado",
		Humidity:    35,
		WindSpeed:   8,
		Visibility:  12,
		FeelsLike:   30,
		Description: "Día caluroso típico del sur de España",
		Icon:        IconSunny,
		IconColor:   "#FF7043",
	},
	"bilbao": {
		Key:         "bilbao",
		City:        "Bilbao",
		Temperature: 16,
		Condition:   "Llovizna",
		Humidity:    85,
		WindSpeed:   20,
		Visibility:  5,
		FeelsLike:   15,
		Description: "Clima típico del norte, con llovizna ligera",
		Icon:        IconGrain,
		IconColor:   "#546E7A",
	},
	"valencia": {
		Key:         "valencia",
		City:        "Valencia",
		Temperature: 24,
		Condition:   "Soleado",
		Humidity:    55,
		WindSpeed:   10,
		Visibility:  12,
		FeelsLike:   26,
		Description: "Perfecto clima mediterráneo",
		Icon:        IconSunny,
		IconColor:   "#FFB74D",
	},
}

// Lookup returns the record for key.
func Lookup(key string) (Weather, error) {
	w, ok := table[key]
	if !ok {
		return Weather{}, ErrUnknownCity
	}
	return w, nil
}

// All returns every record in picker order.
func All() []Weather {
	out := make([]Weather, 0, len(order))
	for _, k := range order {
		out = append(out, table[k])
	}
	return out
}
