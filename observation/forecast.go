package observation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// ForecastTimeLayout is the layout of the dt_txt field in forecast list entries
const ForecastTimeLayout = "2006-01-02 15:04:05"

// UnknownCondition labels entries that carry no weather element
const UnknownCondition = "Unknown"

var (
	ErrMissingTemperature = errors.New("forecast entry has no temperature")
	ErrInvalidTimestamp   = errors.New("forecast entry has an invalid timestamp")
)

// Forecast is a decoded forecast payload for a single city
type Forecast struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Series  Series `json:"observations"`
}

type forecastPayload struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Pop float64 `json:"pop"`
}

// ParseForecast decodes a 5 day / 3 hour forecast payload into a validated series. Temperatures
// are rounded to a tenth of a degree and the 0-1 precipitation probability is rescaled to a
// percentage. Feels like, humidity, pressure, wind speed and the weather description are kept
// when present.
func ParseForecast(r io.Reader) (*Forecast, error) {
	var payload forecastPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unable to decode forecast payload, %w", err)
	}

	obs := make([]Observation, 0, len(payload.List))
	for i, entry := range payload.List {
		o, err := entry.observation()
		if err != nil {
			return nil, fmt.Errorf("forecast entry %d, %w", i, err)
		}
		obs = append(obs, o)
	}

	series, err := NewSeries(obs)
	if err != nil {
		return nil, fmt.Errorf("unable to build forecast series, %w", err)
	}

	return &Forecast{
		City:    payload.City.Name,
		Country: payload.City.Country,
		Series:  series,
	}, nil
}

// ParseForecastBytes is ParseForecast over an in memory payload
func ParseForecastBytes(data []byte) (*Forecast, error) {
	return ParseForecast(bytes.NewReader(data))
}

func (e forecastEntry) observation() (Observation, error) {
	if e.Main.Temp == nil {
		return Observation{}, ErrMissingTemperature
	}

	ts, err := e.timestamp()
	if err != nil {
		return Observation{}, err
	}

	o := Observation{
		Timestamp:                ts,
		Temperature:              roundTenth(*e.Main.Temp),
		PrecipitationProbability: e.Pop * 100,
		Condition:                UnknownCondition,
		Humidity:                 e.Main.Humidity,
		Pressure:                 e.Main.Pressure,
		WindSpeed:                e.Wind.Speed,
	}
	if len(e.Weather) > 0 {
		if e.Weather[0].Main != "" {
			o.Condition = e.Weather[0].Main
		}
		o.Description = e.Weather[0].Description
	}
	if e.Main.FeelsLike != nil {
		feelsLike := roundTenth(*e.Main.FeelsLike)
		o.FeelsLike = &feelsLike
	}
	return o, nil
}

func (e forecastEntry) timestamp() (time.Time, error) {
	if e.DtTxt != "" {
		ts, err := time.ParseInLocation(ForecastTimeLayout, e.DtTxt, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%q, %w", e.DtTxt, ErrInvalidTimestamp)
		}
		return ts, nil
	}
	if e.Dt <= 0 {
		return time.Time{}, ErrInvalidTimestamp
	}
	return time.Unix(e.Dt, 0).UTC(), nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
