package openweathermap

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// CurrentWeatherAPIResponse is the body of GET /weather
type CurrentWeatherAPIResponse struct {
	Coord      Coord         `json:"coord"`
	Weather    []Condition   `json:"weather"`
	Main       *MainReadings `json:"main"`
	Visibility *int          `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	ID       int    `json:"id"`
	Name     string `json:"name"`
}

// Validate checks the fields the dashboard cannot do without
func (r *CurrentWeatherAPIResponse) Validate() error {
	if r.Main == nil {
		return errors.New("main object is missing")
	}
	if len(r.Weather) == 0 {
		return errors.New("weather array is empty")
	}
	return nil
}

type ForecastEntry struct {
	Dt      int64         `json:"dt"`
	Main    *MainReadings `json:"main"`
	Weather []Condition   `json:"weather"`
	// Pop is the probability of precipitation in [0,1]
	Pop   *float64 `json:"pop"`
	DtTxt string   `json:"dt_txt"`
}

// ForecastAPIResponse is the body of GET /forecast (5 days, 3 hour steps)
type ForecastAPIResponse struct {
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Coord    Coord  `json:"coord"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// Validate rejects bodies without a list. An empty "list": [] decodes to a
// non-nil slice and is accepted.
func (r *ForecastAPIResponse) Validate() error {
	if r.List == nil {
		return errors.New("list array is missing")
	}
	for i, entry := range r.List {
		if entry.Main == nil {
			return fmt.Errorf("forecast entry %d has no main object", i)
		}
		if len(entry.Weather) == 0 {
			return fmt.Errorf("forecast entry %d has empty weather array", i)
		}
	}
	return nil
}

// APIErrorResponse is the body OpenWeatherMap sends with non-2xx statuses.
// cod is a string on some endpoints and a number on others.
type APIErrorResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}
