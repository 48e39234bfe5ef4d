package weather

import (
	"time"

	"clima-ja/internal/types"
)

// IconCategory is the coarse weather category a presenter draws an icon for
type IconCategory string

const (
	IconStorm        IconCategory = "storm"
	IconRain         IconCategory = "rain"
	IconCloudy       IconCategory = "cloudy"
	IconSunny        IconCategory = "sunny"
	IconPartlyCloudy IconCategory = "partly-cloudy"
)

// CurrentConditions is the provider's current-conditions payload in domain units
type CurrentConditions struct {
	Temperature types.Temperature
	FeelsLike   types.Temperature
	// TempMin and TempMax cover today and are used when the forecast has no
	// sample for the current date
	TempMin       types.Temperature
	TempMax       types.Temperature
	Wind          types.Wind
	Humidity      int
	Visibility    types.Visibility
	Description   string
	Main          string
	ConditionCode int
	CountryCode   string
	PlaceName     string
	ObservedAt    time.Time
	Coordinates   types.Coords
	UTCOffset     int // seconds east of UTC
}

// ForecastSample is one 3-hour step of the forecast
type ForecastSample struct {
	Time          time.Time
	TempMin       types.Temperature
	TempMax       types.Temperature
	ConditionCode int
	Pop           float64 // probability of precipitation in [0,1]
}

type RainChance struct {
	Time       string `json:"time"`
	Percentage int    `json:"percentage"`
}

type DailyForecast struct {
	Day  string       `json:"day"`
	Icon IconCategory `json:"icon"`
	High int          `json:"high"`
	Low  int          `json:"low"`
}

// DisplayModel is the dashboard payload handed to the presenter
type DisplayModel struct {
	City          string          `json:"city"`
	CountryCode   string          `json:"countryCode"`
	CurrentTemp   int             `json:"currentTemp"`
	Condition     string          `json:"condition"`
	High          int             `json:"high"`
	Low           int             `json:"low"`
	FeelsLike     int             `json:"feelsLike"`
	WindSpeed     int             `json:"windSpeed"`
	Humidity      int             `json:"humidity"`
	UVIndex       int             `json:"uvIndex"`
	UVLevel       string          `json:"uvLevel"`
	Visibility    int             `json:"visibility"`
	RainForecast  []RainChance    `json:"rainForecast"`
	DailyForecast []DailyForecast `json:"dailyForecast"`
	LastUpdated   string          `json:"lastUpdated"`
	FormattedDate string          `json:"formattedDate"`
}
