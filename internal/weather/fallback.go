package weather

import "time"

// fallbackTexts is the fixed snapshot served when the provider cannot be
// reached. The city and the timestamps are filled in per use.
type fallbackTexts struct {
	CountryCode   string
	CurrentTemp   int
	Condition     string
	High          int
	Low           int
	FeelsLike     int
	WindSpeed     int
	Humidity      int
	UVIndex       int
	UVLevel       string
	Visibility    int
	RainForecast  []RainChance
	DailyForecast []DailyForecast
}

var portugueseFallback = fallbackTexts{
	CountryCode: "BR",
	CurrentTemp: 24,
	Condition:   "Parcialmente Nublado",
	High:        28,
	Low:         19,
	FeelsLike:   26,
	WindSpeed:   12,
	Humidity:    64,
	UVIndex:     5,
	UVLevel:     "Moderado",
	Visibility:  10,
	RainForecast: []RainChance{
		{Time: "10:00", Percentage: 15},
		{Time: "13:00", Percentage: 45},
		{Time: "16:00", Percentage: 80},
	},
	DailyForecast: []DailyForecast{
		{Day: "SEG", Icon: IconSunny, High: 28, Low: 19},
		{Day: "TER", Icon: IconCloudy, High: 25, Low: 18},
		{Day: "QUA", Icon: IconRain, High: 22, Low: 17},
		{Day: "QUI", Icon: IconCloudy, High: 24, Low: 18},
		{Day: "SEX", Icon: IconPartlyCloudy, High: 26, Low: 19},
	},
}

var englishFallback = fallbackTexts{
	CountryCode: "BR",
	CurrentTemp: 24,
	Condition:   "Partly Cloudy",
	High:        28,
	Low:         19,
	FeelsLike:   26,
	WindSpeed:   12,
	Humidity:    64,
	UVIndex:     5,
	UVLevel:     "Moderate",
	Visibility:  10,
	RainForecast: []RainChance{
		{Time: "10:00 AM", Percentage: 15},
		{Time: "1:00 PM", Percentage: 45},
		{Time: "4:00 PM", Percentage: 80},
	},
	DailyForecast: []DailyForecast{
		{Day: "MON", Icon: IconSunny, High: 28, Low: 19},
		{Day: "TUE", Icon: IconCloudy, High: 25, Low: 18},
		{Day: "WED", Icon: IconRain, High: 22, Low: 17},
		{Day: "THU", Icon: IconCloudy, High: 24, Low: 18},
		{Day: "FRI", Icon: IconPartlyCloudy, High: 26, Low: 19},
	},
}

// Fallback returns the locale's fixed snapshot stamped with the requested
// city and the given instant
func (l Locale) Fallback(city string, now time.Time) *DisplayModel {
	f := l.fallback
	return &DisplayModel{
		City:          city,
		CountryCode:   f.CountryCode,
		CurrentTemp:   f.CurrentTemp,
		Condition:     f.Condition,
		High:          f.High,
		Low:           f.Low,
		FeelsLike:     f.FeelsLike,
		WindSpeed:     f.WindSpeed,
		Humidity:      f.Humidity,
		UVIndex:       f.UVIndex,
		UVLevel:       f.UVLevel,
		Visibility:    f.Visibility,
		RainForecast:  append([]RainChance(nil), f.RainForecast...),
		DailyForecast: append([]DailyForecast(nil), f.DailyForecast...),
		LastUpdated:   l.TimeLabel(now),
		FormattedDate: l.LongDate(now),
	}
}
