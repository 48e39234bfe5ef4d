package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clima-ja/internal/providers/openweathermap"
	"clima-ja/internal/types"
)

// CurrentWeatherProvider defines the interface for current-conditions providers
type CurrentWeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city, lang string) (*openweathermap.CurrentWeatherAPIResponse, error)
}

// ForecastProvider defines the interface for 3-hour forecast providers
type ForecastProvider interface {
	GetForecast(ctx context.Context, city, lang string) (*openweathermap.ForecastAPIResponse, error)
}

// Fetcher retrieves current conditions and forecast for a city
type Fetcher struct {
	currentProvider  CurrentWeatherProvider
	forecastProvider ForecastProvider
	lang             string
}

func NewFetcher(currentProvider CurrentWeatherProvider, forecastProvider ForecastProvider, lang string) *Fetcher {
	return &Fetcher{
		currentProvider:  currentProvider,
		forecastProvider: forecastProvider,
		lang:             lang,
	}
}

// Fetch calls both providers in parallel and fails if either call fails
func (f *Fetcher) Fetch(ctx context.Context, city string) (*CurrentConditions, []ForecastSample, error) {
	var (
		wg           sync.WaitGroup
		currentResp  *openweathermap.CurrentWeatherAPIResponse
		forecastResp *openweathermap.ForecastAPIResponse
		currentErr   error
		forecastErr  error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		currentResp, currentErr = f.currentProvider.GetCurrentWeather(ctx, city, f.lang)
		if currentErr != nil {
			currentErr = fmt.Errorf("failed to get current weather: %w", currentErr)
		}
	}()

	go func() {
		defer wg.Done()
		forecastResp, forecastErr = f.forecastProvider.GetForecast(ctx, city, f.lang)
		if forecastErr != nil {
			forecastErr = fmt.Errorf("failed to get forecast: %w", forecastErr)
		}
	}()

	wg.Wait()

	if err := errors.Join(currentErr, forecastErr); err != nil {
		return nil, nil, err
	}

	current, err := translateCurrent(currentResp)
	if err != nil {
		return nil, nil, err
	}

	forecast, err := translateForecast(forecastResp)
	if err != nil {
		return nil, nil, err
	}

	return current, forecast, nil
}

// translateCurrent converts an OpenWeatherMap /weather response to domain units
func translateCurrent(resp *openweathermap.CurrentWeatherAPIResponse) (*CurrentConditions, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: current weather response is nil", openweathermap.ErrMalformedResponse)
	}
	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("%w: current weather has no condition", openweathermap.ErrMalformedResponse)
	}
	if resp.Main == nil {
		return nil, fmt.Errorf("%w: current weather has no readings", openweathermap.ErrMalformedResponse)
	}

	condition := resp.Weather[0]
	return &CurrentConditions{
		Temperature:   types.NewTemperatureFromCelsius(resp.Main.Temp),
		FeelsLike:     types.NewTemperatureFromCelsius(resp.Main.FeelsLike),
		TempMin:       types.NewTemperatureFromCelsius(resp.Main.TempMin),
		TempMax:       types.NewTemperatureFromCelsius(resp.Main.TempMax),
		Wind:          types.NewWindFromMetersPerSecond(resp.Wind.Speed),
		Humidity:      resp.Main.Humidity,
		Visibility:    types.NewVisibilityFromMeters(resp.Visibility),
		Description:   condition.Description,
		Main:          condition.Main,
		ConditionCode: condition.ID,
		CountryCode:   resp.Sys.Country,
		PlaceName:     resp.Name,
		ObservedAt:    time.Unix(resp.Dt, 0).UTC(),
		Coordinates:   types.NewCoords(resp.Coord.Lat, resp.Coord.Lon),
		UTCOffset:     resp.Timezone,
	}, nil
}

// translateForecast converts the /forecast list, keeping the provider's order
func translateForecast(resp *openweathermap.ForecastAPIResponse) ([]ForecastSample, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: forecast response is nil", openweathermap.ErrMalformedResponse)
	}
	if resp.List == nil {
		return nil, fmt.Errorf("%w: forecast has no list", openweathermap.ErrMalformedResponse)
	}

	samples := make([]ForecastSample, 0, len(resp.List))
	for i, entry := range resp.List {
		if len(entry.Weather) == 0 {
			return nil, fmt.Errorf("%w: forecast entry %d has no condition", openweathermap.ErrMalformedResponse, i)
		}
		if entry.Main == nil {
			return nil, fmt.Errorf("%w: forecast entry %d has no readings", openweathermap.ErrMalformedResponse, i)
		}

		var pop float64
		if entry.Pop != nil {
			pop = *entry.Pop
		}

		samples = append(samples, ForecastSample{
			Time:          time.Unix(entry.Dt, 0).UTC(),
			TempMin:       types.NewTemperatureFromCelsius(entry.Main.TempMin),
			TempMax:       types.NewTemperatureFromCelsius(entry.Main.TempMax),
			ConditionCode: entry.Weather[0].ID,
			Pop:           pop,
		})
	}

	return samples, nil
}
