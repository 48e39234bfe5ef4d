package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clima-ja/internal/config"
	"clima-ja/internal/providers/openweathermap"
	"clima-ja/internal/timezone"
)

type Service interface {
	// GetDashboard returns the display model for a city. It never fails: on
	// any fetch error the locale's fallback model is returned with the
	// requested city, and fromFallback is true.
	GetDashboard(ctx context.Context, city string) (model *DisplayModel, fromFallback bool)
}

type weatherService struct {
	fetcher         *Fetcher
	aggregator      *Aggregator
	timezoneService timezone.Service
	locale          Locale
	now             func() time.Time
	logger          *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	locale, err := ParseLocale(cfg.Weather.Locale)
	if err != nil {
		return nil, err
	}

	var tzSvc timezone.Service
	if cfg.Weather.ResolveTimezone {
		tzSvc, err = timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
	}

	client := openweathermap.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, logger)
	return NewWeatherServiceWithProviders(client, client, tzSvc, locale, time.Now, logger), nil
}

// NewWeatherServiceWithProviders creates a weather service with custom providers.
// timezoneService may be nil, in which case the payload's UTC offset is used.
func NewWeatherServiceWithProviders(
	currentProvider CurrentWeatherProvider,
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	locale Locale,
	now func() time.Time,
	logger *slog.Logger,
) Service {
	if now == nil {
		now = time.Now
	}
	return &weatherService{
		fetcher:         NewFetcher(currentProvider, forecastProvider, locale.APILang),
		aggregator:      NewAggregator(locale, now),
		timezoneService: timezoneService,
		locale:          locale,
		now:             now,
		logger:          logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetDashboard(ctx context.Context, city string) (*DisplayModel, bool) {
	current, forecast, err := s.fetcher.Fetch(ctx, city)
	if err != nil {
		s.logger.Warn("serving fallback weather",
			"city", city,
			"error_kind", errorKind(err),
			"error", err,
		)
		return s.locale.Fallback(city, s.now()), true
	}

	loc := s.reportingLocation(current)

	s.logger.Debug("aggregating forecast",
		"city", current.PlaceName,
		"samples", len(forecast),
		"timezone", loc.String(),
	)

	return s.aggregator.Aggregate(current, forecast, loc), false
}

// reportingLocation picks the timezone used for calendar dates: the IANA zone
// of the city when it can be resolved, else a fixed zone from the payload
func (s *weatherService) reportingLocation(current *CurrentConditions) *time.Location {
	if s.timezoneService != nil {
		loc, err := s.timezoneService.GetLocation(current.Coordinates.Latitude, current.Coordinates.Longitude)
		if err == nil {
			return loc
		}
		s.logger.Debug("falling back to UTC offset for timezone",
			"latitude", current.Coordinates.Latitude,
			"longitude", current.Coordinates.Longitude,
			"utc_offset", current.UTCOffset,
			"error", err,
		)
	}
	return fixedZone(current.UTCOffset)
}

func fixedZone(offsetSeconds int) *time.Location {
	if offsetSeconds == 0 {
		return time.UTC
	}
	sign := '+'
	abs := offsetSeconds
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	return time.FixedZone(fmt.Sprintf("UTC%c%02d:%02d", sign, abs/3600, abs%3600/60), offsetSeconds)
}

// errorKind names the failure class for logs
func errorKind(err error) string {
	switch {
	case errors.Is(err, openweathermap.ErrNetwork):
		return "network"
	case errors.Is(err, openweathermap.ErrUpstream):
		return "upstream"
	case errors.Is(err, openweathermap.ErrMalformedResponse):
		return "malformed"
	default:
		return "unknown"
	}
}
