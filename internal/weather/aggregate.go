package weather

import (
	"math"
	"slices"
	"time"

	"clima-ja/internal/types"
)

const (
	rainSeriesLength = 4
	middayStartHour  = 11
	middayEndHour    = 15
	placeholderUV    = 4
	dateKeyLayout    = "2006-01-02"
)

// Aggregator reshapes provider payloads into a DisplayModel. It holds no
// state between calls; the clock only decides "today" and the timestamps.
type Aggregator struct {
	locale Locale
	now    func() time.Time
}

func NewAggregator(locale Locale, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		locale: locale,
		now:    now,
	}
}

// dayBucket accumulates the samples of one calendar date
type dayBucket struct {
	date     string
	label    string
	min      float64
	max      float64
	iconCode int
}

// Aggregate builds the display model. Calendar dates and hours are taken in
// loc; a nil loc means UTC.
func (a *Aggregator) Aggregate(current *CurrentConditions, forecast []ForecastSample, loc *time.Location) *DisplayModel {
	if loc == nil {
		loc = time.UTC
	}
	now := a.now().In(loc)

	buckets := groupByDay(forecast, loc, a.locale)

	high := current.TempMax.RoundedCelsius()
	low := current.TempMin.RoundedCelsius()
	today := now.Format(dateKeyLayout)
	for _, b := range buckets {
		if b.date == today {
			high = types.RoundHalfUp(b.max)
			low = types.RoundHalfUp(b.min)
			break
		}
	}

	daily := make([]DailyForecast, 0, len(buckets))
	for _, b := range buckets {
		daily = append(daily, DailyForecast{
			Day:  b.label,
			Icon: CategoryForCode(b.iconCode),
			High: types.RoundHalfUp(b.max),
			Low:  types.RoundHalfUp(b.min),
		})
	}

	return &DisplayModel{
		City:          current.PlaceName,
		CountryCode:   current.CountryCode,
		CurrentTemp:   current.Temperature.RoundedCelsius(),
		Condition:     a.locale.ConditionLabel(current.Description, current.Main),
		High:          high,
		Low:           low,
		FeelsLike:     current.FeelsLike.RoundedCelsius(),
		WindSpeed:     current.Wind.RoundedKph(),
		Humidity:      current.Humidity,
		UVIndex:       placeholderUV,
		UVLevel:       a.locale.UVLevel,
		Visibility:    current.Visibility.RoundedKilometers(),
		RainForecast:  rainSeries(forecast, loc, a.locale),
		DailyForecast: daily,
		LastUpdated:   a.locale.TimeLabel(now),
		FormattedDate: a.locale.LongDate(now),
	}
}

// rainSeries takes the first samples in the order given, without sorting
func rainSeries(forecast []ForecastSample, loc *time.Location, locale Locale) []RainChance {
	n := min(len(forecast), rainSeriesLength)
	series := make([]RainChance, 0, n)
	for _, sample := range forecast[:n] {
		series = append(series, RainChance{
			Time:       locale.TimeLabel(sample.Time.In(loc)),
			Percentage: types.RoundHalfUp(sample.Pop * 100),
		})
	}
	return series
}

// groupByDay buckets samples by calendar date in loc, ordered by date
// ascending. Samples are visited in timestamp order so the seed and the last
// midday sample do not depend on arrival order.
func groupByDay(forecast []ForecastSample, loc *time.Location, locale Locale) []*dayBucket {
	sorted := slices.Clone(forecast)
	slices.SortStableFunc(sorted, func(a, b ForecastSample) int {
		return a.Time.Compare(b.Time)
	})

	var buckets []*dayBucket
	byDate := make(map[string]*dayBucket)

	for _, sample := range sorted {
		local := sample.Time.In(loc)
		key := local.Format(dateKeyLayout)

		bucket, ok := byDate[key]
		if !ok {
			bucket = &dayBucket{
				date:     key,
				label:    locale.DayLabel(local),
				min:      sample.TempMin.Celsius,
				max:      sample.TempMax.Celsius,
				iconCode: sample.ConditionCode,
			}
			byDate[key] = bucket
			buckets = append(buckets, bucket)
			continue
		}

		bucket.min = math.Min(bucket.min, sample.TempMin.Celsius)
		bucket.max = math.Max(bucket.max, sample.TempMax.Celsius)

		if hour := local.Hour(); hour >= middayStartHour && hour <= middayEndHour {
			bucket.iconCode = sample.ConditionCode
		}
	}

	return buckets
}
