package weather

import (
	"reflect"
	"testing"
	"time"

	"clima-ja/internal/types"
)

var brt = time.FixedZone("BRT", -3*60*60)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleAt(t time.Time, code int, tempMin, tempMax, pop float64) ForecastSample {
	return ForecastSample{
		Time:          t.UTC(),
		TempMin:       types.NewTemperatureFromCelsius(tempMin),
		TempMax:       types.NewTemperatureFromCelsius(tempMax),
		ConditionCode: code,
		Pop:           pop,
	}
}

func baseCurrent() *CurrentConditions {
	return &CurrentConditions{
		Temperature:   types.NewTemperatureFromCelsius(19.4),
		FeelsLike:     types.NewTemperatureFromCelsius(17.2),
		TempMin:       types.NewTemperatureFromCelsius(12.6),
		TempMax:       types.NewTemperatureFromCelsius(25.5),
		Wind:          types.NewWindFromMetersPerSecond(3.33),
		Humidity:      64,
		Visibility:    types.NewVisibilityFromMeters(nil),
		Description:   "nuvens dispersas",
		Main:          "Clouds",
		ConditionCode: 802,
		CountryCode:   "BR",
		PlaceName:     "São Paulo",
	}
}

func TestAggregator_ConcreteScenario(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, brt)
	forecast := []ForecastSample{
		sampleAt(day.Add(9*time.Hour), 800, 14, 20, 0.1),
		sampleAt(day.Add(13*time.Hour), 500, 15, 22, 0.45),
	}

	agg := NewAggregator(LocalePortuguese, fixedClock(day.Add(8*time.Hour)))
	model := agg.Aggregate(baseCurrent(), forecast, brt)

	if model.High != 22 || model.Low != 14 {
		t.Errorf("High/Low = %d/%d, want 22/14", model.High, model.Low)
	}
	if len(model.DailyForecast) != 1 {
		t.Fatalf("len(DailyForecast) = %d, want 1", len(model.DailyForecast))
	}
	if got := model.DailyForecast[0].Icon; got != IconRain {
		t.Errorf("DailyForecast[0].Icon = %q, want rain", got)
	}
	if model.CurrentTemp != 19 {
		t.Errorf("CurrentTemp = %d, want 19", model.CurrentTemp)
	}
	if model.FeelsLike != 17 {
		t.Errorf("FeelsLike = %d, want 17", model.FeelsLike)
	}
	if model.WindSpeed != 12 {
		t.Errorf("WindSpeed = %d, want 12", model.WindSpeed)
	}
	if model.Visibility != 10 {
		t.Errorf("Visibility = %d, want 10", model.Visibility)
	}
	if model.Humidity != 64 || model.CountryCode != "BR" || model.City != "São Paulo" {
		t.Errorf("copied fields = %d/%q/%q", model.Humidity, model.CountryCode, model.City)
	}
	if model.Condition != "Nuvens dispersas" {
		t.Errorf("Condition = %q, want Nuvens dispersas", model.Condition)
	}
	if model.UVIndex != 4 || model.UVLevel != "Moderado" {
		t.Errorf("UV = %d/%q, want 4/Moderado", model.UVIndex, model.UVLevel)
	}
	if model.LastUpdated != "08:00" {
		t.Errorf("LastUpdated = %q, want 08:00", model.LastUpdated)
	}
}

func TestAggregator_MiddayOverride(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, brt)
	at := func(hour, code int) ForecastSample {
		return sampleAt(day.Add(time.Duration(hour)*time.Hour), code, 15, 20, 0)
	}

	tests := []struct {
		name     string
		forecast []ForecastSample
		want     IconCategory
	}{
		{
			name:     "midday sample overrides seed",
			forecast: []ForecastSample{at(6, 800), at(13, 500)},
			want:     IconRain,
		},
		{
			name:     "last midday sample wins",
			forecast: []ForecastSample{at(6, 800), at(12, 500), at(15, 211)},
			want:     IconStorm,
		},
		{
			name:     "window start is inclusive",
			forecast: []ForecastSample{at(3, 800), at(11, 804)},
			want:     IconCloudy,
		},
		{
			name:     "afternoon sample does not override",
			forecast: []ForecastSample{at(6, 800), at(16, 500), at(21, 500)},
			want:     IconSunny,
		},
		{
			name:     "seed kept when it is the only sample",
			forecast: []ForecastSample{at(0, 801)},
			want:     IconPartlyCloudy,
		},
		{
			name:     "later non-midday sample after midday override keeps override",
			forecast: []ForecastSample{at(9, 800), at(12, 600), at(18, 800)},
			want:     IconRain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(LocalePortuguese, fixedClock(day))
			model := agg.Aggregate(baseCurrent(), tt.forecast, brt)
			if len(model.DailyForecast) != 1 {
				t.Fatalf("len(DailyForecast) = %d, want 1", len(model.DailyForecast))
			}
			if got := model.DailyForecast[0].Icon; got != tt.want {
				t.Errorf("Icon = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAggregator_DailyGrouping(t *testing.T) {
	// 40 samples, 3 hours apart, starting mid-afternoon: spans 6 dates
	start := time.Date(2026, 10, 19, 15, 0, 0, 0, brt)
	var forecast []ForecastSample
	for i := 0; i < 40; i++ {
		ts := start.Add(time.Duration(i*3) * time.Hour)
		base := 15 + float64(ts.Hour())/3
		forecast = append(forecast, sampleAt(ts, 800+i%4, base-1.5, base+2.5, 0))
	}

	agg := NewAggregator(LocaleEnglish, fixedClock(start))
	model := agg.Aggregate(baseCurrent(), forecast, brt)

	wantDays := []string{"MON", "TUE", "WED", "THU", "FRI", "SAT"}
	if len(model.DailyForecast) != len(wantDays) {
		t.Fatalf("len(DailyForecast) = %d, want %d", len(model.DailyForecast), len(wantDays))
	}
	for i, d := range model.DailyForecast {
		if d.Day != wantDays[i] {
			t.Errorf("DailyForecast[%d].Day = %q, want %q", i, d.Day, wantDays[i])
		}
		if d.Low > d.High {
			t.Errorf("DailyForecast[%d] low %d > high %d", i, d.Low, d.High)
		}
	}

	// Monday only has samples at 15h, 18h and 21h
	monday := model.DailyForecast[0]
	if monday.High != 25 || monday.Low != 19 {
		t.Errorf("Monday High/Low = %d/%d, want 25/19", monday.High, monday.Low)
	}
	if model.High != 25 || model.Low != 19 {
		t.Errorf("today High/Low = %d/%d, want 25/19", model.High, model.Low)
	}
}

func TestAggregator_UnorderedInput(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, brt)
	forecast := []ForecastSample{
		sampleAt(day.Add(36*time.Hour), 500, 17, 21, 0.9),
		sampleAt(day.Add(12*time.Hour), 803, 18, 26, 0.2),
		sampleAt(day.Add(3*time.Hour), 800, 16, 20, 0),
		sampleAt(day.Add(27*time.Hour), 200, 18, 23, 0.6),
	}

	agg := NewAggregator(LocaleEnglish, fixedClock(day))
	model := agg.Aggregate(baseCurrent(), forecast, brt)

	want := []DailyForecast{
		{Day: "MON", Icon: IconCloudy, High: 26, Low: 16},
		{Day: "TUE", Icon: IconRain, High: 23, Low: 17},
	}
	if !reflect.DeepEqual(model.DailyForecast, want) {
		t.Errorf("DailyForecast = %+v, want %+v", model.DailyForecast, want)
	}

	// rain series keeps the input order
	wantRain := []RainChance{
		{Time: "12:00 PM", Percentage: 90},
		{Time: "12:00 PM", Percentage: 20},
		{Time: "3:00 AM", Percentage: 0},
		{Time: "3:00 AM", Percentage: 60},
	}
	if !reflect.DeepEqual(model.RainForecast, wantRain) {
		t.Errorf("RainForecast = %+v, want %+v", model.RainForecast, wantRain)
	}
}

func TestAggregator_RainSeriesLength(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, brt)
	build := func(k int) []ForecastSample {
		var out []ForecastSample
		for i := 0; i < k; i++ {
			out = append(out, sampleAt(start.Add(time.Duration(3*i)*time.Hour), 500, 15, 20, float64(i)*0.125))
		}
		return out
	}

	tests := []struct {
		k    int
		want int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{4, 4},
		{40, 4},
	}

	for _, tt := range tests {
		agg := NewAggregator(LocalePortuguese, fixedClock(start))
		model := agg.Aggregate(baseCurrent(), build(tt.k), brt)
		if len(model.RainForecast) != tt.want {
			t.Errorf("K=%d: len(RainForecast) = %d, want %d", tt.k, len(model.RainForecast), tt.want)
		}
		if model.RainForecast == nil {
			t.Errorf("K=%d: RainForecast is nil", tt.k)
		}
	}

	model := NewAggregator(LocalePortuguese, fixedClock(start)).Aggregate(baseCurrent(), build(4), brt)
	want := []RainChance{
		{Time: "09:00", Percentage: 0},
		{Time: "12:00", Percentage: 13},
		{Time: "15:00", Percentage: 25},
		{Time: "18:00", Percentage: 38},
	}
	if !reflect.DeepEqual(model.RainForecast, want) {
		t.Errorf("RainForecast = %+v, want %+v", model.RainForecast, want)
	}
}

func TestAggregator_TodayFallsBackToCurrent(t *testing.T) {
	// Just before midnight: every forecast sample is tomorrow
	now := time.Date(2026, 10, 19, 23, 50, 0, 0, brt)
	forecast := []ForecastSample{
		sampleAt(time.Date(2026, 10, 20, 0, 0, 0, 0, brt), 800, 10, 11, 0),
		sampleAt(time.Date(2026, 10, 20, 3, 0, 0, 0, brt), 800, 9, 12, 0),
	}

	agg := NewAggregator(LocalePortuguese, fixedClock(now))
	model := agg.Aggregate(baseCurrent(), forecast, brt)

	if model.High != 26 || model.Low != 13 {
		t.Errorf("High/Low = %d/%d, want 26/13 from current payload", model.High, model.Low)
	}
	if len(model.DailyForecast) != 1 {
		t.Errorf("len(DailyForecast) = %d, want 1", len(model.DailyForecast))
	}
}

func TestAggregator_EmptyForecast(t *testing.T) {
	agg := NewAggregator(LocalePortuguese, fixedClock(time.Date(2026, 10, 19, 10, 0, 0, 0, brt)))
	model := agg.Aggregate(baseCurrent(), nil, brt)

	if model.RainForecast == nil || len(model.RainForecast) != 0 {
		t.Errorf("RainForecast = %v, want empty slice", model.RainForecast)
	}
	if model.DailyForecast == nil || len(model.DailyForecast) != 0 {
		t.Errorf("DailyForecast = %v, want empty slice", model.DailyForecast)
	}
	if model.High != 26 || model.Low != 13 {
		t.Errorf("High/Low = %d/%d, want 26/13", model.High, model.Low)
	}
}

func TestAggregator_ReportingTimezone(t *testing.T) {
	// 01:00 UTC on the 20th is still the 19th at 22:00 in BRT
	forecast := []ForecastSample{
		sampleAt(time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC), 800, 20, 24, 0),
		sampleAt(time.Date(2026, 10, 20, 1, 0, 0, 0, time.UTC), 500, 17, 19, 0),
	}
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	inBRT := NewAggregator(LocaleEnglish, fixedClock(now)).Aggregate(baseCurrent(), forecast, brt)
	if len(inBRT.DailyForecast) != 1 {
		t.Errorf("BRT: len(DailyForecast) = %d, want 1", len(inBRT.DailyForecast))
	}
	if inBRT.High != 24 || inBRT.Low != 17 {
		t.Errorf("BRT: High/Low = %d/%d, want 24/17", inBRT.High, inBRT.Low)
	}

	inUTC := NewAggregator(LocaleEnglish, fixedClock(now)).Aggregate(baseCurrent(), forecast, nil)
	if len(inUTC.DailyForecast) != 2 {
		t.Errorf("UTC: len(DailyForecast) = %d, want 2", len(inUTC.DailyForecast))
	}
}

func TestAggregator_Idempotent(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, brt)
	forecast := []ForecastSample{
		sampleAt(day.Add(9*time.Hour), 800, 14, 20, 0.1),
		sampleAt(day.Add(12*time.Hour), 300, 15, 22, 0.55),
		sampleAt(day.Add(33*time.Hour), 701, 13, 18, 0.05),
	}

	first := NewAggregator(LocalePortuguese, fixedClock(day.Add(8*time.Hour))).Aggregate(baseCurrent(), forecast, brt)
	second := NewAggregator(LocalePortuguese, fixedClock(day.Add(10*time.Hour))).Aggregate(baseCurrent(), forecast, brt)

	if first.LastUpdated == second.LastUpdated {
		t.Fatalf("LastUpdated should differ, both %q", first.LastUpdated)
	}
	first.LastUpdated, second.LastUpdated = "", ""
	if !reflect.DeepEqual(first, second) {
		t.Errorf("models differ beyond LastUpdated:\n%+v\n%+v", first, second)
	}
}

func TestAggregator_DoesNotReorderInput(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, brt)
	forecast := []ForecastSample{
		sampleAt(day.Add(12*time.Hour), 500, 15, 22, 0),
		sampleAt(day.Add(3*time.Hour), 800, 14, 20, 0),
	}
	first := forecast[0].Time

	NewAggregator(LocalePortuguese, fixedClock(day)).Aggregate(baseCurrent(), forecast, brt)

	if !forecast[0].Time.Equal(first) {
		t.Error("Aggregate sorted the caller's slice")
	}
}
