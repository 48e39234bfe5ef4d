//go:build integration

package weather

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"clima-ja/internal/config"
)

func TestWeatherService_GetDashboard_Integration(t *testing.T) {
	apiKey := os.Getenv("CLIMA_WEATHER_APIKEY")
	if apiKey == "" {
		t.Skip("CLIMA_WEATHER_APIKEY not set")
	}

	cfg := &config.Config{
		Weather: config.WeatherConfig{
			APIKey:          apiKey,
			Locale:          "pt_br",
			DefaultCity:     "São Paulo",
			ResolveTimezone: true,
		},
	}

	svc, err := NewWeatherService(cfg, discardLogger())
	if err != nil {
		t.Fatalf("Failed to create weather service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	model, fromFallback := svc.GetDashboard(ctx, "São Paulo")
	if fromFallback {
		t.Fatal("Expected live data, got fallback")
	}

	rawJSON, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal model: %v", err)
	}
	t.Logf("Display model:\n%s", string(rawJSON))

	if model.CountryCode != "BR" {
		t.Errorf("Expected country BR, got %q", model.CountryCode)
	}
	if len(model.RainForecast) != 4 {
		t.Errorf("Expected 4 rain entries, got %d", len(model.RainForecast))
	}
	// 5 days of 3-hour steps touch 5 or 6 calendar dates
	if n := len(model.DailyForecast); n < 5 || n > 6 {
		t.Errorf("Expected 5 or 6 daily entries, got %d", n)
	}
	for i, d := range model.DailyForecast {
		if d.Low > d.High {
			t.Errorf("Day %d (%s): low %d > high %d", i, d.Day, d.Low, d.High)
		}
	}

	t.Log("✓ Live dashboard assembled")
}
