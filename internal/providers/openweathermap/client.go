package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// API Docs: https://openweathermap.org/current and https://openweathermap.org/forecast5
// Sample request: https://api.openweathermap.org/data/2.5/weather?q=S%C3%A3o%20Paulo&units=metric&lang=pt_br&appid=KEY
const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	currentEndpoint  = "weather"
	forecastEndpoint = "forecast"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a client for the given base URL. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger.With("component", "openweathermap"),
	}
}

// GetCurrentWeather fetches the current conditions for a city name
func (c *Client) GetCurrentWeather(ctx context.Context, city, lang string) (*CurrentWeatherAPIResponse, error) {
	var apiResp CurrentWeatherAPIResponse
	if err := c.get(ctx, currentEndpoint, city, lang, &apiResp); err != nil {
		return nil, err
	}
	if err := apiResp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, currentEndpoint, err)
	}
	return &apiResp, nil
}

// GetForecast fetches the 5 day / 3 hour forecast for a city name
func (c *Client) GetForecast(ctx context.Context, city, lang string) (*ForecastAPIResponse, error) {
	var apiResp ForecastAPIResponse
	if err := c.get(ctx, forecastEndpoint, city, lang, &apiResp); err != nil {
		return nil, err
	}
	if err := apiResp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, forecastEndpoint, err)
	}
	return &apiResp, nil
}

func (c *Client) get(ctx context.Context, endpoint, city, lang string, out any) error {
	u, err := url.Parse(c.baseURL + "/" + endpoint)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("lang", lang)
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug("requesting openweathermap", "endpoint", endpoint, "city", city, "lang", lang)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrNetwork, endpoint, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("openweathermap returned error",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"response_body", string(body))
		return &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode response", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, endpoint, err)
	}

	return nil
}

// upstreamMessage extracts the message field of an error body, falling back
// to the raw body text.
func upstreamMessage(body []byte) string {
	var apiErr APIErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return strings.TrimSpace(string(body))
}
