package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Weather  WeatherConfig
	Location LocationConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port      int
	GinMode   string // debug, release, test
	RateLimit RateLimitConfig
}

// RateLimitConfig bounds inbound requests per second across all clients
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// WeatherConfig holds the upstream provider and presentation settings
type WeatherConfig struct {
	APIKey          string
	BaseURL         string
	Locale          string // pt_br, en
	DefaultCity     string
	ResolveTimezone bool
}

// LocationConfig configures the startup locator. Coordinates are only
// requested, never used for lookup.
type LocationConfig struct {
	Enabled   bool
	Latitude  float64
	Longitude float64
}

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine; a malformed one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.clima-ja")

	setDefaults(v)

	// Read from environment variables, e.g. CLIMA_WEATHER_APIKEY
	v.SetEnvPrefix("CLIMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.ratelimit.rps", 5.0)
	v.SetDefault("server.ratelimit.burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("weather.apikey", "")
	v.SetDefault("weather.baseurl", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.locale", "pt_br")
	v.SetDefault("weather.defaultcity", "São Paulo")
	v.SetDefault("weather.resolvetimezone", true)
	v.SetDefault("location.enabled", false)
	v.SetDefault("location.latitude", 0.0)
	v.SetDefault("location.longitude", 0.0)
}

// Validate reports settings the application cannot start without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Weather.APIKey) == "" {
		return errors.New("weather API key is required (set CLIMA_WEATHER_APIKEY)")
	}
	if strings.TrimSpace(c.Weather.DefaultCity) == "" {
		return errors.New("default city must not be empty")
	}
	if c.Server.RateLimit.RPS <= 0 || c.Server.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit must be positive, got rps=%v burst=%d", c.Server.RateLimit.RPS, c.Server.RateLimit.Burst)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
