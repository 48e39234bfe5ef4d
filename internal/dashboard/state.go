package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"clima-ja/internal/location"
	"clima-ja/internal/weather"
)

// Snapshot is what the presenter renders
type Snapshot struct {
	ActiveCity string                `json:"activeCity"`
	Loading    bool                  `json:"loading"`
	Weather    *weather.DisplayModel `json:"weather"`
}

// LoadResult describes one finished Load
type LoadResult struct {
	Model        *weather.DisplayModel
	FromFallback bool
	// Committed is false when a newer Load started before this one finished
	// and its result was discarded
	Committed bool
}

// State holds the dashboard's active city, loading flag and latest model.
// Every Load takes a generation number; only the latest generation may
// commit, so a slow superseded request cannot overwrite a newer result.
type State struct {
	service     weather.Service
	defaultCity string
	logger      *slog.Logger

	generation atomic.Uint64

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewState(service weather.Service, defaultCity string, logger *slog.Logger) *State {
	return &State{
		service:     service,
		defaultCity: defaultCity,
		logger:      logger.With("component", "dashboard"),
		snapshot:    Snapshot{ActiveCity: defaultCity},
	}
}

// Load cleans the city, fetches its dashboard and commits it if no newer
// Load has been issued in the meantime
func (s *State) Load(ctx context.Context, rawCity string) (*LoadResult, error) {
	city, err := CleanCity(rawCity)
	if err != nil {
		return nil, err
	}

	gen := s.generation.Add(1)

	s.mu.Lock()
	s.snapshot.ActiveCity = city
	s.snapshot.Loading = true
	s.mu.Unlock()

	model, fromFallback := s.service.GetDashboard(ctx, city)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation.Load() {
		s.logger.Info("discarding stale dashboard result",
			"city", city,
			"generation", gen,
			"latest", s.generation.Load(),
		)
		return &LoadResult{Model: model, FromFallback: fromFallback}, nil
	}

	s.snapshot.Weather = model
	s.snapshot.Loading = false

	s.logger.Debug("dashboard updated", "city", city, "generation", gen, "fallback", fromFallback)

	return &LoadResult{Model: model, FromFallback: fromFallback, Committed: true}, nil
}

// Snapshot returns a copy of the current state
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Start runs the startup flow: ask the locator for a position if there is
// one, then load the default city whatever the answer. The position is not
// used for lookup.
func (s *State) Start(ctx context.Context, locator location.Locator) (*LoadResult, error) {
	if locator != nil {
		coords, err := locator.Locate(ctx)
		switch {
		case err == nil:
			s.logger.Debug("location granted, using default city",
				"latitude", coords.Latitude,
				"longitude", coords.Longitude,
			)
		case errors.Is(err, location.ErrPermissionDenied):
			s.logger.Debug("location permission denied, using default city")
		default:
			s.logger.Debug("location unavailable, using default city", "error", err)
		}
	}

	return s.Load(ctx, s.defaultCity)
}
