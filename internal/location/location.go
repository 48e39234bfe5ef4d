package location

import (
	"context"
	"errors"

	"clima-ja/internal/types"
)

var (
	// ErrPermissionDenied is returned when the user declines to share a position
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrUnavailable is returned when no position source exists
	ErrUnavailable = errors.New("location unavailable")
)

// Locator requests the device position at startup. The result is never used
// to look up weather; the dashboard always starts with the default city.
type Locator interface {
	Locate(ctx context.Context) (*types.Coords, error)
}

// StaticLocator answers with fixed coordinates, or with ErrPermissionDenied
// when disabled. Out-of-range coordinates are reported as ErrUnavailable.
type StaticLocator struct {
	enabled bool
	coords  types.Coords
}

// NewStaticLocator creates a locator from configured coordinates
func NewStaticLocator(enabled bool, latitude, longitude float64) *StaticLocator {
	return &StaticLocator{
		enabled: enabled,
		coords:  types.NewCoords(latitude, longitude),
	}
}

func (l *StaticLocator) Locate(ctx context.Context) (*types.Coords, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrUnavailable
	}
	if !l.enabled {
		return nil, ErrPermissionDenied
	}
	if !l.coords.Valid() {
		return nil, ErrUnavailable
	}
	coords := l.coords
	return &coords, nil
}
