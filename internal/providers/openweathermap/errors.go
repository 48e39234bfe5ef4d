package openweathermap

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork is returned when the request could not be completed
	ErrNetwork = errors.New("network error")

	// ErrUpstream is returned when OpenWeatherMap answers with a non-2xx status
	ErrUpstream = errors.New("upstream error")

	// ErrMalformedResponse is returned when the body does not decode or is
	// missing fields the dashboard depends on
	ErrMalformedResponse = errors.New("malformed response")
)

// UpstreamError carries the status and message of a rejected request.
// errors.Is(err, ErrUpstream) reports true for it.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}
