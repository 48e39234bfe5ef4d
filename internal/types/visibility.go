package types

// DefaultVisibilityMeters is assumed when the provider omits visibility
const DefaultVisibilityMeters = 10000

type Visibility struct {
	Meters     int
	Kilometers float64
}

// NewVisibilityFromMeters builds a Visibility, falling back to
// DefaultVisibilityMeters when meters is nil.
func NewVisibilityFromMeters(meters *int) Visibility {
	m := DefaultVisibilityMeters
	if meters != nil {
		m = *meters
	}
	return Visibility{
		Meters:     m,
		Kilometers: float64(m) / 1000,
	}
}

// RoundedKilometers returns the visibility in whole kilometres
func (v Visibility) RoundedKilometers() int {
	return RoundHalfUp(v.Kilometers)
}
