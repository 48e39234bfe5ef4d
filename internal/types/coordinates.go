package types

// Coords is a WGS84 position in decimal degrees, as reported by the device
// locator or by OpenWeatherMap for a resolved city.
type Coords struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether both components are within range
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
