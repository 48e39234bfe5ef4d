package types

const MetersPerSecondToKph = 3.6

type Wind struct {
	SpeedInMetersPerSecond float64
	SpeedInKph             float64
}

func NewWindFromMetersPerSecond(speed float64) Wind {
	return Wind{
		SpeedInMetersPerSecond: speed,
		SpeedInKph:             speed * MetersPerSecondToKph,
	}
}

// RoundedKph returns the wind speed in whole km/h
func (w Wind) RoundedKph() int {
	return RoundHalfUp(w.SpeedInKph)
}
