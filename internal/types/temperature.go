package types

type Temperature struct {
	Celsius    float64
	Fahrenheit float64
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
	}
}

// RoundedCelsius returns the whole-degree Celsius value shown on the dashboard
func (t Temperature) RoundedCelsius() int {
	return RoundHalfUp(t.Celsius)
}
