package weather

// CategoryForCode maps an OpenWeatherMap condition code to an icon category.
// See https://openweathermap.org/weather-conditions for the code groups.
// Snow (6xx) is folded into rain.
func CategoryForCode(code int) IconCategory {
	switch {
	case code >= 200 && code < 300:
		return IconStorm
	case code >= 300 && code < 700:
		return IconRain
	case code >= 700 && code < 800:
		return IconCloudy
	case code == 800:
		return IconSunny
	case code == 801 || code == 802:
		return IconPartlyCloudy
	case code >= 803 && code < 900:
		return IconCloudy
	default:
		return IconSunny
	}
}
