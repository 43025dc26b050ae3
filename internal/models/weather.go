package models

// WeatherSnapshot holds the current conditions for one location, normalized
// across providers: temperatures in whole °C, wind speed in m/s.
type WeatherSnapshot struct {
	Location    string  `json:"location"`
	Temperature int     `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
	FeelsLike   int     `json:"feelsLike"`
}
