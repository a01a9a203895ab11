package models

// WeatherCondition 天气状况
type WeatherCondition string

const (
	ConditionSunny        WeatherCondition = "sunny"
	ConditionPartlyCloudy WeatherCondition = "partly-cloudy"
	ConditionCloudy       WeatherCondition = "cloudy"
	ConditionRainy        WeatherCondition = "rainy"
	ConditionStormy       WeatherCondition = "stormy"
)

// WeatherForecast 逐小时预报
type WeatherForecast struct {
	Hour             int              `json:"hour"`
	Condition        WeatherCondition `json:"condition"`
	Temperature      float64          `json:"temperature"`
	SolarRadiation   float64          `json:"solarRadiation"`   // W/m²
	ProductionImpact float64          `json:"productionImpact"` // 0-100 %
}

// Weather represents the simulated local weather and its effect on solar production
type Weather struct {
	Season         string            `json:"season"`
	Temperature    float64           `json:"temperature"`
	Condition      WeatherCondition  `json:"condition"`
	Humidity       float64           `json:"humidity"`
	WindSpeed      float64           `json:"windSpeed"`
	SolarRadiation float64           `json:"solarRadiation"`
	CloudCover     float64           `json:"cloudCover"`
	Forecast       []WeatherForecast `json:"forecast"`
}
