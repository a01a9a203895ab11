package services

import (
	"math"
	"time"

	"smarthome-http-service/models"
	"smarthome-http-service/utils"
)

// ForecastHours 预报的小时数
const ForecastHours = 24

// seasonConfig 各季节的天气参数
type seasonConfig struct {
	baseTemp     float64
	tempRange    float64
	maxRadiation float64
	sunrise      int
	sunset       int
	// 按 sunny, partly-cloudy, cloudy, rainy, stormy 顺序的概率
	probabilities [5]float64
	baseHumidity  float64
	baseWind      float64
}

var conditionOrder = [5]models.WeatherCondition{
	models.ConditionSunny,
	models.ConditionPartlyCloudy,
	models.ConditionCloudy,
	models.ConditionRainy,
	models.ConditionStormy,
}

var seasonConfigs = map[Season]seasonConfig{
	SeasonSpring: {baseTemp: 15, tempRange: 20, maxRadiation: 900, sunrise: 6, sunset: 20,
		probabilities: [5]float64{0.35, 0.35, 0.2, 0.08, 0.02}, baseHumidity: 60, baseWind: 5},
	SeasonSummer: {baseTemp: 25, tempRange: 15, maxRadiation: 1000, sunrise: 5, sunset: 21,
		probabilities: [5]float64{0.5, 0.3, 0.15, 0.04, 0.01}, baseHumidity: 50, baseWind: 3},
	SeasonAutumn: {baseTemp: 12, tempRange: 18, maxRadiation: 700, sunrise: 7, sunset: 19,
		probabilities: [5]float64{0.25, 0.3, 0.3, 0.12, 0.03}, baseHumidity: 70, baseWind: 6},
	SeasonWinter: {baseTemp: 2, tempRange: 16, maxRadiation: 500, sunrise: 8, sunset: 17,
		probabilities: [5]float64{0.2, 0.25, 0.35, 0.15, 0.05}, baseHumidity: 80, baseWind: 8},
}

// 各天气状况对应的修正值
var (
	conditionTempAdjust      = map[models.WeatherCondition]float64{models.ConditionSunny: 3, models.ConditionCloudy: -2, models.ConditionRainy: -4, models.ConditionStormy: -6}
	conditionRadiationFactor = map[models.WeatherCondition]float64{models.ConditionSunny: 1, models.ConditionPartlyCloudy: 0.7, models.ConditionCloudy: 0.3, models.ConditionRainy: 0.15, models.ConditionStormy: 0.05}
	conditionHumidityAdjust  = map[models.WeatherCondition]float64{models.ConditionSunny: -20, models.ConditionPartlyCloudy: -10, models.ConditionCloudy: 0, models.ConditionRainy: 15, models.ConditionStormy: 20}
	conditionCloudCover      = map[models.WeatherCondition]float64{models.ConditionSunny: 5, models.ConditionPartlyCloudy: 40, models.ConditionCloudy: 80, models.ConditionRainy: 90, models.ConditionStormy: 95}
	conditionWindAdjust      = map[models.WeatherCondition]float64{models.ConditionSunny: -2, models.ConditionPartlyCloudy: 0, models.ConditionCloudy: 1, models.ConditionRainy: 3, models.ConditionStormy: 8}
	conditionImpactFactor    = map[models.WeatherCondition]float64{models.ConditionSunny: 1.1, models.ConditionPartlyCloudy: 0.9, models.ConditionCloudy: 0.7, models.ConditionRainy: 0.5, models.ConditionStormy: 0.3}
)

// InterfaceWeatherService 定义天气服务接口
type InterfaceWeatherService interface {
	Current() *models.Weather
	At(t time.Time) *models.Weather
}

// WeatherService 按日期和小时生成确定性的模拟天气，同一小时内多次请求结果一致
type WeatherService struct {
	now func() time.Time
}

// NewWeatherService 创建天气服务
func NewWeatherService() *WeatherService {
	return &WeatherService{now: time.Now}
}

func daySeed(t time.Time) float64 {
	return float64(t.Year()*10000 + int(t.Month()-1)*100 + t.Day())
}

func hourSeed(day float64, hour int) float64 {
	return day + float64(hour)*0.1
}

// Current 返回当前时刻的天气
func (s *WeatherService) Current() *models.Weather {
	return s.At(s.now())
}

// At 返回指定时刻的天气及之后若干小时的预报
func (s *WeatherService) At(t time.Time) *models.Weather {
	season := SeasonOf(t.Month())
	cfg := seasonConfigs[season]
	day := daySeed(t)
	base := baseCondition(cfg, day)
	hour := t.Hour()
	seed := hourSeed(day, hour)

	condition := hourlyCondition(cfg, base, hour, seed)
	radiation := solarRadiation(cfg, condition, hour, seed)

	humidity := utils.Clamp(cfg.baseHumidity+conditionHumidityAdjust[condition]+utils.SeededRandom(seed+0.3)*10-5, 10, 100)
	cloudCover := utils.Clamp(conditionCloudCover[condition]+utils.SeededRandom(seed+0.4)*10-5, 0, 100)
	wind := math.Max(0, cfg.baseWind+conditionWindAdjust[condition]+utils.SeededRandom(seed+0.5)*4-2)

	w := &models.Weather{
		Season:         string(season),
		Temperature:    models.Round(temperature(cfg, condition, hour, seed), 1),
		Condition:      condition,
		Humidity:       models.Round(humidity, 0),
		WindSpeed:      models.Round(wind, 1),
		SolarRadiation: models.Round(radiation, 0),
		CloudCover:     models.Round(cloudCover, 0),
		Forecast:       make([]models.WeatherForecast, 0, ForecastHours),
	}

	// 预报沿用当天的种子
	for i := 1; i <= ForecastHours; i++ {
		h := (hour + i) % 24
		fs := hourSeed(day, h)
		fc := hourlyCondition(cfg, base, h, fs)
		fr := solarRadiation(cfg, fc, h, fs)
		impact := 0.0
		if isDaytime(cfg, h) {
			impact = math.Min(100, fr/cfg.maxRadiation*100*conditionImpactFactor[fc])
		}
		w.Forecast = append(w.Forecast, models.WeatherForecast{
			Hour:             h,
			Condition:        fc,
			Temperature:      models.Round(temperature(cfg, fc, h, fs), 1),
			SolarRadiation:   models.Round(fr, 0),
			ProductionImpact: models.Round(impact, 0),
		})
	}
	return w
}

func isDaytime(cfg seasonConfig, hour int) bool {
	return hour >= cfg.sunrise && hour <= cfg.sunset
}

// hourFactor 正午为 1，日出日落为 0
func hourFactor(cfg seasonConfig, hour int) float64 {
	dayLength := float64(cfg.sunset - cfg.sunrise)
	mid := float64(cfg.sunrise) + dayLength/2
	return 1 - math.Abs(float64(hour)-mid)/(dayLength/2)
}

// baseCondition 按季节概率确定当天的总体天气
func baseCondition(cfg seasonConfig, day float64) models.WeatherCondition {
	v := utils.SeededRandom(day)
	cumulative := 0.0
	for i, p := range cfg.probabilities {
		cumulative += p
		if v <= cumulative {
			return conditionOrder[i]
		}
	}
	return models.ConditionPartlyCloudy
}

// hourlyCondition 早晚多云，正午转晴，夜间转阴
func hourlyCondition(cfg seasonConfig, base models.WeatherCondition, hour int, seed float64) models.WeatherCondition {
	condition := base
	v := utils.SeededRandom(seed)

	if (hour >= cfg.sunrise && hour <= cfg.sunrise+3) || (hour >= cfg.sunset-3 && hour <= cfg.sunset) {
		if v < 0.4 && base != models.ConditionStormy {
			condition = models.ConditionPartlyCloudy
		}
	}
	if hour >= cfg.sunrise+4 && hour <= cfg.sunset-4 {
		if v < 0.5 && (base == models.ConditionPartlyCloudy || base == models.ConditionCloudy) {
			condition = models.ConditionSunny
		}
	}
	if !isDaytime(cfg, hour) {
		if v < 0.6 && base != models.ConditionStormy && base != models.ConditionRainy {
			condition = models.ConditionCloudy
		}
	}
	return condition
}

func temperature(cfg seasonConfig, condition models.WeatherCondition, hour int, seed float64) float64 {
	temp := cfg.baseTemp
	if isDaytime(cfg, hour) {
		temp += hourFactor(cfg, hour) * cfg.tempRange / 2
	} else {
		temp -= cfg.tempRange / 4
	}
	temp += conditionTempAdjust[condition]
	return temp + utils.SeededRandom(seed+0.1)*4 - 2
}

func solarRadiation(cfg seasonConfig, condition models.WeatherCondition, hour int, seed float64) float64 {
	if !isDaytime(cfg, hour) {
		return 0
	}
	radiation := cfg.maxRadiation * hourFactor(cfg, hour) * conditionRadiationFactor[condition]
	radiation *= 1 + utils.SeededRandom(seed+0.2)*0.2 - 0.1
	if hour == cfg.sunrise || hour == cfg.sunset {
		radiation *= 0.2
	}
	return radiation
}
