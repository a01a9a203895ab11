package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func TestWeatherIsDeterministicWithinHour(t *testing.T) {
	svc := NewWeatherService()
	at := time.Date(2024, time.June, 3, 14, 5, 0, 0, time.Local)

	first := svc.At(at)
	second := svc.At(at.Add(40 * time.Minute))
	assert.Equal(t, first, second)
	assert.Equal(t, string(SeasonSummer), first.Season)

	svc.now = func() time.Time { return at }
	assert.Equal(t, first, svc.Current())
}

func TestWeatherValuesInRange(t *testing.T) {
	svc := NewWeatherService()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	for d := 0; d < 365; d += 11 {
		for h := 0; h < 24; h += 3 {
			at := start.AddDate(0, 0, d).Add(time.Duration(h) * time.Hour)
			w := svc.At(at)
			cfg := seasonConfigs[SeasonOf(at.Month())]

			assert.Contains(t, conditionOrder[:], w.Condition)
			assert.GreaterOrEqual(t, w.Humidity, 10.0)
			assert.LessOrEqual(t, w.Humidity, 100.0)
			assert.GreaterOrEqual(t, w.CloudCover, 0.0)
			assert.LessOrEqual(t, w.CloudCover, 100.0)
			assert.GreaterOrEqual(t, w.WindSpeed, 0.0)
			assert.GreaterOrEqual(t, w.SolarRadiation, 0.0)
			assert.LessOrEqual(t, w.SolarRadiation, cfg.maxRadiation*1.1)
			if !isDaytime(cfg, at.Hour()) {
				assert.Zero(t, w.SolarRadiation)
			}

			require.Len(t, w.Forecast, ForecastHours)
			for i, f := range w.Forecast {
				assert.Equal(t, (at.Hour()+i+1)%24, f.Hour)
				assert.GreaterOrEqual(t, f.ProductionImpact, 0.0)
				assert.LessOrEqual(t, f.ProductionImpact, 100.0)
				if !isDaytime(cfg, f.Hour) {
					assert.Zero(t, f.ProductionImpact)
				}
			}
		}
	}
}

func TestBaseConditionFollowsProbabilities(t *testing.T) {
	cfg := seasonConfigs[SeasonWinter]
	counts := map[models.WeatherCondition]int{}
	day := daySeed(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))
	for i := 0; i < 2000; i++ {
		counts[baseCondition(cfg, day+float64(i))]++
	}
	// 冬季阴天最多
	assert.Greater(t, counts[models.ConditionCloudy], counts[models.ConditionSunny])
	assert.Greater(t, counts[models.ConditionCloudy], counts[models.ConditionStormy])
}

func TestSolarRadiationShape(t *testing.T) {
	cfg := seasonConfigs[SeasonSummer]
	noon := solarRadiation(cfg, models.ConditionSunny, 13, 1)
	sunrise := solarRadiation(cfg, models.ConditionSunny, cfg.sunrise, 1)
	assert.GreaterOrEqual(t, noon, 900.0)
	assert.Zero(t, sunrise)
	assert.Zero(t, solarRadiation(cfg, models.ConditionSunny, 23, 1))
	assert.Less(t, solarRadiation(cfg, models.ConditionStormy, 13, 1), noon)
}
