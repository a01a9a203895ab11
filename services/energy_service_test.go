package services

import (
	"context"
	mrand "math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func newTestEnergy(t *testing.T, now time.Time) *EnergyService {
	t.Helper()
	svc := NewEnergyService(NewHomeService(NewMemoryStore(), nil))
	svc.rng = mrand.New(mrand.NewSource(1))
	svc.now = func() time.Time { return now }
	return svc
}

func sumPoints(points []models.EnergyDataPoint) (consumption, production, feedIn float64) {
	for _, p := range points {
		consumption += p.Consumption
		production += p.Production
		feedIn += p.FeedIn
	}
	return
}

func TestHistoricalScaledToTargets(t *testing.T) {
	svc := newTestEnergy(t, time.Date(2024, time.July, 15, 12, 0, 0, 0, time.Local))

	cases := []struct {
		period string
		points int
		days   float64
	}{
		{PeriodWeek, 7, 7},
		{PeriodMonth, 30, 30},
		{PeriodYear, 12, 365},
	}
	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			data, err := svc.Historical(tc.period)
			require.NoError(t, err)
			require.Len(t, data, tc.points)

			consumption, production, feedIn := sumPoints(data)
			assert.InDelta(t, TargetAnnualConsumption/365*tc.days, consumption, 1.5)
			assert.InDelta(t, TargetAnnualProduction/365*tc.days, production, 1.5)
			assert.InDelta(t, production-consumption, feedIn, 0.1*float64(tc.points))

			for _, p := range data {
				assert.GreaterOrEqual(t, p.Battery, 20.0)
				assert.LessOrEqual(t, p.Battery, 95.0)
				assert.GreaterOrEqual(t, p.FeedIn, 0.0)
				if p.Production <= p.Consumption {
					assert.Zero(t, p.FeedIn)
				}
			}
		})
	}

	_, err := svc.Historical("decade")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHistoricalLabels(t *testing.T) {
	svc := newTestEnergy(t, time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local))

	week, err := svc.Historical(PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, "04.03", week[0].Date)
	assert.Equal(t, "10.03", week[6].Date)

	year, err := svc.Historical(PeriodYear)
	require.NoError(t, err)
	assert.Equal(t, "Apr", year[0].Date)
	assert.Equal(t, "Mar", year[11].Date)
}

func TestRealtimeNightHasNoSolar(t *testing.T) {
	svc := newTestEnergy(t, time.Date(2024, time.January, 5, 2, 0, 0, 0, time.Local))

	data := svc.Realtime()
	assert.Zero(t, data.SolarConsumption.KW)
	assert.Zero(t, data.GridFeedIn.KW)
	assert.Equal(t, 100.0, data.GridConsumption.Percentage)
	assert.Greater(t, data.GridConsumption.KW, 0.0)
	// 75 - 0.3 四舍五入
	assert.Equal(t, 75.0, data.BatteryLevel.Percentage)
}

func TestRealtimeSummerNoonChargesBattery(t *testing.T) {
	svc := newTestEnergy(t, time.Date(2024, time.July, 1, 13, 0, 0, 0, time.Local))

	first := svc.Realtime()
	assert.Equal(t, 100.0, first.SolarConsumption.Percentage)
	assert.Zero(t, first.GridConsumption.KW)
	assert.Greater(t, first.GridFeedIn.KW, 0.0)
	assert.Equal(t, 76.0, first.BatteryLevel.Percentage)

	second := svc.Realtime()
	assert.Equal(t, 76.0, second.BatteryLevel.Percentage)
	third := svc.Realtime()
	assert.Equal(t, 77.0, third.BatteryLevel.Percentage)
	assert.Equal(t, third, svc.LastRealtime())
}

func TestRealtimeBatteryStaysInBounds(t *testing.T) {
	now := time.Date(2024, time.December, 1, 20, 0, 0, 0, time.Local)
	svc := newTestEnergy(t, now)
	for i := 0; i < 300; i++ {
		data := svc.Realtime()
		require.GreaterOrEqual(t, data.BatteryLevel.Percentage, 20.0)
		require.LessOrEqual(t, data.BatteryLevel.Percentage, 95.0)
	}
	assert.Equal(t, 20.0, svc.LastRealtime().BatteryLevel.Percentage)
}

func TestAverages(t *testing.T) {
	svc := newTestEnergy(t, time.Now())
	avg := svc.Averages([]models.EnergyDataPoint{
		{Consumption: 10, Production: 6, FeedIn: 0, Battery: 40},
		{Consumption: 14, Production: 10, FeedIn: 2, Battery: 61},
	})
	assert.Equal(t, 12.0, avg.Consumption)
	assert.Equal(t, 8.0, avg.Production)
	assert.Equal(t, 4.0, avg.Grid.KW)
	assert.Equal(t, 33.3, avg.Grid.Percentage)
	assert.Equal(t, 8.0, avg.Solar.KW)
	assert.Equal(t, 66.7, avg.Solar.Percentage)
	assert.Equal(t, 1.0, avg.FeedIn)
	assert.Equal(t, 51.0, avg.Battery)

	assert.Equal(t, &models.EnergyAverages{}, svc.Averages(nil))
}

func TestWeeklyDeviceConsumption(t *testing.T) {
	svc := newTestEnergy(t, time.Date(2024, time.January, 14, 10, 0, 0, 0, time.Local))

	data, stats, err := svc.ConsumptionByType(models.DeviceTypeLight, PeriodWeekly)
	require.NoError(t, err)
	require.Len(t, data, 7)
	assert.Equal(t, "Mon", data[0].Period)
	assert.Equal(t, "Sun", data[6].Period)

	var max float64
	for _, d := range data {
		assert.InDelta(t, d.Peak+d.OffPeak+d.Standby, d.Total, 0.003)
		if d.Total > max {
			max = d.Total
		}
	}
	assert.Equal(t, max, stats.MaxConsumption)
	assert.NotEmpty(t, stats.PeakPeriod)
	assert.InDelta(t, stats.Total/7, stats.Average, 0.01)

	_, _, err = svc.ConsumptionByType(models.DeviceTypeLight, "daily")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMonthlyDeviceConsumptionPeaksInThirdWeek(t *testing.T) {
	svc := newTestEnergy(t, time.Date(2024, time.May, 20, 10, 0, 0, 0, time.Local))

	data, stats, err := svc.ConsumptionByType(models.DeviceTypeThermostat, PeriodMonthly)
	require.NoError(t, err)
	require.Len(t, data, 4)
	assert.Equal(t, "Week 1", data[0].Period)
	assert.Equal(t, "Week 3", stats.PeakPeriod)
	assert.Equal(t, data[2].Total, stats.MaxConsumption)
}

func TestUnknownTypeUsesOutletProfile(t *testing.T) {
	svc := newTestEnergy(t, time.Date(2024, time.May, 20, 10, 0, 0, 0, time.Local))

	data, _, err := svc.ConsumptionByType(models.DeviceTypeOther, PeriodMonthly)
	require.NoError(t, err)
	// 第三周每小时系数固定为 1.2，可以精确计算
	var peak, offPeak, standby float64
	p := devicePowerTable[models.DeviceTypeOutlet]
	pattern := deviceHourlyPatterns[models.DeviceTypeOutlet]
	for day := 0; day < 7; day++ {
		mult := 1.0
		if day == 0 || day == 6 {
			mult = weekendMultiplier
		}
		for h := 0; h < 24; h++ {
			if isPeakHour(h) {
				peak += p.peak * pattern[h] * mult * 1.2
			} else {
				offPeak += p.offPeak * pattern[h] * mult * 1.2
			}
			standby += p.standby * 1.2
		}
	}
	assert.InDelta(t, peak, data[2].Peak, 0.006)
	assert.InDelta(t, offPeak, data[2].OffPeak, 0.006)
	assert.InDelta(t, standby, data[2].Standby, 0.006)
}

func TestDeviceConsumptionReport(t *testing.T) {
	svc := newTestEnergy(t, time.Date(2024, time.May, 20, 10, 0, 0, 0, time.Local))
	ctx := context.Background()

	report, err := svc.DeviceConsumption(ctx, 7, PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, 7, report.DeviceID)
	assert.Len(t, report.Data, 7)
	require.NotNil(t, report.Stats)

	_, err = svc.DeviceConsumption(ctx, 999, PeriodWeekly)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}
