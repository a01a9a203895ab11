package services

import (
	"context"
	"fmt"
	"math"
	mrand "math/rand"
	"sync"
	"time"

	"smarthome-http-service/models"
	"smarthome-http-service/utils"
)

// 年度目标值 (kWh)
const (
	TargetAnnualConsumption = 5000.0
	TargetAnnualProduction  = 6000.0
)

// 历史数据周期
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"

	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Season 季节
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
)

// SeasonOf 根据月份返回季节
func SeasonOf(month time.Month) Season {
	switch {
	case month == time.December || month <= time.February:
		return SeasonWinter
	case month <= time.May:
		return SeasonSpring
	case month <= time.August:
		return SeasonSummer
	default:
		return SeasonAutumn
	}
}

var (
	seasonalConsumption = map[Season]float64{SeasonWinter: 1.2, SeasonSpring: 0.9, SeasonSummer: 1.0, SeasonAutumn: 0.95}
	seasonalProduction  = map[Season]float64{SeasonWinter: 0.6, SeasonSpring: 1.1, SeasonSummer: 1.4, SeasonAutumn: 0.9}

	// 全屋每小时用电系数
	hourlyConsumptionPattern = [24]float64{
		0.3, 0.25, 0.2, 0.2, 0.25, 0.4,
		0.6, 0.8, 1.0, 0.9, 0.8, 0.9,
		1.0, 0.9, 0.8, 0.7, 0.8, 1.2,
		1.4, 1.3, 1.1, 0.9, 0.7, 0.5,
	}
)

// 设备基础功率 (kW)
type devicePower struct {
	peak, offPeak, standby float64
}

var (
	devicePowerTable = map[models.DeviceType]devicePower{
		models.DeviceTypeLight:         {peak: 0.015, offPeak: 0.01, standby: 0.001},
		models.DeviceTypeOutlet:        {peak: 0.08, offPeak: 0.05, standby: 0.005},
		models.DeviceTypeThermostat:    {peak: 0.15, offPeak: 0.1, standby: 0.003},
		models.DeviceTypeMotionSensor:  {peak: 0.002, offPeak: 0.002, standby: 0.002},
		models.DeviceTypeSmokeDetector: {peak: 0.001, offPeak: 0.001, standby: 0.001},
	}

	deviceHourlyPatterns = map[models.DeviceType][24]float64{
		models.DeviceTypeLight: {
			0.1, 0.05, 0.05, 0.05, 0.1, 0.3,
			0.8, 0.9, 0.7, 0.4, 0.3, 0.3,
			0.4, 0.3, 0.3, 0.4, 0.6, 0.8,
			1.0, 1.0, 0.9, 0.7, 0.4, 0.2,
		},
		models.DeviceTypeOutlet: {
			0.3, 0.2, 0.2, 0.2, 0.3, 0.5,
			0.8, 1.0, 0.9, 0.7, 0.6, 0.7,
			0.8, 0.7, 0.6, 0.7, 0.8, 0.9,
			1.0, 0.9, 0.8, 0.7, 0.5, 0.4,
		},
		models.DeviceTypeThermostat: {
			0.6, 0.5, 0.5, 0.5, 0.6, 0.8,
			1.0, 0.9, 0.7, 0.6, 0.6, 0.7,
			0.8, 0.7, 0.7, 0.8, 0.9, 1.0,
			1.0, 0.9, 0.8, 0.7, 0.6, 0.6,
		},
		models.DeviceTypeMotionSensor:  constantPattern(0.8),
		models.DeviceTypeSmokeDetector: constantPattern(0.9),
	}

	deviceSeasonal = map[models.DeviceType]map[Season]float64{
		models.DeviceTypeLight:      {SeasonWinter: 1.4, SeasonSpring: 1.0, SeasonSummer: 0.8, SeasonAutumn: 1.2},
		models.DeviceTypeOutlet:     {SeasonWinter: 1.2, SeasonSpring: 1.0, SeasonSummer: 1.1, SeasonAutumn: 1.0},
		models.DeviceTypeThermostat: {SeasonWinter: 2.0, SeasonSpring: 0.8, SeasonSummer: 1.5, SeasonAutumn: 1.0},
	}

	weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

const weekendMultiplier = 1.3

func constantPattern(v float64) [24]float64 {
	var p [24]float64
	for i := range p {
		p[i] = v
	}
	return p
}

func powerFor(t models.DeviceType) devicePower {
	if p, ok := devicePowerTable[t]; ok {
		return p
	}
	return devicePowerTable[models.DeviceTypeOutlet]
}

func patternFor(t models.DeviceType) [24]float64 {
	if p, ok := deviceHourlyPatterns[t]; ok {
		return p
	}
	return deviceHourlyPatterns[models.DeviceTypeOutlet]
}

func deviceSeasonalFor(t models.DeviceType, s Season) float64 {
	if m, ok := deviceSeasonal[t]; ok {
		return m[s]
	}
	return 1.0
}

// isPeakHour 7:00 到 22:59 为高峰时段
func isPeakHour(h int) bool {
	return h >= 7 && h <= 22
}

// InterfaceEnergyService 定义能源模拟服务接口
type InterfaceEnergyService interface {
	Historical(period string) ([]models.EnergyDataPoint, error)
	Realtime() *models.RealtimeEnergyData
	LastRealtime() *models.RealtimeEnergyData
	Averages(points []models.EnergyDataPoint) *models.EnergyAverages
	DeviceConsumption(ctx context.Context, deviceID int, period string) (*models.DeviceConsumptionReport, error)
	ConsumptionByType(deviceType models.DeviceType, period string) ([]models.DeviceConsumptionData, *models.ConsumptionStats, error)
}

// EnergyService 生成全屋能源与设备用电的模拟数据
type EnergyService struct {
	home InterfaceHomeService

	mu   sync.Mutex
	rng  *mrand.Rand
	now  func() time.Time
	last *models.RealtimeEnergyData
	// 未取整的电池电量，避免每次取整后停滞
	battery float64
}

// NewEnergyService 创建能源服务，home 为空时不支持按设备查询
func NewEnergyService(home InterfaceHomeService) *EnergyService {
	return &EnergyService{
		home: home,
		rng:  utils.NewRand(),
		now:  time.Now,
	}
}

func (s *EnergyService) random() float64 {
	return s.rng.Float64()
}

// 1 Historical 生成周、月或年的历史数据，总量按年度目标缩放
func (s *EnergyService) Historical(period string) ([]models.EnergyDataPoint, error) {
	var points, daysInPeriod int
	switch period {
	case PeriodWeek:
		points, daysInPeriod = 7, 7
	case PeriodMonth:
		points, daysInPeriod = 30, 30
	case PeriodYear:
		points, daysInPeriod = 12, 365
	default:
		return nil, fmt.Errorf("%w: period must be week, month or year", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	data := make([]models.EnergyDataPoint, 0, points)
	for i := 0; i < points; i++ {
		var date time.Time
		var consumption, production float64
		if period == PeriodYear {
			date = time.Date(now.Year(), now.Month()-time.Month(points-1-i), 1, 0, 0, 0, 0, now.Location())
			season := SeasonOf(date.Month())
			consumption = TargetAnnualConsumption / 12 * seasonalConsumption[season]
			production = TargetAnnualProduction / 12 * seasonalProduction[season]
		} else {
			date = now.AddDate(0, 0, -(points - 1 - i))
			season := SeasonOf(date.Month())
			variation := 0.9 + s.random()*0.2
			consumption = TargetAnnualConsumption / 365 * seasonalConsumption[season] * variation
			production = TargetAnnualProduction / 365 * seasonalProduction[season] * variation
		}

		balance := production - consumption
		battery := utils.Clamp(60+balance/math.Max(0.1, consumption)*100, 20, 95)

		label := date.Format("02.01")
		if period == PeriodYear {
			label = date.Format("Jan")
		}
		data = append(data, models.EnergyDataPoint{
			Date:        label,
			Consumption: models.Round(consumption, 1),
			Production:  models.Round(production, 1),
			Battery:     models.Round(battery, 0),
		})
	}

	var totalConsumption, totalProduction float64
	for _, p := range data {
		totalConsumption += p.Consumption
		totalProduction += p.Production
	}
	consumptionTarget := TargetAnnualConsumption
	productionTarget := TargetAnnualProduction
	if period != PeriodYear {
		consumptionTarget = TargetAnnualConsumption / 365 * float64(daysInPeriod)
		productionTarget = TargetAnnualProduction / 365 * float64(daysInPeriod)
	}
	consumptionScale := consumptionTarget / totalConsumption
	productionScale := productionTarget / totalProduction

	var finalConsumption, finalProduction float64
	surpluses := make([]float64, len(data))
	var totalSurplus float64
	for i := range data {
		data[i].Consumption = models.Round(data[i].Consumption*consumptionScale, 1)
		data[i].Production = models.Round(data[i].Production*productionScale, 1)
		finalConsumption += data[i].Consumption
		finalProduction += data[i].Production
		surpluses[i] = math.Max(0, data[i].Production-data[i].Consumption)
		totalSurplus += surpluses[i]
	}

	// 上网电量等于总盈余，按各点盈余比例分配
	feedIn := math.Max(0, finalProduction-finalConsumption)
	for i := range data {
		if totalSurplus > 0 {
			data[i].FeedIn = models.Round(feedIn*surpluses[i]/totalSurplus, 1)
		}
	}
	return data, nil
}

// 2 Realtime 根据当前小时和季节生成实时功率分布，电池电量延续上一次读数
func (s *EnergyService) Realtime() *models.RealtimeEnergyData {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	hour := now.Hour()
	season := SeasonOf(now.Month())

	variation := 0.0
	if s.last != nil {
		variation = (s.random() - 0.5) * 0.1
	}

	consumption := TargetAnnualConsumption / 365 / 24 * hourlyConsumptionPattern[hour] * seasonalConsumption[season] * (1 + variation)

	solar := 0.0
	if hour >= 6 && hour <= 19 {
		dist := math.Abs(float64(hour)-13) / 7
		solar = TargetAnnualProduction / 365 / 24 * 12 * math.Max(0, 1-dist*dist) * seasonalProduction[season] * (1 + variation)
	}

	fromSolar := math.Min(consumption, solar)
	fromGrid := math.Max(0, consumption-solar)
	feedIn := math.Max(0, solar-consumption)

	solarPct := 0.0
	if consumption > 0 {
		solarPct = fromSolar / consumption * 100
	}
	gridPct := 100 - solarPct

	battery := 75.0
	if s.last != nil {
		battery = s.battery
	}
	if solar > consumption && battery < 95 {
		battery += 0.5
	} else if solar < consumption && battery > 20 {
		battery -= 0.3
	}
	battery = utils.Clamp(battery, 20, 95)
	s.battery = battery

	data := &models.RealtimeEnergyData{
		GridConsumption:  models.PowerShare{Percentage: models.Round(gridPct, 1), KW: models.Round(fromGrid, 3)},
		SolarConsumption: models.PowerShare{Percentage: models.Round(solarPct, 1), KW: models.Round(fromSolar, 3)},
	}
	data.GridFeedIn.KW = models.Round(feedIn, 3)
	data.BatteryLevel.Percentage = models.Round(battery, 0)

	s.last = data
	out := *data
	return &out
}

// LastRealtime 返回最近一次实时数据，尚未生成时立即生成
func (s *EnergyService) LastRealtime() *models.RealtimeEnergyData {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		return s.Realtime()
	}
	out := *last
	return &out
}

// 3 Averages 计算历史数据的平均值
func (s *EnergyService) Averages(points []models.EnergyDataPoint) *models.EnergyAverages {
	avg := &models.EnergyAverages{}
	if len(points) == 0 {
		return avg
	}
	var consumption, production, feedIn, battery float64
	for _, p := range points {
		consumption += p.Consumption
		production += p.Production
		feedIn += p.FeedIn
		battery += p.Battery
	}
	n := float64(len(points))
	avgC, avgP := consumption/n, production/n

	grid := math.Max(0, avgC-avgP)
	solar := math.Min(avgC, avgP)
	var gridPct, solarPct float64
	if avgC > 0 {
		gridPct = grid / avgC * 100
		solarPct = solar / avgC * 100
	}

	avg.Grid = models.PowerShare{Percentage: models.Round(gridPct, 1), KW: models.Round(grid, 1)}
	avg.Solar = models.PowerShare{Percentage: models.Round(solarPct, 1), KW: models.Round(solar, 1)}
	avg.FeedIn = models.Round(feedIn/n, 1)
	avg.Battery = models.Round(battery/n, 0)
	avg.Consumption = models.Round(avgC, 1)
	avg.Production = models.Round(avgP, 1)
	return avg
}

// 4 DeviceConsumption 生成指定设备的用电报告
func (s *EnergyService) DeviceConsumption(ctx context.Context, deviceID int, period string) (*models.DeviceConsumptionReport, error) {
	if s.home == nil {
		return nil, ErrDeviceNotFound
	}
	device, err := s.home.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	data, stats, err := s.ConsumptionByType(device.Type, period)
	if err != nil {
		return nil, err
	}
	return &models.DeviceConsumptionReport{
		DeviceID: device.ID,
		Type:     device.Type,
		Period:   period,
		Data:     data,
		Stats:    stats,
	}, nil
}

// ConsumptionByType 按设备类型生成周 (7 天) 或月 (4 周) 的用电数据及统计
func (s *EnergyService) ConsumptionByType(deviceType models.DeviceType, period string) ([]models.DeviceConsumptionData, *models.ConsumptionStats, error) {
	var data []models.DeviceConsumptionData
	switch period {
	case PeriodWeekly:
		data = s.weeklyConsumption(deviceType)
	case PeriodMonthly:
		data = s.monthlyConsumption(deviceType)
	default:
		return nil, nil, fmt.Errorf("%w: period must be weekly or monthly", ErrValidation)
	}
	return data, ConsumptionStatsOf(data, period), nil
}

// dailyConsumption 累加一天 24 小时的高峰、低谷和待机用电
func dailyConsumption(power devicePower, pattern [24]float64, multiplier float64, variation func(hour int) float64) (peak, offPeak, standby float64) {
	for h := 0; h < 24; h++ {
		v := variation(h)
		load := pattern[h] * multiplier * v
		if isPeakHour(h) {
			peak += power.peak * load
		} else {
			offPeak += power.offPeak * load
		}
		standby += power.standby * v
	}
	return peak, offPeak, standby
}

func (s *EnergyService) weeklyConsumption(t models.DeviceType) []models.DeviceConsumptionData {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	power, pattern := powerFor(t), patternFor(t)
	seasonal := deviceSeasonalFor(t, SeasonOf(now.Month()))

	data := make([]models.DeviceConsumptionData, 0, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -(6 - i))
		multiplier := seasonal
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			multiplier *= weekendMultiplier
		}
		peak, offPeak, standby := dailyConsumption(power, pattern, multiplier, func(int) float64 {
			return 0.9 + s.random()*0.2
		})
		data = append(data, models.DeviceConsumptionData{
			Period:  weekdayLabels[i],
			Peak:    models.Round(peak, 3),
			OffPeak: models.Round(offPeak, 3),
			Standby: models.Round(standby, 3),
			Total:   models.Round(peak+offPeak+standby, 3),
		})
	}
	return data
}

func (s *EnergyService) monthlyConsumption(t models.DeviceType) []models.DeviceConsumptionData {
	s.mu.Lock()
	defer s.mu.Unlock()

	power, pattern := powerFor(t), patternFor(t)
	seasonal := deviceSeasonalFor(t, SeasonOf(s.now().Month()))

	data := make([]models.DeviceConsumptionData, 0, 4)
	for week := 0; week < 4; week++ {
		var peak, offPeak, standby float64
		for day := 0; day < 7; day++ {
			multiplier := seasonal
			if day == 0 || day == 6 {
				multiplier *= weekendMultiplier
			}
			p, o, sb := dailyConsumption(power, pattern, multiplier, func(int) float64 {
				// 第三周用电偏高
				if week == 2 {
					return 1.2
				}
				return 0.9 + s.random()*0.2
			})
			peak += p
			offPeak += o
			standby += sb
		}
		data = append(data, models.DeviceConsumptionData{
			Period:  fmt.Sprintf("Week %d", week+1),
			Peak:    models.Round(peak, 2),
			OffPeak: models.Round(offPeak, 2),
			Standby: models.Round(standby, 2),
			Total:   models.Round(peak+offPeak+standby, 2),
		})
	}
	return data
}

// ConsumptionStatsOf 统计平均值、总量、用电最高的时段和各时段合计
func ConsumptionStatsOf(data []models.DeviceConsumptionData, period string) *models.ConsumptionStats {
	stats := &models.ConsumptionStats{}
	if len(data) == 0 {
		return stats
	}
	avgDigits, totalDigits, maxDigits, breakdownDigits := 3, 2, 3, 2
	if period == PeriodMonthly {
		avgDigits, totalDigits, maxDigits, breakdownDigits = 2, 1, 2, 1
	}

	var total, peak, offPeak, standby float64
	maxIdx := 0
	for i, d := range data {
		total += d.Total
		peak += d.Peak
		offPeak += d.OffPeak
		standby += d.Standby
		if d.Total > data[maxIdx].Total {
			maxIdx = i
		}
	}

	stats.Average = models.Round(total/float64(len(data)), avgDigits)
	stats.Total = models.Round(total, totalDigits)
	stats.PeakPeriod = data[maxIdx].Period
	stats.MaxConsumption = models.Round(data[maxIdx].Total, maxDigits)
	stats.Breakdown = models.ConsumptionBreakdown{
		Peak:    models.Round(peak, breakdownDigits),
		OffPeak: models.Round(offPeak, breakdownDigits),
		Standby: models.Round(standby, breakdownDigits),
	}
	return stats
}
