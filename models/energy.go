package models

// EnergyDataPoint 一天（周/月视图）或一个月（年视图）的能源数据
type EnergyDataPoint struct {
	Date        string  `json:"date" example:"03.05"`
	Consumption float64 `json:"consumption"` // kWh
	Production  float64 `json:"production"`  // kWh
	FeedIn      float64 `json:"feedIn"`      // kWh
	Battery     float64 `json:"battery"`     // %
}

// PowerShare 功率及其占比
type PowerShare struct {
	Percentage float64 `json:"percentage"`
	KW         float64 `json:"kw"`
}

// RealtimeEnergyData 实时能源分布
type RealtimeEnergyData struct {
	GridConsumption  PowerShare `json:"gridConsumption"`
	SolarConsumption PowerShare `json:"solarConsumption"`
	GridFeedIn       struct {
		KW float64 `json:"kw"`
	} `json:"gridFeedIn"`
	BatteryLevel struct {
		Percentage float64 `json:"percentage"`
	} `json:"batteryLevel"`
}

// EnergyAverages 历史数据的平均值
type EnergyAverages struct {
	Grid        PowerShare `json:"grid"`
	Solar       PowerShare `json:"solar"`
	FeedIn      float64    `json:"feedIn"`
	Battery     float64    `json:"battery"`
	Consumption float64    `json:"consumption"`
	Production  float64    `json:"production"`
}

// DeviceConsumptionData 设备分时段用电量
type DeviceConsumptionData struct {
	Period  string  `json:"period"`
	Peak    float64 `json:"peak"`
	OffPeak float64 `json:"offPeak"`
	Standby float64 `json:"standby"`
	Total   float64 `json:"total"`
}

// ConsumptionBreakdown 各时段合计
type ConsumptionBreakdown struct {
	Peak    float64 `json:"peak"`
	OffPeak float64 `json:"offPeak"`
	Standby float64 `json:"standby"`
}

// ConsumptionStats 设备用电统计
type ConsumptionStats struct {
	Average        float64              `json:"average"`
	Total          float64              `json:"total"`
	PeakPeriod     string               `json:"peakPeriod"`
	MaxConsumption float64              `json:"maxConsumption"`
	Breakdown      ConsumptionBreakdown `json:"breakdown"`
}

// DeviceConsumptionReport 设备用电报告
type DeviceConsumptionReport struct {
	DeviceID int                     `json:"deviceId"`
	Type     DeviceType              `json:"type"`
	Period   string                  `json:"period"`
	Data     []DeviceConsumptionData `json:"data"`
	Stats    *ConsumptionStats       `json:"stats"`
}
