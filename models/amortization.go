package models

import "math"

// Lifespan bounds in months.
const (
	MinLifespanMonths     = 12
	MaxLifespanMonths     = 120
	DefaultLifespanMonths = 60
)

// AmortizationData 单个设备的投资回收记录
type AmortizationData struct {
	DeviceID         int     `json:"deviceId" example:"2"`
	InitialCost      float64 `json:"initialCost" example:"250"`
	InstallationCost float64 `json:"installationCost" example:"80"`
	MonthlySavings   float64 `json:"monthlySavings" example:"15"`
	Lifespan         int     `json:"lifespan" example:"84"` // 月
	Notes            string  `json:"notes,omitempty"`
}

// TotalCost 设备成本 + 安装成本
func (a *AmortizationData) TotalCost() float64 {
	return a.InitialCost + a.InstallationCost
}

// PaybackPeriod 回收期（月），月节省为 0 时返回 0
func (a *AmortizationData) PaybackPeriod() float64 {
	return PaybackPeriod(a.InitialCost, a.InstallationCost, a.MonthlySavings)
}

// IsAmortized 回收期大于 0 且不超过使用寿命
func (a *AmortizationData) IsAmortized() bool {
	p := a.PaybackPeriod()
	return p > 0 && p <= float64(a.Lifespan)
}

// PaybackPeriod (initial + installation) / monthlySavings, 0 when there are no savings.
func PaybackPeriod(initialCost, installationCost, monthlySavings float64) float64 {
	if monthlySavings <= 0 {
		return 0
	}
	return (initialCost + installationCost) / monthlySavings
}

// AmortizationView 带计算字段的摊销记录
type AmortizationView struct {
	AmortizationData
	DeviceName    string  `json:"deviceName"`
	DeviceType    string  `json:"deviceType"`
	RoomName      string  `json:"roomName"`
	TotalCost     float64 `json:"totalCost"`
	PaybackPeriod float64 `json:"paybackPeriod"`
	PaybackYears  float64 `json:"paybackYears"`
	IsAmortized   bool    `json:"isAmortized"`
}

// AmortizationSummary 汇总
type AmortizationSummary struct {
	TotalInvestment      float64 `json:"totalInvestment"`
	TotalMonthlySavings  float64 `json:"totalMonthlySavings"`
	AveragePaybackPeriod float64 `json:"averagePaybackPeriod"`
	AmortizedDevices     int     `json:"amortizedDevices"`
	TotalDevices         int     `json:"totalDevices"`
}

// CalculationResult 计算器结果
type CalculationResult struct {
	TotalCost     float64 `json:"totalCost"`
	PaybackPeriod float64 `json:"paybackPeriod"`
	PaybackYears  float64 `json:"paybackYears"`
	AnnualSavings float64 `json:"annualSavings"`
	LifetimeValue float64 `json:"lifetimeValue"`
	IsAmortized   bool    `json:"isAmortized"`
}

// PaybackChartPoint 回收期与使用寿命对比（年）
type PaybackChartPoint struct {
	Name          string  `json:"name"`
	PaybackYears  float64 `json:"paybackYears"`
	LifespanYears float64 `json:"lifespanYears"`
}

// CostChartPoint 成本分布
type CostChartPoint struct {
	Name             string  `json:"name"`
	InitialCost      float64 `json:"initialCost"`
	InstallationCost float64 `json:"installationCost"`
}

// SavingsChartPoint 节省金额
type SavingsChartPoint struct {
	Name           string  `json:"name"`
	MonthlySavings float64 `json:"monthlySavings"`
	AnnualSavings  float64 `json:"annualSavings"`
}

// ShareChartPoint 占总投资百分比
type ShareChartPoint struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// AmortizationCharts 图表数据
type AmortizationCharts struct {
	Payback      []PaybackChartPoint `json:"payback"`
	Costs        []CostChartPoint    `json:"costs"`
	Savings      []SavingsChartPoint `json:"savings"`
	Distribution []ShareChartPoint   `json:"distribution"`
}

// Round 保留 n 位小数
func Round(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}
