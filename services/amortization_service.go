package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
)

// UnknownDeviceName 记录对应的设备已被删除时显示
const UnknownDeviceName = "Unknown Device"

// InterfaceAmortizationService 定义投资回收分析服务接口
type InterfaceAmortizationService interface {
	List(ctx context.Context) ([]models.AmortizationView, error)
	Get(ctx context.Context, deviceID int) (*models.AmortizationView, error)
	Upsert(ctx context.Context, data models.AmortizationData) (*models.AmortizationView, error)
	Delete(ctx context.Context, deviceID int) error
	Summary(ctx context.Context) (*models.AmortizationSummary, error)
	Calculate(input models.AmortizationData) (*models.CalculationResult, error)
	Charts(ctx context.Context) (*models.AmortizationCharts, error)
	UnamortizedDevices(ctx context.Context) ([]*models.Device, error)
}

// AmortizationService 管理 amortizationData 记录
type AmortizationService struct {
	store InterfaceStoreService
	home  InterfaceHomeService

	mu sync.Mutex
}

// NewAmortizationService 创建投资回收分析服务
func NewAmortizationService(store InterfaceStoreService, home InterfaceHomeService) InterfaceAmortizationService {
	return &AmortizationService{store: store, home: home}
}

// records 读取记录，键缺失或无法解析时使用设备上的成本字段重新初始化。调用者必须持有锁
func (s *AmortizationService) records(ctx context.Context) ([]models.AmortizationData, *models.HomeData, error) {
	data, err := s.home.GetData(ctx)
	if err != nil {
		return nil, nil, err
	}

	var records []models.AmortizationData
	if LoadJSON(ctx, s.store, KeyAmortizationData, &records) {
		return records, data, nil
	}

	records = initialRecords(data)
	if err := SaveJSON(ctx, s.store, KeyAmortizationData, records); err != nil {
		return nil, nil, err
	}
	config.Info("已从设备数据初始化 %d 条摊销记录", len(records))
	return records, data, nil
}

func initialRecords(data *models.HomeData) []models.AmortizationData {
	records := []models.AmortizationData{}
	for _, d := range data.Devices {
		if !d.HasCostData() {
			continue
		}
		records = append(records, models.AmortizationData{
			DeviceID:         d.ID,
			InitialCost:      d.InitialCost,
			InstallationCost: d.InstallationCost,
			MonthlySavings:   d.MonthlySavings,
			Lifespan:         d.Lifespan,
			Notes:            "Initial data for " + d.Name,
		})
	}
	return records
}

func deviceName(data *models.HomeData, id int) string {
	if d := data.DeviceByID(id); d != nil {
		return d.Name
	}
	return UnknownDeviceName
}

func buildView(data *models.HomeData, rec models.AmortizationData) models.AmortizationView {
	view := models.AmortizationView{
		AmortizationData: rec,
		DeviceName:       UnknownDeviceName,
		DeviceType:       "unknown",
		RoomName:         models.UnknownRoomName,
		TotalCost:        rec.TotalCost(),
		PaybackPeriod:    models.Round(rec.PaybackPeriod(), 2),
		PaybackYears:     models.Round(rec.PaybackPeriod()/12, 2),
		IsAmortized:      rec.IsAmortized(),
	}
	if d := data.DeviceByID(rec.DeviceID); d != nil {
		view.DeviceName = d.Name
		view.DeviceType = string(d.Type)
		view.RoomName = data.RoomName(d.RoomID)
	}
	return view
}

// 1 List 返回所有记录，按回收期升序排列
func (s *AmortizationService) List(ctx context.Context) ([]models.AmortizationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, data, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.AmortizationView, 0, len(records))
	for _, rec := range records {
		views = append(views, buildView(data, rec))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].AmortizationData.PaybackPeriod() < views[j].AmortizationData.PaybackPeriod()
	})
	return views, nil
}

// 2 Get 返回单个设备的记录
func (s *AmortizationService) Get(ctx context.Context, deviceID int) (*models.AmortizationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, data, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.DeviceID == deviceID {
			view := buildView(data, rec)
			return &view, nil
		}
	}
	return nil, ErrAmortizationNotFound
}

func validateAmortization(in *models.AmortizationData) error {
	if in.InitialCost <= 0 {
		return fmt.Errorf("%w: initialCost must be positive", ErrInvalidAmortization)
	}
	if in.MonthlySavings <= 0 {
		return fmt.Errorf("%w: monthlySavings must be positive", ErrInvalidAmortization)
	}
	if in.InstallationCost < 0 {
		return fmt.Errorf("%w: installationCost must not be negative", ErrInvalidAmortization)
	}
	if in.Lifespan == 0 {
		in.Lifespan = models.DefaultLifespanMonths
	}
	if in.Lifespan < models.MinLifespanMonths || in.Lifespan > models.MaxLifespanMonths {
		return fmt.Errorf("%w: lifespan must be between %d and %d months",
			ErrInvalidAmortization, models.MinLifespanMonths, models.MaxLifespanMonths)
	}
	return nil
}

// 3 Upsert 新增或替换设备的记录
func (s *AmortizationService) Upsert(ctx context.Context, in models.AmortizationData) (*models.AmortizationView, error) {
	if err := validateAmortization(&in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, data, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	if data.DeviceByID(in.DeviceID) == nil {
		return nil, ErrDeviceNotFound
	}

	replaced := false
	for i := range records {
		if records[i].DeviceID == in.DeviceID {
			records[i] = in
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, in)
	}
	if err := SaveJSON(ctx, s.store, KeyAmortizationData, records); err != nil {
		return nil, err
	}

	view := buildView(data, in)
	return &view, nil
}

// 4 Delete 删除设备的记录
func (s *AmortizationService) Delete(ctx context.Context, deviceID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, _, err := s.records(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.DeviceID == deviceID {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return ErrAmortizationNotFound
	}
	return SaveJSON(ctx, s.store, KeyAmortizationData, kept)
}

// 5 Summary 汇总总投资、月节省和按成本加权的平均回收期
func (s *AmortizationService) Summary(ctx context.Context) (*models.AmortizationSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, _, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(records), nil
}

func summarize(records []models.AmortizationData) *models.AmortizationSummary {
	summary := &models.AmortizationSummary{TotalDevices: len(records)}
	var weighted, weight float64
	for _, rec := range records {
		total := rec.TotalCost()
		summary.TotalInvestment += total
		summary.TotalMonthlySavings += rec.MonthlySavings

		if p := rec.PaybackPeriod(); p > 0 {
			weighted += p * total
			weight += total
		}
		if rec.IsAmortized() {
			summary.AmortizedDevices++
		}
	}
	if weight > 0 {
		summary.AveragePaybackPeriod = models.Round(weighted/weight, 2)
	}
	return summary
}

// 6 Calculate 无状态计算器
func (s *AmortizationService) Calculate(input models.AmortizationData) (*models.CalculationResult, error) {
	if input.Lifespan == 0 {
		input.Lifespan = models.DefaultLifespanMonths
	}
	if input.InitialCost < 0 || input.InstallationCost < 0 || input.MonthlySavings < 0 || input.Lifespan < 0 {
		return nil, fmt.Errorf("%w: values must not be negative", ErrInvalidAmortization)
	}

	payback := input.PaybackPeriod()
	return &models.CalculationResult{
		TotalCost:     input.TotalCost(),
		PaybackPeriod: models.Round(payback, 2),
		PaybackYears:  models.Round(payback/12, 2),
		AnnualSavings: input.MonthlySavings * 12,
		LifetimeValue: models.Round(input.MonthlySavings*float64(input.Lifespan)-input.TotalCost(), 2),
		IsAmortized:   input.IsAmortized(),
	}, nil
}

// 7 Charts 图表数据
func (s *AmortizationService) Charts(ctx context.Context) (*models.AmortizationCharts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, data, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	charts := &models.AmortizationCharts{
		Payback:      make([]models.PaybackChartPoint, 0, len(records)),
		Costs:        make([]models.CostChartPoint, 0, len(records)),
		Savings:      make([]models.SavingsChartPoint, 0, len(records)),
		Distribution: make([]models.ShareChartPoint, 0, len(records)),
	}
	var totalInvestment float64
	for _, rec := range records {
		totalInvestment += rec.TotalCost()
	}

	for _, rec := range records {
		name := deviceName(data, rec.DeviceID)
		charts.Payback = append(charts.Payback, models.PaybackChartPoint{
			Name:          name,
			PaybackYears:  models.Round(rec.PaybackPeriod()/12, 2),
			LifespanYears: models.Round(float64(rec.Lifespan)/12, 2),
		})
		charts.Costs = append(charts.Costs, models.CostChartPoint{
			Name:             name,
			InitialCost:      rec.InitialCost,
			InstallationCost: rec.InstallationCost,
		})
		charts.Savings = append(charts.Savings, models.SavingsChartPoint{
			Name:           name,
			MonthlySavings: rec.MonthlySavings,
			AnnualSavings:  rec.MonthlySavings * 12,
		})
		share := 0.0
		if totalInvestment > 0 {
			share = rec.TotalCost() / totalInvestment * 100
		}
		charts.Distribution = append(charts.Distribution, models.ShareChartPoint{
			Name:       name,
			Value:      rec.TotalCost(),
			Percentage: models.Round(share, 1),
		})
	}

	sort.SliceStable(charts.Payback, func(i, j int) bool { return charts.Payback[i].PaybackYears < charts.Payback[j].PaybackYears })
	sort.SliceStable(charts.Costs, func(i, j int) bool {
		return charts.Costs[i].InitialCost+charts.Costs[i].InstallationCost > charts.Costs[j].InitialCost+charts.Costs[j].InstallationCost
	})
	sort.SliceStable(charts.Savings, func(i, j int) bool { return charts.Savings[i].MonthlySavings > charts.Savings[j].MonthlySavings })
	sort.SliceStable(charts.Distribution, func(i, j int) bool { return charts.Distribution[i].Value > charts.Distribution[j].Value })
	return charts, nil
}

// 8 UnamortizedDevices 返回还没有记录的设备
func (s *AmortizationService) UnamortizedDevices(ctx context.Context) ([]*models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, data, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	tracked := make(map[int]bool, len(records))
	for _, rec := range records {
		tracked[rec.DeviceID] = true
	}
	devices := []*models.Device{}
	for _, d := range data.Devices {
		if !tracked[d.ID] {
			devices = append(devices, d)
		}
	}
	return devices, nil
}
