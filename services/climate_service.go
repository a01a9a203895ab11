package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
)

var (
	serialTempPattern   = regexp.MustCompile(`TH-(\d+\.\d+)-`)
	firmwareTempPattern = regexp.MustCompile(`(\d+)\.(\d+)\.`)
	ipLastOctetPattern  = regexp.MustCompile(`\d+\.\d+\.\d+\.(\d+)`)
)

// DefaultThermostatReading 无法从设备信息中提取温度时使用
const DefaultThermostatReading = 22.5

// ExtractTemperature 从温控器的序列号、固件版本或 IP 地址推导当前温度
func ExtractTemperature(d *models.Device) float64 {
	if m := serialTempPattern.FindStringSubmatch(d.SerialNumber); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}
	if m := firmwareTempPattern.FindStringSubmatch(d.FirmwareVersion); m != nil {
		if v, err := strconv.ParseFloat(m[1]+"."+m[2], 64); err == nil {
			return v
		}
	}
	if m := ipLastOctetPattern.FindStringSubmatch(d.IPAddress); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return 20 + float64(n%10)/10
		}
	}
	return DefaultThermostatReading
}

// InterfaceClimateService 定义自动温控服务接口
type InterfaceClimateService interface {
	Evaluate(ctx context.Context) (*models.ClimateReport, error)
	Status(ctx context.Context) (*models.ClimateStatus, error)
	SetTemperatureRange(ctx context.Context, roomID int, tr models.TemperatureRange) (*models.ClimateReport, error)
	ManualToggle(ctx context.Context, deviceID int, status models.DeviceStatus) (*models.Device, error)
	ResetToAuto(ctx context.Context, deviceID int) (*models.ClimateReport, error)
}

// ClimateService 根据房间温度区间开关空调和暖气
type ClimateService struct {
	home   InterfaceHomeService
	events InterfaceEventPublisher
}

// NewClimateService 创建自动温控服务
func NewClimateService(home InterfaceHomeService, events InterfaceEventPublisher) InterfaceClimateService {
	return &ClimateService{home: home, events: events}
}

// roomReading 返回房间第一个在线温控器的读数
func roomReading(data *models.HomeData, roomID int) (float64, bool) {
	for _, d := range data.DevicesInRoom(roomID) {
		if d.Type == models.DeviceTypeThermostat && d.IsOnline() {
			return ExtractTemperature(d), true
		}
	}
	return 0, false
}

func roomHasOpenWindow(data *models.HomeData, roomID int) bool {
	for _, d := range data.DevicesInRoom(roomID) {
		if d.Type == models.DeviceTypeWindow && d.IsOnline() && d.Open() {
			return true
		}
	}
	return false
}

// applyClimateRules 在 data 上执行温控规则并返回修改记录
func applyClimateRules(data *models.HomeData) *models.ClimateReport {
	report := &models.ClimateReport{Changes: []models.ClimateChange{}, Skipped: []int{}}

	for _, room := range data.Rooms {
		temp, ok := roomReading(data, room.ID)
		if !ok {
			continue
		}
		tr := room.EffectiveRange()
		windowOpen := roomHasOpenWindow(data, room.ID)

		for _, d := range data.DevicesInRoom(room.ID) {
			if d.Type != models.DeviceTypeAC && d.Type != models.DeviceTypeHeating {
				continue
			}

			want, reason := models.StatusOffline, "temperature in range"
			switch {
			case windowOpen:
				reason = "window open"
			case temp > tr.Max && d.Type == models.DeviceTypeAC:
				want, reason = models.StatusOnline, fmt.Sprintf("%.1f°C above %.1f°C", temp, tr.Max)
			case temp > tr.Max:
				reason = "cooling required"
			case temp < tr.Min && d.Type == models.DeviceTypeHeating:
				want, reason = models.StatusOnline, fmt.Sprintf("%.1f°C below %.1f°C", temp, tr.Min)
			case temp < tr.Min:
				reason = "heating required"
			}

			if d.Status == want {
				continue
			}
			if d.Overridden() {
				report.Skipped = append(report.Skipped, d.ID)
				continue
			}
			report.Changes = append(report.Changes, models.ClimateChange{
				DeviceID: d.ID,
				RoomID:   room.ID,
				Type:     d.Type,
				From:     d.Status,
				To:       want,
				Reason:   reason,
			})
			d.Touch(want)
			d.SetOverride(false)
		}
	}
	return report
}

func (s *ClimateService) publish(report *models.ClimateReport) {
	if s.events != nil && len(report.Changes) > 0 {
		s.events.Publish(NewEvent(EventClimate, report))
	}
}

// 1 Evaluate 对所有带在线温控器的房间执行一次自动温控
func (s *ClimateService) Evaluate(ctx context.Context) (*models.ClimateReport, error) {
	var report *models.ClimateReport
	_, err := s.home.Mutate(ctx, func(data *models.HomeData) error {
		report = applyClimateRules(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(report.Changes) > 0 {
		config.Info("自动温控修改了 %d 个设备", len(report.Changes))
	}
	s.publish(report)
	return report, nil
}

// 2 Status 返回每个房间的温控状态和提示
func (s *ClimateService) Status(ctx context.Context) (*models.ClimateStatus, error) {
	data, err := s.home.GetData(ctx)
	if err != nil {
		return nil, err
	}

	status := &models.ClimateStatus{Rooms: []models.RoomClimateStatus{}}
	for _, d := range data.Devices {
		if !d.IsOnline() {
			continue
		}
		switch {
		case d.Type == models.DeviceTypeWindow && d.Open():
			status.OpenWindowCount++
		case d.Type == models.DeviceTypeAC:
			status.ActiveACCount++
		case d.Type == models.DeviceTypeHeating:
			status.ActiveHeatCount++
		}
	}

	for _, room := range data.Rooms {
		temp, ok := roomReading(data, room.ID)
		if !ok {
			continue
		}
		rs := models.RoomClimateStatus{
			RoomID:        room.ID,
			RoomName:      room.Name,
			Temperature:   temp,
			Range:         room.EffectiveRange(),
			HasOpenWindow: roomHasOpenWindow(data, room.ID),
			Advisories:    []string{},
		}
		rs.ShouldHeat = temp < rs.Range.Min
		rs.ShouldCool = temp > rs.Range.Max
		for _, d := range data.DevicesInRoom(room.ID) {
			if !d.IsOnline() {
				continue
			}
			if d.Type == models.DeviceTypeAC {
				rs.HasActiveAC = true
			}
			if d.Type == models.DeviceTypeHeating {
				rs.HasActiveHeating = true
			}
		}

		if rs.ShouldCool && !rs.HasActiveAC {
			rs.Advisories = append(rs.Advisories, models.AdvisoryACNeeded)
		}
		if rs.ShouldHeat && !rs.HasActiveHeating {
			rs.Advisories = append(rs.Advisories, models.AdvisoryHeatNeeded)
		}
		if rs.HasActiveAC && !rs.ShouldCool {
			rs.Advisories = append(rs.Advisories, models.AdvisoryACUnnecessary)
		}
		if rs.HasActiveHeating && !rs.ShouldHeat {
			rs.Advisories = append(rs.Advisories, models.AdvisoryHeatUnnecessary)
		}
		status.Rooms = append(status.Rooms, rs)
	}
	return status, nil
}

// 3 SetTemperatureRange 修改房间温度区间并重新评估
func (s *ClimateService) SetTemperatureRange(ctx context.Context, roomID int, tr models.TemperatureRange) (*models.ClimateReport, error) {
	if err := tr.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemperatureRange, err)
	}

	var report *models.ClimateReport
	_, err := s.home.Mutate(ctx, func(data *models.HomeData) error {
		room := data.RoomByID(roomID)
		if room == nil {
			return ErrRoomNotFound
		}
		room.TemperatureRange = &models.TemperatureRange{Min: tr.Min, Max: tr.Max}
		report = applyClimateRules(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	config.Info("房间 %d 温度区间已设置为 %.1f-%.1f", roomID, tr.Min, tr.Max)
	s.publish(report)
	return report, nil
}

// 4 ManualToggle 手动开关空调或暖气，之后自动温控跳过该设备
func (s *ClimateService) ManualToggle(ctx context.Context, deviceID int, status models.DeviceStatus) (*models.Device, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", ErrValidation, status)
	}

	var updated *models.Device
	_, err := s.home.Mutate(ctx, func(data *models.HomeData) error {
		d := data.DeviceByID(deviceID)
		if d == nil {
			return ErrDeviceNotFound
		}
		if d.Type != models.DeviceTypeAC && d.Type != models.DeviceTypeHeating {
			return ErrDeviceTypeMismatch
		}
		d.Touch(status)
		d.SetOverride(true)
		updated = d.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.Publish(NewEvent(EventDeviceUpdated, updated))
	}
	return updated, nil
}

// 5 ResetToAuto 取消手动控制并重新评估
func (s *ClimateService) ResetToAuto(ctx context.Context, deviceID int) (*models.ClimateReport, error) {
	var report *models.ClimateReport
	_, err := s.home.Mutate(ctx, func(data *models.HomeData) error {
		d := data.DeviceByID(deviceID)
		if d == nil {
			return ErrDeviceNotFound
		}
		if d.Type != models.DeviceTypeAC && d.Type != models.DeviceTypeHeating {
			return ErrDeviceTypeMismatch
		}
		d.SetOverride(false)
		d.TouchOnly()
		report = applyClimateRules(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(report)
	return report, nil
}
