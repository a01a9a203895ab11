package models

import (
	"fmt"
	"regexp"
	"strings"
)

// DeviceType 设备类型
type DeviceType string

const (
	DeviceTypeLight         DeviceType = "light"
	DeviceTypeOutlet        DeviceType = "outlet"
	DeviceTypeThermostat    DeviceType = "thermostat"
	DeviceTypeHumidity      DeviceType = "humidity"
	DeviceTypeDoor          DeviceType = "door"
	DeviceTypeWindow        DeviceType = "window"
	DeviceTypeEnergy        DeviceType = "energy"
	DeviceTypeAC            DeviceType = "ac"
	DeviceTypeHeating       DeviceType = "heating"
	DeviceTypeSmokeDetector DeviceType = "smoke_detector"
	DeviceTypeMotionSensor  DeviceType = "motion_sensor"
	DeviceTypeOther         DeviceType = "other"
)

// DeviceTypeLabels 设备类型的显示名称
var DeviceTypeLabels = map[DeviceType]string{
	DeviceTypeLight:         "Light",
	DeviceTypeOutlet:        "Outlet",
	DeviceTypeThermostat:    "Thermostat",
	DeviceTypeHumidity:      "Humidity Sensor",
	DeviceTypeDoor:          "Door Sensor",
	DeviceTypeWindow:        "Window Sensor",
	DeviceTypeEnergy:        "Energy Monitor",
	DeviceTypeAC:            "Air Conditioner",
	DeviceTypeHeating:       "Heating System",
	DeviceTypeSmokeDetector: "Smoke Detector",
	DeviceTypeMotionSensor:  "Motion Sensor",
	DeviceTypeOther:         "Other",
}

// Valid 判断设备类型是否受支持
func (t DeviceType) Valid() bool {
	_, ok := DeviceTypeLabels[t]
	return ok
}

// IsClimate 空调、暖气和温控器共享温度字段
func (t DeviceType) IsClimate() bool {
	return t == DeviceTypeThermostat || t == DeviceTypeAC || t == DeviceTypeHeating
}

// DeviceStatus 设备在线状态
type DeviceStatus string

const (
	StatusOnline  DeviceStatus = "Online"
	StatusOffline DeviceStatus = "Offline"
)

// Valid 判断状态值是否合法
func (s DeviceStatus) Valid() bool {
	return s == StatusOnline || s == StatusOffline
}

// Toggle 返回相反的状态
func (s DeviceStatus) Toggle() DeviceStatus {
	if s == StatusOnline {
		return StatusOffline
	}
	return StatusOnline
}

// LastActiveNow is written into lastActive whenever a device changes.
const LastActiveNow = "Just now"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Device 设备。type 字段决定哪些可选字段有效
type Device struct {
	ID         int          `json:"id" example:"1"`
	Name       string       `json:"name" example:"Ceiling Light"`
	Type       DeviceType   `json:"type" example:"light"`
	RoomID     int          `json:"roomId" example:"1"`
	Status     DeviceStatus `json:"status" example:"Online"`
	LastActive string       `json:"lastActive" example:"Just now"`

	SerialNumber     string `json:"serialNumber,omitempty" example:"TH-22.5-0001"`
	Manufacturer     string `json:"manufacturer,omitempty"`
	Model            string `json:"model,omitempty"`
	FirmwareVersion  string `json:"firmwareVersion,omitempty" example:"2.1.4"`
	IPAddress        string `json:"ipAddress,omitempty" example:"192.168.1.23"`
	MACAddress       string `json:"macAddress,omitempty"`
	PowerConsumption string `json:"powerConsumption,omitempty" example:"9W"`
	BatteryLevel     string `json:"batteryLevel,omitempty" example:"85%"`
	InstallationDate string `json:"installationDate,omitempty" example:"2024-03-12"`

	InitialCost      float64 `json:"initialCost,omitempty"`
	InstallationCost float64 `json:"installationCost,omitempty"`
	MonthlySavings   float64 `json:"monthlySavings,omitempty"`
	Lifespan         int     `json:"lifespan,omitempty"` // 月

	// light
	Brightness *int    `json:"brightness,omitempty"`
	Color      *string `json:"color,omitempty"`
	// thermostat, ac, heating
	Temperature    *float64 `json:"temperature,omitempty"`
	ManualOverride *bool    `json:"manualOverride,omitempty"`
	// door, window
	IsLocked *bool `json:"isLocked,omitempty"`
	IsOpen   *bool `json:"isOpen,omitempty"`
	// smoke_detector
	SmokeDetected *bool `json:"smokeDetected,omitempty"`
	AlarmActive   *bool `json:"alarmActive,omitempty"`
	// motion_sensor
	MotionDetected     *bool   `json:"motionDetected,omitempty"`
	AutoLightControl   *bool   `json:"autoLightControl,omitempty"`
	LastMotionDetected *string `json:"lastMotionDetected,omitempty"`
}

// IsOnline 设备是否在线
func (d *Device) IsOnline() bool {
	return d.Status == StatusOnline
}

// 以下访问器将缺失的字段视为 false
func (d *Device) Locked() bool { return boolValue(d.IsLocked) }
func (d *Device) Open() bool { return boolValue(d.IsOpen) }
func (d *Device) Overridden() bool { return boolValue(d.ManualOverride) }
func (d *Device) Smoke() bool { return boolValue(d.SmokeDetected) }
func (d *Device) Alarm() bool { return boolValue(d.AlarmActive) }
func (d *Device) Motion() bool { return boolValue(d.MotionDetected) }
func (d *Device) AutoLight() bool { return boolValue(d.AutoLightControl) }
func (d *Device) HasCostData() bool { return d.InitialCost > 0 && d.MonthlySavings > 0 && d.Lifespan > 0 }
func (d *Device) TypeLabel() string { return DeviceTypeLabels[d.Type] }
func (d *Device) SetOverride(v bool) { d.ManualOverride = Bool(v) }
func (d *Device) TouchOnly() { d.LastActive = LastActiveNow }
func (d *Device) SetTemperature(t float64) { d.Temperature = Float(t) }

// Touch 设置状态并刷新 lastActive
func (d *Device) Touch(s DeviceStatus) {
	d.Status = s
	d.LastActive = LastActiveNow
}

// Normalize 按类型补齐默认字段并清除不适用的字段
func (d *Device) Normalize() {
	d.Type = DeviceType(strings.ToLower(string(d.Type)))
	if d.Status == "" {
		d.Status = StatusOffline
	}
	if d.LastActive == "" {
		d.LastActive = "Never"
	}

	if d.Type != DeviceTypeLight {
		d.Brightness, d.Color = nil, nil
	} else {
		if d.Brightness == nil {
			d.Brightness = Int(100)
		}
		if d.Color == nil {
			d.Color = String("#FFFFFF")
		}
	}

	if !d.Type.IsClimate() {
		d.Temperature, d.ManualOverride = nil, nil
	} else if d.ManualOverride == nil {
		d.ManualOverride = Bool(false)
	}

	switch d.Type {
	case DeviceTypeDoor:
		if d.IsLocked == nil {
			d.IsLocked = Bool(false)
		}
		if d.IsOpen == nil {
			d.IsOpen = Bool(false)
		}
	case DeviceTypeWindow:
		d.IsLocked = nil
		if d.IsOpen == nil {
			d.IsOpen = Bool(false)
		}
	default:
		d.IsLocked, d.IsOpen = nil, nil
	}

	if d.Type != DeviceTypeSmokeDetector {
		d.SmokeDetected, d.AlarmActive = nil, nil
	} else {
		if d.SmokeDetected == nil {
			d.SmokeDetected = Bool(false)
		}
		if d.AlarmActive == nil {
			d.AlarmActive = Bool(false)
		}
	}

	if d.Type != DeviceTypeMotionSensor {
		d.MotionDetected, d.AutoLightControl, d.LastMotionDetected = nil, nil, nil
	} else {
		if d.MotionDetected == nil {
			d.MotionDetected = Bool(false)
		}
		if d.AutoLightControl == nil {
			d.AutoLightControl = Bool(false)
		}
	}
}

// Validate 校验设备字段
func (d *Device) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("device name is required")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("unknown device type %q", d.Type)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("status must be Online or Offline, got %q", d.Status)
	}
	if d.Brightness != nil && (*d.Brightness < 0 || *d.Brightness > 100) {
		return fmt.Errorf("brightness must be between 0 and 100")
	}
	if d.Color != nil && !ValidColor(*d.Color) {
		return fmt.Errorf("color must be a #RRGGBB hex value")
	}
	if d.InitialCost < 0 || d.InstallationCost < 0 || d.MonthlySavings < 0 || d.Lifespan < 0 {
		return fmt.Errorf("cost fields must not be negative")
	}
	return nil
}

// ValidColor 校验 #RRGGBB 颜色
func ValidColor(c string) bool {
	return colorPattern.MatchString(c)
}

// Clone 深拷贝设备
func (d *Device) Clone() *Device {
	c := *d
	c.Brightness = cloneInt(d.Brightness)
	c.Color = cloneString(d.Color)
	c.Temperature = cloneFloat(d.Temperature)
	c.ManualOverride = cloneBool(d.ManualOverride)
	c.IsLocked = cloneBool(d.IsLocked)
	c.IsOpen = cloneBool(d.IsOpen)
	c.SmokeDetected = cloneBool(d.SmokeDetected)
	c.AlarmActive = cloneBool(d.AlarmActive)
	c.MotionDetected = cloneBool(d.MotionDetected)
	c.AutoLightControl = cloneBool(d.AutoLightControl)
	c.LastMotionDetected = cloneString(d.LastMotionDetected)
	return &c
}

// DevicePatch 设备的部分更新，nil 字段保持不变。id 和 type 不可修改
type DevicePatch struct {
	Name             *string       `json:"name,omitempty"`
	RoomID           *int          `json:"roomId,omitempty"`
	Status           *DeviceStatus `json:"status,omitempty"`
	LastActive       *string       `json:"lastActive,omitempty"`
	SerialNumber     *string       `json:"serialNumber,omitempty"`
	Manufacturer     *string       `json:"manufacturer,omitempty"`
	Model            *string       `json:"model,omitempty"`
	FirmwareVersion  *string       `json:"firmwareVersion,omitempty"`
	IPAddress        *string       `json:"ipAddress,omitempty"`
	MACAddress       *string       `json:"macAddress,omitempty"`
	PowerConsumption *string       `json:"powerConsumption,omitempty"`
	BatteryLevel     *string       `json:"batteryLevel,omitempty"`
	InstallationDate *string       `json:"installationDate,omitempty"`
	InitialCost      *float64      `json:"initialCost,omitempty"`
	InstallationCost *float64      `json:"installationCost,omitempty"`
	MonthlySavings   *float64      `json:"monthlySavings,omitempty"`
	Lifespan         *int          `json:"lifespan,omitempty"`

	Brightness         *int     `json:"brightness,omitempty"`
	Color              *string  `json:"color,omitempty"`
	Temperature        *float64 `json:"temperature,omitempty"`
	ManualOverride     *bool    `json:"manualOverride,omitempty"`
	IsLocked           *bool    `json:"isLocked,omitempty"`
	IsOpen             *bool    `json:"isOpen,omitempty"`
	SmokeDetected      *bool    `json:"smokeDetected,omitempty"`
	AlarmActive        *bool    `json:"alarmActive,omitempty"`
	MotionDetected     *bool    `json:"motionDetected,omitempty"`
	AutoLightControl   *bool    `json:"autoLightControl,omitempty"`
	LastMotionDetected *string  `json:"lastMotionDetected,omitempty"`
}

// Apply 将非空字段合并到设备上
func (p *DevicePatch) Apply(d *Device) {
	setString(&d.Name, p.Name)
	if p.RoomID != nil {
		d.RoomID = *p.RoomID
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	setString(&d.LastActive, p.LastActive)
	setString(&d.SerialNumber, p.SerialNumber)
	setString(&d.Manufacturer, p.Manufacturer)
	setString(&d.Model, p.Model)
	setString(&d.FirmwareVersion, p.FirmwareVersion)
	setString(&d.IPAddress, p.IPAddress)
	setString(&d.MACAddress, p.MACAddress)
	setString(&d.PowerConsumption, p.PowerConsumption)
	setString(&d.BatteryLevel, p.BatteryLevel)
	setString(&d.InstallationDate, p.InstallationDate)
	if p.InitialCost != nil {
		d.InitialCost = *p.InitialCost
	}
	if p.InstallationCost != nil {
		d.InstallationCost = *p.InstallationCost
	}
	if p.MonthlySavings != nil {
		d.MonthlySavings = *p.MonthlySavings
	}
	if p.Lifespan != nil {
		d.Lifespan = *p.Lifespan
	}

	if p.Brightness != nil {
		d.Brightness = Int(*p.Brightness)
	}
	if p.Color != nil {
		d.Color = String(*p.Color)
	}
	if p.Temperature != nil {
		d.Temperature = Float(*p.Temperature)
	}
	if p.ManualOverride != nil {
		d.ManualOverride = Bool(*p.ManualOverride)
	}
	if p.IsLocked != nil {
		d.IsLocked = Bool(*p.IsLocked)
	}
	if p.IsOpen != nil {
		d.IsOpen = Bool(*p.IsOpen)
	}
	if p.SmokeDetected != nil {
		d.SmokeDetected = Bool(*p.SmokeDetected)
	}
	if p.AlarmActive != nil {
		d.AlarmActive = Bool(*p.AlarmActive)
	}
	if p.MotionDetected != nil {
		d.MotionDetected = Bool(*p.MotionDetected)
	}
	if p.AutoLightControl != nil {
		d.AutoLightControl = Bool(*p.AutoLightControl)
	}
	if p.LastMotionDetected != nil {
		d.LastMotionDetected = String(*p.LastMotionDetected)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
