package models

// Target temperature bounds accepted by away mode.
const (
	AwayMinTargetTemperature     = 16.0
	AwayMaxTargetTemperature     = 28.0
	AwayDefaultTargetTemperature = 21.0
)

// AwayModeOptions 离家模式选项
type AwayModeOptions struct {
	TurnOffLights     bool    `json:"turnOffLights" example:"true"`
	LockDoors         bool    `json:"lockDoors" example:"true"`
	SetTemperature    bool    `json:"setTemperature" example:"true"`
	TargetTemperature float64 `json:"targetTemperature" example:"21"`
}

// DefaultAwayModeOptions 默认选项，全部启用，目标温度 21°C
func DefaultAwayModeOptions() AwayModeOptions {
	return AwayModeOptions{
		TurnOffLights:     true,
		LockDoors:         true,
		SetTemperature:    true,
		TargetTemperature: AwayDefaultTargetTemperature,
	}
}

// ClampTarget 将目标温度限制在 16..28°C，未设置 (0) 时使用默认的 21°C
func (o *AwayModeOptions) ClampTarget() {
	if o.TargetTemperature == 0 {
		o.TargetTemperature = AwayDefaultTargetTemperature
	}
	if o.TargetTemperature < AwayMinTargetTemperature {
		o.TargetTemperature = AwayMinTargetTemperature
	}
	if o.TargetTemperature > AwayMaxTargetTemperature {
		o.TargetTemperature = AwayMaxTargetTemperature
	}
}

// SavedDeviceState 启用离家模式前设备的字段快照，只记录被修改的字段
type SavedDeviceState struct {
	ID          int           `json:"id"`
	Status      *DeviceStatus `json:"status,omitempty"`
	IsLocked    *bool         `json:"isLocked,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	LastActive  string        `json:"lastActive"`
}

// Restore 将快照中记录的字段写回设备，并刷新 lastActive
func (s *SavedDeviceState) Restore(d *Device) {
	if s.Status != nil {
		d.Status = *s.Status
	}
	if s.IsLocked != nil {
		d.IsLocked = Bool(*s.IsLocked)
	}
	if s.Temperature != nil {
		d.Temperature = Float(*s.Temperature)
	}
	d.TouchOnly()
}

// SavedRoomState 启用离家模式前房间的快照
type SavedRoomState struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Type             RoomType         `json:"type"`
	Devices          []int            `json:"devices"`
	TemperatureRange TemperatureRange `json:"temperatureRange"`
}

// AwayModeStatus 离家模式状态
type AwayModeStatus struct {
	Active           bool            `json:"active"`
	Options          AwayModeOptions `json:"options"`
	SavedDeviceCount int             `json:"savedDeviceCount"`
	SavedRoomCount   int             `json:"savedRoomCount"`
}

// AwayModeResult 启用或关闭离家模式的结果
type AwayModeResult struct {
	Active bool   `json:"active"`
	Count  int    `json:"count"`
	Detail string `json:"detail"`
}
