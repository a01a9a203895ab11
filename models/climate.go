package models

// Advisory badges shown per room.
const (
	AdvisoryACNeeded        = "AC Needed"
	AdvisoryHeatNeeded      = "Heat Needed"
	AdvisoryACUnnecessary   = "AC Unnecessary"
	AdvisoryHeatUnnecessary = "Heat Unnecessary"
)

// ClimateChange 一次自动温控对设备状态的修改
type ClimateChange struct {
	DeviceID int          `json:"deviceId"`
	RoomID   int          `json:"roomId"`
	Type     DeviceType   `json:"type"`
	From     DeviceStatus `json:"from"`
	To       DeviceStatus `json:"to"`
	Reason   string       `json:"reason"`
}

// ClimateReport 一次温控评估的结果
type ClimateReport struct {
	Changes []ClimateChange `json:"changes"`
	Skipped []int           `json:"skipped"` // 手动控制而跳过的设备
}

// RoomClimateStatus 房间温控状态
type RoomClimateStatus struct {
	RoomID           int              `json:"roomId"`
	RoomName         string           `json:"roomName"`
	Temperature      float64          `json:"temperature"`
	Range            TemperatureRange `json:"range"`
	ShouldHeat       bool             `json:"shouldHeat"`
	ShouldCool       bool             `json:"shouldCool"`
	HasActiveHeating bool             `json:"hasActiveHeating"`
	HasActiveAC      bool             `json:"hasActiveAC"`
	HasOpenWindow    bool             `json:"hasOpenWindow"`
	Advisories       []string         `json:"advisories"`
}

// ClimateStatus 全屋温控状态
type ClimateStatus struct {
	Rooms           []RoomClimateStatus `json:"rooms"`
	OpenWindowCount int                 `json:"openWindowCount"`
	ActiveACCount   int                 `json:"activeACCount"`
	ActiveHeatCount int                 `json:"activeHeatCount"`
}
