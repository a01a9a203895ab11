package models

// DevicesView 设备页面的展示方式
type DevicesView string

const (
	DevicesViewGrid DevicesView = "grid"
	DevicesViewList DevicesView = "list"
	DevicesViewRoom DevicesView = "room"
)

// Preferences 每个用户的界面偏好，键为 preferences:<userId>
type Preferences struct {
	DevicesView    DevicesView `json:"devicesView" example:"grid"`
	DashboardCards []string    `json:"dashboardCards"`
	Theme          string      `json:"theme" example:"system"`
}

// DefaultDashboardCards 默认首页卡片顺序
var DefaultDashboardCards = []string{"energy", "weather", "climate", "home-modes", "devices"}

// DefaultPreferences 默认偏好
func DefaultPreferences() Preferences {
	return Preferences{
		DevicesView:    DevicesViewGrid,
		DashboardCards: append([]string{}, DefaultDashboardCards...),
		Theme:          "system",
	}
}

// Valid 校验偏好字段
func (p *Preferences) Valid() bool {
	switch p.DevicesView {
	case DevicesViewGrid, DevicesViewList, DevicesViewRoom:
	default:
		return false
	}
	switch p.Theme {
	case "light", "dark", "system":
	default:
		return false
	}
	return true
}
