package models

import (
	"fmt"
	"strings"
)

// RoomType 房间类型
type RoomType string

const (
	RoomTypeLiving   RoomType = "living"
	RoomTypeBedroom  RoomType = "bedroom"
	RoomTypeKitchen  RoomType = "kitchen"
	RoomTypeBathroom RoomType = "bathroom"
	RoomTypeGarage   RoomType = "garage"
	RoomTypeEntrance RoomType = "entrance"
	RoomTypeOther    RoomType = "other"
)

// RoomTypeLabels 房间类型的显示名称
var RoomTypeLabels = map[RoomType]string{
	RoomTypeLiving:   "Living Room",
	RoomTypeBedroom:  "Bedroom",
	RoomTypeKitchen:  "Kitchen",
	RoomTypeBathroom: "Bathroom",
	RoomTypeGarage:   "Garage",
	RoomTypeEntrance: "Entrance",
	RoomTypeOther:    "Other",
}

// Valid 判断房间类型是否受支持
func (t RoomType) Valid() bool {
	_, ok := RoomTypeLabels[t]
	return ok
}

// Default comfort band used when a room has no range or a zero bound.
const (
	DefaultMinTemperature = 20.0
	DefaultMaxTemperature = 24.0
)

// TemperatureRange 房间的目标温度区间 (°C)
type TemperatureRange struct {
	Min float64 `json:"min" example:"20"`
	Max float64 `json:"max" example:"24"`
}

// Validate 校验 min <= max
func (r TemperatureRange) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("min temperature %.1f is above max %.1f", r.Min, r.Max)
	}
	return nil
}

// Room 房间
type Room struct {
	ID               int               `json:"id" example:"1"`
	Name             string            `json:"name" example:"Living Room"`
	Type             RoomType          `json:"type" example:"living"`
	Devices          []int             `json:"devices"`
	TemperatureRange *TemperatureRange `json:"temperatureRange,omitempty"`
}

// EffectiveRange 返回房间的温度区间，缺失或为 0 的边界使用默认值
func (r *Room) EffectiveRange() TemperatureRange {
	tr := TemperatureRange{Min: DefaultMinTemperature, Max: DefaultMaxTemperature}
	if r.TemperatureRange != nil {
		if r.TemperatureRange.Min != 0 {
			tr.Min = r.TemperatureRange.Min
		}
		if r.TemperatureRange.Max != 0 {
			tr.Max = r.TemperatureRange.Max
		}
	}
	return tr
}

// Validate 校验房间字段
func (r *Room) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("room name is required")
	}
	if !r.Type.Valid() {
		return fmt.Errorf("unknown room type %q", r.Type)
	}
	if r.TemperatureRange != nil {
		return r.TemperatureRange.Validate()
	}
	return nil
}

// HasDevice 房间是否包含设备
func (r *Room) HasDevice(id int) bool {
	for _, d := range r.Devices {
		if d == id {
			return true
		}
	}
	return false
}

// RemoveDevice 从房间的设备列表中移除设备
func (r *Room) RemoveDevice(id int) {
	out := r.Devices[:0]
	for _, d := range r.Devices {
		if d != id {
			out = append(out, d)
		}
	}
	r.Devices = out
}

// Clone 深拷贝房间
func (r *Room) Clone() *Room {
	c := *r
	c.Devices = append([]int{}, r.Devices...)
	if r.TemperatureRange != nil {
		tr := *r.TemperatureRange
		c.TemperatureRange = &tr
	}
	return &c
}

// RoomPatch 房间的部分更新
type RoomPatch struct {
	Name             *string           `json:"name,omitempty"`
	Type             *RoomType         `json:"type,omitempty"`
	TemperatureRange *TemperatureRange `json:"temperatureRange,omitempty"`
}

// Apply 将非空字段合并到房间上
func (p *RoomPatch) Apply(r *Room) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.TemperatureRange != nil {
		tr := *p.TemperatureRange
		r.TemperatureRange = &tr
	}
}
