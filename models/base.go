package models

import "time"

// BaseModel gorm 模型的公共字段
type BaseModel struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Bool 返回 v 的指针
func Bool(v bool) *bool { return &v }

// Int 返回 v 的指针
func Int(v int) *int { return &v }

// Float 返回 v 的指针
func Float(v float64) *float64 { return &v }

// String 返回 v 的指针
func String(v string) *string { return &v }

func boolValue(p *bool) bool {
	return p != nil && *p
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	return Bool(*p)
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return Int(*p)
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	return String(*p)
}
