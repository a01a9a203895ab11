package models

import (
	"gorm.io/datatypes"
)

// StoreEntry 键值存储的一行，value 为 JSON
type StoreEntry struct {
	Key   string         `gorm:"primaryKey;type:varchar(191)" json:"key"`
	Value datatypes.JSON `gorm:"not null" json:"value"`
	BaseModel
}

// TableName 表名
func (StoreEntry) TableName() string {
	return "store_entries"
}
