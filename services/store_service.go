package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"smarthome-http-service/config"
)

// 存储键，与前端 localStorage 的键保持一致
const (
	KeyHomeData          = "smartHomeData"
	KeyHomeDataVersion   = "smartHomeDataVersion"
	KeyUsers             = "users"
	KeyAwayModeActive    = "awayModeActive"
	KeyAwaySavedDevices  = "awayModeSavedDeviceStates"
	KeyAwaySavedRooms    = "awayModeSavedRoomStates"
	KeyAwayModeOptions   = "awayModeOptions"
	KeyAmortizationData  = "amortizationData"
	sessionKeyPrefix     = "session:"
	preferencesKeyPrefix = "preferences:"
)

// SessionKey 会话键
func SessionKey(id string) string {
	return sessionKeyPrefix + id
}

// PreferencesKey 用户偏好键
func PreferencesKey(userID string) string {
	return preferencesKeyPrefix + userID
}

// InterfaceStoreService 定义 JSON 键值存储接口
type InterfaceStoreService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// NewStoreService 根据 STORE_DRIVER 创建存储
func NewStoreService(cfg *config.Config) (InterfaceStoreService, error) {
	switch strings.ToLower(cfg.StoreDriver) {
	case "", "memory":
		return NewMemoryStore(), nil
	case "mysql":
		db, err := OpenMySQL(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db, cfg.DBMigrationMode)
	case "redis":
		return NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// LoadJSON 读取键并解析到 dest。键不存在、读取失败或解析失败时返回 false，后两种情况记录警告
func LoadJSON(ctx context.Context, store InterfaceStoreService, key string, dest interface{}) bool {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			config.Warning("读取存储键 %s 失败: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		config.Warning("解析存储键 %s 失败，使用默认值: %v", key, err)
		return false
	}
	return true
}

// SaveJSON 序列化 value 并写入键
func SaveJSON(ctx context.Context, store InterfaceStoreService, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		config.Error("写入存储键 %s 失败: %v", key, err)
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// DeleteKeys 删除多个键，忽略不存在的键
func DeleteKeys(ctx context.Context, store InterfaceStoreService, keys ...string) error {
	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil && !errors.Is(err, ErrKeyNotFound) {
			return fmt.Errorf("deleting %s: %w", key, err)
		}
	}
	return nil
}
