package services

import (
	"context"
	"errors"
	"fmt"

	"smarthome-http-service/config"
	"smarthome-http-service/internal/infrastructure/database"
	"smarthome-http-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 将键值存储在 store_entries 表中
type GormStore struct {
	db *gorm.DB
}

// OpenMySQL 打开 MySQL 连接池
func OpenMySQL(cfg *config.Config) (*gorm.DB, error) {
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return nil, err
	}
	return pool.DB, nil
}

// NewGormStore 迁移 store_entries 表并返回存储
func NewGormStore(db *gorm.DB, migrationMode string) (*GormStore, error) {
	if db == nil {
		return nil, errors.New("数据库连接为空")
	}
	if err := database.Migrate(db, migrationMode, &models.StoreEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Get 读取键
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.StoreEntry
	err := s.db.WithContext(ctx).Where("`key` = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Set 写入键，已存在时覆盖
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.StoreEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete 删除键
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("`key` = ?", key).Delete(&models.StoreEntry{}).Error
}

// Keys 返回所有键
func (s *GormStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&models.StoreEntry{}).Order("`key`").Pluck("key", &keys).Error
	return keys, err
}

// Close 关闭底层连接
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
