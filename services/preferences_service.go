package services

import (
	"context"
	"fmt"

	"smarthome-http-service/models"
)

// InterfacePreferencesService 定义界面偏好服务接口
type InterfacePreferencesService interface {
	Get(ctx context.Context, userID string) (*models.Preferences, error)
	Update(ctx context.Context, userID string, prefs models.Preferences) (*models.Preferences, error)
}

// PreferencesService 按用户保存界面偏好
type PreferencesService struct {
	store InterfaceStoreService
}

// NewPreferencesService 创建偏好服务
func NewPreferencesService(store InterfaceStoreService) InterfacePreferencesService {
	return &PreferencesService{store: store}
}

// Get 读取用户偏好，缺失或无法解析时返回默认值
func (s *PreferencesService) Get(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs := models.DefaultPreferences()
	if !LoadJSON(ctx, s.store, PreferencesKey(userID), &prefs) || !prefs.Valid() {
		prefs = models.DefaultPreferences()
	}
	if len(prefs.DashboardCards) == 0 {
		prefs.DashboardCards = append([]string{}, models.DefaultDashboardCards...)
	}
	return &prefs, nil
}

// Update 保存用户偏好，空字段沿用当前值
func (s *PreferencesService) Update(ctx context.Context, userID string, prefs models.Preferences) (*models.Preferences, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs.DevicesView != "" {
		current.DevicesView = prefs.DevicesView
	}
	if prefs.Theme != "" {
		current.Theme = prefs.Theme
	}
	if prefs.DashboardCards != nil {
		current.DashboardCards = prefs.DashboardCards
	}
	if !current.Valid() {
		return nil, fmt.Errorf("%w: devicesView must be grid, list or room and theme light, dark or system", ErrValidation)
	}
	if err := SaveJSON(ctx, s.store, PreferencesKey(userID), current); err != nil {
		return nil, err
	}
	return current, nil
}
