package services

import (
	"context"
	"fmt"
	"sync"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
)

// InterfaceAwayModeService 定义离家模式服务接口
type InterfaceAwayModeService interface {
	GetStatus(ctx context.Context) (*models.AwayModeStatus, error)
	UpdateOptions(ctx context.Context, opts models.AwayModeOptions) (*models.AwayModeOptions, error)
	Activate(ctx context.Context) (*models.AwayModeResult, error)
	Deactivate(ctx context.Context) (*models.AwayModeResult, error)
}

// AwayModeService 保存设备和房间快照，批量应用离家设置，关闭时按快照恢复
type AwayModeService struct {
	store  InterfaceStoreService
	home   InterfaceHomeService
	events InterfaceEventPublisher

	mu sync.Mutex
}

// NewAwayModeService 创建离家模式服务
func NewAwayModeService(store InterfaceStoreService, home InterfaceHomeService, events InterfaceEventPublisher) InterfaceAwayModeService {
	return &AwayModeService{store: store, home: home, events: events}
}

func (s *AwayModeService) active(ctx context.Context) bool {
	var active bool
	LoadJSON(ctx, s.store, KeyAwayModeActive, &active)
	return active
}

func (s *AwayModeService) options(ctx context.Context) models.AwayModeOptions {
	opts := models.DefaultAwayModeOptions()
	if !LoadJSON(ctx, s.store, KeyAwayModeOptions, &opts) {
		return models.DefaultAwayModeOptions()
	}
	opts.ClampTarget()
	return opts
}

func (s *AwayModeService) savedDevices(ctx context.Context) []models.SavedDeviceState {
	var saved []models.SavedDeviceState
	LoadJSON(ctx, s.store, KeyAwaySavedDevices, &saved)
	return saved
}

func (s *AwayModeService) savedRooms(ctx context.Context) []models.SavedRoomState {
	var saved []models.SavedRoomState
	LoadJSON(ctx, s.store, KeyAwaySavedRooms, &saved)
	return saved
}

func (s *AwayModeService) publish(result *models.AwayModeResult) {
	if s.events != nil {
		s.events.Publish(NewEvent(EventAwayMode, result))
	}
}

// 1 GetStatus 获取离家模式状态
func (s *AwayModeService) GetStatus(ctx context.Context) (*models.AwayModeStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &models.AwayModeStatus{
		Active:           s.active(ctx),
		Options:          s.options(ctx),
		SavedDeviceCount: len(s.savedDevices(ctx)),
		SavedRoomCount:   len(s.savedRooms(ctx)),
	}, nil
}

// 2 UpdateOptions 修改离家模式选项，仅在未启用时允许
func (s *AwayModeService) UpdateOptions(ctx context.Context, opts models.AwayModeOptions) (*models.AwayModeOptions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active(ctx) {
		return nil, ErrAwayModeActive
	}
	opts.ClampTarget()
	if err := SaveJSON(ctx, s.store, KeyAwayModeOptions, opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// snapshotRange 房间没有温度区间时使用第一个设置了区间的房间，否则使用默认值
func snapshotRange(data *models.HomeData, room *models.Room) models.TemperatureRange {
	if room.TemperatureRange != nil {
		return *room.TemperatureRange
	}
	tr := models.TemperatureRange{Min: models.DefaultMinTemperature, Max: models.DefaultMaxTemperature}
	for _, r := range data.Rooms {
		if r.TemperatureRange == nil {
			continue
		}
		if r.TemperatureRange.Min != 0 {
			tr.Min = r.TemperatureRange.Min
		}
		if r.TemperatureRange.Max != 0 {
			tr.Max = r.TemperatureRange.Max
		}
		break
	}
	return tr
}

// 3 Activate 保存快照后关灯、锁门并设置目标温度
func (s *AwayModeService) Activate(ctx context.Context) (*models.AwayModeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active(ctx) {
		return nil, ErrAwayModeActive
	}
	opts := s.options(ctx)

	var (
		devices  []models.SavedDeviceState
		rooms    []models.SavedRoomState
		affected int
	)
	_, err := s.home.Mutate(ctx, func(data *models.HomeData) error {
		if opts.TurnOffLights {
			for _, d := range data.DevicesOfType(models.DeviceTypeLight) {
				if !d.IsOnline() {
					continue
				}
				status := d.Status
				devices = append(devices, models.SavedDeviceState{ID: d.ID, Status: &status, LastActive: d.LastActive})
				d.Touch(models.StatusOffline)
				affected++
			}
		}

		if opts.LockDoors {
			for _, d := range data.DevicesOfType(models.DeviceTypeDoor) {
				if d.Open() || d.Locked() {
					continue
				}
				devices = append(devices, models.SavedDeviceState{ID: d.ID, IsLocked: models.Bool(false), LastActive: d.LastActive})
				d.IsLocked = models.Bool(true)
				d.TouchOnly()
				affected++
			}
		}

		if opts.SetTemperature {
			for _, room := range data.Rooms {
				rooms = append(rooms, models.SavedRoomState{
					ID:               room.ID,
					Name:             room.Name,
					Type:             room.Type,
					Devices:          append([]int{}, room.Devices...),
					TemperatureRange: snapshotRange(data, room),
				})
			}
			for _, room := range data.Rooms {
				room.TemperatureRange = &models.TemperatureRange{
					Min: opts.TargetTemperature - 1,
					Max: opts.TargetTemperature + 1,
				}
				affected++
			}

			for _, d := range data.DevicesOfType(models.DeviceTypeThermostat, models.DeviceTypeAC, models.DeviceTypeHeating) {
				saved := models.SavedDeviceState{ID: d.ID, LastActive: d.LastActive}
				if d.Temperature != nil {
					saved.Temperature = models.Float(*d.Temperature)
				}
				devices = append(devices, saved)
				d.SetTemperature(opts.TargetTemperature)
				d.TouchOnly()
				affected++
			}
		}

		// 快照必须在设备数据保存前写入
		if err := SaveJSON(ctx, s.store, KeyAwaySavedDevices, devices); err != nil {
			return err
		}
		if opts.SetTemperature {
			return SaveJSON(ctx, s.store, KeyAwaySavedRooms, rooms)
		}
		return DeleteKeys(ctx, s.store, KeyAwaySavedRooms)
	})
	if err != nil {
		return nil, fmt.Errorf("activating away mode: %w", err)
	}

	if err := SaveJSON(ctx, s.store, KeyAwayModeActive, true); err != nil {
		return nil, err
	}

	result := &models.AwayModeResult{
		Active: true,
		Count:  affected,
		Detail: fmt.Sprintf("%d devices updated", affected),
	}
	config.Info("离家模式已启用，%d 项被修改", affected)
	s.publish(result)
	return result, nil
}

// 4 Deactivate 按快照恢复设备和房间，然后清除快照
func (s *AwayModeService) Deactivate(ctx context.Context) (*models.AwayModeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active(ctx) {
		return nil, ErrAwayModeInactive
	}
	devices := s.savedDevices(ctx)
	rooms := s.savedRooms(ctx)

	restored := 0
	_, err := s.home.Mutate(ctx, func(data *models.HomeData) error {
		for i := range devices {
			d := data.DeviceByID(devices[i].ID)
			if d == nil {
				continue
			}
			devices[i].Restore(d)
			restored++
		}
		for _, saved := range rooms {
			room := data.RoomByID(saved.ID)
			if room == nil {
				continue
			}
			room.TemperatureRange = &models.TemperatureRange{Min: saved.TemperatureRange.Min, Max: saved.TemperatureRange.Max}
			restored++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deactivating away mode: %w", err)
	}

	if err := DeleteKeys(ctx, s.store, KeyAwaySavedDevices, KeyAwaySavedRooms); err != nil {
		config.Warning("清除离家模式快照失败: %v", err)
	}
	if err := SaveJSON(ctx, s.store, KeyAwayModeActive, false); err != nil {
		return nil, err
	}

	result := &models.AwayModeResult{
		Active: false,
		Count:  restored,
		Detail: fmt.Sprintf("%d devices restored", restored),
	}
	config.Info("离家模式已关闭，%d 项已恢复", restored)
	s.publish(result)
	return result, nil
}
