package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
)

// InterfaceHomeService 定义房间与设备服务接口
type InterfaceHomeService interface {
	GetData(ctx context.Context) (*models.HomeData, error)
	GetRoom(ctx context.Context, id int) (*models.Room, error)
	GetDevice(ctx context.Context, id int) (*models.Device, error)
	GetDevicesByRoom(ctx context.Context, roomID int) ([]*models.Device, error)
	GetRoomByDevice(ctx context.Context, deviceID int) (*models.Room, error)
	GetRoomName(ctx context.Context, roomID int) (string, error)
	AddRoom(ctx context.Context, room models.Room) (*models.Room, error)
	UpdateRoom(ctx context.Context, id int, patch models.RoomPatch) (*models.Room, error)
	DeleteRoom(ctx context.Context, id int) error
	AddDevice(ctx context.Context, device models.Device) (*models.Device, error)
	UpdateDevice(ctx context.Context, id int, patch models.DevicePatch) (*models.Device, error)
	DeleteDevice(ctx context.Context, id int) error
	Mutate(ctx context.Context, fn func(data *models.HomeData) error) (*models.HomeData, error)
	ResetData(ctx context.Context) error
	ReloadFromStorage(ctx context.Context) error
}

// HomeService 持有 smartHomeData，所有修改通过 Mutate 串行执行并立即持久化
type HomeService struct {
	store  InterfaceStoreService
	events InterfaceEventPublisher

	mu   sync.RWMutex
	data *models.HomeData
}

// NewHomeService 创建房间与设备服务，events 可以为 nil
func NewHomeService(store InterfaceStoreService, events InterfaceEventPublisher) *HomeService {
	return &HomeService{store: store, events: events}
}

// load 读取存储中的数据。版本不一致或数据缺失时写入初始数据，解析失败时使用初始数据
func (s *HomeService) load(ctx context.Context) (*models.HomeData, error) {
	var version string
	versionOK := LoadJSON(ctx, s.store, KeyHomeDataVersion, &version) && version == models.SchemaVersion

	raw, err := s.store.Get(ctx, KeyHomeData)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("reading home data: %w", err)
	}

	if !versionOK || errors.Is(err, ErrKeyNotFound) {
		config.Info("版本不一致或数据缺失，使用初始数据 (version=%q)", version)
		data := models.InitialHomeData()
		if err := s.save(ctx, data); err != nil {
			return nil, err
		}
		return data, nil
	}

	data := &models.HomeData{}
	if err := json.Unmarshal(raw, data); err != nil {
		config.Warning("解析已保存的房屋数据失败，使用初始数据: %v", err)
		return models.InitialHomeData(), nil
	}
	for _, d := range data.Devices {
		d.Normalize()
	}
	return data, nil
}

func (s *HomeService) save(ctx context.Context, data *models.HomeData) error {
	if err := SaveJSON(ctx, s.store, KeyHomeData, data); err != nil {
		return err
	}
	return SaveJSON(ctx, s.store, KeyHomeDataVersion, models.SchemaVersion)
}

// current 返回缓存数据，首次调用时从存储加载。调用者必须持有写锁
func (s *HomeService) current(ctx context.Context) (*models.HomeData, error) {
	if s.data == nil {
		data, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		s.data = data
	}
	return s.data, nil
}

func (s *HomeService) snapshot(ctx context.Context) (*models.HomeData, error) {
	s.mu.RLock()
	if s.data != nil {
		defer s.mu.RUnlock()
		return s.data.Clone(), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return data.Clone(), nil
}

func (s *HomeService) publish(t EventType, payload interface{}) {
	if s.events != nil {
		s.events.Publish(NewEvent(t, payload))
	}
}

// Mutate 在副本上执行 fn，成功后持久化并替换缓存。fn 返回错误时数据保持不变
func (s *HomeService) Mutate(ctx context.Context, fn func(data *models.HomeData) error) (*models.HomeData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	next := data.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.data = next
	return next.Clone(), nil
}

// GetData 返回完整数据的副本
func (s *HomeService) GetData(ctx context.Context) (*models.HomeData, error) {
	return s.snapshot(ctx)
}

// GetRoom 按 ID 获取房间
func (s *HomeService) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	room := data.RoomByID(id)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// GetDevice 按 ID 获取设备
func (s *HomeService) GetDevice(ctx context.Context, id int) (*models.Device, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	device := data.DeviceByID(id)
	if device == nil {
		return nil, ErrDeviceNotFound
	}
	return device, nil
}

// GetDevicesByRoom 获取房间内的设备
func (s *HomeService) GetDevicesByRoom(ctx context.Context, roomID int) ([]*models.Device, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if data.RoomByID(roomID) == nil {
		return nil, ErrRoomNotFound
	}
	devices := data.DevicesInRoom(roomID)
	if devices == nil {
		devices = []*models.Device{}
	}
	return devices, nil
}

// GetRoomByDevice 获取设备列表包含该设备的房间
func (s *HomeService) GetRoomByDevice(ctx context.Context, deviceID int) (*models.Room, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	room := data.RoomByDevice(deviceID)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// GetRoomName 房间名，不存在时返回 "Unknown Room"
func (s *HomeService) GetRoomName(ctx context.Context, roomID int) (string, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	return data.RoomName(roomID), nil
}

// AddRoom 添加房间，ID 为当前最大 ID + 1
func (s *HomeService) AddRoom(ctx context.Context, room models.Room) (*models.Room, error) {
	room.Name = strings.TrimSpace(room.Name)
	if room.Type == "" {
		room.Type = models.RoomTypeOther
	}
	if !room.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomType, room.Type)
	}
	if err := room.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var created *models.Room
	_, err := s.Mutate(ctx, func(data *models.HomeData) error {
		room.ID = data.NextRoomID()
		room.Devices = []int{}
		created = room.Clone()
		data.Rooms = append(data.Rooms, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	config.Info("已添加房间 %d (%s)", created.ID, created.Name)
	s.publish(EventRoomAdded, created)
	return created.Clone(), nil
}

// UpdateRoom 部分更新房间
func (s *HomeService) UpdateRoom(ctx context.Context, id int, patch models.RoomPatch) (*models.Room, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomType, *patch.Type)
	}

	var updated *models.Room
	_, err := s.Mutate(ctx, func(data *models.HomeData) error {
		room := data.RoomByID(id)
		if room == nil {
			return ErrRoomNotFound
		}
		patch.Apply(room)
		if err := room.Validate(); err != nil {
			if room.TemperatureRange != nil && room.TemperatureRange.Validate() != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTemperatureRange, err)
			}
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		updated = room.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(EventRoomUpdated, updated)
	return updated, nil
}

// DeleteRoom 删除房间及其中的所有设备
func (s *HomeService) DeleteRoom(ctx context.Context, id int) error {
	var removed []int
	_, err := s.Mutate(ctx, func(data *models.HomeData) error {
		for _, d := range data.DevicesInRoom(id) {
			removed = append(removed, d.ID)
		}
		if !data.RemoveRoom(id) {
			return ErrRoomNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	config.Info("已删除房间 %d 及其 %d 个设备", id, len(removed))
	s.publish(EventRoomDeleted, map[string]interface{}{"id": id, "devices": removed})
	return nil
}

// AddDevice 添加设备并加入所属房间的设备列表
func (s *HomeService) AddDevice(ctx context.Context, device models.Device) (*models.Device, error) {
	device.Normalize()
	if !device.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDeviceType, device.Type)
	}
	if err := device.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var created *models.Device
	_, err := s.Mutate(ctx, func(data *models.HomeData) error {
		room := data.RoomByID(device.RoomID)
		if room == nil {
			return ErrRoomNotFound
		}
		device.ID = data.NextDeviceID()
		created = device.Clone()
		data.Devices = append(data.Devices, created)
		room.Devices = append(room.Devices, created.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	config.Info("已添加设备 %d (%s) 到房间 %d", created.ID, created.Name, created.RoomID)
	s.publish(EventDeviceAdded, created)
	return created.Clone(), nil
}

// UpdateDevice 部分更新设备。roomId 变化时同步两个房间的设备列表
func (s *HomeService) UpdateDevice(ctx context.Context, id int, patch models.DevicePatch) (*models.Device, error) {
	var updated *models.Device
	_, err := s.Mutate(ctx, func(data *models.HomeData) error {
		device := data.DeviceByID(id)
		if device == nil {
			return ErrDeviceNotFound
		}
		oldRoom := device.RoomID
		patch.Apply(device)
		if device.RoomID != oldRoom {
			if data.RoomByID(device.RoomID) == nil {
				return ErrRoomNotFound
			}
			data.MoveDevice(id, device.RoomID)
		}
		device.Normalize()
		if err := device.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		updated = device.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(EventDeviceUpdated, updated)
	return updated, nil
}

// DeleteDevice 删除设备并从房间中移除
func (s *HomeService) DeleteDevice(ctx context.Context, id int) error {
	_, err := s.Mutate(ctx, func(data *models.HomeData) error {
		if !data.RemoveDevice(id) {
			return ErrDeviceNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(EventDeviceDeleted, map[string]int{"id": id})
	return nil
}

// ResetData 丢弃所有修改，恢复初始数据
func (s *HomeService) ResetData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := models.InitialHomeData()
	if err := s.save(ctx, data); err != nil {
		return err
	}
	s.data = data
	config.Info("房屋数据已重置为初始数据")
	s.publish(EventHomeReset, data.Clone())
	return nil
}

// ReloadFromStorage 重新读取存储中的数据，解析失败时保留当前数据
func (s *HomeService) ReloadFromStorage(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(ctx, KeyHomeData)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			config.Warning("存储中没有房屋数据，保留当前数据")
			return nil
		}
		return fmt.Errorf("reading home data: %w", err)
	}

	data := &models.HomeData{}
	if err := json.Unmarshal(raw, data); err != nil {
		config.Warning("重新加载房屋数据失败，保留当前数据: %v", err)
		return nil
	}
	for _, d := range data.Devices {
		d.Normalize()
	}
	s.data = data
	s.publish(EventHomeReset, data.Clone())
	return nil
}
