package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
)

// InterfaceDeviceControlService 定义设备控制服务接口，所有登录用户可用
type InterfaceDeviceControlService interface {
	TogglePower(ctx context.Context, deviceID int) (*models.Device, error)
	SetBrightness(ctx context.Context, deviceID, brightness int) (*models.Device, error)
	SetColor(ctx context.Context, deviceID int, color string) (*models.Device, error)
	ToggleLock(ctx context.Context, deviceID int) (*models.Device, error)
	ToggleOpen(ctx context.Context, deviceID int) (*models.Device, error)
	TestSmokeAlarm(ctx context.Context, deviceID int) (*models.Device, error)
	ResetSmokeAlarm(ctx context.Context, deviceID int) (*models.Device, error)
	SetAutoLightControl(ctx context.Context, deviceID int, enabled bool) (*models.Device, error)
	SimulateMotion(ctx context.Context, deviceID int) (*models.Device, error)
	ClearMotion(ctx context.Context, deviceID int) (*models.Device, error)
	Stop()
}

// DeviceControlService 处理开关、亮度、门锁、烟雾报警和人体感应等控制
type DeviceControlService struct {
	home        InterfaceHomeService
	climate     InterfaceClimateService
	events      InterfaceEventPublisher
	motionDelay time.Duration

	mu     sync.Mutex
	timers map[int]*time.Timer
}

// NewDeviceControlService 创建设备控制服务。motionDelay 为模拟移动后自动复位的延迟
func NewDeviceControlService(home InterfaceHomeService, climate InterfaceClimateService, events InterfaceEventPublisher, motionDelay time.Duration) *DeviceControlService {
	if motionDelay <= 0 {
		motionDelay = 30 * time.Second
	}
	return &DeviceControlService{
		home:        home,
		climate:     climate,
		events:      events,
		motionDelay: motionDelay,
		timers:      make(map[int]*time.Timer),
	}
}

// mutateDevice 修改单个设备。types 非空时设备类型必须在其中
func (s *DeviceControlService) mutateDevice(ctx context.Context, deviceID int, types []models.DeviceType, fn func(data *models.HomeData, d *models.Device) error) (*models.Device, error) {
	var updated *models.Device
	_, err := s.home.Mutate(ctx, func(data *models.HomeData) error {
		d := data.DeviceByID(deviceID)
		if d == nil {
			return ErrDeviceNotFound
		}
		if len(types) > 0 && !typeIn(d.Type, types) {
			return fmt.Errorf("%w: %s", ErrDeviceTypeMismatch, d.Type)
		}
		if err := fn(data, d); err != nil {
			return err
		}
		updated = d.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.Publish(NewEvent(EventDeviceUpdated, updated))
	}
	return updated, nil
}

func typeIn(t models.DeviceType, types []models.DeviceType) bool {
	for _, candidate := range types {
		if t == candidate {
			return true
		}
	}
	return false
}

// reevaluate 窗户、门或电源变化后重新执行温控
func (s *DeviceControlService) reevaluate(ctx context.Context) {
	if s.climate == nil {
		return
	}
	if _, err := s.climate.Evaluate(ctx); err != nil {
		config.Warning("设备变化后执行温控失败: %v", err)
	}
}

// applyMotionRule 自动灯光开启时，房间内的灯跟随移动状态
func applyMotionRule(data *models.HomeData, sensor *models.Device) {
	if !sensor.AutoLight() {
		return
	}
	want := models.StatusOffline
	if sensor.Motion() {
		want = models.StatusOnline
	}
	for _, light := range data.DevicesInRoom(sensor.RoomID) {
		if light.Type == models.DeviceTypeLight && light.Status != want {
			light.Touch(want)
		}
	}
}

// 1 TogglePower 在线与离线之间切换
func (s *DeviceControlService) TogglePower(ctx context.Context, deviceID int) (*models.Device, error) {
	d, err := s.mutateDevice(ctx, deviceID, nil, func(_ *models.HomeData, d *models.Device) error {
		d.Touch(d.Status.Toggle())
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.reevaluate(ctx)
	return d, nil
}

// 2 SetBrightness 设置灯的亮度 (0..100)
func (s *DeviceControlService) SetBrightness(ctx context.Context, deviceID, brightness int) (*models.Device, error) {
	if brightness < 0 || brightness > 100 {
		return nil, fmt.Errorf("%w: brightness must be between 0 and 100", ErrValidation)
	}
	return s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeLight}, func(_ *models.HomeData, d *models.Device) error {
		d.Brightness = models.Int(brightness)
		d.TouchOnly()
		return nil
	})
}

// 3 SetColor 设置灯的颜色 (#RRGGBB)
func (s *DeviceControlService) SetColor(ctx context.Context, deviceID int, color string) (*models.Device, error) {
	if !models.ValidColor(color) {
		return nil, fmt.Errorf("%w: color must be a #RRGGBB hex value", ErrValidation)
	}
	return s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeLight}, func(_ *models.HomeData, d *models.Device) error {
		d.Color = models.String(color)
		d.TouchOnly()
		return nil
	})
}

// 4 ToggleLock 锁门或开锁，门打开时不能上锁
func (s *DeviceControlService) ToggleLock(ctx context.Context, deviceID int) (*models.Device, error) {
	return s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeDoor}, func(_ *models.HomeData, d *models.Device) error {
		if !d.Locked() && d.Open() {
			return ErrDoorOpen
		}
		d.IsLocked = models.Bool(!d.Locked())
		d.TouchOnly()
		return nil
	})
}

// 5 ToggleOpen 打开或关闭门窗，开门不会解锁
func (s *DeviceControlService) ToggleOpen(ctx context.Context, deviceID int) (*models.Device, error) {
	d, err := s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeDoor, models.DeviceTypeWindow}, func(_ *models.HomeData, d *models.Device) error {
		d.IsOpen = models.Bool(!d.Open())
		d.TouchOnly()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.reevaluate(ctx)
	return d, nil
}

// 6 TestSmokeAlarm 模拟检测到烟雾并触发报警
func (s *DeviceControlService) TestSmokeAlarm(ctx context.Context, deviceID int) (*models.Device, error) {
	d, err := s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeSmokeDetector}, func(_ *models.HomeData, d *models.Device) error {
		d.SmokeDetected = models.Bool(true)
		d.AlarmActive = models.Bool(true)
		d.TouchOnly()
		return nil
	})
	if err == nil {
		config.Warning("烟雾报警测试: 设备 %d (%s)", d.ID, d.Name)
	}
	return d, err
}

// 7 ResetSmokeAlarm 清除烟雾和报警状态
func (s *DeviceControlService) ResetSmokeAlarm(ctx context.Context, deviceID int) (*models.Device, error) {
	return s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeSmokeDetector}, func(_ *models.HomeData, d *models.Device) error {
		d.SmokeDetected = models.Bool(false)
		d.AlarmActive = models.Bool(false)
		d.TouchOnly()
		return nil
	})
}

// 8 SetAutoLightControl 开关自动灯光，开启后房间内的灯立即跟随当前移动状态
func (s *DeviceControlService) SetAutoLightControl(ctx context.Context, deviceID int, enabled bool) (*models.Device, error) {
	return s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeMotionSensor}, func(data *models.HomeData, d *models.Device) error {
		d.AutoLightControl = models.Bool(enabled)
		d.TouchOnly()
		applyMotionRule(data, d)
		return nil
	})
}

// 9 SimulateMotion 模拟检测到移动，延迟后自动复位
func (s *DeviceControlService) SimulateMotion(ctx context.Context, deviceID int) (*models.Device, error) {
	d, err := s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeMotionSensor}, func(data *models.HomeData, d *models.Device) error {
		d.MotionDetected = models.Bool(true)
		d.LastMotionDetected = models.String(time.Now().Format("15:04:05"))
		d.TouchOnly()
		applyMotionRule(data, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if t, ok := s.timers[deviceID]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(s.motionDelay, func() { s.expireMotion(deviceID, timer) })
	s.timers[deviceID] = timer
	s.mu.Unlock()
	return d, nil
}

// expireMotion 自动复位回调。已被新的 SimulateMotion 替换的计时器不做任何处理
func (s *DeviceControlService) expireMotion(deviceID int, timer *time.Timer) {
	s.mu.Lock()
	if s.timers[deviceID] != timer {
		s.mu.Unlock()
		return
	}
	delete(s.timers, deviceID)
	s.mu.Unlock()

	if _, err := s.ClearMotion(context.Background(), deviceID); err != nil {
		config.Warning("人体感应器 %d 自动复位失败: %v", deviceID, err)
	}
}

// 10 ClearMotion 清除移动状态
func (s *DeviceControlService) ClearMotion(ctx context.Context, deviceID int) (*models.Device, error) {
	return s.mutateDevice(ctx, deviceID, []models.DeviceType{models.DeviceTypeMotionSensor}, func(data *models.HomeData, d *models.Device) error {
		d.MotionDetected = models.Bool(false)
		applyMotionRule(data, d)
		return nil
	})
}

// Stop 取消所有未触发的自动复位
func (s *DeviceControlService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
