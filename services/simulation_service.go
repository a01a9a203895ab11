package services

import (
	"context"
	"sync"
	"time"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
)

// Telemetry 定时推送的遥测数据
type Telemetry struct {
	Energy  *models.RealtimeEnergyData `json:"energy"`
	Weather *models.Weather            `json:"weather"`
}

// InterfaceSimulationService 定义模拟调度服务接口
type InterfaceSimulationService interface {
	Start(ctx context.Context)
	Stop()
	Tick(ctx context.Context) *Telemetry
}

// SimulationService 按固定间隔刷新能源数据、执行温控并推送遥测事件
type SimulationService struct {
	energy   InterfaceEnergyService
	weather  InterfaceWeatherService
	climate  InterfaceClimateService
	events   InterfaceEventPublisher
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSimulationService 创建模拟调度服务
func NewSimulationService(energy InterfaceEnergyService, weather InterfaceWeatherService, climate InterfaceClimateService, events InterfaceEventPublisher, interval time.Duration) *SimulationService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &SimulationService{
		energy:   energy,
		weather:  weather,
		climate:  climate,
		events:   events,
		interval: interval,
	}
}

// Start 启动后台定时任务，重复调用无效
func (s *SimulationService) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		config.Info("模拟任务已启动，间隔 %v", s.interval)
		for {
			select {
			case <-ctx.Done():
				config.Info("模拟任务已停止")
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}(s.done)
}

// Stop 停止后台任务并等待退出
func (s *SimulationService) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Tick 执行一次模拟：刷新实时能源、重新执行温控、发布遥测事件
func (s *SimulationService) Tick(ctx context.Context) *Telemetry {
	telemetry := &Telemetry{}
	if s.energy != nil {
		telemetry.Energy = s.energy.Realtime()
	}
	if s.weather != nil {
		telemetry.Weather = s.weather.Current()
	}
	if s.climate != nil {
		if _, err := s.climate.Evaluate(ctx); err != nil {
			config.Warning("定时温控执行失败: %v", err)
		}
	}
	if s.events != nil {
		s.events.Publish(NewEvent(EventTelemetry, telemetry))
	}
	return telemetry
}
