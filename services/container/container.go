package container

import (
	"context"
	"sync"

	"smarthome-http-service/config"
	"smarthome-http-service/services"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	config *config.Config
	store  services.InterfaceStoreService
	events *services.EventHub

	// 基础服务
	jwtService  *services.JWTService
	userService *services.UserService

	// 家居数据与自动化
	homeService          *services.HomeService
	climateService       services.InterfaceClimateService
	deviceControlService *services.DeviceControlService
	awayModeService      services.InterfaceAwayModeService
	amortizationService  services.InterfaceAmortizationService
	preferencesService   services.InterfacePreferencesService

	// 模拟数据
	energyService     *services.EnergyService
	weatherService    *services.WeatherService
	simulationService *services.SimulationService

	// MQTT 桥接
	mqttService *services.MQTTService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(cfg *config.Config, store services.InterfaceStoreService) *ServiceContainer {
	if cfg == nil {
		panic("配置为空")
	}
	if store == nil {
		panic("存储为空")
	}

	container := &ServiceContainer{
		config: cfg,
		store:  store,
		events: services.NewEventHub(),
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)
	c.userService = services.NewUserService(c.store, c.jwtService, c.config)

	c.homeService = services.NewHomeService(c.store, c.events)
	c.climateService = services.NewClimateService(c.homeService, c.events)
	c.deviceControlService = services.NewDeviceControlService(c.homeService, c.climateService, c.events, c.config.MotionResetDelay)
	c.awayModeService = services.NewAwayModeService(c.store, c.homeService, c.events)
	c.amortizationService = services.NewAmortizationService(c.store, c.homeService)
	c.preferencesService = services.NewPreferencesService(c.store)

	c.energyService = services.NewEnergyService(c.homeService)
	c.weatherService = services.NewWeatherService()
	c.simulationService = services.NewSimulationService(c.energyService, c.weatherService, c.climateService, c.events, c.config.SimulationInterval)

	c.mqttService = services.NewMQTTService(c.config, c.deviceControlService)
	c.events.AddSink(c.mqttService.HandleEvent)
}

// Start 写入初始账户，连接 MQTT 并启动模拟任务
func (c *ServiceContainer) Start(ctx context.Context) error {
	if err := c.userService.EnsureSeeded(ctx); err != nil {
		return err
	}
	if _, err := c.homeService.GetData(ctx); err != nil {
		return err
	}
	if c.mqttService.Enabled() {
		go func() {
			if err := c.mqttService.Connect(); err != nil {
				config.Error("MQTT服务连接失败: %v", err)
			}
		}()
	}
	c.simulationService.Start(ctx)
	return nil
}

// Close 停止后台任务并关闭存储
func (c *ServiceContainer) Close() error {
	c.simulationService.Stop()
	c.deviceControlService.Stop()
	c.mqttService.Disconnect()
	return c.store.Close()
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "store":
		return c.store
	case "events":
		return c.events
	case "jwt":
		return c.jwtService
	case "user":
		return c.userService
	case "home":
		return c.homeService
	case "climate":
		return c.climateService
	case "device_control":
		return c.deviceControlService
	case "away_mode":
		return c.awayModeService
	case "amortization":
		return c.amortizationService
	case "preferences":
		return c.preferencesService
	case "energy":
		return c.energyService
	case "weather":
		return c.weatherService
	case "simulation":
		return c.simulationService
	case "mqtt":
		return c.mqttService
	default:
		return nil
	}
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetEventHub 获取事件中心
func (c *ServiceContainer) GetEventHub() *services.EventHub {
	return c.events
}

// GetUserService 获取用户服务
func (c *ServiceContainer) GetUserService() services.InterfaceUserService {
	return c.userService
}

// GetHomeService 获取家居数据服务
func (c *ServiceContainer) GetHomeService() services.InterfaceHomeService {
	return c.homeService
}

// GetClimateService 获取温控服务
func (c *ServiceContainer) GetClimateService() services.InterfaceClimateService {
	return c.climateService
}

// GetDeviceControlService 获取设备控制服务
func (c *ServiceContainer) GetDeviceControlService() services.InterfaceDeviceControlService {
	return c.deviceControlService
}

// GetAwayModeService 获取离家模式服务
func (c *ServiceContainer) GetAwayModeService() services.InterfaceAwayModeService {
	return c.awayModeService
}

// GetAmortizationService 获取摊销服务
func (c *ServiceContainer) GetAmortizationService() services.InterfaceAmortizationService {
	return c.amortizationService
}

// GetPreferencesService 获取偏好服务
func (c *ServiceContainer) GetPreferencesService() services.InterfacePreferencesService {
	return c.preferencesService
}

// GetEnergyService 获取能源服务
func (c *ServiceContainer) GetEnergyService() services.InterfaceEnergyService {
	return c.energyService
}

// GetMQTTService 获取 MQTT 桥接服务
func (c *ServiceContainer) GetMQTTService() services.InterfaceMQTTService {
	return c.mqttService
}

// GetWeatherService 获取天气服务
func (c *ServiceContainer) GetWeatherService() services.InterfaceWeatherService {
	return c.weatherService
}
