package services

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
)

// InterfaceMQTTService 定义 MQTT 桥接服务接口
type InterfaceMQTTService interface {
	Enabled() bool
	Connect() error
	Disconnect()
	HandleEvent(e Event)
	SubscribeToCommands() error
	Status() MQTTStatus
	ExecuteCommand(ctx context.Context, deviceID int, cmd DeviceCommand) (*models.Device, error)
}

// MQTTStatus 桥接状态
type MQTTStatus struct {
	Enabled     bool   `json:"enabled"`
	Connected   bool   `json:"connected"`
	Broker      string `json:"broker,omitempty"`
	TopicPrefix string `json:"topicPrefix"`
}

// 设备命令动作
const (
	CommandTogglePower   = "toggle_power"
	CommandSetBrightness = "set_brightness"
	CommandSetColor      = "set_color"
	CommandToggleLock    = "toggle_lock"
	CommandToggleOpen    = "toggle_open"
	CommandTestAlarm     = "test_alarm"
	CommandResetAlarm    = "reset_alarm"
)

// DeviceCommand 通过 <prefix>/devices/<id>/set 下发的控制命令
type DeviceCommand struct {
	ID         string `json:"id"`
	Action     string `json:"action"`
	Brightness int    `json:"brightness,omitempty"`
	Color      string `json:"color,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// MQTTService 把事件发布到 MQTT，并接收设备控制命令
type MQTTService struct {
	Config   *config.Config
	Client   mqtt.Client
	controls InterfaceDeviceControlService

	connectedMutex sync.RWMutex
	isConnected    bool
	publishMutex   sync.Mutex
	// 已处理命令，用于去重
	processed *sync.Map
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewMQTTService 创建 MQTT 服务。未配置 broker 时返回的服务不做任何事
func NewMQTTService(cfg *config.Config, controls InterfaceDeviceControlService) *MQTTService {
	s := &MQTTService{
		Config:    cfg,
		controls:  controls,
		processed: &sync.Map{},
		stop:      make(chan struct{}),
	}
	if cfg.MQTTBrokerURL == "" {
		config.Info("[MQTT] 未配置 broker，MQTT 发布已禁用")
		return s
	}
	s.setupClient()
	go s.startProcessedCleanupTask()
	return s
}

// Enabled 是否配置了 broker
func (s *MQTTService) Enabled() bool {
	return s.Client != nil
}

// Status 当前连接状态
func (s *MQTTService) Status() MQTTStatus {
	status := MQTTStatus{Enabled: s.Enabled(), TopicPrefix: s.Config.MQTTTopicPrefix}
	if status.Enabled {
		status.Connected = s.connected()
		status.Broker = s.Config.MQTTBrokerURL
	}
	return status
}

func (s *MQTTService) setupClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// 多实例时避免客户端 ID 冲突
	opts.SetClientID(fmt.Sprintf("%s-%s", s.Config.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetCleanSession(true)
	opts.SetOrderMatters(true)

	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}
	if strings.HasPrefix(s.Config.MQTTBrokerURL, "ssl://") || strings.HasPrefix(s.Config.MQTTBrokerURL, "tls://") {
		config.Info("[MQTT] 使用TLS连接")
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		config.Warning("[MQTT] 连接丢失: %v", err)
		s.setConnected(false)
	})
	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		config.Info("[MQTT] 成功连接到 %s", s.Config.MQTTBrokerURL)
		s.setConnected(true)
		if err := s.SubscribeToCommands(); err != nil {
			config.Error("[MQTT] 订阅命令主题失败: %v", err)
		}
	})
	opts.SetReconnectingHandler(func(_ mqtt.Client, _ *mqtt.ClientOptions) {
		config.Info("[MQTT] 正在尝试重连...")
	})

	s.Client = mqtt.NewClient(opts)
}

func (s *MQTTService) setConnected(v bool) {
	s.connectedMutex.Lock()
	s.isConnected = v
	s.connectedMutex.Unlock()
}

func (s *MQTTService) connected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.isConnected && s.Client.IsConnected()
}

// Connect 连接 broker，失败时指数退避重试
func (s *MQTTService) Connect() error {
	if !s.Enabled() || s.connected() {
		return nil
	}
	config.Info("[MQTT] 正在连接到 %s...", s.Config.MQTTBrokerURL)

	const maxRetries = 5
	var err error
	for i := 0; i < maxRetries; i++ {
		token := s.Client.Connect()
		if token.WaitTimeout(5*time.Second) && token.Error() == nil {
			s.setConnected(true)
			return nil
		}
		err = token.Error()
		backoff := time.Duration(1<<uint(i)) * time.Second
		config.Warning("[MQTT] 连接尝试 %d/%d 失败: %v, 将在 %v 后重试", i+1, maxRetries, err, backoff)
		select {
		case <-time.After(backoff):
		case <-s.stop:
			return fmt.Errorf("[MQTT] 连接已取消")
		}
	}
	return fmt.Errorf("[MQTT] 连接失败，已尝试 %d 次: %v", maxRetries, err)
}

// Disconnect 断开连接并停止后台任务
func (s *MQTTService) Disconnect() {
	s.stopOnce.Do(func() { close(s.stop) })
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
	s.setConnected(false)
}

// TopicFor 返回事件对应的发布主题，不需要发布的事件返回空字符串
func TopicFor(prefix string, e Event) string {
	switch e.Type {
	case EventDeviceAdded, EventDeviceUpdated, EventDeviceDeleted:
		id, ok := eventDeviceID(e.Payload)
		if !ok {
			return ""
		}
		return fmt.Sprintf("%s/devices/%d/state", prefix, id)
	case EventAwayMode:
		return prefix + "/away_mode"
	case EventClimate:
		return prefix + "/climate"
	case EventTelemetry:
		return prefix + "/telemetry"
	}
	return ""
}

func eventDeviceID(payload interface{}) (int, bool) {
	switch p := payload.(type) {
	case *models.Device:
		if p == nil {
			return 0, false
		}
		return p.ID, true
	case models.Device:
		return p.ID, true
	case map[string]int:
		id, ok := p["id"]
		return id, ok
	}
	return 0, false
}

// HandleEvent 作为 EventHub 的 sink，异步发布事件
func (s *MQTTService) HandleEvent(e Event) {
	if !s.Enabled() {
		return
	}
	topic := TopicFor(s.Config.MQTTTopicPrefix, e)
	if topic == "" {
		return
	}
	go func() {
		if err := s.publishMessage(topic, e); err != nil {
			config.Warning("[MQTT] 发布事件 %s 失败: %v", e.Type, err)
		}
	}()
}

func (s *MQTTService) publishMessage(topic string, payload interface{}) error {
	s.publishMutex.Lock()
	defer s.publishMutex.Unlock()

	if !s.connected() {
		if err := s.Connect(); err != nil {
			return fmt.Errorf("MQTT客户端未连接: %v", err)
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %v", err)
	}

	token := s.Client.Publish(topic, 1, false, data)
	if !token.WaitTimeout(3 * time.Second) {
		return fmt.Errorf("发布消息超时")
	}
	if token.Error() != nil {
		return fmt.Errorf("发布消息失败: %v", token.Error())
	}
	return nil
}

// SubscribeToCommands 订阅 <prefix>/devices/+/set
func (s *MQTTService) SubscribeToCommands() error {
	if !s.Enabled() || s.controls == nil {
		return nil
	}
	topic := s.Config.MQTTTopicPrefix + "/devices/+/set"
	if token := s.Client.Subscribe(topic, 1, s.handleCommand); token.Wait() && token.Error() != nil {
		return fmt.Errorf("订阅主题失败 [%s]: %v", topic, token.Error())
	}
	config.Info("[MQTT] 已订阅主题: %s", topic)
	return nil
}

// deviceIDFromTopic 解析 <prefix>/devices/<id>/set 中的设备 ID
func deviceIDFromTopic(prefix, topic string) (int, error) {
	rest := strings.TrimPrefix(topic, prefix+"/devices/")
	if rest == topic || !strings.HasSuffix(rest, "/set") {
		return 0, fmt.Errorf("无法识别的主题: %s", topic)
	}
	return strconv.Atoi(strings.TrimSuffix(rest, "/set"))
}

func (s *MQTTService) handleCommand(_ mqtt.Client, msg mqtt.Message) {
	defer func() {
		if r := recover(); r != nil {
			config.Error("[MQTT] 处理设备命令发生panic: %v", r)
		}
	}()

	deviceID, err := deviceIDFromTopic(s.Config.MQTTTopicPrefix, msg.Topic())
	if err != nil {
		config.Warning("[MQTT] %v", err)
		return
	}
	var cmd DeviceCommand
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		config.Warning("[MQTT] 解析设备命令失败: %v", err)
		return
	}
	if cmd.ID != "" {
		if _, loaded := s.processed.LoadOrStore(cmd.ID, time.Now().Unix()); loaded {
			config.Info("[MQTT] 跳过重复的设备命令: %s", cmd.ID)
			return
		}
	}
	if _, err := s.ExecuteCommand(context.Background(), deviceID, cmd); err != nil {
		config.Warning("[MQTT] 执行设备 %d 命令 %s 失败: %v", deviceID, cmd.Action, err)
	}
}

// ExecuteCommand 把命令交给设备控制服务执行
func (s *MQTTService) ExecuteCommand(ctx context.Context, deviceID int, cmd DeviceCommand) (*models.Device, error) {
	switch cmd.Action {
	case CommandTogglePower:
		return s.controls.TogglePower(ctx, deviceID)
	case CommandSetBrightness:
		return s.controls.SetBrightness(ctx, deviceID, cmd.Brightness)
	case CommandSetColor:
		return s.controls.SetColor(ctx, deviceID, cmd.Color)
	case CommandToggleLock:
		return s.controls.ToggleLock(ctx, deviceID)
	case CommandToggleOpen:
		return s.controls.ToggleOpen(ctx, deviceID)
	case CommandTestAlarm:
		return s.controls.TestSmokeAlarm(ctx, deviceID)
	case CommandResetAlarm:
		return s.controls.ResetSmokeAlarm(ctx, deviceID)
	}
	return nil, fmt.Errorf("%w: unknown action %q", ErrValidation, cmd.Action)
}

// startProcessedCleanupTask 定期清理五分钟前的命令记录
func (s *MQTTService) startProcessedCleanupTask() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now().Unix()
			s.processed.Range(func(key, value interface{}) bool {
				if ts, ok := value.(int64); ok && now-ts > 300 {
					s.processed.Delete(key)
				}
				return true
			})
		}
	}
}
