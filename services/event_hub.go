package services

import (
	"sync"
	"time"

	"smarthome-http-service/config"
)

// EventType 事件类型
type EventType string

const (
	EventSnapshot      EventType = "snapshot"
	EventDeviceAdded   EventType = "device.added"
	EventDeviceUpdated EventType = "device.updated"
	EventDeviceDeleted EventType = "device.deleted"
	EventRoomAdded     EventType = "room.added"
	EventRoomUpdated   EventType = "room.updated"
	EventRoomDeleted   EventType = "room.deleted"
	EventHomeReset     EventType = "home.reset"
	EventClimate       EventType = "climate.evaluated"
	EventAwayMode      EventType = "away_mode.changed"
	EventTelemetry     EventType = "telemetry"
)

// Event 推送给 websocket 客户端和 MQTT 的事件
type Event struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// NewEvent 创建带时间戳的事件
func NewEvent(t EventType, payload interface{}) Event {
	return Event{Type: t, Timestamp: time.Now(), Payload: payload}
}

// InterfaceEventPublisher 事件发布接口
type InterfaceEventPublisher interface {
	Publish(e Event)
}

// EventSink 同步接收所有事件，例如 MQTT 发布
type EventSink func(e Event)

// EventHub 将事件分发给订阅者
type EventHub struct {
	mu          sync.RWMutex
	subscribers map[int]chan Event
	sinks       []EventSink
	nextID      int
}

// NewEventHub 创建事件中心
func NewEventHub() *EventHub {
	return &EventHub{subscribers: make(map[int]chan Event)}
}

// Subscribe 订阅事件，返回订阅 ID 和事件通道
func (h *EventHub) Subscribe(buffer int) (int, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	ch := make(chan Event, buffer)
	h.subscribers[h.nextID] = ch
	return h.nextID, ch
}

// Unsubscribe 取消订阅并关闭通道
func (h *EventHub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// AddSink 注册同步接收者
func (h *EventHub) AddSink(sink EventSink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks = append(h.sinks, sink)
}

// SubscriberCount 当前订阅者数量
func (h *EventHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Publish 发布事件。订阅者缓冲区已满时丢弃该事件
func (h *EventHub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- e:
		default:
			config.Warning("订阅者 %d 的缓冲区已满，丢弃事件 %s", id, e.Type)
		}
	}
	for _, sink := range h.sinks {
		sink(e)
	}
}
