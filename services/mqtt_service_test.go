package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

// fakeMessage 实现 mqtt.Message
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func TestTopicFor(t *testing.T) {
	device := &models.Device{ID: 7}
	cases := []struct {
		event Event
		want  string
	}{
		{NewEvent(EventDeviceUpdated, device), "home/devices/7/state"},
		{NewEvent(EventDeviceAdded, *device), "home/devices/7/state"},
		{NewEvent(EventDeviceDeleted, map[string]int{"id": 3}), "home/devices/3/state"},
		{NewEvent(EventAwayMode, nil), "home/away_mode"},
		{NewEvent(EventClimate, nil), "home/climate"},
		{NewEvent(EventTelemetry, nil), "home/telemetry"},
		{NewEvent(EventRoomAdded, nil), ""},
		{NewEvent(EventDeviceUpdated, "bad"), ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TopicFor("home", tc.event), string(tc.event.Type))
	}
}

func TestDeviceIDFromTopic(t *testing.T) {
	id, err := deviceIDFromTopic("home", "home/devices/12/set")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = deviceIDFromTopic("home", "other/devices/12/set")
	assert.Error(t, err)
	_, err = deviceIDFromTopic("home", "home/devices/abc/set")
	assert.Error(t, err)
	_, err = deviceIDFromTopic("home", "home/devices/12/state")
	assert.Error(t, err)
}

func TestMQTTDisabledWithoutBroker(t *testing.T) {
	cfg := testConfig()
	svc := NewMQTTService(cfg, nil)
	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.Connect())
	assert.NoError(t, svc.SubscribeToCommands())
	svc.HandleEvent(NewEvent(EventTelemetry, nil))
	assert.Equal(t, MQTTStatus{TopicPrefix: cfg.MQTTTopicPrefix}, svc.Status())
	svc.Disconnect()
}

func TestMQTTCommandsDriveDevices(t *testing.T) {
	ctx := context.Background()
	home, controls := newTestControls(t, time.Minute)
	cfg := testConfig()
	cfg.MQTTTopicPrefix = "home"
	svc := NewMQTTService(cfg, controls)

	send := func(topic string, cmd DeviceCommand) {
		payload, err := json.Marshal(cmd)
		require.NoError(t, err)
		svc.handleCommand(nil, &fakeMessage{topic: topic, payload: payload})
	}

	send("home/devices/1/set", DeviceCommand{ID: "c1", Action: CommandSetBrightness, Brightness: 40})
	light, err := home.GetDevice(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, *light.Brightness)

	send("home/devices/5/set", DeviceCommand{ID: "c2", Action: CommandTogglePower})
	outlet, err := home.GetDevice(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, outlet.Status)

	// 重复的命令 ID 只执行一次
	send("home/devices/5/set", DeviceCommand{ID: "c2", Action: CommandTogglePower})
	outlet, err = home.GetDevice(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, outlet.Status)

	svc.handleCommand(nil, &fakeMessage{topic: "home/devices/5/set", payload: []byte("{")})
	send("home/devices/x/set", DeviceCommand{Action: CommandTogglePower})

	_, err = svc.ExecuteCommand(ctx, 5, DeviceCommand{Action: "explode"})
	assert.ErrorIs(t, err, ErrValidation)
}
