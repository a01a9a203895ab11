package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func newTestControls(t *testing.T, delay time.Duration) (*HomeService, *DeviceControlService) {
	t.Helper()
	home := NewHomeService(NewMemoryStore(), nil)
	controls := NewDeviceControlService(home, NewClimateService(home, nil), nil, delay)
	t.Cleanup(controls.Stop)
	return home, controls
}

func TestTogglePower(t *testing.T) {
	ctx := context.Background()
	_, controls := newTestControls(t, time.Minute)

	d, err := controls.TogglePower(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, d.Status)
	assert.Equal(t, models.LastActiveNow, d.LastActive)

	d, err = controls.TogglePower(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, d.Status)

	_, err = controls.TogglePower(ctx, 500)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestLightControls(t *testing.T) {
	ctx := context.Background()
	_, controls := newTestControls(t, time.Minute)

	d, err := controls.SetBrightness(ctx, 1, 35)
	require.NoError(t, err)
	assert.Equal(t, 35, *d.Brightness)

	_, err = controls.SetBrightness(ctx, 1, 101)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = controls.SetBrightness(ctx, 5, 50)
	assert.ErrorIs(t, err, ErrDeviceTypeMismatch)

	d, err = controls.SetColor(ctx, 1, "#00ff7F")
	require.NoError(t, err)
	assert.Equal(t, "#00ff7F", *d.Color)

	_, err = controls.SetColor(ctx, 1, "red")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDoorCannotBeLockedWhileOpen(t *testing.T) {
	ctx := context.Background()
	_, controls := newTestControls(t, time.Minute)

	d, err := controls.ToggleOpen(ctx, 13)
	require.NoError(t, err)
	assert.True(t, d.Open())

	_, err = controls.ToggleLock(ctx, 13)
	assert.ErrorIs(t, err, ErrDoorOpen)

	_, err = controls.ToggleOpen(ctx, 13)
	require.NoError(t, err)
	d, err = controls.ToggleLock(ctx, 13)
	require.NoError(t, err)
	assert.True(t, d.Locked())

	// 开门不会解锁，已上锁的门可以随时解锁
	d, err = controls.ToggleOpen(ctx, 13)
	require.NoError(t, err)
	assert.True(t, d.Locked())
	d, err = controls.ToggleLock(ctx, 13)
	require.NoError(t, err)
	assert.False(t, d.Locked())

	_, err = controls.ToggleLock(ctx, 4)
	assert.ErrorIs(t, err, ErrDeviceTypeMismatch)
}

func TestOpeningWindowReevaluatesClimate(t *testing.T) {
	ctx := context.Background()
	home, controls := newTestControls(t, time.Minute)

	_, err := controls.climate.SetTemperatureRange(ctx, 1, models.TemperatureRange{Min: 18, Max: 21})
	require.NoError(t, err)
	ac, err := home.GetDevice(ctx, 3)
	require.NoError(t, err)
	require.True(t, ac.IsOnline())

	_, err = controls.ToggleOpen(ctx, 4)
	require.NoError(t, err)

	ac, err = home.GetDevice(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ac.IsOnline())
}

func TestSmokeAlarm(t *testing.T) {
	ctx := context.Background()
	_, controls := newTestControls(t, time.Minute)

	d, err := controls.TestSmokeAlarm(ctx, 9)
	require.NoError(t, err)
	assert.True(t, d.Smoke())
	assert.True(t, d.Alarm())

	d, err = controls.ResetSmokeAlarm(ctx, 9)
	require.NoError(t, err)
	assert.False(t, d.Smoke())
	assert.False(t, d.Alarm())

	_, err = controls.TestSmokeAlarm(ctx, 1)
	assert.ErrorIs(t, err, ErrDeviceTypeMismatch)
}

func TestMotionDrivesRoomLights(t *testing.T) {
	ctx := context.Background()
	home, controls := newTestControls(t, time.Minute)

	d, err := controls.SimulateMotion(ctx, 14)
	require.NoError(t, err)
	assert.True(t, d.Motion())
	assert.NotNil(t, d.LastMotionDetected)

	light, err := home.GetDevice(ctx, 15)
	require.NoError(t, err)
	assert.True(t, light.IsOnline())

	_, err = controls.ClearMotion(ctx, 14)
	require.NoError(t, err)
	light, err = home.GetDevice(ctx, 15)
	require.NoError(t, err)
	assert.False(t, light.IsOnline())

	// 关闭自动灯光后，灯不再跟随
	_, err = controls.SetAutoLightControl(ctx, 14, false)
	require.NoError(t, err)
	_, err = controls.SimulateMotion(ctx, 14)
	require.NoError(t, err)
	light, err = home.GetDevice(ctx, 15)
	require.NoError(t, err)
	assert.False(t, light.IsOnline())
}

func TestMotionResetsAfterDelay(t *testing.T) {
	ctx := context.Background()
	home, controls := newTestControls(t, 20*time.Millisecond)

	_, err := controls.SimulateMotion(ctx, 14)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		sensor, err := home.GetDevice(ctx, 14)
		return err == nil && !sensor.Motion()
	}, time.Second, 10*time.Millisecond)

	light, err := home.GetDevice(ctx, 15)
	require.NoError(t, err)
	assert.False(t, light.IsOnline())
}

func TestStaleMotionTimerKeepsNewMotion(t *testing.T) {
	ctx := context.Background()
	home, controls := newTestControls(t, time.Minute)

	_, err := controls.SimulateMotion(ctx, 14)
	require.NoError(t, err)
	controls.mu.Lock()
	first := controls.timers[14]
	controls.mu.Unlock()

	_, err = controls.SimulateMotion(ctx, 14)
	require.NoError(t, err)
	controls.mu.Lock()
	second := controls.timers[14]
	controls.mu.Unlock()
	require.NotSame(t, first, second)

	// 第一次的计时器在被替换前已经触发
	controls.expireMotion(14, first)

	sensor, err := home.GetDevice(ctx, 14)
	require.NoError(t, err)
	assert.True(t, sensor.Motion())
	controls.mu.Lock()
	assert.Same(t, second, controls.timers[14])
	controls.mu.Unlock()

	controls.expireMotion(14, second)
	sensor, err = home.GetDevice(ctx, 14)
	require.NoError(t, err)
	assert.False(t, sensor.Motion())
	controls.mu.Lock()
	assert.Empty(t, controls.timers)
	controls.mu.Unlock()
}
