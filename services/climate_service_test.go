package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func TestExtractTemperature(t *testing.T) {
	cases := []struct {
		name   string
		device models.Device
		want   float64
	}{
		{"serial", models.Device{SerialNumber: "TH-21.7-XYZ", FirmwareVersion: "1.8.0"}, 21.7},
		{"firmware", models.Device{SerialNumber: "BT-TH-002", FirmwareVersion: "1.8.0"}, 1.8},
		{"ip", models.Device{IPAddress: "192.168.1.48"}, 20.8},
		{"default", models.Device{}, DefaultThermostatReading},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ExtractTemperature(&tc.device), 1e-9)
		})
	}
}

func newTestClimate(t *testing.T) (*HomeService, InterfaceClimateService) {
	t.Helper()
	home := NewHomeService(NewMemoryStore(), nil)
	return home, NewClimateService(home, nil)
}

func TestClimateEvaluateHeatsColdRoom(t *testing.T) {
	ctx := context.Background()
	home, climate := newTestClimate(t)

	report, err := climate.Evaluate(ctx)
	require.NoError(t, err)
	require.Len(t, report.Changes, 1)
	assert.Equal(t, 8, report.Changes[0].DeviceID)
	assert.Equal(t, models.StatusOnline, report.Changes[0].To)

	heater, err := home.GetDevice(ctx, 8)
	require.NoError(t, err)
	assert.True(t, heater.IsOnline())
	assert.Equal(t, models.LastActiveNow, heater.LastActive)
	assert.False(t, heater.Overridden())

	// 第二次评估没有变化
	report, err = climate.Evaluate(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Changes)
}

func TestClimateEvaluateCoolsHotRoom(t *testing.T) {
	ctx := context.Background()
	home, climate := newTestClimate(t)

	_, err := climate.SetTemperatureRange(ctx, 1, models.TemperatureRange{Min: 18, Max: 21})
	require.NoError(t, err)

	ac, err := home.GetDevice(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ac.IsOnline())

	room, err := home.GetRoom(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TemperatureRange{Min: 18, Max: 21}, *room.TemperatureRange)

	_, err = climate.SetTemperatureRange(ctx, 1, models.TemperatureRange{Min: 24, Max: 21})
	assert.ErrorIs(t, err, ErrInvalidTemperatureRange)
	_, err = climate.SetTemperatureRange(ctx, 77, models.TemperatureRange{Min: 18, Max: 21})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestClimateOpenWindowTurnsEverythingOff(t *testing.T) {
	ctx := context.Background()
	home, climate := newTestClimate(t)

	_, err := climate.SetTemperatureRange(ctx, 1, models.TemperatureRange{Min: 18, Max: 21})
	require.NoError(t, err)

	open := true
	_, err = home.UpdateDevice(ctx, 4, models.DevicePatch{IsOpen: &open})
	require.NoError(t, err)

	report, err := climate.Evaluate(ctx)
	require.NoError(t, err)
	require.Len(t, report.Changes, 1)
	assert.Equal(t, "window open", report.Changes[0].Reason)

	ac, err := home.GetDevice(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ac.IsOnline())
}

func TestClimateNeverRunsBothInOneRoom(t *testing.T) {
	ctx := context.Background()
	home, climate := newTestClimate(t)

	heater, err := home.AddDevice(ctx, models.Device{Name: "Floor Heating", Type: models.DeviceTypeHeating, RoomID: 1, Status: models.StatusOnline})
	require.NoError(t, err)
	_, err = climate.SetTemperatureRange(ctx, 1, models.TemperatureRange{Min: 18, Max: 21})
	require.NoError(t, err)

	data, err := home.GetData(ctx)
	require.NoError(t, err)
	assert.True(t, data.DeviceByID(3).IsOnline())
	assert.False(t, data.DeviceByID(heater.ID).IsOnline())
}

func TestClimateManualOverrideIsRespected(t *testing.T) {
	ctx := context.Background()
	home, climate := newTestClimate(t)

	device, err := climate.ManualToggle(ctx, 8, models.StatusOffline)
	require.NoError(t, err)
	assert.True(t, device.Overridden())

	report, err := climate.Evaluate(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Changes)
	assert.Equal(t, []int{8}, report.Skipped)

	report, err = climate.ResetToAuto(ctx, 8)
	require.NoError(t, err)
	require.Len(t, report.Changes, 1)

	heater, err := home.GetDevice(ctx, 8)
	require.NoError(t, err)
	assert.True(t, heater.IsOnline())
	assert.False(t, heater.Overridden())

	_, err = climate.ManualToggle(ctx, 1, models.StatusOnline)
	assert.ErrorIs(t, err, ErrDeviceTypeMismatch)
	_, err = climate.ManualToggle(ctx, 8, "Standby")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = climate.ResetToAuto(ctx, 404)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestClimateStatusAdvisories(t *testing.T) {
	ctx := context.Background()
	_, climate := newTestClimate(t)

	status, err := climate.Status(ctx)
	require.NoError(t, err)
	require.Len(t, status.Rooms, 3)

	var bedroom models.RoomClimateStatus
	for _, r := range status.Rooms {
		if r.RoomID == 2 {
			bedroom = r
		}
	}
	assert.InDelta(t, 18.4, bedroom.Temperature, 1e-9)
	assert.True(t, bedroom.ShouldHeat)
	assert.False(t, bedroom.HasActiveHeating)
	assert.Equal(t, []string{models.AdvisoryHeatNeeded}, bedroom.Advisories)
	assert.Equal(t, 0, status.OpenWindowCount)
}
