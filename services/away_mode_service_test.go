package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func newTestAwayMode(t *testing.T) (*HomeService, InterfaceAwayModeService, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	home := NewHomeService(store, nil)
	return home, NewAwayModeService(store, home, nil), store
}

func TestAwayModeRoundTrip(t *testing.T) {
	ctx := context.Background()
	home, away, _ := newTestAwayMode(t)

	before, err := home.GetData(ctx)
	require.NoError(t, err)

	result, err := away.Activate(ctx)
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, 12, result.Count)

	status, err := away.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.Equal(t, 7, status.SavedDeviceCount)
	assert.Equal(t, 5, status.SavedRoomCount)

	during, err := home.GetData(ctx)
	require.NoError(t, err)
	assert.False(t, during.DeviceByID(1).IsOnline())
	assert.True(t, during.DeviceByID(13).Locked())
	assert.Equal(t, 21.0, *during.DeviceByID(2).Temperature)
	for _, room := range during.Rooms {
		assert.Equal(t, models.TemperatureRange{Min: 20, Max: 22}, *room.TemperatureRange)
	}

	result, err = away.Deactivate(ctx)
	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.Equal(t, 12, result.Count)

	after, err := home.GetData(ctx)
	require.NoError(t, err)
	assert.True(t, after.DeviceByID(1).IsOnline())
	assert.False(t, after.DeviceByID(13).Locked())
	assert.Equal(t, *before.DeviceByID(2).Temperature, *after.DeviceByID(2).Temperature)
	assert.Equal(t, *before.RoomByID(2).TemperatureRange, *after.RoomByID(2).TemperatureRange)
	// 没有区间的房间恢复为第一个设置了区间的房间的值
	assert.Equal(t, models.TemperatureRange{Min: 21, Max: 24}, *after.RoomByID(3).TemperatureRange)

	status, err = away.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Zero(t, status.SavedDeviceCount)
	assert.Zero(t, status.SavedRoomCount)
}

func TestAwayModeStateGuards(t *testing.T) {
	ctx := context.Background()
	_, away, _ := newTestAwayMode(t)

	_, err := away.Deactivate(ctx)
	assert.ErrorIs(t, err, ErrAwayModeInactive)

	_, err = away.Activate(ctx)
	require.NoError(t, err)

	_, err = away.Activate(ctx)
	assert.ErrorIs(t, err, ErrAwayModeActive)

	_, err = away.UpdateOptions(ctx, models.DefaultAwayModeOptions())
	assert.ErrorIs(t, err, ErrAwayModeActive)
}

func TestAwayModeOptionsAreClampedAndHonoured(t *testing.T) {
	ctx := context.Background()
	home, away, _ := newTestAwayMode(t)

	opts, err := away.UpdateOptions(ctx, models.AwayModeOptions{LockDoors: true, TargetTemperature: 35})
	require.NoError(t, err)
	assert.Equal(t, 28.0, opts.TargetTemperature)

	result, err := away.Activate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)

	data, err := home.GetData(ctx)
	require.NoError(t, err)
	assert.True(t, data.DeviceByID(1).IsOnline())
	assert.True(t, data.DeviceByID(13).Locked())
	assert.Equal(t, 21.0, data.RoomByID(1).TemperatureRange.Min)
}

func TestAwayModeOptionsDefaultTarget(t *testing.T) {
	ctx := context.Background()
	_, away, _ := newTestAwayMode(t)

	cases := []struct {
		name   string
		target float64
		want   float64
	}{
		{"unset", 0, models.AwayDefaultTargetTemperature},
		{"too cold", 10, models.AwayMinTargetTemperature},
		{"lower bound", 16, 16},
		{"in range", 23.5, 23.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := away.UpdateOptions(ctx, models.AwayModeOptions{LockDoors: true, SetTemperature: true, TargetTemperature: tc.target})
			require.NoError(t, err)
			assert.Equal(t, tc.want, opts.TargetTemperature)

			status, err := away.GetStatus(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, status.Options.TargetTemperature)
		})
	}
}

func TestAwayModeSkipsDeletedTargets(t *testing.T) {
	ctx := context.Background()
	home, away, _ := newTestAwayMode(t)

	_, err := away.Activate(ctx)
	require.NoError(t, err)

	require.NoError(t, home.DeleteRoom(ctx, 5))

	result, err := away.Deactivate(ctx)
	require.NoError(t, err)
	// 门和入口房间已被删除
	assert.Equal(t, 10, result.Count)
}

func TestAwayModeCorruptStorageFallsBack(t *testing.T) {
	ctx := context.Background()
	_, away, store := newTestAwayMode(t)

	require.NoError(t, store.Set(ctx, KeyAwayModeOptions, []byte("not-json")))
	require.NoError(t, store.Set(ctx, KeyAwayModeActive, []byte("{")))

	status, err := away.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Equal(t, models.DefaultAwayModeOptions(), status.Options)
}
