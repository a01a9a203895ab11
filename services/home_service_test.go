package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func newTestHomeService(t *testing.T) (*HomeService, *MemoryStore, *EventHub) {
	t.Helper()
	store := NewMemoryStore()
	hub := NewEventHub()
	return NewHomeService(store, hub), store, hub
}

func TestHomeServiceSeedsInitialData(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestHomeService(t)

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Rooms, 5)
	assert.Len(t, data.Devices, 17)

	var version string
	require.True(t, LoadJSON(ctx, store, KeyHomeDataVersion, &version))
	assert.Equal(t, models.SchemaVersion, version)
}

func TestHomeServiceReseedsOnVersionMismatch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	stale := &models.HomeData{Rooms: []*models.Room{{ID: 1, Name: "Old", Type: models.RoomTypeOther, Devices: []int{}}}}
	require.NoError(t, SaveJSON(ctx, store, KeyHomeData, stale))
	require.NoError(t, SaveJSON(ctx, store, KeyHomeDataVersion, "1.1"))

	svc := NewHomeService(store, nil)
	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Rooms, 5)
	assert.Equal(t, "Living Room", data.Rooms[0].Name)
}

func TestHomeServiceKeepsMatchingVersion(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	saved := &models.HomeData{Rooms: []*models.Room{{ID: 7, Name: "Loft", Type: models.RoomTypeOther, Devices: []int{}}}}
	require.NoError(t, SaveJSON(ctx, store, KeyHomeData, saved))
	require.NoError(t, SaveJSON(ctx, store, KeyHomeDataVersion, models.SchemaVersion))

	svc := NewHomeService(store, nil)
	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Rooms, 1)
	assert.Equal(t, "Loft", data.Rooms[0].Name)
}

func TestHomeServiceAddRoomAndDevice(t *testing.T) {
	ctx := context.Background()
	svc, _, hub := newTestHomeService(t)
	_, events := hub.Subscribe(8)

	room, err := svc.AddRoom(ctx, models.Room{Name: "Garage", Type: models.RoomTypeGarage})
	require.NoError(t, err)
	assert.Equal(t, 6, room.ID)
	assert.Equal(t, EventRoomAdded, (<-events).Type)

	device, err := svc.AddDevice(ctx, models.Device{Name: "Garage Light", Type: models.DeviceTypeLight, RoomID: room.ID})
	require.NoError(t, err)
	assert.Equal(t, 18, device.ID)
	assert.Equal(t, 100, *device.Brightness)
	assert.Equal(t, models.StatusOffline, device.Status)
	assert.Equal(t, EventDeviceAdded, (<-events).Type)

	got, err := svc.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{18}, got.Devices)

	_, err = svc.AddDevice(ctx, models.Device{Name: "Ghost", Type: models.DeviceTypeLight, RoomID: 99})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.AddDevice(ctx, models.Device{Name: "Toaster", Type: "toaster", RoomID: 1})
	assert.ErrorIs(t, err, ErrInvalidDeviceType)

	_, err = svc.AddRoom(ctx, models.Room{Name: "Attic", Type: "attic"})
	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func TestHomeServiceDeleteRoomCascades(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestHomeService(t)

	require.NoError(t, svc.DeleteRoom(ctx, 2))

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Nil(t, data.RoomByID(2))
	for _, id := range []int{6, 7, 8} {
		assert.Nil(t, data.DeviceByID(id))
	}
	assert.Len(t, data.Devices, 14)

	assert.ErrorIs(t, svc.DeleteRoom(ctx, 2), ErrRoomNotFound)
}

func TestHomeServiceDeleteDeviceRemovesFromRoom(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestHomeService(t)

	require.NoError(t, svc.DeleteDevice(ctx, 3))

	room, err := svc.GetRoom(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5}, room.Devices)

	_, err = svc.GetDevice(ctx, 3)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.ErrorIs(t, svc.DeleteDevice(ctx, 3), ErrDeviceNotFound)
}

func TestHomeServiceUpdateDeviceMovesRoom(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestHomeService(t)

	to := 3
	name := "Kitchen Lamp"
	device, err := svc.UpdateDevice(ctx, 6, models.DevicePatch{RoomID: &to, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 3, device.RoomID)
	assert.Equal(t, "Kitchen Lamp", device.Name)

	bedroom, err := svc.GetRoom(ctx, 2)
	require.NoError(t, err)
	assert.NotContains(t, bedroom.Devices, 6)

	kitchen, err := svc.GetRoomByDevice(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 3, kitchen.ID)

	missing := 42
	_, err = svc.UpdateDevice(ctx, 6, models.DevicePatch{RoomID: &missing})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// 失败的修改不会改变数据
	device, err = svc.GetDevice(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 3, device.RoomID)
}

func TestHomeServiceUpdateDeviceValidates(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestHomeService(t)

	bright := 150
	_, err := svc.UpdateDevice(ctx, 1, models.DevicePatch{Brightness: &bright})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateDevice(ctx, 99, models.DevicePatch{})
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestHomeServiceUpdateRoomRange(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestHomeService(t)

	room, err := svc.UpdateRoom(ctx, 3, models.RoomPatch{TemperatureRange: &models.TemperatureRange{Min: 18, Max: 21}})
	require.NoError(t, err)
	assert.Equal(t, 18.0, room.TemperatureRange.Min)

	_, err = svc.UpdateRoom(ctx, 3, models.RoomPatch{TemperatureRange: &models.TemperatureRange{Min: 25, Max: 21}})
	assert.ErrorIs(t, err, ErrInvalidTemperatureRange)

	_, err = svc.UpdateRoom(ctx, 9, models.RoomPatch{})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestHomeServiceGetters(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestHomeService(t)

	devices, err := svc.GetDevicesByRoom(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, devices, 2)

	_, err = svc.GetDevicesByRoom(ctx, 40)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	name, err := svc.GetRoomName(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Entrance", name)

	name, err = svc.GetRoomName(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, models.UnknownRoomName, name)
}

func TestHomeServiceReturnsCopies(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestHomeService(t)

	device, err := svc.GetDevice(ctx, 1)
	require.NoError(t, err)
	device.Name = "changed"

	again, err := svc.GetDevice(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ceiling Light", again.Name)
}

func TestHomeServiceMutateErrorLeavesState(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestHomeService(t)

	boom := errors.New("boom")
	_, err := svc.Mutate(ctx, func(data *models.HomeData) error {
		data.Rooms = nil
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Rooms, 5)
}

func TestHomeServiceResetAndReload(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestHomeService(t)

	require.NoError(t, svc.DeleteRoom(ctx, 1))
	require.NoError(t, svc.ResetData(ctx))

	data, err := svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Rooms, 5)

	external := &models.HomeData{Rooms: []*models.Room{{ID: 1, Name: "Only", Type: models.RoomTypeOther, Devices: []int{}}}}
	require.NoError(t, SaveJSON(ctx, store, KeyHomeData, external))
	require.NoError(t, svc.ReloadFromStorage(ctx))

	data, err = svc.GetData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Rooms, 1)
	assert.Equal(t, "Only", data.Rooms[0].Name)

	require.NoError(t, store.Set(ctx, KeyHomeData, []byte("{broken")))
	require.NoError(t, svc.ReloadFromStorage(ctx))
	data, err = svc.GetData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Rooms, 1)
}
