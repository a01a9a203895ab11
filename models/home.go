package models

// SchemaVersion 当前 smartHomeData 的结构版本，版本不一致时重新加载初始数据
const SchemaVersion = "1.2"

// UnknownRoomName is returned for devices whose room no longer exists.
const UnknownRoomName = "Unknown Room"

// HomeData 房间和设备的完整数据
type HomeData struct {
	Rooms   []*Room   `json:"rooms"`
	Devices []*Device `json:"devices"`
}

// RoomByID 按 ID 查找房间
func (h *HomeData) RoomByID(id int) *Room {
	for _, r := range h.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// DeviceByID 按 ID 查找设备
func (h *HomeData) DeviceByID(id int) *Device {
	for _, d := range h.Devices {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// DevicesInRoom 返回 roomId 等于 id 的设备
func (h *HomeData) DevicesInRoom(id int) []*Device {
	var out []*Device
	for _, d := range h.Devices {
		if d.RoomID == id {
			out = append(out, d)
		}
	}
	return out
}

// DevicesOfType 返回指定类型的设备
func (h *HomeData) DevicesOfType(types ...DeviceType) []*Device {
	var out []*Device
	for _, d := range h.Devices {
		for _, t := range types {
			if d.Type == t {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// RoomByDevice 返回设备列表中包含该设备的房间
func (h *HomeData) RoomByDevice(deviceID int) *Room {
	for _, r := range h.Rooms {
		if r.HasDevice(deviceID) {
			return r
		}
	}
	return nil
}

// RoomName 返回房间名，房间不存在时返回 "Unknown Room"
func (h *HomeData) RoomName(id int) string {
	if r := h.RoomByID(id); r != nil {
		return r.Name
	}
	return UnknownRoomName
}

// NextRoomID 返回最大房间 ID + 1
func (h *HomeData) NextRoomID() int {
	max := 0
	for _, r := range h.Rooms {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// NextDeviceID 返回最大设备 ID + 1
func (h *HomeData) NextDeviceID() int {
	max := 0
	for _, d := range h.Devices {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1
}

// RemoveRoom 删除房间及其所有设备
func (h *HomeData) RemoveRoom(id int) bool {
	idx := -1
	for i, r := range h.Rooms {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	h.Rooms = append(h.Rooms[:idx], h.Rooms[idx+1:]...)

	devices := h.Devices[:0]
	for _, d := range h.Devices {
		if d.RoomID != id {
			devices = append(devices, d)
		}
	}
	h.Devices = devices
	return true
}

// RemoveDevice 删除设备并从所有房间的设备列表中移除
func (h *HomeData) RemoveDevice(id int) bool {
	idx := -1
	for i, d := range h.Devices {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	h.Devices = append(h.Devices[:idx], h.Devices[idx+1:]...)
	for _, r := range h.Rooms {
		r.RemoveDevice(id)
	}
	return true
}

// MoveDevice 将设备移动到另一个房间，并同步两个房间的设备列表
func (h *HomeData) MoveDevice(deviceID, toRoomID int) {
	d := h.DeviceByID(deviceID)
	if d == nil {
		return
	}
	for _, r := range h.Rooms {
		if r.ID != toRoomID {
			r.RemoveDevice(deviceID)
		}
	}
	if to := h.RoomByID(toRoomID); to != nil && !to.HasDevice(deviceID) {
		to.Devices = append(to.Devices, deviceID)
	}
	d.RoomID = toRoomID
}

// Clone 深拷贝
func (h *HomeData) Clone() *HomeData {
	c := &HomeData{
		Rooms:   make([]*Room, 0, len(h.Rooms)),
		Devices: make([]*Device, 0, len(h.Devices)),
	}
	for _, r := range h.Rooms {
		c.Rooms = append(c.Rooms, r.Clone())
	}
	for _, d := range h.Devices {
		c.Devices = append(c.Devices, d.Clone())
	}
	return c
}
