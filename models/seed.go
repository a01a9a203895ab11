package models

// InitialHomeData 返回首次启动或结构版本变化时写入的初始数据，每次调用返回新副本
func InitialHomeData() *HomeData {
	rooms := []*Room{
		{ID: 1, Name: "Living Room", Type: RoomTypeLiving, Devices: []int{1, 2, 3, 4, 5}, TemperatureRange: &TemperatureRange{Min: 21, Max: 24}},
		{ID: 2, Name: "Bedroom", Type: RoomTypeBedroom, Devices: []int{6, 7, 8}, TemperatureRange: &TemperatureRange{Min: 19, Max: 22}},
		{ID: 3, Name: "Kitchen", Type: RoomTypeKitchen, Devices: []int{9, 10, 16}},
		{ID: 4, Name: "Bathroom", Type: RoomTypeBathroom, Devices: []int{11, 12}, TemperatureRange: &TemperatureRange{Min: 22, Max: 25}},
		{ID: 5, Name: "Entrance", Type: RoomTypeEntrance, Devices: []int{13, 14, 15, 17}},
	}

	devices := []*Device{
		{
			ID: 1, Name: "Ceiling Light", Type: DeviceTypeLight, RoomID: 1, Status: StatusOnline, LastActive: "2 minutes ago",
			SerialNumber: "LT-0001-A", Manufacturer: "Philips", Model: "Hue White Ambiance", FirmwareVersion: "1.88.1",
			IPAddress: "192.168.1.21", MACAddress: "00:17:88:01:02:03", PowerConsumption: "9W", InstallationDate: "2023-04-12",
			InitialCost: 45, InstallationCost: 20, MonthlySavings: 3, Lifespan: 60,
			Brightness: Int(80), Color: String("#FFE4B5"),
		},
		{
			ID: 2, Name: "Living Room Thermostat", Type: DeviceTypeThermostat, RoomID: 1, Status: StatusOnline, LastActive: "Just now",
			SerialNumber: "TH-23.5-LR01", Manufacturer: "Nest", Model: "Learning Thermostat", FirmwareVersion: "6.2.1",
			IPAddress: "192.168.1.30", MACAddress: "18:B4:30:11:22:33", PowerConsumption: "3W", InstallationDate: "2023-01-20",
			InitialCost: 250, InstallationCost: 80, MonthlySavings: 15, Lifespan: 84,
			Temperature: Float(22), ManualOverride: Bool(false),
		},
		{
			ID: 3, Name: "Living Room AC", Type: DeviceTypeAC, RoomID: 1, Status: StatusOffline, LastActive: "3 hours ago",
			SerialNumber: "AC-9000-LR", Manufacturer: "Daikin", Model: "Emura FTXJ", FirmwareVersion: "3.4.0",
			IPAddress: "192.168.1.31", PowerConsumption: "1200W", InstallationDate: "2022-06-05",
			InitialCost: 1200, InstallationCost: 300, MonthlySavings: 20, Lifespan: 120,
			Temperature: Float(22), ManualOverride: Bool(false),
		},
		{
			ID: 4, Name: "Living Room Window", Type: DeviceTypeWindow, RoomID: 1, Status: StatusOnline, LastActive: "1 hour ago",
			SerialNumber: "WS-1100-LR", Manufacturer: "Aqara", Model: "Window Sensor T1", BatteryLevel: "78%",
			IsOpen: Bool(false),
		},
		{
			ID: 5, Name: "TV Outlet", Type: DeviceTypeOutlet, RoomID: 1, Status: StatusOnline, LastActive: "5 minutes ago",
			SerialNumber: "OT-2020-LR", Manufacturer: "TP-Link", Model: "Tapo P110", IPAddress: "192.168.1.40", PowerConsumption: "85W",
		},
		{
			ID: 6, Name: "Bedside Lamp", Type: DeviceTypeLight, RoomID: 2, Status: StatusOffline, LastActive: "8 hours ago",
			SerialNumber: "LT-0002-B", Manufacturer: "IKEA", Model: "Tradfri", PowerConsumption: "6W",
			InitialCost: 25, InstallationCost: 0, MonthlySavings: 1.5, Lifespan: 48,
			Brightness: Int(40), Color: String("#FFD27F"),
		},
		{
			ID: 7, Name: "Bedroom Thermostat", Type: DeviceTypeThermostat, RoomID: 2, Status: StatusOnline, LastActive: "Just now",
			SerialNumber: "TH-18.4-BR01", Manufacturer: "Honeywell", Model: "T6 Pro", FirmwareVersion: "4.0.2",
			IPAddress: "192.168.1.32", InstallationDate: "2023-02-14",
			Temperature: Float(20), ManualOverride: Bool(false),
		},
		{
			ID: 8, Name: "Bedroom Heater", Type: DeviceTypeHeating, RoomID: 2, Status: StatusOffline, LastActive: "Yesterday",
			SerialNumber: "HT-500-BR", Manufacturer: "Bosch", Model: "Radiator Thermostat II", PowerConsumption: "1500W",
			InitialCost: 600, InstallationCost: 150, MonthlySavings: 12, Lifespan: 96,
			Temperature: Float(21), ManualOverride: Bool(false),
		},
		{
			ID: 9, Name: "Kitchen Smoke Detector", Type: DeviceTypeSmokeDetector, RoomID: 3, Status: StatusOnline, LastActive: "10 minutes ago",
			SerialNumber: "SD-300-KT", Manufacturer: "Nest", Model: "Protect", BatteryLevel: "92%",
			SmokeDetected: Bool(false), AlarmActive: Bool(false),
		},
		{
			ID: 10, Name: "Coffee Machine Outlet", Type: DeviceTypeOutlet, RoomID: 3, Status: StatusOffline, LastActive: "This morning",
			SerialNumber: "OT-2021-KT", Manufacturer: "Shelly", Model: "Plug S", IPAddress: "192.168.1.41", PowerConsumption: "1100W",
		},
		{
			ID: 11, Name: "Bathroom Humidity Sensor", Type: DeviceTypeHumidity, RoomID: 4, Status: StatusOnline, LastActive: "1 minute ago",
			SerialNumber: "HM-010-BT", Manufacturer: "Aqara", Model: "TVOC Monitor", BatteryLevel: "64%",
		},
		{
			ID: 12, Name: "Bathroom Thermostat", Type: DeviceTypeThermostat, RoomID: 4, Status: StatusOnline, LastActive: "Just now",
			SerialNumber: "BT-TH-002", Manufacturer: "Tado", Model: "Smart Thermostat V3+", FirmwareVersion: "23.4.1",
			IPAddress: "192.168.1.33",
			Temperature: Float(23), ManualOverride: Bool(false),
		},
		{
			ID: 13, Name: "Front Door", Type: DeviceTypeDoor, RoomID: 5, Status: StatusOnline, LastActive: "20 minutes ago",
			SerialNumber: "DR-700-EN", Manufacturer: "Nuki", Model: "Smart Lock 3.0", BatteryLevel: "81%",
			InitialCost: 230, InstallationCost: 50, MonthlySavings: 4, Lifespan: 72,
			IsLocked: Bool(false), IsOpen: Bool(false),
		},
		{
			ID: 14, Name: "Entrance Motion Sensor", Type: DeviceTypeMotionSensor, RoomID: 5, Status: StatusOnline, LastActive: "4 minutes ago",
			SerialNumber: "MS-100-EN", Manufacturer: "Philips", Model: "Hue Motion", BatteryLevel: "70%",
			MotionDetected: Bool(false), AutoLightControl: Bool(true),
		},
		{
			ID: 15, Name: "Entrance Light", Type: DeviceTypeLight, RoomID: 5, Status: StatusOffline, LastActive: "4 minutes ago",
			SerialNumber: "LT-0003-E", Manufacturer: "Philips", Model: "Hue White", PowerConsumption: "9W",
			Brightness: Int(100), Color: String("#FFFFFF"),
		},
		{
			ID: 16, Name: "Energy Monitor", Type: DeviceTypeEnergy, RoomID: 3, Status: StatusOnline, LastActive: "Just now",
			SerialNumber: "EM-001", Manufacturer: "Shelly", Model: "3EM", IPAddress: "192.168.1.50",
		},
		{
			ID: 17, Name: "Solar Inverter", Type: DeviceTypeOther, RoomID: 5, Status: StatusOnline, LastActive: "Just now",
			SerialNumber: "INV-6K-01", Manufacturer: "Fronius", Model: "Primo 6.0", IPAddress: "192.168.1.60",
			InitialCost: 7500, InstallationCost: 1500, MonthlySavings: 95, Lifespan: 120,
		},
	}

	return &HomeData{Rooms: rooms, Devices: devices}
}
