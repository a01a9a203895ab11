package controllers

import (
	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services/container"
)

// InterfaceDeviceController 定义设备控制器接口
type InterfaceDeviceController interface {
	GetDevices()
	GetDevice()
	GetDeviceRoom()
	CreateDevice()
	UpdateDevice()
	DeleteDevice()
}

// DeviceController 处理设备相关的请求
type DeviceController struct {
	BaseControllerImpl
}

// NewDeviceController 创建一个新的设备控制器
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{BaseControllerImpl{Container: container, Context: ctx}}
}

// HandleDeviceFunc 返回一个处理设备请求的Gin处理函数
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getDevice":
			controller.GetDevice()
		case "getDeviceRoom":
			controller.GetDeviceRoom()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1. GetDevices 获取设备列表
// @Summary      获取设备列表
// @Description  可按类型筛选
// @Tags         Device
// @Produce      json
// @Security     BearerAuth
// @Param        type  query     string  false  "设备类型"
// @Success      200  {object}  response.Response{data=[]models.Device}
// @Router       /devices [get]
func (c *DeviceController) GetDevices() {
	data, err := c.Container.GetHomeService().GetData(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}

	devices := data.Devices
	if t := c.Context.Query("type"); t != "" {
		deviceType := models.DeviceType(t)
		if !deviceType.Valid() {
			response.ParamError(c.Context, "无效的设备类型: "+t)
			return
		}
		devices = data.DevicesOfType(deviceType)
	}
	if devices == nil {
		devices = []*models.Device{}
	}
	response.Success(c.Context, devices)
}

// 2. GetDevice 获取设备详情
// @Summary      获取设备详情
// @Tags         Device
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Device}
// @Failure      404  {object}  response.Response
// @Router       /devices/{id} [get]
func (c *DeviceController) GetDevice() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	device, err := c.Container.GetHomeService().GetDevice(c.Context.Request.Context(), id)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, device)
}

// 3. GetDeviceRoom 获取设备所在房间
// @Summary      获取设备所在房间
// @Tags         Device
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Room}
// @Failure      404  {object}  response.Response
// @Router       /devices/{id}/room [get]
func (c *DeviceController) GetDeviceRoom() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	room, err := c.Container.GetHomeService().GetRoomByDevice(c.Context.Request.Context(), id)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, room)
}

// 4. CreateDevice 创建设备
// @Summary      创建设备
// @Description  按类型补齐默认属性并加入目标房间
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.Device  true  "设备信息，id 由服务端分配"
// @Success      201  {object}  response.Response{data=models.Device}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /devices [post]
func (c *DeviceController) CreateDevice() {
	var req models.Device
	if !c.BindJSON(&req) {
		return
	}

	device, err := c.Container.GetHomeService().AddDevice(c.Context.Request.Context(), req)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Created(c.Context, device)
}

// 5. UpdateDevice 更新设备
// @Summary      更新设备
// @Description  修改 roomId 时设备会移动到新房间
// @Tags         Device
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                 true  "设备ID"
// @Param        request  body      models.DevicePatch  true  "需要修改的字段"
// @Success      200  {object}  response.Response{data=models.Device}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /devices/{id} [put]
func (c *DeviceController) UpdateDevice() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	var patch models.DevicePatch
	if !c.BindJSON(&patch) {
		return
	}

	device, err := c.Container.GetHomeService().UpdateDevice(c.Context.Request.Context(), id, patch)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, device)
}

// 6. DeleteDevice 删除设备
// @Summary      删除设备
// @Tags         Device
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /devices/{id} [delete]
func (c *DeviceController) DeleteDevice() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	if err := c.Container.GetHomeService().DeleteDevice(c.Context.Request.Context(), id); err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, nil)
}
