package controllers

import (
	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services/container"
)

// InterfaceRoomController 定义房间控制器接口
type InterfaceRoomController interface {
	GetHome()
	GetRooms()
	GetRoom()
	GetRoomDevices()
	CreateRoom()
	UpdateRoom()
	DeleteRoom()
}

// RoomController 处理房间相关的请求
type RoomController struct {
	BaseControllerImpl
}

// NewRoomController 创建一个新的房间控制器
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{BaseControllerImpl{Container: container, Context: ctx}}
}

// RoomRequest 创建房间请求
type RoomRequest struct {
	Name             string                   `json:"name" binding:"required" example:"Office"`
	Type             models.RoomType          `json:"type" example:"office"`
	TemperatureRange *models.TemperatureRange `json:"temperatureRange,omitempty"`
}

// HandleRoomFunc 返回一个处理房间请求的Gin处理函数
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getHome":
			controller.GetHome()
		case "getRooms":
			controller.GetRooms()
		case "getRoom":
			controller.GetRoom()
		case "getRoomDevices":
			controller.GetRoomDevices()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1. GetHome 获取完整的家居数据
// @Summary      获取家居数据
// @Description  返回全部房间和设备
// @Tags         Home
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.HomeData}
// @Router       /home [get]
func (c *RoomController) GetHome() {
	data, err := c.Container.GetHomeService().GetData(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, data)
}

// 2. GetRooms 获取房间列表
// @Summary      获取房间列表
// @Tags         Room
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]models.Room}
// @Router       /rooms [get]
func (c *RoomController) GetRooms() {
	data, err := c.Container.GetHomeService().GetData(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, data.Rooms)
}

// 3. GetRoom 获取房间详情
// @Summary      获取房间详情
// @Tags         Room
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "房间ID"
// @Success      200  {object}  response.Response{data=models.Room}
// @Failure      404  {object}  response.Response
// @Router       /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	room, err := c.Container.GetHomeService().GetRoom(c.Context.Request.Context(), id)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, room)
}

// 4. GetRoomDevices 获取房间内的设备
// @Summary      获取房间设备
// @Tags         Room
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "房间ID"
// @Success      200  {object}  response.Response{data=[]models.Device}
// @Failure      404  {object}  response.Response
// @Router       /rooms/{id}/devices [get]
func (c *RoomController) GetRoomDevices() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	devices, err := c.Container.GetHomeService().GetDevicesByRoom(c.Context.Request.Context(), id)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, devices)
}

// 5. CreateRoom 创建房间
// @Summary      创建房间
// @Description  新房间没有设备，类型缺省为 other
// @Tags         Room
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      RoomRequest  true  "房间信息"
// @Success      201  {object}  response.Response{data=models.Room}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /rooms [post]
func (c *RoomController) CreateRoom() {
	var req RoomRequest
	if !c.BindJSON(&req) {
		return
	}

	room, err := c.Container.GetHomeService().AddRoom(c.Context.Request.Context(), models.Room{
		Name:             req.Name,
		Type:             req.Type,
		TemperatureRange: req.TemperatureRange,
	})
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Created(c.Context, room)
}

// 6. UpdateRoom 更新房间
// @Summary      更新房间
// @Tags         Room
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int               true  "房间ID"
// @Param        request  body      models.RoomPatch  true  "需要修改的字段"
// @Success      200  {object}  response.Response{data=models.Room}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	var patch models.RoomPatch
	if !c.BindJSON(&patch) {
		return
	}

	room, err := c.Container.GetHomeService().UpdateRoom(c.Context.Request.Context(), id, patch)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, room)
}

// 7. DeleteRoom 删除房间及其全部设备
// @Summary      删除房间
// @Tags         Room
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "房间ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	if err := c.Container.GetHomeService().DeleteRoom(c.Context.Request.Context(), id); err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, nil)
}
