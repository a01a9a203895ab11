package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/services"
	"smarthome-http-service/services/container"
)

// InterfaceMQTTController 定义MQTT控制器接口
type InterfaceMQTTController interface {
	GetStatus()
	SendCommand()
}

// MQTTController MQTT 桥接控制器
type MQTTController struct {
	BaseControllerImpl
}

// NewMQTTController 创建一个新的MQTT控制器
func NewMQTTController(ctx *gin.Context, container *container.ServiceContainer) InterfaceMQTTController {
	return &MQTTController{BaseControllerImpl{Container: container, Context: ctx}}
}

// CommandRequest 与 MQTT 命令主题相同格式的设备命令
type CommandRequest struct {
	Action     string `json:"action" binding:"required" example:"set_brightness"`
	Brightness int    `json:"brightness,omitempty" example:"60"`
	Color      string `json:"color,omitempty" example:"#FFFFFF"`
}

// HandleMQTTFunc 返回一个处理MQTT请求的Gin处理函数
func HandleMQTTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMQTTController(ctx, container)

		switch method {
		case "getStatus":
			controller.GetStatus()
		case "sendCommand":
			controller.SendCommand()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1. GetStatus 获取MQTT连接状态
// @Summary      MQTT 状态
// @Tags         MQTT
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=services.MQTTStatus}
// @Router       /mqtt/status [get]
func (c *MQTTController) GetStatus() {
	response.Success(c.Context, c.Container.GetMQTTService().Status())
}

// 2. SendCommand 以 MQTT 命令的格式控制设备
// @Summary      执行设备命令
// @Description  支持 toggle_power, set_brightness, set_color, toggle_lock, toggle_open, test_alarm, reset_alarm
// @Tags         MQTT
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int             true  "设备ID"
// @Param        request  body      CommandRequest  true  "命令"
// @Success      200  {object}  response.Response{data=models.Device}
// @Failure      400  {object}  response.Response
// @Router       /mqtt/devices/{id}/command [post]
func (c *MQTTController) SendCommand() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	var req CommandRequest
	if !c.BindJSON(&req) {
		return
	}

	device, err := c.Container.GetMQTTService().ExecuteCommand(c.Context.Request.Context(), id, services.DeviceCommand{
		Action:     req.Action,
		Brightness: req.Brightness,
		Color:      req.Color,
		Timestamp:  time.Now().Unix(),
	})
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, device)
}
