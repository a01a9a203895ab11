package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services"
	"smarthome-http-service/services/container"
)

// InterfaceDeviceControlController 定义设备控制接口
type InterfaceDeviceControlController interface {
	TogglePower()
	SetBrightness()
	SetColor()
	ToggleLock()
	ToggleOpen()
	TestSmokeAlarm()
	ResetSmokeAlarm()
	SetAutoLight()
	SimulateMotion()
	ClearMotion()
}

// DeviceControlController 处理设备的即时操作
type DeviceControlController struct {
	BaseControllerImpl
}

// NewDeviceControlController 创建设备控制控制器
func NewDeviceControlController(ctx *gin.Context, container *container.ServiceContainer) *DeviceControlController {
	return &DeviceControlController{BaseControllerImpl{Container: container, Context: ctx}}
}

// BrightnessRequest 亮度请求
type BrightnessRequest struct {
	Brightness *int `json:"brightness" binding:"required" example:"80"`
}

// ColorRequest 颜色请求
type ColorRequest struct {
	Color string `json:"color" binding:"required" example:"#FFD700"`
}

// AutoLightRequest 自动灯光请求
type AutoLightRequest struct {
	Enabled *bool `json:"enabled" binding:"required" example:"true"`
}

// HandleDeviceControlFunc 返回一个处理设备控制请求的Gin处理函数
func HandleDeviceControlFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceControlController(ctx, container)

		switch method {
		case "togglePower":
			controller.TogglePower()
		case "setBrightness":
			controller.SetBrightness()
		case "setColor":
			controller.SetColor()
		case "toggleLock":
			controller.ToggleLock()
		case "toggleOpen":
			controller.ToggleOpen()
		case "testSmokeAlarm":
			controller.TestSmokeAlarm()
		case "resetSmokeAlarm":
			controller.ResetSmokeAlarm()
		case "setAutoLight":
			controller.SetAutoLight()
		case "simulateMotion":
			controller.SimulateMotion()
		case "clearMotion":
			controller.ClearMotion()
		default:
			invalidMethod(ctx)
		}
	}
}

// run 解析设备ID并执行操作
func (c *DeviceControlController) run(op func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error)) {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	device, err := op(c.Context.Request.Context(), c.Container.GetDeviceControlService(), id)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, device)
}

// TogglePower 切换电源
// @Summary      切换设备电源
// @Description  温控设备切换后会标记为手动控制
// @Tags         DeviceControl
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Device}
// @Failure      404  {object}  response.Response
// @Router       /devices/{id}/power [post]
func (c *DeviceControlController) TogglePower() {
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.TogglePower(ctx, id)
	})
}

// SetBrightness 设置亮度
// @Summary      设置灯光亮度
// @Tags         DeviceControl
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                true  "设备ID"
// @Param        request  body      BrightnessRequest  true  "亮度 0-100"
// @Success      200  {object}  response.Response{data=models.Device}
// @Failure      400  {object}  response.Response
// @Router       /devices/{id}/brightness [put]
func (c *DeviceControlController) SetBrightness() {
	var req BrightnessRequest
	if !c.BindJSON(&req) {
		return
	}
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.SetBrightness(ctx, id, *req.Brightness)
	})
}

// SetColor 设置颜色
// @Summary      设置灯光颜色
// @Tags         DeviceControl
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int           true  "设备ID"
// @Param        request  body      ColorRequest  true  "十六进制颜色"
// @Success      200  {object}  response.Response{data=models.Device}
// @Failure      400  {object}  response.Response
// @Router       /devices/{id}/color [put]
func (c *DeviceControlController) SetColor() {
	var req ColorRequest
	if !c.BindJSON(&req) {
		return
	}
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.SetColor(ctx, id, req.Color)
	})
}

// ToggleLock 切换门锁
// @Summary      切换门锁
// @Description  门打开时不能上锁
// @Tags         DeviceControl
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Device}
// @Failure      409  {object}  response.Response
// @Router       /devices/{id}/lock [post]
func (c *DeviceControlController) ToggleLock() {
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.ToggleLock(ctx, id)
	})
}

// ToggleOpen 切换门窗开关
// @Summary      切换门窗开关
// @Tags         DeviceControl
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Device}
// @Router       /devices/{id}/open [post]
func (c *DeviceControlController) ToggleOpen() {
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.ToggleOpen(ctx, id)
	})
}

// TestSmokeAlarm 测试烟雾报警
// @Summary      测试烟雾报警
// @Tags         DeviceControl
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Device}
// @Router       /devices/{id}/alarm/test [post]
func (c *DeviceControlController) TestSmokeAlarm() {
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.TestSmokeAlarm(ctx, id)
	})
}

// ResetSmokeAlarm 复位烟雾报警
// @Summary      复位烟雾报警
// @Tags         DeviceControl
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Device}
// @Router       /devices/{id}/alarm/reset [post]
func (c *DeviceControlController) ResetSmokeAlarm() {
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.ResetSmokeAlarm(ctx, id)
	})
}

// SetAutoLight 设置运动感应自动灯光
// @Summary      设置自动灯光
// @Tags         DeviceControl
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int               true  "设备ID"
// @Param        request  body      AutoLightRequest  true  "是否启用"
// @Success      200  {object}  response.Response{data=models.Device}
// @Router       /devices/{id}/auto-light [put]
func (c *DeviceControlController) SetAutoLight() {
	var req AutoLightRequest
	if !c.BindJSON(&req) {
		return
	}
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.SetAutoLightControl(ctx, id, *req.Enabled)
	})
}

// SimulateMotion 模拟检测到运动
// @Summary      模拟运动
// @Description  启用自动灯光时会打开同房间的灯，一段时间后自动复位
// @Tags         DeviceControl
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Device}
// @Router       /devices/{id}/motion [post]
func (c *DeviceControlController) SimulateMotion() {
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.SimulateMotion(ctx, id)
	})
}

// ClearMotion 清除运动状态
// @Summary      清除运动状态
// @Tags         DeviceControl
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.Device}
// @Router       /devices/{id}/motion [delete]
func (c *DeviceControlController) ClearMotion() {
	c.run(func(ctx context.Context, svc services.InterfaceDeviceControlService, id int) (*models.Device, error) {
		return svc.ClearMotion(ctx, id)
	})
}
