package controllers

import (
	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services/container"
)

// InterfaceClimateController 定义温控控制器接口
type InterfaceClimateController interface {
	GetStatus()
	Evaluate()
	SetTemperatureRange()
	ManualOverride()
	ResetToAuto()
}

// ClimateController 处理自动温控请求
type ClimateController struct {
	BaseControllerImpl
}

// NewClimateController 创建温控控制器
func NewClimateController(ctx *gin.Context, container *container.ServiceContainer) *ClimateController {
	return &ClimateController{BaseControllerImpl{Container: container, Context: ctx}}
}

// OverrideRequest 手动开关请求
type OverrideRequest struct {
	Status models.DeviceStatus `json:"status" binding:"required" example:"Online"`
}

// HandleClimateFunc 返回一个处理温控请求的Gin处理函数
func HandleClimateFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewClimateController(ctx, container)

		switch method {
		case "getStatus":
			controller.GetStatus()
		case "evaluate":
			controller.Evaluate()
		case "setTemperatureRange":
			controller.SetTemperatureRange()
		case "manualOverride":
			controller.ManualOverride()
		case "resetToAuto":
			controller.ResetToAuto()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1. GetStatus 各房间的温控状态
// @Summary      温控状态
// @Tags         Climate
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.ClimateStatus}
// @Router       /climate/status [get]
func (c *ClimateController) GetStatus() {
	status, err := c.Container.GetClimateService().Status(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, status)
}

// 2. Evaluate 立即执行一次自动温控
// @Summary      执行自动温控
// @Tags         Climate
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.ClimateReport}
// @Router       /climate/evaluate [post]
func (c *ClimateController) Evaluate() {
	report, err := c.Container.GetClimateService().Evaluate(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, report)
}

// 3. SetTemperatureRange 设置房间温度区间并重新评估
// @Summary      设置房间温度区间
// @Tags         Climate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                      true  "房间ID"
// @Param        request  body      models.TemperatureRange  true  "温度区间"
// @Success      200  {object}  response.Response{data=models.ClimateReport}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /rooms/{id}/temperature-range [put]
func (c *ClimateController) SetTemperatureRange() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	var req models.TemperatureRange
	if !c.BindJSON(&req) {
		return
	}

	report, err := c.Container.GetClimateService().SetTemperatureRange(c.Context.Request.Context(), id, req)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, report)
}

// 4. ManualOverride 手动开关空调或暖气
// @Summary      手动控制温控设备
// @Description  设备进入手动模式，自动温控不再改变其状态
// @Tags         Climate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int              true  "设备ID"
// @Param        request  body      OverrideRequest  true  "目标状态"
// @Success      200  {object}  response.Response{data=models.Device}
// @Failure      400  {object}  response.Response
// @Router       /devices/{id}/override [put]
func (c *ClimateController) ManualOverride() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	var req OverrideRequest
	if !c.BindJSON(&req) {
		return
	}

	device, err := c.Container.GetClimateService().ManualToggle(c.Context.Request.Context(), id, req.Status)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, device)
}

// 5. ResetToAuto 恢复自动控制
// @Summary      恢复自动温控
// @Tags         Climate
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.ClimateReport}
// @Router       /devices/{id}/override [delete]
func (c *ClimateController) ResetToAuto() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	report, err := c.Container.GetClimateService().ResetToAuto(c.Context.Request.Context(), id)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, report)
}
