package controllers

import (
	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services/container"
)

// AwayModeController 处理离家模式请求
type AwayModeController struct {
	BaseControllerImpl
}

// NewAwayModeController 创建离家模式控制器
func NewAwayModeController(ctx *gin.Context, container *container.ServiceContainer) *AwayModeController {
	return &AwayModeController{BaseControllerImpl{Container: container, Context: ctx}}
}

// HandleAwayModeFunc 返回一个处理离家模式请求的Gin处理函数
func HandleAwayModeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAwayModeController(ctx, container)

		switch method {
		case "getStatus":
			controller.GetStatus()
		case "updateOptions":
			controller.UpdateOptions()
		case "activate":
			controller.Activate()
		case "deactivate":
			controller.Deactivate()
		default:
			invalidMethod(ctx)
		}
	}
}

// GetStatus 离家模式状态
// @Summary      离家模式状态
// @Tags         AwayMode
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.AwayModeStatus}
// @Router       /away-mode [get]
func (c *AwayModeController) GetStatus() {
	status, err := c.Container.GetAwayModeService().GetStatus(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, status)
}

// UpdateOptions 更新离家模式选项
// @Summary      更新离家模式选项
// @Description  目标温度会被限制在 16-28°C，缺省为 21°C
// @Tags         AwayMode
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.AwayModeOptions  true  "选项"
// @Success      200  {object}  response.Response{data=models.AwayModeOptions}
// @Router       /away-mode/options [put]
func (c *AwayModeController) UpdateOptions() {
	var req models.AwayModeOptions
	if !c.BindJSON(&req) {
		return
	}
	opts, err := c.Container.GetAwayModeService().UpdateOptions(c.Context.Request.Context(), req)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, opts)
}

// Activate 启用离家模式
// @Summary      启用离家模式
// @Description  保存设备状态后关灯、锁门并调节温度
// @Tags         AwayMode
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.AwayModeResult}
// @Failure      409  {object}  response.Response
// @Router       /away-mode/activate [post]
func (c *AwayModeController) Activate() {
	result, err := c.Container.GetAwayModeService().Activate(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, result)
}

// Deactivate 关闭离家模式并恢复设备状态
// @Summary      关闭离家模式
// @Tags         AwayMode
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.AwayModeResult}
// @Failure      409  {object}  response.Response
// @Router       /away-mode/deactivate [post]
func (c *AwayModeController) Deactivate() {
	result, err := c.Container.GetAwayModeService().Deactivate(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, result)
}
