package controllers

import (
	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services/container"
)

// PreferencesController 处理当前用户的界面偏好
type PreferencesController struct {
	BaseControllerImpl
}

// NewPreferencesController 创建偏好控制器
func NewPreferencesController(ctx *gin.Context, container *container.ServiceContainer) *PreferencesController {
	return &PreferencesController{BaseControllerImpl{Container: container, Context: ctx}}
}

// HandlePreferencesFunc 返回一个处理偏好请求的Gin处理函数
func HandlePreferencesFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPreferencesController(ctx, container)

		switch method {
		case "get":
			controller.Get()
		case "update":
			controller.Update()
		default:
			invalidMethod(ctx)
		}
	}
}

// Get 获取偏好，未保存时返回默认值
// @Summary      获取界面偏好
// @Tags         Preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Preferences}
// @Router       /preferences [get]
func (c *PreferencesController) Get() {
	prefs, err := c.Container.GetPreferencesService().Get(c.Context.Request.Context(), c.CurrentUser().ID)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, prefs)
}

// Update 保存偏好
// @Summary      保存界面偏好
// @Tags         Preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.Preferences  true  "偏好"
// @Success      200  {object}  response.Response{data=models.Preferences}
// @Failure      400  {object}  response.Response
// @Router       /preferences [put]
func (c *PreferencesController) Update() {
	var req models.Preferences
	if !c.BindJSON(&req) {
		return
	}
	prefs, err := c.Container.GetPreferencesService().Update(c.Context.Request.Context(), c.CurrentUser().ID, req)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, prefs)
}
