package controllers

import (
	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/middleware"
	"smarthome-http-service/services/container"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
	Logout()
	Me()
}

// JWTController 处理身份验证请求
type JWTController struct {
	BaseControllerImpl
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{BaseControllerImpl{Container: container, Context: ctx}}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// HandleJWTFunc 返回一个处理JWT认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "me":
			controller.Me()
		default:
			invalidMethod(ctx)
		}
	}
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Verify username and password, open a session and return a JWT bound to it
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response{data=models.LoginResult}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if !c.BindJSON(&req) {
		return
	}

	result, err := c.Container.GetUserService().Login(c.Context.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, result)
}

// Logout 注销当前会话
// @Summary      Logout
// @Description  Invalidate the session bound to the current token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [post]
func (c *JWTController) Logout() {
	if err := c.Container.GetUserService().Logout(c.Context.Request.Context(), middleware.CurrentSessionID(c.Context)); err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, nil)
}

// Me 返回当前登录用户
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (c *JWTController) Me() {
	response.Success(c.Context, c.CurrentUser())
}
