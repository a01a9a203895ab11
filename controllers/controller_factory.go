package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/code"
	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/middleware"
	"smarthome-http-service/models"
	"smarthome-http-service/services/container"
)

// BaseController 是所有控制器的基础接口
type BaseController interface {
	// 获取服务容器
	GetContainer() *container.ServiceContainer
	// 获取Gin上下文
	GetContext() *gin.Context
}

// BaseControllerImpl 是控制器的基础实现
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer 实现 BaseController 接口
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext 实现 BaseController 接口
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// PathInt 解析整数路径参数，失败时写出参数错误
func (c *BaseControllerImpl) PathInt(name string) (int, bool) {
	id, err := strconv.Atoi(c.Context.Param(name))
	if err != nil || id <= 0 {
		response.ParamError(c.Context, "无效的"+name+"参数")
		return 0, false
	}
	return id, true
}

// BindJSON 绑定请求体，失败时写出绑定错误
func (c *BaseControllerImpl) BindJSON(obj interface{}) bool {
	if err := c.Context.ShouldBindJSON(obj); err != nil {
		response.FailWithMessage(c.Context, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return false
	}
	return true
}

// CurrentUser 当前登录用户
func (c *BaseControllerImpl) CurrentUser() *models.User {
	return middleware.CurrentUser(c.Context)
}

// invalidMethod 未知的处理方法
func invalidMethod(ctx *gin.Context) {
	response.Fail(ctx, code.ErrInvalidMethod, nil)
}

// ControllerFactory 用于创建控制器的工厂
type ControllerFactory struct {
	Container *container.ServiceContainer
}

// NewControllerFactory 创建一个新的控制器工厂
func NewControllerFactory(container *container.ServiceContainer) *ControllerFactory {
	return &ControllerFactory{
		Container: container,
	}
}

// Base 为当前请求创建基础控制器
func (f *ControllerFactory) Base(ctx *gin.Context) BaseControllerImpl {
	return BaseControllerImpl{Container: f.Container, Context: ctx}
}
