package controllers

import (
	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services/container"
)

// InterfaceAdminController 定义管理员控制器接口
type InterfaceAdminController interface {
	GetUsers()
	GetUser()
	CreateUser()
	DeleteUser()
	ResetData()
	ReloadData()
}

// AdminController 管理员控制器，负责账户管理和家居数据维护
type AdminController struct {
	BaseControllerImpl
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{BaseControllerImpl{Container: container, Context: ctx}}
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "createUser":
			controller.CreateUser()
		case "deleteUser":
			controller.DeleteUser()
		case "resetData":
			controller.ResetData()
		case "reloadData":
			controller.ReloadData()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1. GetUsers 获取用户列表
// @Summary      获取用户列表
// @Description  返回所有账户，不包含密码哈希
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]models.User}
// @Failure      403  {object}  response.Response
// @Router       /users [get]
func (c *AdminController) GetUsers() {
	users, err := c.Container.GetUserService().List(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, users)
}

// 2. GetUser 获取单个用户
// @Summary      获取用户详情
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "用户ID"
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (c *AdminController) GetUser() {
	user, err := c.Container.GetUserService().Get(c.Context.Request.Context(), c.Context.Param("id"))
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, user)
}

// 3. CreateUser 创建用户
// @Summary      创建用户
// @Description  用户名不可重复，角色默认为 user
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.RegisterUserData  true  "用户信息"
// @Success      201  {object}  response.Response{data=models.User}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users [post]
func (c *AdminController) CreateUser() {
	var req models.RegisterUserData
	if !c.BindJSON(&req) {
		return
	}

	user, err := c.Container.GetUserService().Register(c.Context.Request.Context(), c.CurrentUser(), req)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Created(c.Context, user)
}

// 4. DeleteUser 删除用户
// @Summary      删除用户
// @Description  不能删除当前登录的账户
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "用户ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
func (c *AdminController) DeleteUser() {
	if err := c.Container.GetUserService().Delete(c.Context.Request.Context(), c.CurrentUser(), c.Context.Param("id")); err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, nil)
}

// 5. ResetData 恢复默认家居数据
// @Summary      重置家居数据
// @Tags         Home
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.HomeData}
// @Router       /home/reset [post]
func (c *AdminController) ResetData() {
	ctx := c.Context.Request.Context()
	home := c.Container.GetHomeService()
	if err := home.ResetData(ctx); err != nil {
		response.FromError(c.Context, err)
		return
	}
	data, err := home.GetData(ctx)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, data)
}

// 6. ReloadData 从存储重新加载家居数据
// @Summary      重新加载家居数据
// @Tags         Home
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.HomeData}
// @Router       /home/reload [post]
func (c *AdminController) ReloadData() {
	ctx := c.Context.Request.Context()
	home := c.Container.GetHomeService()
	if err := home.ReloadFromStorage(ctx); err != nil {
		response.FromError(c.Context, err)
		return
	}
	data, err := home.GetData(ctx)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, data)
}
