package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/code"
	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services"
)

// 上下文键
const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextClaims = "claims"
	ContextJTI    = "jti"
	ContextUser   = "user"
)

var userService services.InterfaceUserService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(users services.InterfaceUserService) {
	userService = users
}

// extractToken 从授权头中提取token，websocket 连接可通过 token 查询参数传递
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return c.Query("token")
	}
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// authenticate 校验令牌和会话，成功时把用户信息写入上下文
func authenticate(c *gin.Context) (*models.User, bool) {
	tokenString := extractToken(c)
	if tokenString == "" {
		response.FailWithMessage(c, code.ErrTokenInvalid, "Authorization header is required", nil)
		c.Abort()
		return nil, false
	}

	claims, user, err := userService.Authenticate(c.Request.Context(), tokenString)
	if err != nil {
		if services.IsSessionError(err) {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid token: "+err.Error(), nil)
		} else {
			response.FromError(c, err)
		}
		c.Abort()
		return nil, false
	}

	c.Set(ContextUserID, user.ID)
	c.Set(ContextRole, string(user.Role))
	c.Set(ContextClaims, claims)
	c.Set(ContextJTI, claims.ID)
	c.Set(ContextUser, user)
	return user, true
}

// AuthenticateUser 任意已登录用户
func AuthenticateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// AuthenticateAdmin 仅管理员
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c)
		if !ok {
			return
		}
		if !user.IsAdmin() {
			response.FailWithMessage(c, code.ErrPermissionDenied, "Insufficient permissions: requires admin role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 返回上下文中的当前用户
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// CurrentSessionID 返回当前令牌对应的会话 ID
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(ContextJTI)
}
